package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/uedeps/recdeps/cmd/modules"
	"github.com/uedeps/recdeps/cmd/scan"
	"github.com/uedeps/recdeps/cmd/watch"
)

// version is set via build-time ldflags
var version = "dev"

// buildDate is set via build-time ldflags
var buildDate = "unknown"

// commit is set via build-time ldflags
var commit = "unknown"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "recdeps",
	Short: "Find circular #include chains in engine-style C/C++ projects",
	Long: `Recdeps locates cyclic header dependencies in large multi-module
C/C++ source trees whose module layout is declared in a root build
descriptor. It resolves raw include tokens across modules and reports
every distinct cycle reachable from an entry-point file.

Use 'recdeps --help' to see all available commands, or 'recdeps <command> --help'
for detailed information about a specific command.`,
	Version: version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Register subcommands
	rootCmd.AddCommand(scan.Cmd)
	rootCmd.AddCommand(modules.Cmd)
	rootCmd.AddCommand(watch.Cmd)

	// Initialize annotations for version template
	if rootCmd.Annotations == nil {
		rootCmd.Annotations = make(map[string]string)
	}
	rootCmd.Annotations["buildDate"] = buildDate
	rootCmd.Annotations["commit"] = commit

	rootCmd.Version = version

	// Customize version template to show additional build info
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
Build date: {{printf "%s" (index .Annotations "buildDate")}}
Commit: {{printf "%s" (index .Annotations "commit")}}
`)
}
