package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/uedeps/recdeps/cmd/scan/formatters"
	"github.com/uedeps/recdeps/depgraph"
	"github.com/uedeps/recdeps/internal/history"
)

type scanOptions struct {
	projectRoot string
	entryPoint  string
	outputFile  string
	anchor      string
	format      string
	clipboard   bool
	prompt      bool
}

// inputLabels name the three required inputs, in the order they are
// prompted for and reported when missing.
var inputLabels = [3]string{"Project Path", "Entry Point Path", "Output File Path"}

// Cmd represents the scan command.
var Cmd = NewCommand()

// NewCommand returns a new scan command instance.
func NewCommand() *cobra.Command {
	opts := &scanOptions{
		anchor: depgraph.DefaultAnchor,
		format: formatters.OutputFormatText.String(),
	}

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan an include tree for circular dependencies",
		Long: `Scan the include tree rooted at an entry-point file and write a report
of every circular #include chain reachable from it.

Inputs left unset are prefilled from the previous run. Use --prompt to
review and edit them interactively before scanning.

Examples:
  recdeps scan -p ~/UnrealEngine -e ~/UnrealEngine/Engine/Source/Runtime/Core/Public/Math.h -o cycles.txt
  recdeps scan --prompt
  recdeps scan -f dot -o cycles.dot`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.projectRoot, "project", "p", "", "Project root containing the build descriptor")
	cmd.Flags().StringVarP(&opts.entryPoint, "entry", "e", "", "Absolute path of the entry-point file")
	cmd.Flags().StringVarP(&opts.outputFile, "output", "o", "", "Path the report is written to")
	cmd.Flags().StringVar(&opts.anchor, "anchor", opts.anchor, "Root namespace segment module names are derived from")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format,
		fmt.Sprintf("Report format (%s, %s, %s)", formatters.OutputFormatText, formatters.OutputFormatJSON, formatters.OutputFormatDOT))
	cmd.Flags().BoolVarP(&opts.clipboard, "clipboard", "b", false, "Automatically copy the report to clipboard")
	cmd.Flags().BoolVarP(&opts.prompt, "prompt", "i", false, "Edit the input paths interactively before scanning")

	return cmd
}

func runScan(cmd *cobra.Command, opts *scanOptions) error {
	prefillFromHistory(opts)

	if opts.prompt {
		if err := promptForPaths(opts); err != nil {
			return err
		}
	}

	if err := checkRequiredInputs(opts); err != nil {
		return err
	}

	entryPoint, err := filepath.Abs(opts.entryPoint)
	if err != nil {
		return fmt.Errorf("failed to resolve entry point: %w", err)
	}

	index, err := depgraph.BuildModuleIndex(opts.projectRoot, opts.anchor)
	if err != nil {
		return err
	}

	engine := depgraph.NewEngine(index, log.Default())
	report, err := engine.Run(entryPoint)
	if err != nil {
		return err
	}

	formatter, err := formatters.NewFormatter(opts.format)
	if err != nil {
		return err
	}

	output, err := formatter.Format(report)
	if err != nil {
		return fmt.Errorf("failed to format report: %w", err)
	}

	if err := os.WriteFile(opts.outputFile, []byte(output), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	log.Info("scan complete",
		"files", len(engine.Catalog().Records()),
		"cycles", report.Len(),
		"report", opts.outputFile)

	saveHistory(opts, entryPoint)

	if opts.clipboard {
		if err := clipboard.WriteAll(output); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Report copied to your clipboard.")
	}

	return nil
}

// prefillFromHistory fills any unset input from the previous run's saved
// paths. History problems never block a scan.
func prefillFromHistory(opts *scanOptions) {
	entry, ok, err := history.Load(history.DefaultPath)
	if err != nil {
		log.Warn("ignoring unreadable history file", "err", err)
		return
	}
	if !ok {
		return
	}

	if opts.projectRoot == "" {
		opts.projectRoot = entry.ProjectRoot
	}
	if opts.entryPoint == "" {
		opts.entryPoint = entry.EntryPoint
	}
	if opts.outputFile == "" {
		opts.outputFile = entry.OutputFile
	}
}

func saveHistory(opts *scanOptions, entryPoint string) {
	err := history.Save(history.DefaultPath, history.Entry{
		ProjectRoot: opts.projectRoot,
		EntryPoint:  entryPoint,
		OutputFile:  opts.outputFile,
	})
	if err != nil {
		log.Warn("failed to save history file", "err", err)
	}
}

// checkRequiredInputs fails with a message naming every input still unset.
func checkRequiredInputs(opts *scanOptions) error {
	var missing []string
	for i, value := range [3]string{opts.projectRoot, opts.entryPoint, opts.outputFile} {
		if value == "" {
			missing = append(missing, inputLabels[i])
		}
	}

	switch len(missing) {
	case 0:
		return nil
	case 1:
		return fmt.Errorf("%s was not set", missing[0])
	default:
		return fmt.Errorf("%s were not set", strings.Join(missing, " & "))
	}
}
