package modules

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uedeps/recdeps/depgraph"
)

var projectRoot string
var anchor string

// Cmd represents the modules command.
var Cmd = NewCommand()

// NewCommand returns a new modules command instance.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "modules",
		Short: "List the modules derived from a project's build descriptor",
		Long: `List every module derived from the project's build descriptor together
with its include search directories, in resolver fallback order.

Examples:
  recdeps modules -p ~/UnrealEngine`,
		RunE: runModules,
	}

	cmd.Flags().StringVarP(&projectRoot, "project", "p", ".", "Project root containing the build descriptor")
	cmd.Flags().StringVar(&anchor, "anchor", depgraph.DefaultAnchor, "Root namespace segment module names are derived from")

	return cmd
}

func runModules(cmd *cobra.Command, _ []string) error {
	index, err := depgraph.BuildModuleIndex(projectRoot, anchor)
	if err != nil {
		return err
	}

	for _, module := range index.Modules() {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\n", module.Name); err != nil {
			return err
		}
		for _, dir := range module.IncludeDirs {
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "\t%s\n", dir); err != nil {
				return err
			}
		}
	}

	return nil
}
