package watch

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/uedeps/recdeps/cmd/scan/formatters"
	"github.com/uedeps/recdeps/depgraph"
)

type watchOptions struct {
	projectRoot string
	entryPoint  string
	outputFile  string
	anchor      string
	format      string
}

// Cmd represents the watch command.
var Cmd = NewCommand()

// NewCommand returns a new watch command instance.
func NewCommand() *cobra.Command {
	opts := &watchOptions{
		anchor: depgraph.DefaultAnchor,
		format: formatters.OutputFormatText.String(),
	}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-scan for include cycles whenever watched files change",
		Long: `Scan the include tree once, then watch every directory the scan touched
and rewrite the report whenever a relevant file changes. Exit with Ctrl-C.

Examples:
  recdeps watch -p ~/UnrealEngine -e ~/UnrealEngine/Engine/Source/Runtime/Core/Public/Math.h -o cycles.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.projectRoot, "project", "p", "", "Project root containing the build descriptor")
	cmd.Flags().StringVarP(&opts.entryPoint, "entry", "e", "", "Absolute path of the entry-point file")
	cmd.Flags().StringVarP(&opts.outputFile, "output", "o", "", "Path the report is written to")
	cmd.Flags().StringVar(&opts.anchor, "anchor", opts.anchor, "Root namespace segment module names are derived from")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "Report format (text, json, dot)")

	return cmd
}

func runWatch(opts *watchOptions) error {
	if opts.projectRoot == "" || opts.entryPoint == "" || opts.outputFile == "" {
		return fmt.Errorf("watch requires --project, --entry and --output")
	}

	entryPoint, err := filepath.Abs(opts.entryPoint)
	if err != nil {
		return fmt.Errorf("failed to resolve entry point: %w", err)
	}
	opts.entryPoint = entryPoint

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	watchDirs, err := rescan(opts)
	if err != nil {
		return err
	}

	return watchAndRescan(ctx, watchDirs, opts)
}

// rescan runs one full scan, rewrites the report, and returns the
// directories the next watch round should cover: the project root (for the
// build descriptor) plus the parent directory of every file the scan parsed.
func rescan(opts *watchOptions) ([]string, error) {
	index, err := depgraph.BuildModuleIndex(opts.projectRoot, opts.anchor)
	if err != nil {
		return nil, err
	}

	engine := depgraph.NewEngine(index, log.Default())
	report, err := engine.Run(opts.entryPoint)
	if err != nil {
		return nil, err
	}

	formatter, err := formatters.NewFormatter(opts.format)
	if err != nil {
		return nil, err
	}

	output, err := formatter.Format(report)
	if err != nil {
		return nil, fmt.Errorf("failed to format report: %w", err)
	}

	if err := os.WriteFile(opts.outputFile, []byte(output), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}

	log.Info("report rewritten",
		"files", len(engine.Catalog().Records()),
		"cycles", report.Len(),
		"report", opts.outputFile)

	dirs := map[string]bool{opts.projectRoot: true}
	for _, record := range engine.Catalog().Records() {
		dirs[filepath.Dir(record.AbsPath)] = true
	}

	watchDirs := make([]string, 0, len(dirs))
	for dir := range dirs {
		watchDirs = append(watchDirs, dir)
	}
	return watchDirs, nil
}
