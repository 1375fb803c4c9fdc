// Command picturelab applies picturelab filters to image files, composites
// chroma-keyed images, builds contact sheets and shows grids in the
// terminal.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/wbrown/picturelab"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	workers int
	verbose bool
}

func newRootCommand() *cobra.Command {
	gf := &globalFlags{}
	root := &cobra.Command{
		Use:           "picturelab",
		Short:         "Apply classic picture lab transforms to images",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().IntVarP(&gf.workers, "workers", "w", 1,
		"Number of goroutines for row-parallel filters")
	root.PersistentFlags().BoolVarP(&gf.verbose, "verbose", "v", false,
		"Log each filter step to stderr")

	root.AddCommand(
		newApplyCommand(gf),
		newViewCommand(gf),
		newSheetCommand(gf),
		newCompositeCommand(gf),
		newFiltersCommand(),
	)
	return root
}

// logger logs to stderr, at debug level with --verbose.
func (gf *globalFlags) logger() *slog.Logger {
	level := slog.LevelWarn
	if gf.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// options turns the global flags into library options.
func (gf *globalFlags) options() []picturelab.Option {
	return []picturelab.Option{
		picturelab.WithWorkers(gf.workers),
		picturelab.WithLogger(gf.logger()),
	}
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
