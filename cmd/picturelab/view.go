package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wbrown/picturelab"
	"github.com/wbrown/picturelab/view"
)

func newViewCommand(gf *globalFlags) *cobra.Command {
	var (
		interactive bool
		width       int
	)
	cmd := &cobra.Command{
		Use:   "view image [filter...]",
		Short: "Show an image in the terminal",
		Long: `Show an image in the terminal, optionally after running filters.

By default the image is printed as truecolor half blocks scaled to --width
columns. With --interactive it opens a full-screen explorer that pans with
the arrow keys or hjkl and quits with q.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := picturelab.ParsePipeline(args[1:], gf.options()...)
			if err != nil {
				return err
			}
			g, err := picturelab.Load(args[0])
			if err != nil {
				return err
			}
			if g, err = p.Run(g); err != nil {
				return err
			}

			if interactive {
				return view.Explore(g, filepath.Base(args[0]))
			}
			return view.WriteANSI(cmd.OutOrStdout(), g, width)
		},
	}
	cmd.Flags().BoolVarP(&interactive, "interactive", "I", false, "Open the interactive explorer")
	cmd.Flags().IntVar(&width, "width", 80, "Maximum width in columns of the ANSI output, 0 for none")
	return cmd
}
