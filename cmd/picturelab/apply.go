package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wbrown/picturelab"
)

func newApplyCommand(gf *globalFlags) *cobra.Command {
	var in, out string
	cmd := &cobra.Command{
		Use:   "apply --in input.jpg --out output.png [filter...]",
		Short: "Run a chain of filters over an image",
		Long: `Run a chain of filters over an image and save the result.

Filters are given as name[:key=value,...], for example

  picturelab apply --in beach.jpg --out beach.png grayscale blur:size=5

Use "picturelab filters" to list them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := gf.options()
			p, err := picturelab.ParsePipeline(args, opts...)
			if err != nil {
				return err
			}
			g, err := picturelab.Load(in)
			if err != nil {
				return err
			}

			s := startSpinner(fmt.Sprintf("Applying %d filters...", p.Len()))
			start := time.Now()
			result, err := p.Run(g)
			s.stop()
			if err != nil {
				return err
			}

			if err := picturelab.Save(result, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Processed %s in %.2fs, saved as %s\n",
				result, time.Since(start).Seconds(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "", "Path to the input image file (required)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Path to save the output, format by extension (required)")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
