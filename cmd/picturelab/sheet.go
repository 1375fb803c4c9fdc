package main

import (
	"fmt"
	"log/slog"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/wbrown/picturelab"
	"github.com/wbrown/picturelab/imageutil"
)

func newSheetCommand(gf *globalFlags) *cobra.Command {
	var (
		in, out  string
		cellSize int
		columns  int
	)
	cmd := &cobra.Command{
		Use:   "sheet --in input.jpg --out sheet.png [filter...]",
		Short: "Build a labelled contact sheet of filter results",
		Long: `Apply each filter separately to the input and lay the results out on
a contact sheet next to the original. Without filters every registered
filter is shown with its default options.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := gf.options()
			if len(args) == 0 {
				args = defaultSheetFilters(opts)
			}
			g, err := picturelab.Load(in)
			if err != nil {
				return err
			}

			s := startSpinner(fmt.Sprintf("Rendering %d filters...", len(args)))
			entries, err := sheetEntries(g, args, opts, gf.logger())
			s.stop()
			if err != nil {
				return err
			}

			sheet, err := imageutil.ContactSheet(entries, cellSize, columns)
			if err != nil {
				return err
			}
			if err := imageutil.SaveImage(sheet, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %d cells as %s\n", len(entries), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "", "Path to the input image file (required)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Path to save the contact sheet (required)")
	cmd.Flags().IntVar(&cellSize, "cell", 200, "Size in pixels of each square cell")
	cmd.Flags().IntVar(&columns, "columns", 4, "Number of cells per row")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

// sheetEntries runs every filter spec on its own copy of g. Specs that fail
// on this input are reported and left out.
func sheetEntries(g *picturelab.Grid, specs []string, opts []picturelab.Option, logger *slog.Logger) ([]imageutil.SheetEntry, error) {
	entries := []imageutil.SheetEntry{{Label: "original", Image: g.Image()}}
	for _, spec := range specs {
		f, err := picturelab.ParseFilter(spec, opts...)
		if err != nil {
			return nil, err
		}
		result, err := picturelab.NewPipeline([]picturelab.Filter{f}, opts...).Run(g)
		if err != nil {
			logger.Warn("skipping filter", "filter", f.Name(), "err", err)
			continue
		}
		entries = append(entries, imageutil.SheetEntry{Label: f.Name(), Image: result.Image()})
	}
	return entries, nil
}

// defaultSheetFilters returns every registered filter that can be built
// without options.
func defaultSheetFilters(opts []picturelab.Option) []string {
	return lo.Filter(picturelab.FilterNames(), func(name string, _ int) bool {
		_, err := picturelab.ParseFilter(name, opts...)
		return err == nil
	})
}
