package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wbrown/picturelab"
)

func newCompositeCommand(gf *globalFlags) *cobra.Command {
	var (
		bgPath, fgPath, out string
		row, col            int
		scale               float64
		key                 string
		bias                int
		tolerance           float64
	)
	cmd := &cobra.Command{
		Use:   "composite --bg background.jpg --fg foreground.jpg --out out.png",
		Short: "Color-key a foreground onto a background",
		Long: `Draw the foreground onto the background at --row, --col, scaled by
--scale, leaving out pixels that match the key:

  green    green screen, keyed when red+blue-bias <= green
  blue     blue screen, keyed when red+green-bias <= blue
  #rrggbb  any color within --tolerance (Euclidean RGB distance)
  none     copy every pixel`,
		RunE: func(cmd *cobra.Command, args []string) error {
			isKey, err := keyPredicate(key, bias, tolerance)
			if err != nil {
				return err
			}
			bg, err := picturelab.Load(bgPath)
			if err != nil {
				return err
			}
			fg, err := picturelab.Load(fgPath)
			if err != nil {
				return err
			}
			if err := picturelab.ColorKeyComposite(bg, fg, row, col, scale, isKey); err != nil {
				return err
			}
			if err := picturelab.Save(bg, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&bgPath, "bg", "", "Background image (required)")
	cmd.Flags().StringVar(&fgPath, "fg", "", "Foreground image (required)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Path to save the composite (required)")
	cmd.Flags().IntVar(&row, "row", 0, "Background row of the foreground's top edge")
	cmd.Flags().IntVar(&col, "col", 0, "Background column of the foreground's left edge")
	cmd.Flags().Float64Var(&scale, "scale", 1, "Foreground scale factor")
	cmd.Flags().StringVar(&key, "key", "green", "Key: green, blue, none or #rrggbb")
	cmd.Flags().IntVar(&bias, "bias", 0, "Bias for the green and blue screen keys")
	cmd.Flags().Float64Var(&tolerance, "tolerance", 60, "Distance tolerance for a #rrggbb key")
	_ = cmd.MarkFlagRequired("bg")
	_ = cmd.MarkFlagRequired("fg")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

// keyPredicate resolves the --key flag.
func keyPredicate(key string, bias int, tolerance float64) (picturelab.KeyPredicate, error) {
	switch strings.ToLower(key) {
	case "green":
		return picturelab.GreenScreen(bias), nil
	case "blue":
		return picturelab.BlueScreen(bias), nil
	case "none", "":
		return nil, nil
	}
	c, err := picturelab.Params{"key": key}.Color("key", picturelab.Black)
	if err != nil {
		return nil, err
	}
	return picturelab.KeyColor(c, tolerance, picturelab.EuclideanMethod{}), nil
}
