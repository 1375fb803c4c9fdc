/*
Package picturelab is a small image transform library built around Grid, a
fixed-size, row-major 2D array of RGB samples.

Transforms fall into four groups:

  - per-pixel color filters (ZeroBlue, Negate, Grayscale, FixUnderwater,
    AddWatermark, ...), which mutate a grid in place;
  - neighborhood aggregation (Pixelate, Blur, Enhance), which return a new
    grid;
  - geometric remaps (MirrorVertical, MirrorRegion, SwapLeftRight,
    StairStep, Liquify, Wavy, Rotate);
  - segmentation and compositing (EdgeDetectionHorizontal,
    EdgeDetectionVertical, ColorKeyComposite, Paste, Collage).

Channel values are plain ints. Arithmetic is not clamped, so AddWatermark
can push a channel past 255 and Enhance can push one below zero. The values
are kept as they are until the grid is converted to an 8-bit image, where
each channel is truncated to its low byte. Use RGB.Clamped or
Grid.ClampedImage for saturating output instead.

Basic usage:

	g, err := picturelab.Load("beach.jpg")
	if err != nil {
		return err
	}
	picturelab.Grayscale(g)
	blurred, err := picturelab.Blur(g, 5, picturelab.WithWorkers(4))
	if err != nil {
		return err
	}
	return picturelab.Save(blurred, "beach_blur.png")

Named filters can be chained with a Pipeline:

	p, err := picturelab.ParsePipeline([]string{"negate", "wavy:amplitude=20"})
	if err != nil {
		return err
	}
	out, err := p.Run(g)
*/
package picturelab
