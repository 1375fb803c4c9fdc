package imageutil

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestNewRGBAImage(t *testing.T) {
	img := NewRGBAImage(100, 50)
	if img.Width() != 100 {
		t.Errorf("Expected width 100, got %d", img.Width())
	}
	if img.Height() != 50 {
		t.Errorf("Expected height 50, got %d", img.Height())
	}
}

func TestRGBAImageGetSetRGB(t *testing.T) {
	img := NewRGBAImage(10, 10)
	c := RGB{R: 100, G: 150, B: 200}
	img.SetRGB(5, 5, c)

	if got := img.GetRGB(5, 5); got != c {
		t.Errorf("Expected %v, got %v", c, got)
	}
	if a := img.RGBAAt(5, 5).A; a != 255 {
		t.Errorf("Expected opaque pixel, got alpha %d", a)
	}
}

func TestRGBAImageClone(t *testing.T) {
	img := NewRGBAImage(10, 10)
	img.SetRGB(5, 5, RGB{R: 255, G: 0, B: 0})

	clone := img.Clone()
	if clone.GetRGB(5, 5) != img.GetRGB(5, 5) {
		t.Error("Clone should have same pixel values")
	}

	clone.SetRGB(5, 5, RGB{R: 0, G: 255, B: 0})
	if img.GetRGB(5, 5).G != 0 {
		t.Error("Modifying clone should not affect original")
	}
}

func TestRGBAImageFromImageOffsetBounds(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 20, 14, 23))
	src.SetNRGBA(10, 20, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	src.SetNRGBA(13, 22, color.NRGBA{R: 7, G: 8, B: 9, A: 255})

	img := RGBAImageFromImage(src)
	if img.Width() != 4 || img.Height() != 3 {
		t.Fatalf("Expected 4x3, got %dx%d", img.Width(), img.Height())
	}
	if got := img.GetRGB(0, 0); got != (RGB{1, 2, 3}) {
		t.Errorf("Expected top-left (1,2,3), got %v", got)
	}
	if got := img.GetRGB(3, 2); got != (RGB{7, 8, 9}) {
		t.Errorf("Expected bottom-right (7,8,9), got %v", got)
	}
}

func TestRGBAImageFromImageWrapsRGBA(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 3))
	img := RGBAImageFromImage(src)
	if img.RGBA != src {
		t.Error("Origin-anchored *image.RGBA should be wrapped, not copied")
	}
}

func TestResize(t *testing.T) {
	img := CreateGradientImage(100, 100)

	resized := Resize(img, 50, 50, InterpolationArea)
	if resized.Width() != 50 || resized.Height() != 50 {
		t.Errorf("Expected 50x50, got %dx%d", resized.Width(), resized.Height())
	}

	resized = Resize(img, 200, 200, InterpolationLinear)
	if resized.Width() != 200 || resized.Height() != 200 {
		t.Errorf("Expected 200x200, got %dx%d", resized.Width(), resized.Height())
	}
}

func TestResizeNearestKeepsColors(t *testing.T) {
	img := CreateCheckerboardImage(8, 8, 4)
	resized := Resize(img, 16, 16, InterpolationNearest)

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			c := resized.GetRGB(x, y)
			if c != (RGB{0, 0, 0}) && c != (RGB{255, 255, 255}) {
				t.Fatalf("Nearest neighbor introduced color %v at (%d,%d)", c, x, y)
			}
		}
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		maxW, maxH   int
		wantW, wantH int
	}{
		{"wide", 200, 100, 50, 50, 50, 25},
		{"tall", 100, 400, 50, 50, 12, 50},
		{"square", 30, 30, 60, 60, 60, 60},
		{"sliver", 1000, 1, 10, 10, 10, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fit(NewRGBAImage(tt.w, tt.h), tt.maxW, tt.maxH, InterpolationNearest)
			if got.Width() != tt.wantW || got.Height() != tt.wantH {
				t.Errorf("Expected %dx%d, got %dx%d", tt.wantW, tt.wantH, got.Width(), got.Height())
			}
		})
	}
}

func TestLoadSaveImage(t *testing.T) {
	tmpDir := t.TempDir()
	img := CreateColorBarsImage(64, 64)

	for _, ext := range []string{".png", ".bmp", ".tiff"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(tmpDir, "test"+ext)
			if err := SaveImage(img.RGBA, path); err != nil {
				t.Fatalf("Failed to save %s: %v", ext, err)
			}

			loaded, err := LoadImage(path)
			if err != nil {
				t.Fatalf("Failed to load %s: %v", ext, err)
			}

			if mse := CalculateMSE(img, loaded); mse != 0 {
				t.Errorf("%s should be lossless, MSE=%f", ext, mse)
			}
		})
	}
}

func TestSaveImageJPEGIsClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solid.jpg")
	img := CreateSolidImage(32, 32, RGB{120, 60, 200})
	if err := SaveImage(img.RGBA, path); err != nil {
		t.Fatalf("Failed to save JPEG: %v", err)
	}
	loaded, err := LoadImage(path)
	if err != nil {
		t.Fatalf("Failed to load JPEG: %v", err)
	}
	if d := CalculateMaxDiff(img, loaded); d > 8 {
		t.Errorf("JPEG of a solid image drifted by %d", d)
	}
}

func TestLoadImageErrors(t *testing.T) {
	if _, err := LoadImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadImage(path); err == nil {
		t.Error("Expected error for undecodable file")
	}
}

func TestEncodeImageDefaultsToPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeImage(&buf, CreateSolidImage(2, 2, RGB{1, 2, 3}).RGBA, ".unknown"); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("Expected PNG signature for unknown extension")
	}
}

func TestCalculateMSE(t *testing.T) {
	img1 := NewRGBAImage(10, 10)
	img2 := NewRGBAImage(10, 10)

	if mse := CalculateMSE(img1, img2); mse != 0 {
		t.Errorf("Identical images should have MSE=0, got %f", mse)
	}

	img1 = CreateSolidImage(10, 10, RGB{0, 0, 0})
	img2 = CreateSolidImage(10, 10, RGB{10, 10, 10})
	if mse := CalculateMSE(img1, img2); mse != 100.0 {
		t.Errorf("Expected MSE=100, got %f", mse)
	}
	if d := CalculateMaxDiff(img1, img2); d != 10 {
		t.Errorf("Expected max diff 10, got %d", d)
	}
}

func TestTextMask(t *testing.T) {
	mask, err := TextMask("Hi", 24)
	if err != nil {
		t.Fatalf("TextMask failed: %v", err)
	}
	b := mask.Bounds()
	if b.Dx() < 10 || b.Dy() < 20 {
		t.Errorf("Expected a mask of roughly 24px text, got %v", b)
	}

	covered := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if mask.AlphaAt(x, y).A > 128 {
				covered++
			}
		}
	}
	if covered == 0 {
		t.Error("Expected some glyph coverage")
	}
	if covered == b.Dx()*b.Dy() {
		t.Error("Glyph coverage should not fill the whole mask")
	}
}

func TestContactSheet(t *testing.T) {
	entries := []SheetEntry{
		{Label: "gradient", Image: CreateGradientImage(64, 32).RGBA},
		{Label: "checker", Image: CreateCheckerboardImage(32, 32, 8).RGBA},
		{Label: "bars", Image: CreateColorBarsImage(48, 48).RGBA},
	}
	sheet, err := ContactSheet(entries, 40, 2)
	if err != nil {
		t.Fatalf("ContactSheet failed: %v", err)
	}

	// Two columns, two rows.
	wantW := 2*(40+sheetPadding) + sheetPadding
	wantH := 2*(40+sheetLabelHeight+sheetPadding) + sheetPadding
	if sheet.Bounds().Dx() != wantW || sheet.Bounds().Dy() != wantH {
		t.Errorf("Expected %dx%d sheet, got %v", wantW, wantH, sheet.Bounds())
	}

	if _, err := ContactSheet(nil, 40, 2); err == nil {
		t.Error("Expected error for empty sheet")
	}
	if _, err := ContactSheet(entries, 0, 2); err == nil {
		t.Error("Expected error for zero cell size")
	}
}

// TestSaveTestImages saves test images to testdata directory for visual inspection.
// Run with: SAVE_TEST_IMAGES=1 go test -run TestSaveTestImages -v
func TestSaveTestImages(t *testing.T) {
	if os.Getenv("SAVE_TEST_IMAGES") != "1" {
		t.Skip("Set SAVE_TEST_IMAGES=1 to generate test images")
	}

	testdataDir := "../testdata"
	if err := os.MkdirAll(testdataDir, 0o755); err != nil {
		t.Fatal(err)
	}

	fixtures := map[string]*RGBAImage{
		"gradient.png":     CreateGradientImage(256, 256),
		"checkerboard.png": CreateCheckerboardImage(256, 256, 32),
		"colorbars.png":    CreateColorBarsImage(256, 256),
	}
	for name, img := range fixtures {
		if err := SaveImage(img.RGBA, filepath.Join(testdataDir, name)); err != nil {
			t.Fatal(err)
		}
	}

	t.Log("Test images saved to testdata/")
}
