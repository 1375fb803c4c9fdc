package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wbrown/picturelab"
)

func saveGrid(t *testing.T, dir, name string, height, width int, c picturelab.RGB) string {
	t.Helper()
	g, err := picturelab.NewGrid(height, width)
	require.NoError(t, err)
	g.Fill(c)
	path := filepath.Join(dir, name)
	require.NoError(t, picturelab.Save(g, path))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestApplyCommand(t *testing.T) {
	dir := t.TempDir()
	in := saveGrid(t, dir, "in.png", 4, 6, picturelab.RGB{R: 255})
	out := filepath.Join(dir, "out.png")

	_, err := run(t, "apply", "--in", in, "--out", out, "--workers", "2", "negate", "blur:size=3")
	require.NoError(t, err)

	g, err := picturelab.Load(out)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Height())
	assert.Equal(t, 6, g.Width())
	assert.Equal(t, picturelab.RGB{G: 255, B: 255}, g.At(2, 3))
}

func TestApplyCommandUnknownFilter(t *testing.T) {
	dir := t.TempDir()
	in := saveGrid(t, dir, "in.png", 2, 2, picturelab.Black)

	_, err := run(t, "apply", "--in", in, "--out", filepath.Join(dir, "out.png"), "sparkle")
	assert.ErrorIs(t, err, picturelab.ErrUnknownFilter)
}

func TestApplyCommandRequiresFlags(t *testing.T) {
	_, err := run(t, "apply", "negate")
	assert.Error(t, err)
}

func TestFiltersCommand(t *testing.T) {
	out, err := run(t, "filters")
	require.NoError(t, err)
	assert.Contains(t, out, "blur")
	assert.Contains(t, out, "stairstep")
	assert.Contains(t, out, "shift,steps")
}

func TestCompositeCommand(t *testing.T) {
	dir := t.TempDir()
	bg := saveGrid(t, dir, "bg.png", 4, 4, picturelab.Black)

	fgGrid, err := picturelab.NewGrid(2, 2)
	require.NoError(t, err)
	fgGrid.Fill(picturelab.RGB{G: 255})
	require.NoError(t, fgGrid.Set(1, 1, picturelab.RGB{R: 200}))
	fg := filepath.Join(dir, "fg.png")
	require.NoError(t, picturelab.Save(fgGrid, fg))

	out := filepath.Join(dir, "out.png")
	_, err = run(t, "composite", "--bg", bg, "--fg", fg, "--out", out, "--row", "1", "--col", "1")
	require.NoError(t, err)

	g, err := picturelab.Load(out)
	require.NoError(t, err)
	assert.Equal(t, picturelab.RGB{R: 200}, g.At(2, 2))
	assert.Equal(t, picturelab.Black, g.At(1, 1), "green pixels are keyed out")
}

func TestKeyPredicate(t *testing.T) {
	isKey, err := keyPredicate("none", 0, 0)
	require.NoError(t, err)
	assert.Nil(t, isKey)

	isKey, err = keyPredicate("#ff00ff", 0, 10)
	require.NoError(t, err)
	assert.True(t, isKey(picturelab.RGB{R: 250, B: 250}))
	assert.False(t, isKey(picturelab.RGB{G: 255}))

	_, err = keyPredicate("purple", 0, 10)
	assert.ErrorIs(t, err, picturelab.ErrInvalidParameter)
}

func TestSheetCommand(t *testing.T) {
	dir := t.TempDir()
	in := saveGrid(t, dir, "in.png", 20, 30, picturelab.RGB{R: 40, G: 120, B: 200})
	out := filepath.Join(dir, "sheet.png")

	_, err := run(t, "sheet", "--in", in, "--out", out, "--cell", "32", "--columns", "3",
		"grayscale", "wavy:amplitude=3")
	require.NoError(t, err)

	// original, grayscale and wavy fill one row of three cells.
	sheet, err := picturelab.Load(out)
	require.NoError(t, err)
	assert.Equal(t, 3*(32+8)+8, sheet.Width())

	_, err = os.Stat(out)
	assert.NoError(t, err)
}

func TestDefaultSheetFilters(t *testing.T) {
	names := defaultSheetFilters(nil)
	assert.Contains(t, names, "negate")
	assert.NotContains(t, names, "scale", "scale needs a size")
}
