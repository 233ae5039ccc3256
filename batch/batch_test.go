package batch

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestPNG writes a solid opaque w×h PNG into dir under name.
func writeTestPNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 128, G: 64, B: 32, A: 255})
		}
	}
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestRunMissingDirectory(t *testing.T) {
	report, err := Run(quietLogger(), filepath.Join(t.TempDir(), "absent"), 64)
	require.NoError(t, err, "a missing directory is not a run failure")
	assert.Zero(t, report.Found, "no files should be discovered")
	assert.Zero(t, report.Processed, "no files should be written")
	assert.Zero(t, report.Failed, "nothing should be counted as failed")
}

func TestRunNoImagesFound(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	report, err := Run(quietLogger(), dir, 64)
	require.NoError(t, err, "an empty match set is not a run failure")
	assert.Equal(t, &Report{}, report, "the report should be empty")
}

func TestRunProcessesAllFiles(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeTestPNG(t, dir, "a.png", 100, 60),
		writeTestPNG(t, dir, "nested/b.png", 30, 90),
		writeTestPNG(t, dir, "nested/deep/c.png", 64, 64),
	}

	report, err := Run(quietLogger(), dir, 64)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Found, "all nested PNGs should be discovered")
	assert.Equal(t, 3, report.Processed, "every file should be processed")
	assert.Zero(t, report.Failed)

	for _, path := range paths {
		data, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		img, decodeErr := png.Decode(bytes.NewReader(data))
		require.NoError(t, decodeErr, "output at %s should be a valid PNG", path)
		assert.Equal(t, 64, img.Bounds().Dx(), "output width at %s", path)
		assert.Equal(t, 64, img.Bounds().Dy(), "output height at %s", path)
	}
}

func TestRunSurvivesCorruptFile(t *testing.T) {
	dir := t.TempDir()
	good1 := writeTestPNG(t, dir, "1-good.png", 80, 40)
	corrupt := filepath.Join(dir, "2-corrupt.png")
	require.NoError(t, os.WriteFile(corrupt, []byte("not a png"), 0o644))
	good2 := writeTestPNG(t, dir, "3-good.png", 40, 80)

	report, err := Run(quietLogger(), dir, 64)
	require.NoError(t, err, "a corrupt file must not abort the batch")
	assert.Equal(t, 3, report.Found)
	assert.Equal(t, 2, report.Processed, "the two valid files should be processed")
	assert.Equal(t, 1, report.Failed, "the corrupt file should be counted as failed")

	for _, path := range []string{good1, good2} {
		data, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		img, decodeErr := png.Decode(bytes.NewReader(data))
		require.NoError(t, decodeErr)
		assert.Equal(t, 64, img.Bounds().Dx(), "valid neighbors of a corrupt file should still be normalized")
	}

	data, readErr := os.ReadFile(corrupt)
	require.NoError(t, readErr)
	assert.Equal(t, []byte("not a png"), data, "the corrupt file should be left untouched")
}
