// Package batch drives the sequential normalization run over a directory
// tree of PNG assets.
package batch

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/spritetools/squarepad/images"
	"github.com/spritetools/squarepad/util"
)

// Report summarizes a completed run.
type Report struct {
	// Found is the number of matching files discovered.
	Found int
	// Processed is the number of files successfully overwritten.
	Processed int
	// Failed is the number of files that errored and were skipped.
	Failed int
}

// Run normalizes every PNG under root to targetSize×targetSize, overwriting
// files in place. A file that fails to process is logged and skipped; the
// batch never aborts early. A missing root directory or an empty match set
// is reported and treated as a clean, empty run, not an error.
//
// Arguments:
// - logger: Destination for progress and error lines.
// - root: Directory tree to search for PNG files.
// - targetSize: Output side length in pixels.
//
// Returns:
// - *Report: Counters for the run; Failed > 0 signals partial failure.
// - error: An error only if enumerating the tree itself fails.
func Run(logger *log.Logger, root string, targetSize int) (*Report, error) {
	report := &Report{}

	if _, err := os.Stat(root); os.IsNotExist(err) {
		logger.Warn("directory not found", "path", root)
		return report, nil
	}

	paths, err := util.FindImageFiles(root, images.FormatPNG.Ext())
	if err != nil {
		return report, err
	}
	if len(paths) == 0 {
		logger.Info("no images found", "path", root)
		return report, nil
	}

	report.Found = len(paths)
	logger.Info("found images to process", "count", report.Found)

	for _, path := range paths {
		logger.Info("processing", "path", path)

		result, err := images.Normalize(path, targetSize)
		if err != nil {
			report.Failed++
			logger.Error("processing failed", "path", path, "err", err)
			continue
		}

		report.Processed++
		logger.Info("saved",
			"path", result.Path,
			"original", fmt.Sprintf("%dx%d", result.OriginalWidth, result.OriginalHeight),
			"size", fmt.Sprintf("%dx%d", result.TargetSize, result.TargetSize))
	}

	logger.Info("done", "processed", report.Processed, "failed", report.Failed)
	return report, nil
}
