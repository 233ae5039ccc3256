package main

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/spritetools/squarepad/batch"
)

// targetSize is the output side length applied to every image.
const targetSize = 512

// assetDir is the ball sprite directory, relative to the executable.
var assetDir = filepath.Join("src", "assets", "images", "balls")

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})

	exe, err := os.Executable()
	if err != nil {
		logger.Error("resolving executable path", "err", err)
		os.Exit(1)
	}
	root := filepath.Join(filepath.Dir(exe), assetDir)

	report, err := batch.Run(logger, root, targetSize)
	if err != nil {
		logger.Error("run failed", "err", err)
		os.Exit(1)
	}
	if report.Failed > 0 {
		os.Exit(1)
	}
}
