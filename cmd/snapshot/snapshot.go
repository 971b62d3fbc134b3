package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/akmonengine/snowscene/config"
	"github.com/akmonengine/snowscene/export"
)

// snapshot renders one frame of the configured scene to imagePath and, when
// pcdPath is set, writes its vertices as a point cloud.
func snapshot(logger *slog.Logger, cfg config.Config, imagePath, pcdPath string, focus bool) error {
	scene, err := cfg.NewScene()
	if err != nil {
		return err
	}

	bounds := scene.Figure.Bounds()
	if focus {
		scene.Camera.Aim(bounds.Center())
	}
	if bounds.ContainsPoint(scene.Camera.Position) {
		logger.Warn("camera is inside the figure", "position", scene.Camera.Position)
	}

	frame := scene.Frame()
	logger.Debug("frame built", "draws", len(frame.Draws), "mode", scene.Mode)

	if imagePath != "" {
		start := time.Now()
		r := cfg.NewRasterizer(cfg.Render.Supersample)
		frame.Render(r)
		r.Flush()
		img := export.Downsample(r.Image(), cfg.Window.Width, cfg.Window.Height)

		format, err := export.ParseFormat(cfg.Render.Format)
		if err != nil {
			return err
		}
		if err := writeFile(imagePath, func(f *os.File) error {
			return export.Encode(f, img, format)
		}); err != nil {
			return err
		}
		logger.Info("image written",
			"path", imagePath,
			"format", format,
			"size", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height),
			"supersample", cfg.Render.Supersample,
			"elapsed", time.Since(start),
		)
	}

	if pcdPath != "" {
		if err := writeFile(pcdPath, func(f *os.File) error {
			return export.WritePCD(f, frame)
		}); err != nil {
			return err
		}
		logger.Info("point cloud written", "path", pcdPath)
	}

	return nil
}

// imageOutput returns the image path to write, empty when no image is wanted.
// Without an explicit path the name follows the resolved format.
func imageOutput(out string, write bool, format string) (string, error) {
	if !write {
		return "", nil
	}
	if out != "" {
		return out, nil
	}
	f, err := export.ParseFormat(format)
	if err != nil {
		return "", err
	}
	return "snapshot" + f.Extension(), nil
}

func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("snapshot: close %s: %w", path, err)
	}
	return nil
}
