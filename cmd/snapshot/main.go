package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/akmonengine/snowscene/config"
	"github.com/akmonengine/snowscene/export"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	out := flag.String("out", "", "image output path (default snapshot.<ext> of the resolved format)")
	writeImage := flag.Bool("image", true, "write the image; -image=false with -pcd writes the point cloud only")
	format := flag.String("format", "", "image format: webp, tga or png (default from -out, then configuration)")
	pcdPath := flag.String("pcd", "", "also write the frame vertices as a PCD point cloud")
	mode := flag.String("mode", "", "figure render mode: points, lines or triangles")
	placement := flag.String("figure", "", "figure placement as x,z,scale")
	size := flag.String("size", "", "output size as WIDTHxHEIGHT")
	supersample := flag.Int("supersample", 0, "render at this multiple of the output size, then downsample")
	focus := flag.Bool("focus", false, "aim the camera at the figure")
	printConfig := flag.Bool("print-config", false, "print the resolved configuration and exit")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			logger.Error("loading configuration", "err", err)
			os.Exit(1)
		}
	}

	flags := config.Flags{Mode: *mode, Format: *format, Supersample: *supersample}
	if flags.Format == "" && *out != "" {
		if f, err := export.FormatFromPath(*out); err == nil {
			flags.Format = f.String()
		}
	}
	if *size != "" {
		w, h, err := config.ParseSize(*size)
		if err != nil {
			logger.Error("parsing -size", "err", err)
			os.Exit(1)
		}
		flags.Width, flags.Height = w, h
	}
	if *placement != "" {
		p, err := config.ParsePlacement(*placement)
		if err != nil {
			logger.Error("parsing -figure", "err", err)
			os.Exit(1)
		}
		flags.Figure = &p
	}
	cfg = cfg.Resolve(flags)

	imagePath, err := imageOutput(*out, *writeImage, cfg.Render.Format)
	if err != nil {
		logger.Error("resolving the image path", "err", err)
		os.Exit(1)
	}

	if *printConfig {
		data, err := cfg.Marshal()
		if err != nil {
			logger.Error("printing configuration", "err", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
		return
	}

	if err := snapshot(logger, cfg, imagePath, *pcdPath, *focus); err != nil {
		logger.Error("snapshot failed", "err", err)
		os.Exit(1)
	}
}
