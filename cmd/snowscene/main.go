package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/akmonengine/snowscene/config"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	width := flag.Int("width", 0, "window width, overrides the configuration")
	height := flag.Int("height", 0, "window height, overrides the configuration")
	verbose := flag.Bool("v", false, "log every scene event")
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
	cfg = cfg.Resolve(config.Flags{Width: *width, Height: *height})

	scene, err := cfg.NewScene()
	if err != nil {
		logger.Error("building scene", "err", err)
		os.Exit(1)
	}
	logEvents(logger, scene)

	v := newViewer(scene, cfg.NewRasterizer(1))

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetTPS(60)
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	logger.Info("starting viewer",
		"width", cfg.Window.Width,
		"height", cfg.Window.Height,
		"mode", scene.Mode,
		"workers", cfg.Render.Workers,
	)
	if err := ebiten.RunGame(v); err != nil {
		logger.Error("running viewer", "err", err)
		os.Exit(1)
	}
	logger.Info("viewer closed", "frames", v.frames)
}
