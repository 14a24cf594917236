package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/soocke/posture-watch-go/app"
	"github.com/soocke/posture-watch-go/config"
	"github.com/soocke/posture-watch-go/debug"
)

func main() {
	cfgPath := flag.String("config", "posture-watch.json", "path to JSON config file")
	cameraIndex := flag.Int("camera", -1, "camera device index (overrides config)")
	modelPath := flag.String("model", "", "path to the face detection model file (overrides config)")
	debugFlag := flag.Bool("debug", false, "enable debug logging and runtime stats")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		// Fall back to defaults but tell the operator their file is broken.
		NewLogger(slog.LevelInfo).Error("load config", "path", *cfgPath, "error", err)
	}
	if *cameraIndex >= 0 {
		cfg.CameraIndex = *cameraIndex
	}
	if *modelPath != "" {
		cfg.ModelPath = *modelPath
	}
	if *debugFlag {
		cfg.Debug = true
	}
	_ = cfg.Validate()

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)

	if cfg.Debug {
		debug.StartStatsLogger(5*time.Second, logger)
	}

	c, err := app.BuildContainer(cfg, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}
	defer c.Close()

	application := app.NewApp("Posture Watch", 420, 360, c)
	if err := application.Run(context.Background()); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}
