package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/soocke/posture-watch-go/config"
	"github.com/soocke/posture-watch-go/domain/camera"
	"github.com/soocke/posture-watch-go/domain/posture"
	"github.com/soocke/posture-watch-go/domain/vision"
	"github.com/soocke/posture-watch-go/tone"
	"github.com/soocke/posture-watch-go/ui/model"
	"github.com/soocke/posture-watch-go/ui/view"
)

// Container assembles the camera, detector, decision engine, models and
// views. Construction failures (missing model file, unavailable camera,
// audio backend init) are setup errors and abort startup.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	Webcam   *camera.Webcam
	Cascade  *vision.Cascade
	Detector *vision.Detector
	Monitor  *posture.Monitor
	FSM      *posture.FSM

	Alert    *model.AlertModel
	Exposure *model.ExposureModel
	RootView *view.RootView
	Overlay  view.Overlay

	Player *tone.Player
}

// BuildContainer constructs all components. Side effects: loads the model
// file, opens the camera stream and initializes the audio backend.
func BuildContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: logger}

	params := vision.Params{
		MinFaceSize:    cfg.MinFaceSize,
		ScoreThreshold: cfg.ScoreThreshold,
		PyramidScale:   cfg.PyramidScale,
		WindowStepX:    cfg.WindowStepX,
		WindowStepY:    cfg.WindowStepY,
	}
	cascade, err := vision.LoadCascade(cfg.ModelPath, params)
	if err != nil {
		return nil, fmt.Errorf("create face detector: %w", err)
	}
	c.Cascade = cascade
	c.Detector = vision.NewDetector(cascade, params)

	c.Webcam = camera.NewWebcam(camera.NewDeviceDriver(cfg.CameraIndex), camera.Continuous, logger)
	if err := c.Webcam.Open(); err != nil {
		return nil, fmt.Errorf("open camera %d: %w", cfg.CameraIndex, err)
	}

	prompter := posture.NewConsolePrompter(os.Stdout, os.Stdin)
	c.Monitor = posture.NewMonitor(c.Webcam, c.Detector, prompter, logger)
	c.FSM = posture.NewFSM(logger)

	c.Alert = &model.AlertModel{}
	c.Exposure = model.NewExposureModel()
	c.RootView = view.NewRootView(cfg.PreviewMaxW, cfg.PreviewMaxH, logger)
	c.Overlay = view.NewOverlay("", logger)

	if cfg.ToneEnabled {
		player, err := tone.NewPlayer(logger)
		if err != nil {
			return nil, fmt.Errorf("init audio backend: %w", err)
		}
		c.Player = player
	}
	return c, nil
}

// Close releases container-owned resources.
func (c *Container) Close() {
	if c == nil {
		return
	}
	if c.FSM != nil {
		c.FSM.Close()
	}
	if c.Webcam != nil {
		if err := c.Webcam.Close(); err != nil && c.Logger != nil {
			c.Logger.Error("close camera", "error", err)
		}
	}
	if c.Cascade != nil {
		if err := c.Cascade.Close(); err != nil && c.Logger != nil {
			c.Logger.Error("close detector", "error", err)
		}
	}
	if c.Player != nil {
		if err := c.Player.Close(); err != nil && c.Logger != nil {
			c.Logger.Error("close audio backend", "error", err)
		}
	}
}
