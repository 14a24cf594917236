package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/posture-watch-go/config"
	"github.com/soocke/posture-watch-go/domain/posture"
	"github.com/soocke/posture-watch-go/ui/presenter"
)

const tick = 100 * time.Millisecond

// app owns the Tk event loop and the sampling lifecycle around it.
type app struct {
	c       *Container
	cfg     *config.Config
	logger  *slog.Logger
	sampler *posture.Sampler
	loop    *presenter.Loop
	afterID string
}

// NewApp creates the application window shell around a built container.
func NewApp(title string, width, height int, c *Container) *app {
	a := &app{c: c, cfg: c.Config, logger: c.Logger}
	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))
	return a
}

// Run performs interactive calibration on the console, then starts the
// sampling goroutine and enters the Tk event loop. It returns after the
// operator closes the window, with the sampler stopped.
func (a *app) Run(ctx context.Context) error {
	checker, err := a.c.Monitor.Calibrate(ctx)
	if err != nil {
		return fmt.Errorf("calibration: %w", err)
	}

	// Listen before the calibrated event so the watching transition reaches
	// the status label.
	statePresenter := presenter.NewStatePresenter(a.c.RootView)
	a.c.FSM.AddListener(func(prev, next posture.State) { statePresenter.OnState(next) })
	a.c.FSM.EventCalibrated()

	interval := time.Duration(a.cfg.SampleIntervalMS) * time.Millisecond
	a.sampler = posture.NewSampler(checker, interval, a.onResult, a.logger)

	a.c.RootView.Build(a.exitHandler)
	a.loop = presenter.NewLoop(
		statePresenter,
		presenter.NewAlertPresenter(a.c.Alert, a.c.Overlay, a.beep()),
		presenter.NewExposurePresenter(a.c.Exposure, a.c.Alert, a.c.RootView),
		presenter.NewPreviewPresenter(a.c.Webcam, a.c.RootView),
		a.scheduleUpdate,
	)

	a.scheduleUpdate()
	a.sampler.Start()
	App.Wait()

	a.sampler.Stop()
	a.c.FSM.EventHalt()
	return nil
}

// onResult runs on the sampling goroutine: publish the outcome to the shared
// alert flag and the state machine. Presentation happens on the next UI tick.
func (a *app) onResult(res posture.Result) {
	a.c.Alert.Set(res.TooClose)
	a.c.FSM.EventSample(res.TooClose)
	if res.TooClose && a.logger != nil {
		a.logger.Info("too close", "sequence", res.Sequence)
	}
}

// beep returns the alert-tone trigger, or nil when the tone is disabled.
func (a *app) beep() func() {
	if a.c.Player == nil {
		return nil
	}
	freq := a.cfg.ToneHz
	dur := time.Duration(a.cfg.ToneMS) * time.Millisecond
	return func() {
		go a.c.Player.Play(freq, dur)
	}
}

func (a *app) scheduleUpdate() {
	// Schedule the next update using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(tick, func() { a.loop.Tick() })
}

func (a *app) exitHandler() {
	// Cancel scheduled after event if any.
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	if a.sampler != nil {
		a.sampler.Stop()
	}
	Destroy(App)
}
