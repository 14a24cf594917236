package view

import (
	"log/slog"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Overlay is the full-screen blocking surface shown while the user sits too
// close. Show and Hide must run on the Tk event-loop thread.
type Overlay interface {
	Show()
	Hide()
	Visible() bool
}

type blockOverlay struct {
	logger  *slog.Logger
	message string
	win     *ToplevelWidget
}

// NewOverlay creates the overlay manager. The window itself is created on
// Show and destroyed on Hide, so no surface exists while posture is fine.
func NewOverlay(message string, logger *slog.Logger) Overlay {
	if message == "" {
		message = "Too close to the screen. Move back."
	}
	return &blockOverlay{logger: logger, message: message}
}

func (v *blockOverlay) Show() {
	if v.win != nil {
		return
	}
	win := App.Toplevel(Background("#101010"))
	win.WmTitle("")
	WmAttributes(win.Window, "-fullscreen", 1)
	WmAttributes(win.Window, "-topmost", 1)
	lbl := win.Label(Txt(v.message), Background("#101010"), Foreground("#e0e0e0"))
	Pack(lbl, Padx("10m"), Pady("40m"))
	v.win = win
}

func (v *blockOverlay) Hide() {
	if v.win == nil {
		return
	}
	win := v.win
	v.win = nil
	func() {
		defer func() { _ = recover() }()
		Destroy(win)
	}()
}

func (v *blockOverlay) Visible() bool { return v.win != nil }
