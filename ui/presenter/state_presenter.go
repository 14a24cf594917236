package presenter

import (
	"sync"
	"time"

	"github.com/soocke/posture-watch-go/domain/posture"
)

// StateView sets the state label in the status window.
type StateView interface{ SetStateLabel(string) }

// StatePresenter reflects lifecycle state transitions into the status label.
// OnState is safe to call from the state machine goroutine; the label itself
// is only touched on Tick, on the Tk event-loop thread.
type StatePresenter struct {
	view StateView

	mu      sync.Mutex
	pending []posture.State

	latest posture.State // last reflected state
	shown  bool
}

func NewStatePresenter(view StateView) *StatePresenter {
	return &StatePresenter{view: view}
}

// OnState queues a transitioned state from the FSM listener.
//
// The latest queued state will be reflected on the next Tick.
func (p *StatePresenter) OnState(s posture.State) {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.pending = append(p.pending, s)
	p.mu.Unlock()
}

// Tick processes queued states and updates the view with the most recent one.
// It clears the pending queue after processing.
func (p *StatePresenter) Tick(now time.Time) {
	if p == nil || p.view == nil {
		return
	}
	p.mu.Lock()
	var last posture.State
	has := len(p.pending) > 0
	if has {
		last = p.pending[len(p.pending)-1]
		p.pending = p.pending[:0]
	}
	p.mu.Unlock()
	if !has || (p.shown && last == p.latest) {
		return
	}
	p.latest, p.shown = last, true
	p.view.SetStateLabel("State: " + last.String())
}
