package posture

import (
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

// State enumerates the finite states of the monitoring cycle.
type State int

const (
	StateCalibrating State = iota
	StateWatching
	StateAlerting
	StateHalt
)

func (s State) String() string {
	switch s {
	case StateCalibrating:
		return "calibrating"
	case StateWatching:
		return "watching"
	case StateAlerting:
		return "alerting"
	case StateHalt:
		return "halt"
	default:
		return "unknown"
	}
}

// StateListener is called on each successful state transition.
type StateListener func(prev, next State)

// FSM tracks the monitoring lifecycle: Calibrating until the operator
// completes calibration, then Watching/Alerting driven by sample outcomes,
// and Halt on shutdown. Events are serialized through a channel so listeners
// never race.
type FSM struct {
	state     atomic.Int32
	logger    *slog.Logger
	events    chan interface{}
	listeners []StateListener

	// mu makes the closed check and the channel send/close one step, so a
	// concurrent Close can never pull the channel out from under a sender.
	mu     sync.Mutex
	closed bool
}

type (
	evtCalibrated  struct{}
	evtSample      struct{ tooClose bool }
	evtHalt        struct{}
	evtAddListener struct{ l StateListener }
)

// NewFSM constructs the machine in StateCalibrating and starts its event loop.
func NewFSM(logger *slog.Logger) *FSM {
	f := &FSM{logger: logger, events: make(chan interface{}, 64)}
	f.state.Store(int32(StateCalibrating))
	go func() {
		defer func() {
			if r := recover(); r != nil {
				stack := string(debug.Stack())
				if logger != nil {
					logger.Error("fsm panic", "error", r, "stack", stack)
				}
			}
		}()
		f.loop()
	}()
	return f
}

func (f *FSM) loop() {
	for ev := range f.events {
		switch e := ev.(type) {
		case evtAddListener:
			f.listeners = append(f.listeners, e.l)
		case evtCalibrated:
			if f.Current() == StateCalibrating {
				f.transition(StateWatching)
			}
		case evtSample:
			switch f.Current() {
			case StateWatching:
				if e.tooClose {
					f.transition(StateAlerting)
				}
			case StateAlerting:
				if !e.tooClose {
					f.transition(StateWatching)
				}
			}
		case evtHalt:
			f.transition(StateHalt)
		}
	}
}

func (f *FSM) transition(next State) {
	prev := f.Current()
	if prev == next {
		return
	}
	f.state.Store(int32(next))
	if f.logger != nil {
		f.logger.Debug("posture state transition", "from", prev.String(), "to", next.String())
	}
	for _, l := range f.listeners {
		l(prev, next)
	}
}

// Current returns the present state.
func (f *FSM) Current() State { return State(f.state.Load()) }

// EventCalibrated records completion of the calibration procedure.
func (f *FSM) EventCalibrated() { f.send(evtCalibrated{}) }

// EventSample records the outcome of one posture check.
func (f *FSM) EventSample(tooClose bool) { f.send(evtSample{tooClose: tooClose}) }

// EventHalt moves the machine into its terminal state.
func (f *FSM) EventHalt() { f.send(evtHalt{}) }

// AddListener registers a transition listener. Listeners run on the event
// loop goroutine.
func (f *FSM) AddListener(l StateListener) { f.send(evtAddListener{l: l}) }

// Close stops the event loop. Events sent concurrently with or after Close
// are dropped.
func (f *FSM) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	close(f.events)
}

func (f *FSM) send(ev interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.events <- ev
}
