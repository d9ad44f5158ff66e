// Package timer implements the Pomodoro focus timer as a plain state machine.
// Ticks are driven externally (the TUI sends one per second while running), so
// the engine itself never blocks and is trivially testable.
package timer

import "github.com/dailystep/dailystep/internal/constants"

// State is the current phase of the timer.
type State int

const (
	StateIdle State = iota
	StateFocus
	StateShortBreak
	StateLongBreak
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateFocus:
		return "FOCUS"
	case StateShortBreak:
		return "SHORT BREAK"
	case StateLongBreak:
		return "LONG BREAK"
	case StatePaused:
		return "PAUSED"
	default:
		return "UNKNOWN"
	}
}

// Settings holds the configured phase durations in minutes.
type Settings struct {
	FocusMinutes      int
	ShortBreakMinutes int
	LongBreakMinutes  int
}

// DefaultSettings returns the classic 25/5/15 configuration.
func DefaultSettings() Settings {
	return Settings{
		FocusMinutes:      constants.DefaultFocusMinutes,
		ShortBreakMinutes: constants.DefaultShortBreakMinutes,
		LongBreakMinutes:  constants.DefaultLongBreakMinutes,
	}
}

// Engine is the timer state machine. It is total over all (state, trigger)
// pairs: triggers that make no sense in the current state are no-ops, and no
// transition can fail. Not safe for concurrent use; each screen owns one.
type Engine struct {
	state          State
	previous       State
	remaining      int // seconds left in the current phase
	total          int // full duration of the current phase in seconds
	completedFocus int
	running        bool
	settings       Settings
}

// New returns an idle engine with the focus duration loaded.
func New(settings Settings) *Engine {
	e := &Engine{settings: settings}
	e.loadFocus()
	return e
}

func (e *Engine) loadFocus() {
	e.remaining = e.settings.FocusMinutes * 60
	e.total = e.remaining
}

// Start begins a focus session from idle. In any other state it is a no-op.
func (e *Engine) Start() {
	if e.state != StateIdle {
		return
	}
	e.state = StateFocus
	e.previous = StateFocus
	e.loadFocus()
	e.running = true
}

// Tick advances the timer by one second. Only meaningful while running; a
// phase that reaches zero transitions immediately and stops the clock until
// the user resumes.
func (e *Engine) Tick() {
	if !e.running {
		return
	}
	e.remaining--
	if e.remaining > 0 {
		return
	}
	e.completePhase()
}

func (e *Engine) completePhase() {
	switch e.state {
	case StateFocus:
		e.completedFocus++
		e.enterBreak(e.completedFocus)
	case StateShortBreak, StateLongBreak:
		e.state = StateIdle
		e.loadFocus()
		e.running = false
	}
}

// enterBreak picks the break phase for the given focus count: every
// LongBreakCadence-th session earns a long break.
func (e *Engine) enterBreak(count int) {
	if count%constants.LongBreakCadence == 0 {
		e.state = StateLongBreak
		e.remaining = e.settings.LongBreakMinutes * 60
	} else {
		e.state = StateShortBreak
		e.remaining = e.settings.ShortBreakMinutes * 60
	}
	e.total = e.remaining
	e.running = false
}

// Pause freezes a running phase, remembering it for Resume.
func (e *Engine) Pause() {
	if !e.running {
		return
	}
	e.previous = e.state
	e.state = StatePaused
	e.running = false
}

// Resume continues a paused phase, or restarts the clock on a phase that was
// entered stopped (breaks start paused after a focus session completes).
func (e *Engine) Resume() {
	if e.state == StatePaused {
		e.state = e.previous
		e.running = true
		return
	}
	if e.state != StateIdle {
		e.running = true
	}
}

// Skip abandons the current phase. Skipping focus jumps to the break the
// session would have earned without crediting the focus counter; skipping
// anything else returns to idle.
func (e *Engine) Skip() {
	if e.state == StateFocus {
		e.enterBreak(e.completedFocus + 1)
		return
	}
	e.state = StateIdle
	e.loadFocus()
	e.running = false
}

// Reset returns to idle with a fresh focus duration. The completed-focus
// counter is kept; only a new engine clears it.
func (e *Engine) Reset() {
	e.state = StateIdle
	e.loadFocus()
	e.running = false
}

// UpdateSettings stores new durations. The focus duration applies immediately
// only when idle; otherwise the new values take effect on the next phase.
func (e *Engine) UpdateSettings(settings Settings) {
	e.settings = settings
	if e.state == StateIdle {
		e.loadFocus()
	}
}

// State returns the current phase.
func (e *Engine) State() State { return e.state }

// Running reports whether ticks currently advance the timer.
func (e *Engine) Running() bool { return e.running }

// Remaining returns the seconds left in the current phase.
func (e *Engine) Remaining() int { return e.remaining }

// Total returns the full duration of the current phase in seconds.
func (e *Engine) Total() int { return e.total }

// CompletedFocus returns the number of naturally completed focus sessions.
func (e *Engine) CompletedFocus() int { return e.completedFocus }

// Settings returns the configured durations.
func (e *Engine) Settings() Settings { return e.settings }
