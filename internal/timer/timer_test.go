package timer

import "testing"

func tick(e *Engine, n int) {
	for i := 0; i < n; i++ {
		e.Tick()
	}
}

func TestNewStartsIdle(t *testing.T) {
	e := New(DefaultSettings())
	if e.State() != StateIdle {
		t.Errorf("State() = %v, want IDLE", e.State())
	}
	if e.Remaining() != 25*60 || e.Total() != 25*60 {
		t.Errorf("Remaining/Total = %d/%d, want 1500/1500", e.Remaining(), e.Total())
	}
	if e.Running() {
		t.Error("new engine should not be running")
	}
}

func TestFullFocusSessionEntersShortBreak(t *testing.T) {
	e := New(DefaultSettings())
	e.Start()
	if e.State() != StateFocus || !e.Running() {
		t.Fatalf("after Start: state=%v running=%v", e.State(), e.Running())
	}

	tick(e, 1500)

	if e.State() != StateShortBreak {
		t.Errorf("State() = %v, want SHORT BREAK", e.State())
	}
	if e.Remaining() != 5*60 {
		t.Errorf("Remaining() = %d, want %d", e.Remaining(), 5*60)
	}
	if e.CompletedFocus() != 1 {
		t.Errorf("CompletedFocus() = %d, want 1", e.CompletedFocus())
	}
	if e.Running() {
		t.Error("break should start stopped until resumed")
	}
}

func TestBreakCompletionReturnsToIdle(t *testing.T) {
	e := New(DefaultSettings())
	e.Start()
	tick(e, 1500) // finish focus
	e.Resume()    // run the break
	tick(e, 5*60)

	if e.State() != StateIdle {
		t.Errorf("State() = %v, want IDLE", e.State())
	}
	if e.Remaining() != 25*60 {
		t.Errorf("Remaining() = %d, want focus duration", e.Remaining())
	}
	if e.Running() {
		t.Error("engine should stop after a break completes")
	}
}

func TestLongBreakCadence(t *testing.T) {
	e := New(DefaultSettings())

	breaks := []State{}
	for i := 0; i < 4; i++ {
		e.Start()
		tick(e, 1500)
		breaks = append(breaks, e.State())
		e.Resume()
		tick(e, e.Remaining()) // finish the break, back to idle
	}

	want := []State{StateShortBreak, StateShortBreak, StateShortBreak, StateLongBreak}
	for i := range want {
		if breaks[i] != want[i] {
			t.Errorf("break %d = %v, want %v", i+1, breaks[i], want[i])
		}
	}
	if e.CompletedFocus() != 4 {
		t.Errorf("CompletedFocus() = %d, want 4", e.CompletedFocus())
	}
}

func TestPauseResume(t *testing.T) {
	e := New(DefaultSettings())
	e.Start()
	tick(e, 100)

	e.Pause()
	if e.State() != StatePaused || e.Running() {
		t.Fatalf("after Pause: state=%v running=%v", e.State(), e.Running())
	}
	remaining := e.Remaining()

	// Ticks while paused change nothing.
	tick(e, 50)
	if e.Remaining() != remaining {
		t.Errorf("Remaining() advanced while paused: %d -> %d", remaining, e.Remaining())
	}

	e.Resume()
	if e.State() != StateFocus || !e.Running() {
		t.Errorf("after Resume: state=%v running=%v, want FOCUS running", e.State(), e.Running())
	}
	if e.Remaining() != remaining {
		t.Errorf("Resume changed Remaining: %d -> %d", remaining, e.Remaining())
	}
}

func TestPauseWhileIdleIsNoop(t *testing.T) {
	e := New(DefaultSettings())
	e.Pause()
	if e.State() != StateIdle {
		t.Errorf("State() = %v, want IDLE", e.State())
	}
}

func TestSkipFocusDoesNotIncrementCounter(t *testing.T) {
	e := New(DefaultSettings())
	e.Start()
	tick(e, 10)

	e.Skip()

	if e.State() != StateShortBreak {
		t.Errorf("State() = %v, want SHORT BREAK", e.State())
	}
	if e.CompletedFocus() != 0 {
		t.Errorf("CompletedFocus() = %d, want 0 (skip never credits focus)", e.CompletedFocus())
	}
}

func TestSkipFocusUsesLongBreakCadence(t *testing.T) {
	e := New(DefaultSettings())

	// Complete three focus sessions for real.
	for i := 0; i < 3; i++ {
		e.Start()
		tick(e, 1500)
		e.Resume()
		tick(e, e.Remaining())
	}

	// Skipping the 4th focus session still lands on the long break.
	e.Start()
	e.Skip()
	if e.State() != StateLongBreak {
		t.Errorf("State() = %v, want LONG BREAK", e.State())
	}
	if e.Remaining() != 15*60 {
		t.Errorf("Remaining() = %d, want %d", e.Remaining(), 15*60)
	}
	if e.CompletedFocus() != 3 {
		t.Errorf("CompletedFocus() = %d, want 3", e.CompletedFocus())
	}
}

func TestSkipBreakReturnsToIdle(t *testing.T) {
	e := New(DefaultSettings())
	e.Start()
	tick(e, 1500)
	e.Skip()

	if e.State() != StateIdle {
		t.Errorf("State() = %v, want IDLE", e.State())
	}
	if e.Remaining() != 25*60 {
		t.Errorf("Remaining() = %d, want focus duration", e.Remaining())
	}
}

func TestReset(t *testing.T) {
	e := New(DefaultSettings())
	e.Start()
	tick(e, 1500)
	e.Resume()
	tick(e, 3)

	e.Reset()

	if e.State() != StateIdle || e.Running() {
		t.Errorf("after Reset: state=%v running=%v", e.State(), e.Running())
	}
	if e.Remaining() != 25*60 || e.Total() != 25*60 {
		t.Errorf("after Reset: remaining/total = %d/%d", e.Remaining(), e.Total())
	}
	if e.CompletedFocus() != 1 {
		t.Errorf("Reset cleared CompletedFocus, got %d want 1", e.CompletedFocus())
	}
}

func TestUpdateSettingsWhileIdle(t *testing.T) {
	e := New(DefaultSettings())
	e.UpdateSettings(Settings{FocusMinutes: 50, ShortBreakMinutes: 10, LongBreakMinutes: 30})

	if e.Remaining() != 50*60 || e.Total() != 50*60 {
		t.Errorf("Remaining/Total = %d/%d, want 3000/3000", e.Remaining(), e.Total())
	}
}

func TestUpdateSettingsWhileRunningDefers(t *testing.T) {
	e := New(DefaultSettings())
	e.Start()
	tick(e, 100)
	remaining := e.Remaining()

	e.UpdateSettings(Settings{FocusMinutes: 50, ShortBreakMinutes: 10, LongBreakMinutes: 30})

	if e.Remaining() != remaining {
		t.Errorf("Remaining() = %d, want unchanged %d", e.Remaining(), remaining)
	}

	// New short-break duration applies on the next transition.
	tick(e, remaining)
	if e.State() != StateShortBreak || e.Remaining() != 10*60 {
		t.Errorf("after transition: state=%v remaining=%d, want SHORT BREAK %d", e.State(), e.Remaining(), 10*60)
	}
}

func TestRemainingStaysWithinPhase(t *testing.T) {
	e := New(Settings{FocusMinutes: 1, ShortBreakMinutes: 1, LongBreakMinutes: 1})
	e.Start()
	for i := 0; i < 500; i++ {
		e.Tick()
		if e.Remaining() < 0 || e.Remaining() > e.Total() {
			t.Fatalf("tick %d: Remaining %d outside [0,%d]", i, e.Remaining(), e.Total())
		}
		if !e.Running() {
			e.Resume()
			if !e.Running() && e.State() == StateIdle {
				e.Start()
			}
		}
	}
}
