package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dailystep/dailystep/internal/api"
	"github.com/dailystep/dailystep/internal/dashboard"
	"github.com/dailystep/dailystep/internal/models"
	"github.com/dailystep/dailystep/internal/progress"
	"github.com/dailystep/dailystep/internal/session"
	"github.com/dailystep/dailystep/internal/timer"
)

var errTest = errors.New("network down")

func newTestApp() App {
	client := api.NewClient("http://localhost:0")
	profile := session.Profile{Username: "tester", UserID: 7}
	return NewApp(client, nil, profile, timer.DefaultSettings())
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// ============================================================
// View state
// ============================================================

func TestViewNames(t *testing.T) {
	if len(viewNames) != 4 {
		t.Fatalf("expected 4 view names, got %d", len(viewNames))
	}
	expected := []string{"Dashboard", "Timer", "Tasks", "Rewards"}
	for i, name := range expected {
		if viewNames[i] != name {
			t.Fatalf("viewNames[%d] = %q, want %q", i, viewNames[i], name)
		}
	}
}

func TestViewStateConstants(t *testing.T) {
	if viewDashboard != 0 || viewTimer != 1 || viewTasks != 2 || viewRewards != 3 {
		t.Fatal("view state constants out of order")
	}
}

// ============================================================
// Timer model
// ============================================================

func TestTimerModelStartAndTick(t *testing.T) {
	tm := newTimerModel(timer.Settings{FocusMinutes: 1, ShortBreakMinutes: 1, LongBreakMinutes: 2})

	tm, _ = tm.update(keyPress('s'))
	if tm.engine.State() != timer.StateFocus {
		t.Fatalf("state = %v, want FOCUS", tm.engine.State())
	}

	before := tm.engine.Remaining()
	tm, _ = tm.update(tickMsg{})
	if tm.engine.Remaining() != before-1 {
		t.Fatalf("remaining = %d, want %d", tm.engine.Remaining(), before-1)
	}
}

func TestTimerModelPauseResume(t *testing.T) {
	tm := newTimerModel(timer.DefaultSettings())
	tm, _ = tm.update(keyPress('s'))

	tm, _ = tm.update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if tm.engine.State() != timer.StatePaused {
		t.Fatalf("state = %v, want PAUSED", tm.engine.State())
	}

	tm, _ = tm.update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if tm.engine.State() != timer.StateFocus || !tm.engine.Running() {
		t.Fatal("space should resume a paused focus session")
	}
}

func TestTimerModelPhaseChangeEmitsStatus(t *testing.T) {
	tm := newTimerModel(timer.Settings{FocusMinutes: 1, ShortBreakMinutes: 1, LongBreakMinutes: 1})
	tm, _ = tm.update(keyPress('s'))

	var cmd tea.Cmd
	for i := 0; i < 60; i++ {
		tm, cmd = tm.update(tickMsg{})
	}
	if tm.engine.State() != timer.StateShortBreak {
		t.Fatalf("state = %v, want SHORT BREAK after 60 ticks", tm.engine.State())
	}
	if cmd == nil {
		t.Fatal("phase transition should emit a status command")
	}
	if msg, ok := cmd().(statusMsg); !ok || msg.text == "" {
		t.Fatal("phase transition status should carry text")
	}
}

func TestTimerModelResetKey(t *testing.T) {
	tm := newTimerModel(timer.DefaultSettings())
	tm, _ = tm.update(keyPress('s'))
	tm, _ = tm.update(tickMsg{})

	tm, _ = tm.update(keyPress('r'))
	if tm.engine.State() != timer.StateIdle {
		t.Fatalf("state = %v, want IDLE after reset", tm.engine.State())
	}
}

// ============================================================
// Dashboard model
// ============================================================

func TestDashboardSnapshotMsg(t *testing.T) {
	d := newDashboardModel(nil, nil, 7)

	snap := dashboard.Snapshot{
		Schedule: models.Schedule{ID: 2},
		Activities: []models.Activity{
			{ID: 1, Description: "Standup"},
		},
		Progress: progress.Snapshot{Total: 1},
	}
	d, _ = d.update(snapshotMsg{snap: snap})

	if !d.loaded {
		t.Fatal("snapshot message should mark the model loaded")
	}
	if d.snap.Schedule.ID != 2 {
		t.Fatalf("schedule ID = %d, want 2", d.snap.Schedule.ID)
	}

	d.setSize(100, 30)
	view := d.view()
	if !strings.Contains(view, "Standup") {
		t.Fatal("view should list the activity")
	}
}

func TestDashboardErrorKeepsLastSnapshot(t *testing.T) {
	d := newDashboardModel(nil, nil, 7)
	d, _ = d.update(snapshotMsg{snap: dashboard.Snapshot{Schedule: models.Schedule{ID: 2}}})

	d, _ = d.update(snapshotMsg{err: errTest})
	if d.snap.Schedule.ID != 2 {
		t.Fatal("an error refresh must not drop the last good snapshot")
	}
	if d.err == nil {
		t.Fatal("error should be recorded")
	}
}

func TestDashboardOpenForm(t *testing.T) {
	d := newDashboardModel(nil, nil, 7)
	d, _ = d.update(snapshotMsg{snap: dashboard.Snapshot{}})

	d, cmd := d.update(keyPress('a'))
	if !d.formActive || d.form == nil {
		t.Fatal("a should open the add-activity form")
	}
	if cmd == nil {
		t.Fatal("opening the form should return its init command")
	}

	d, _ = d.update(tea.KeyMsg{Type: tea.KeyEsc})
	if d.formActive {
		t.Fatal("esc should close the form")
	}
}

// ============================================================
// Tasks model
// ============================================================

func TestTasksCursorMovement(t *testing.T) {
	m := newTasksModel(nil, nil, 7)
	m, _ = m.update(tasksMsg{tasks: []models.Task{
		{ID: 1, Title: "one"},
		{ID: 2, Title: "two"},
	}})

	m, _ = m.update(keyPress('j'))
	if m.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", m.cursor)
	}
	m, _ = m.update(keyPress('j'))
	if m.cursor != 1 {
		t.Fatal("cursor must not move past the last task")
	}
	m, _ = m.update(keyPress('k'))
	if m.cursor != 0 {
		t.Fatalf("cursor = %d, want 0", m.cursor)
	}
}

func TestTasksCursorClampsOnShrink(t *testing.T) {
	m := newTasksModel(nil, nil, 7)
	m, _ = m.update(tasksMsg{tasks: []models.Task{{ID: 1}, {ID: 2}, {ID: 3}}})
	m.cursor = 2

	m, _ = m.update(tasksMsg{tasks: []models.Task{{ID: 1}}})
	if m.cursor != 0 {
		t.Fatalf("cursor = %d, want 0 after list shrank", m.cursor)
	}
}

// ============================================================
// Rewards model
// ============================================================

func TestRewardsGalleryMsg(t *testing.T) {
	m := newRewardsModel(nil)
	m, _ = m.update(galleryMsg{gallery: models.RewardsGallery{
		EarnedRewards: []models.Reward{{Title: "Starter", Threshold: 1}},
	}})

	m.setSize(100, 30)
	view := m.view()
	if !strings.Contains(view, "Starter") {
		t.Fatal("view should list the earned reward")
	}
}

// ============================================================
// App model
// ============================================================

func TestNewApp(t *testing.T) {
	app := newTestApp()
	if app.activeView != viewDashboard {
		t.Fatal("default view should be dashboard")
	}
	if app.showHelp {
		t.Fatal("help should be hidden by default")
	}
}

func TestAppViewStatesRender(t *testing.T) {
	app := newTestApp()
	app.width = 120
	app.height = 40
	app.dashboard.setSize(120, 36)
	app.timer.setSize(120, 36)
	app.tasks.setSize(120, 36)
	app.rewards.setSize(120, 36)

	for _, v := range []viewState{viewDashboard, viewTimer, viewTasks, viewRewards} {
		app.activeView = v
		if app.View() == "" {
			t.Fatalf("view %d rendered empty", v)
		}
	}
}

func TestAppLoadingState(t *testing.T) {
	app := newTestApp()
	if app.View() != "Loading..." {
		t.Fatalf("unsized app should render the loading placeholder")
	}
}

func TestAppHeaderContainsAllTabs(t *testing.T) {
	app := newTestApp()
	app.width = 120
	app.height = 40

	header := app.renderHeader()
	for _, name := range viewNames {
		if !strings.Contains(header, name) {
			t.Fatalf("header missing tab %q", name)
		}
	}
}

func TestAppStatusInFooter(t *testing.T) {
	app := newTestApp()
	app.width = 120
	app.height = 40
	app.status = "saved"

	if !strings.Contains(app.renderFooter(), "saved") {
		t.Fatal("footer should contain the status message")
	}
}

// ============================================================
// Helpers and key bindings
// ============================================================

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{0, "00:00"},
		{61, "01:01"},
		{1500, "25:00"},
		{-5, "00:00"},
	}
	for _, tt := range tests {
		if got := formatSeconds(tt.secs); got != tt.want {
			t.Errorf("formatSeconds(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}

func TestKeyMapHelp(t *testing.T) {
	if len(keys.ShortHelp()) == 0 {
		t.Fatal("short help should have bindings")
	}
	for i, g := range keys.FullHelp() {
		if len(g) == 0 {
			t.Fatalf("full help group %d is empty", i)
		}
	}
}
