package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dailystep/dailystep/internal/constants"
	"github.com/dailystep/dailystep/internal/timer"
)

type timerModel struct {
	engine *timer.Engine
	width  int
	height int
}

func newTimerModel(settings timer.Settings) timerModel {
	return timerModel{engine: timer.New(settings)}
}

func (t *timerModel) setSize(w, h int) {
	t.width = w
	t.height = h
}

func (t timerModel) update(msg tea.Msg) (timerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		before := t.engine.State()
		t.engine.Tick()
		if after := t.engine.State(); after != before {
			return t, phaseChangeStatus(after)
		}
		return t, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Start):
			t.engine.Start()
		case key.Matches(msg, keys.Pause):
			if t.engine.Running() {
				t.engine.Pause()
			} else {
				t.engine.Resume()
			}
		case key.Matches(msg, keys.Skip):
			t.engine.Skip()
		case key.Matches(msg, keys.Reset):
			t.engine.Reset()
		}
	}
	return t, nil
}

func phaseChangeStatus(state timer.State) tea.Cmd {
	return func() tea.Msg {
		switch state {
		case timer.StateShortBreak, timer.StateLongBreak:
			return statusMsg{text: "Focus complete, take a break! \a"}
		case timer.StateIdle:
			return statusMsg{text: "Break over, ready for the next session \a"}
		}
		return nil
	}
}

func (t timerModel) view() string {
	w := t.width - 4
	e := t.engine

	title := titleStyle.Render("Focus Timer")

	var timeStyle lipgloss.Style
	switch e.State() {
	case timer.StateFocus:
		timeStyle = highlightStyle.Bold(true)
	case timer.StateShortBreak, timer.StateLongBreak:
		timeStyle = successStyle.Bold(true)
	case timer.StatePaused:
		timeStyle = warningStyle.Bold(true)
	default:
		timeStyle = mutedStyle.Bold(true)
	}

	timeDisplay := timeStyle.Width(w - 6).Align(lipgloss.Center).Render(formatSeconds(e.Remaining()))
	phaseLabel := timeStyle.Render(e.State().String())

	var controls string
	switch e.State() {
	case timer.StateIdle:
		controls = mutedStyle.Render("s: start focus")
	case timer.StatePaused:
		controls = mutedStyle.Render("space: resume  r: reset")
	default:
		if e.Running() {
			controls = mutedStyle.Render("space: pause  n: skip  r: reset")
		} else {
			controls = mutedStyle.Render("space: begin  n: skip  r: reset")
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		timeDisplay,
		phaseLabel,
		"",
		t.renderSessions(),
		"",
		controls,
	)
	return panelStyle.Width(w).Render(content)
}

// renderSessions draws one dot per focus session in the current long-break
// cycle, plus the lifetime count.
func (t timerModel) renderSessions() string {
	done := t.engine.CompletedFocus()
	inCycle := done % constants.LongBreakCadence
	if inCycle == 0 && done > 0 && (t.engine.State() == timer.StateLongBreak) {
		inCycle = constants.LongBreakCadence
	}

	var parts []string
	for i := 0; i < constants.LongBreakCadence; i++ {
		if i < inCycle {
			parts = append(parts, successStyle.Render("●"))
		} else if i == inCycle && t.engine.State() == timer.StateFocus {
			parts = append(parts, highlightStyle.Render("◐"))
		} else {
			parts = append(parts, mutedStyle.Render("○"))
		}
	}
	return strings.Join(parts, " ") + mutedStyle.Render(fmt.Sprintf("  %d total", done))
}
