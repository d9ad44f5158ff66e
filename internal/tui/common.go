package tui

import (
	"fmt"
	"time"

	"github.com/dailystep/dailystep/internal/dashboard"
	"github.com/dailystep/dailystep/internal/models"
)

// viewState represents the currently active view.
type viewState int

const (
	viewDashboard viewState = iota
	viewTimer
	viewTasks
	viewRewards
)

var viewNames = []string{"Dashboard", "Timer", "Tasks", "Rewards"}

// --- Messages ---

type tickMsg time.Time

type snapshotMsg struct {
	snap dashboard.Snapshot
	err  error
}

type tasksMsg struct {
	tasks     []models.Task
	fromCache bool
	err       error
}

type galleryMsg struct {
	gallery models.RewardsGallery
	err     error
}

type statusMsg struct {
	text    string
	isError bool
}

type activitySavedMsg struct{}
type taskChangedMsg struct{}

// --- Helpers ---

func formatSeconds(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// iconGlyphs maps the backend's known icon names to display glyphs. Icon names
// are free-form; unknown ones get a plain bullet.
var iconGlyphs = map[string]string{
	"task":     "📋",
	"study":    "📚",
	"work":     "💼",
	"exercise": "🏃",
	"meal":     "🍽️",
	"sleep":    "😴",
	"break":    "☕",
}

func iconGlyph(name string) string {
	if g, ok := iconGlyphs[name]; ok {
		return g
	}
	return "•"
}
