package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/dailystep/dailystep/internal/api"
	"github.com/dailystep/dailystep/internal/cache"
	"github.com/dailystep/dailystep/internal/constants"
	"github.com/dailystep/dailystep/internal/dashboard"
	"github.com/dailystep/dailystep/internal/models"
	"github.com/dailystep/dailystep/internal/progress"
	"github.com/dailystep/dailystep/internal/utils"
)

type dashboardModel struct {
	api    *api.Client
	cache  *cache.Store
	userID int
	width  int
	height int

	snap   dashboard.Snapshot
	loaded bool
	err    error

	// Seconds since the last server refresh; the view reloads itself
	// periodically while visible.
	sinceRefresh int

	formActive bool
	form       *huh.Form
	// formVals lives behind a pointer so the form's bound inputs survive the
	// model being copied on every update.
	formVals *activityForm
}

type activityForm struct {
	desc  string
	start string
	end   string
	icon  string
}

func newDashboardModel(client *api.Client, store *cache.Store, userID int) dashboardModel {
	return dashboardModel{api: client, cache: store, userID: userID}
}

func (d *dashboardModel) setSize(w, h int) {
	d.width = w
	d.height = h
}

func (d dashboardModel) loadData() tea.Cmd {
	client, store, userID := d.api, d.cache, d.userID
	return func() tea.Msg {
		now := time.Now()
		snap, err := dashboard.Refresh(client, userID, now)
		if err != nil {
			if store != nil {
				if cached, cerr := dashboard.Cached(store, userID, now); cerr == nil {
					return snapshotMsg{snap: cached}
				}
			}
			return snapshotMsg{err: err}
		}
		if store != nil {
			_ = dashboard.Save(store, snap)
		}
		return snapshotMsg{snap: snap}
	}
}

func (d dashboardModel) update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	if d.formActive {
		return d.updateForm(msg)
	}

	switch msg := msg.(type) {
	case snapshotMsg:
		d.err = msg.err
		if msg.err == nil {
			d.snap = msg.snap
			d.loaded = true
		}
		d.sinceRefresh = 0
		return d, nil

	case activitySavedMsg:
		return d, d.loadData()

	case tickMsg:
		d.sinceRefresh++
		if d.sinceRefresh >= constants.DashboardRefreshSeconds {
			d.sinceRefresh = 0
			return d, d.loadData()
		}
		return d, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.New):
			return d.openForm()
		}
	}
	return d, nil
}

func (d dashboardModel) openForm() (dashboardModel, tea.Cmd) {
	d.formVals = &activityForm{icon: "task"}
	d.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Description").Value(&d.formVals.desc),
			huh.NewInput().Title("Start (HH:MM)").Value(&d.formVals.start),
			huh.NewInput().Title("End (HH:MM)").Value(&d.formVals.end),
			huh.NewInput().Title("Icon").Value(&d.formVals.icon),
		),
	)
	d.formActive = true
	return d, d.form.Init()
}

func (d dashboardModel) updateForm(msg tea.Msg) (dashboardModel, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && key.Matches(kmsg, keys.Back) {
		d.formActive = false
		d.form = nil
		return d, nil
	}

	f, cmd := d.form.Update(msg)
	if form, ok := f.(*huh.Form); ok {
		d.form = form
	}

	if d.form.State == huh.StateCompleted {
		d.formActive = false
		d.form = nil
		return d, d.submitActivity()
	}
	return d, cmd
}

func (d dashboardModel) submitActivity() tea.Cmd {
	client := d.api
	scheduleID := d.snap.Schedule.ID
	existing := d.snap.Activities
	desc, start, end, icon := d.formVals.desc, d.formVals.start, d.formVals.end, d.formVals.icon

	return func() tea.Msg {
		startMin, err := utils.ParseTimeToMinutes(start)
		if err != nil {
			return statusMsg{text: "Invalid start time, expected HH:MM", isError: true}
		}
		endMin, err := utils.ParseTimeToMinutes(end)
		if err != nil {
			return statusMsg{text: "Invalid end time, expected HH:MM", isError: true}
		}
		if err := progress.ValidateInterval(startMin, endMin, existing); err != nil {
			switch {
			case errors.Is(err, progress.ErrInvalidRange):
				return statusMsg{text: constants.MsgInvalidRange, isError: true}
			case errors.Is(err, progress.ErrOverlap):
				return statusMsg{text: constants.MsgOverlap, isError: true}
			}
			return statusMsg{text: err.Error(), isError: true}
		}

		today := utils.Today()
		startISO, _ := utils.ComposeISOTime(today, start)
		endISO, _ := utils.ComposeISOTime(today, end)
		_, err = client.CreateActivity(models.ActivityRequest{
			ScheduleID:  scheduleID,
			IconName:    icon,
			StartTime:   startISO,
			EndTime:     endISO,
			Description: desc,
		})
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Failed to add activity: %v", err), isError: true}
		}
		return activitySavedMsg{}
	}
}

func (d dashboardModel) view() string {
	w := d.width - 4

	if d.formActive && d.form != nil {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left,
				titleStyle.Render("New Activity"),
				"",
				d.form.View(),
			),
		)
	}

	if d.err != nil {
		return panelStyle.Width(w).Render(errorStyle.Render(fmt.Sprintf("Error: %v", d.err)))
	}
	if !d.loaded {
		return panelStyle.Width(w).Render(mutedStyle.Render("Loading today's schedule..."))
	}

	p := d.snap.Progress
	var rows []string

	header := titleStyle.Render(fmt.Sprintf("Today  %d/%d done (%.0f%%)", p.Completed, p.Total, p.Percentage*100))
	if d.snap.FromCache {
		header += warningStyle.Render("  [offline]")
	}
	rows = append(rows, header)
	if p.Unparsed > 0 {
		rows = append(rows, warningStyle.Render(fmt.Sprintf("%d activities with unreadable times", p.Unparsed)))
	}
	rows = append(rows, "")

	if p.Current != nil {
		rows = append(rows, highlightStyle.Render(
			fmt.Sprintf("▶ %s  %s - %s", p.Current.Description, clockLabel(p.Current.StartTime), clockLabel(p.Current.EndTime)),
		))
	} else {
		rows = append(rows, mutedStyle.Render("No activity in progress"))
	}
	rows = append(rows, "")

	for _, a := range d.snap.Activities {
		mark := mutedStyle.Render("○")
		style := normalItemStyle
		if a.IsCompleted {
			mark = successStyle.Render("●")
			style = mutedStyle
		}
		rows = append(rows, fmt.Sprintf("%s %s %s  %s",
			mark,
			mutedStyle.Render(clockLabel(a.StartTime)+"-"+clockLabel(a.EndTime)),
			iconGlyph(a.IconName),
			style.Render(a.Description),
		))
	}
	if len(d.snap.Activities) == 0 {
		rows = append(rows, mutedStyle.Render("Nothing planned yet. Press a to add an activity."))
	}

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func clockLabel(iso string) string {
	minute, ok := utils.MinuteOfDay(iso)
	if !ok {
		return "--:--"
	}
	return utils.FormatMinute(minute)
}
