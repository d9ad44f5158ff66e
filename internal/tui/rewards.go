package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dailystep/dailystep/internal/api"
	"github.com/dailystep/dailystep/internal/models"
)

type rewardsModel struct {
	api    *api.Client
	width  int
	height int

	gallery models.RewardsGallery
	loaded  bool
	err     error
}

func newRewardsModel(client *api.Client) rewardsModel {
	return rewardsModel{api: client}
}

func (r *rewardsModel) setSize(w, h int) {
	r.width = w
	r.height = h
}

func (r rewardsModel) refresh() tea.Cmd {
	client := r.api
	return func() tea.Msg {
		gallery, err := client.GetRewardsGallery()
		return galleryMsg{gallery: gallery, err: err}
	}
}

func (r rewardsModel) update(msg tea.Msg) (rewardsModel, tea.Cmd) {
	if msg, ok := msg.(galleryMsg); ok {
		r.err = msg.err
		if msg.err == nil {
			r.gallery = msg.gallery
			r.loaded = true
		}
	}
	return r, nil
}

func (r rewardsModel) view() string {
	w := r.width - 4

	if r.err != nil {
		return panelStyle.Width(w).Render(errorStyle.Render(fmt.Sprintf("Error: %v", r.err)))
	}
	if !r.loaded {
		return panelStyle.Width(w).Render(mutedStyle.Render("Loading rewards..."))
	}

	rows := []string{titleStyle.Render(fmt.Sprintf("Earned (%d)", len(r.gallery.EarnedRewards))), ""}
	rows = append(rows, renderRewardRows(r.gallery.EarnedRewards, successStyle)...)
	rows = append(rows, "", titleStyle.Render(fmt.Sprintf("Locked (%d)", len(r.gallery.LockedRewards))), "")
	rows = append(rows, renderRewardRows(r.gallery.LockedRewards, mutedStyle)...)

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func renderRewardRows(rewards []models.Reward, style lipgloss.Style) []string {
	if len(rewards) == 0 {
		return []string{mutedStyle.Render("  (none)")}
	}
	rows := make([]string, 0, len(rewards))
	for _, reward := range rewards {
		line := style.Render(fmt.Sprintf("  %s", reward.Title))
		line += mutedStyle.Render(fmt.Sprintf("  %s >= %d", reward.TriggerType, reward.Threshold))
		rows = append(rows, line)
	}
	return rows
}
