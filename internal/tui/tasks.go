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
	"github.com/dailystep/dailystep/internal/models"
	"github.com/dailystep/dailystep/internal/utils"
)

type tasksModel struct {
	api    *api.Client
	cache  *cache.Store
	userID int
	width  int
	height int

	tasks     []models.Task
	fromCache bool
	loaded    bool
	err       error
	cursor    int

	formActive bool
	form       *huh.Form
	formVals   *taskForm
}

type taskForm struct {
	title    string
	deadline string
}

func newTasksModel(client *api.Client, store *cache.Store, userID int) tasksModel {
	return tasksModel{api: client, cache: store, userID: userID}
}

func (t *tasksModel) setSize(w, h int) {
	t.width = w
	t.height = h
}

func (t tasksModel) refresh() tea.Cmd {
	client, store, userID := t.api, t.cache, t.userID
	return func() tea.Msg {
		tasks, err := client.GetTasks(userID, nil)
		if err != nil {
			if store != nil {
				if cached, cerr := store.Tasks(userID); cerr == nil {
					return tasksMsg{tasks: cached, fromCache: true}
				}
			}
			return tasksMsg{err: err}
		}
		if store != nil {
			_ = store.SaveTasks(userID, tasks)
		}
		return tasksMsg{tasks: tasks}
	}
}

func (t tasksModel) update(msg tea.Msg) (tasksModel, tea.Cmd) {
	if t.formActive {
		return t.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tasksMsg:
		t.err = msg.err
		if msg.err == nil {
			t.tasks = msg.tasks
			t.fromCache = msg.fromCache
			t.loaded = true
			if t.cursor >= len(t.tasks) {
				t.cursor = max(0, len(t.tasks)-1)
			}
		}
		return t, nil

	case taskChangedMsg:
		return t, t.refresh()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if t.cursor > 0 {
				t.cursor--
			}
		case key.Matches(msg, keys.Down):
			if t.cursor < len(t.tasks)-1 {
				t.cursor++
			}
		case key.Matches(msg, keys.Toggle):
			if t.cursor < len(t.tasks) {
				return t, t.toggle(t.tasks[t.cursor])
			}
		case key.Matches(msg, keys.Delete):
			if t.cursor < len(t.tasks) {
				return t, t.delete(t.tasks[t.cursor].ID)
			}
		case key.Matches(msg, keys.New):
			return t.openForm()
		}
	}
	return t, nil
}

func (t tasksModel) openForm() (tasksModel, tea.Cmd) {
	t.formVals = &taskForm{}
	t.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(&t.formVals.title),
			huh.NewInput().Title("Deadline").Description("ISO, yyyy-MM-dd, or dd-MM-yyyy").Value(&t.formVals.deadline),
		),
	)
	t.formActive = true
	return t, t.form.Init()
}

func (t tasksModel) updateForm(msg tea.Msg) (tasksModel, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && key.Matches(kmsg, keys.Back) {
		t.formActive = false
		t.form = nil
		return t, nil
	}

	f, cmd := t.form.Update(msg)
	if form, ok := f.(*huh.Form); ok {
		t.form = form
	}

	if t.form.State == huh.StateCompleted {
		t.formActive = false
		t.form = nil
		return t, t.submitTask()
	}
	return t, cmd
}

func (t tasksModel) submitTask() tea.Cmd {
	client := t.api
	title, rawDeadline := t.formVals.title, t.formVals.deadline

	return func() tea.Msg {
		deadline, err := utils.NormalizeDeadline(rawDeadline)
		if err != nil {
			if errors.Is(err, utils.ErrUnparseableDeadline) {
				return statusMsg{text: constants.MsgUnparseableDeadline, isError: true}
			}
			return statusMsg{text: err.Error(), isError: true}
		}
		_, err = client.CreateTask(models.CreateTaskRequest{
			Title:    title,
			Deadline: utils.FormatDeadline(deadline),
		})
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Failed to add task: %v", err), isError: true}
		}
		return taskChangedMsg{}
	}
}

func (t tasksModel) toggle(task models.Task) tea.Cmd {
	client := t.api
	return func() tea.Msg {
		completed := !task.IsCompleted
		err := client.UpdateTask(models.UpdateTaskRequest{ID: task.ID, IsCompleted: &completed})
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Failed to update task: %v", err), isError: true}
		}
		return taskChangedMsg{}
	}
}

func (t tasksModel) delete(taskID int) tea.Cmd {
	client := t.api
	return func() tea.Msg {
		if err := client.DeleteTask(taskID); err != nil {
			return statusMsg{text: fmt.Sprintf("Failed to delete task: %v", err), isError: true}
		}
		return taskChangedMsg{}
	}
}

func (t tasksModel) view() string {
	w := t.width - 4

	if t.formActive && t.form != nil {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left,
				titleStyle.Render("New Task"),
				"",
				t.form.View(),
			),
		)
	}

	if t.err != nil {
		return panelStyle.Width(w).Render(errorStyle.Render(fmt.Sprintf("Error: %v", t.err)))
	}
	if !t.loaded {
		return panelStyle.Width(w).Render(mutedStyle.Render("Loading tasks..."))
	}

	title := titleStyle.Render("Tasks")
	if t.fromCache {
		title += warningStyle.Render("  [offline]")
	}

	rows := []string{title, ""}
	if len(t.tasks) == 0 {
		rows = append(rows, mutedStyle.Render("No tasks. Add one with 'dailystep tasks add'."))
	}

	now := time.Now()
	for i, task := range t.tasks {
		mark := mutedStyle.Render("[ ]")
		style := normalItemStyle
		if task.IsCompleted {
			mark = successStyle.Render("[x]")
			style = mutedStyle
		}

		due := task.Deadline
		var overdue string
		if deadline, err := utils.NormalizeDeadline(task.Deadline); err == nil {
			due = deadline.Local().Format("2006-01-02 15:04")
			if !task.IsCompleted && deadline.Before(now) {
				overdue = errorStyle.Render("  overdue")
			}
		}

		line := fmt.Sprintf("%s %s  %s%s", mark, style.Render(task.Title), mutedStyle.Render("due "+due), overdue)
		if i == t.cursor {
			line = selectedItemStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		rows = append(rows, line)
	}

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
