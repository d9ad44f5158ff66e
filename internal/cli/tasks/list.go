package tasks

import (
	"fmt"
	"time"

	"github.com/dailystep/dailystep/internal/cli"
	"github.com/dailystep/dailystep/internal/logger"
	"github.com/dailystep/dailystep/internal/models"
	"github.com/dailystep/dailystep/internal/utils"
)

type ListCmd struct {
	ScheduleID *int `name:"schedule" help:"Show only tasks attached to one schedule id."`
	All        bool `short:"a" help:"Include finished tasks."`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	profile, err := ctx.RequireIdentity()
	if err != nil {
		return err
	}

	store, cacheErr := ctx.OpenCache()
	if cacheErr == nil {
		defer store.Close()
	}

	fromCache := false
	tasks, err := ctx.API.GetTasks(profile.UserID, c.ScheduleID)
	if err != nil {
		if cacheErr != nil {
			return err
		}
		logger.Warn("falling back to cached tasks", "error", err)
		tasks, err = store.Tasks(profile.UserID)
		if err != nil {
			return err
		}
		fromCache = true
	} else if cacheErr == nil && c.ScheduleID == nil {
		// Only a full, unfiltered fetch is a faithful snapshot worth caching.
		if err := store.SaveTasks(profile.UserID, tasks); err != nil {
			logger.Warn("failed to cache tasks", "error", err)
		}
	}

	if fromCache {
		fmt.Println("(offline, showing cached tasks)")
	}

	var todo, finished []models.Task
	for _, t := range tasks {
		if t.IsCompleted {
			finished = append(finished, t)
		} else {
			todo = append(todo, t)
		}
	}

	fmt.Printf("To do (%d):\n", len(todo))
	printTasks(todo)
	if c.All {
		fmt.Printf("\nFinished (%d):\n", len(finished))
		printTasks(finished)
	}
	return nil
}

func printTasks(tasks []models.Task) {
	if len(tasks) == 0 {
		fmt.Println("  (none)")
		return
	}
	now := time.Now()
	for _, t := range tasks {
		mark := " "
		if t.IsCompleted {
			mark = "x"
		}
		due := t.Deadline
		overdue := ""
		if deadline, err := utils.NormalizeDeadline(t.Deadline); err == nil {
			due = deadline.Local().Format("2006-01-02 15:04")
			if !t.IsCompleted && deadline.Before(now) {
				overdue = "  (overdue)"
			}
		}
		fmt.Printf("  [%s] %4d  %s  due %s%s\n", mark, t.ID, t.Title, due, overdue)
	}
}
