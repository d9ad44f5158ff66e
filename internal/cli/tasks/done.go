package tasks

import (
	"fmt"

	"github.com/dailystep/dailystep/internal/cli"
	"github.com/dailystep/dailystep/internal/models"
)

type DoneCmd struct {
	ID int `arg:"" help:"Task id to mark finished."`
}

func (c *DoneCmd) Run(ctx *cli.Context) error {
	return setCompletion(ctx, c.ID, true)
}

type UndoneCmd struct {
	ID int `arg:"" help:"Task id to reopen."`
}

func (c *UndoneCmd) Run(ctx *cli.Context) error {
	return setCompletion(ctx, c.ID, false)
}

func setCompletion(ctx *cli.Context, taskID int, completed bool) error {
	if _, err := ctx.RequireIdentity(); err != nil {
		return err
	}
	if err := ctx.API.UpdateTask(models.UpdateTaskRequest{ID: taskID, IsCompleted: &completed}); err != nil {
		return err
	}
	if completed {
		fmt.Printf("Task %d finished\n", taskID)
	} else {
		fmt.Printf("Task %d reopened\n", taskID)
	}
	return nil
}
