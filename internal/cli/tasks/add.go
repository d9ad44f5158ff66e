// Package tasks holds the deadline to-do subcommands.
package tasks

import (
	"errors"
	"fmt"

	"github.com/dailystep/dailystep/internal/cli"
	"github.com/dailystep/dailystep/internal/constants"
	"github.com/dailystep/dailystep/internal/models"
	"github.com/dailystep/dailystep/internal/utils"
)

type AddCmd struct {
	Title       string `arg:"" help:"Task title."`
	Deadline    string `short:"d" required:"" help:"Deadline (ISO instant, yyyy-MM-dd, dd-MM-yyyy, or 'yyyy-MM-dd HH:mm')."`
	Description string `help:"Optional longer description."`
	ScheduleID  *int   `name:"schedule" help:"Attach the task to a schedule id."`
}

func (c *AddCmd) Validate() error {
	if _, err := utils.NormalizeDeadline(c.Deadline); err != nil {
		if errors.Is(err, utils.ErrUnparseableDeadline) {
			return errors.New(constants.MsgUnparseableDeadline)
		}
		return err
	}
	return nil
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.RequireIdentity(); err != nil {
		return err
	}

	deadline, _ := utils.NormalizeDeadline(c.Deadline)

	created, err := ctx.API.CreateTask(models.CreateTaskRequest{
		ScheduleID:  c.ScheduleID,
		Title:       c.Title,
		Deadline:    utils.FormatDeadline(deadline),
		Description: c.Description,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added task %d: %s (due %s)\n", created.ID, c.Title, deadline.Local().Format("2006-01-02 15:04"))
	return nil
}
