// Package activities holds the schedule-activity subcommands. All of them
// operate on today's schedule; past days are read-only history on the server.
package activities

import (
	"errors"
	"fmt"

	"github.com/dailystep/dailystep/internal/cli"
	"github.com/dailystep/dailystep/internal/constants"
	"github.com/dailystep/dailystep/internal/dashboard"
	"github.com/dailystep/dailystep/internal/models"
	"github.com/dailystep/dailystep/internal/progress"
	"github.com/dailystep/dailystep/internal/utils"
)

type AddCmd struct {
	Description string `arg:"" help:"What the time block is for."`
	Start       string `short:"s" required:"" help:"Start time (HH:MM)."`
	End         string `short:"e" required:"" help:"End time (HH:MM)."`
	Icon        string `short:"i" default:"task" help:"Icon name shown next to the activity."`
}

func (c *AddCmd) Validate() error {
	if _, err := utils.ParseTimeToMinutes(c.Start); err != nil {
		return fmt.Errorf("invalid start time %q: expected HH:MM", c.Start)
	}
	if _, err := utils.ParseTimeToMinutes(c.End); err != nil {
		return fmt.Errorf("invalid end time %q: expected HH:MM", c.End)
	}
	return nil
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	profile, err := ctx.RequireIdentity()
	if err != nil {
		return err
	}

	startMin, _ := utils.ParseTimeToMinutes(c.Start)
	endMin, _ := utils.ParseTimeToMinutes(c.End)

	schedule, existing, err := dashboard.LoadToday(ctx.API, profile.UserID)
	if err != nil {
		return err
	}

	if err := progress.ValidateInterval(startMin, endMin, existing); err != nil {
		return validationMessage(err)
	}

	today := utils.Today()
	startISO, err := utils.ComposeISOTime(today, c.Start)
	if err != nil {
		return err
	}
	endISO, err := utils.ComposeISOTime(today, c.End)
	if err != nil {
		return err
	}

	created, err := ctx.API.CreateActivity(models.ActivityRequest{
		ScheduleID:  schedule.ID,
		IconName:    c.Icon,
		StartTime:   startISO,
		EndTime:     endISO,
		Description: c.Description,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added activity %d: %s (%s - %s)\n", created.ID, c.Description, c.Start, c.End)
	return nil
}

// validationMessage maps engine validation errors to the exact user-facing
// wording shared with the TUI form.
func validationMessage(err error) error {
	switch {
	case errors.Is(err, progress.ErrInvalidRange):
		return errors.New(constants.MsgInvalidRange)
	case errors.Is(err, progress.ErrOverlap):
		return errors.New(constants.MsgOverlap)
	default:
		return err
	}
}
