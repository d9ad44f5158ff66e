package activities

import (
	"errors"
	"fmt"
	"time"

	"github.com/dailystep/dailystep/internal/cli"
	"github.com/dailystep/dailystep/internal/dashboard"
	"github.com/dailystep/dailystep/internal/models"
	"github.com/dailystep/dailystep/internal/progress"
	"github.com/dailystep/dailystep/internal/utils"
)

type EditCmd struct {
	ID          int    `arg:"" help:"Activity id to edit."`
	Description string `short:"d" help:"New description (unchanged when omitted)."`
	Start       string `short:"s" help:"New start time (HH:MM)."`
	End         string `short:"e" help:"New end time (HH:MM)."`
	Icon        string `short:"i" help:"New icon name."`
	Done        *bool  `negatable:"" help:"Mark the activity completed (--done) or not (--no-done)."`
}

func (c *EditCmd) Run(ctx *cli.Context) error {
	profile, err := ctx.RequireIdentity()
	if err != nil {
		return err
	}

	_, existing, err := dashboard.LoadToday(ctx.API, profile.UserID)
	if err != nil {
		return err
	}

	var target *models.Activity
	for i := range existing {
		if existing[i].ID == c.ID {
			target = &existing[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("no activity %d in today's schedule", c.ID)
	}

	// Activities whose end time has already passed are history; editing them
	// would rewrite what actually happened.
	if endMin, ok := utils.MinuteOfDay(target.EndTime); ok {
		if endMin <= utils.NowMinute(time.Now()) {
			return errors.New("cannot edit an activity that has already ended")
		}
	}

	update := models.ActivityUpdateRequest{
		ID:          target.ID,
		IconName:    target.IconName,
		StartTime:   target.StartTime,
		EndTime:     target.EndTime,
		Description: target.Description,
		IsCompleted: c.Done,
	}
	if c.Description != "" {
		update.Description = c.Description
	}
	if c.Icon != "" {
		update.IconName = c.Icon
	}

	if c.Start != "" || c.End != "" {
		startStr, endStr := c.Start, c.End
		if startStr == "" {
			if m, ok := utils.MinuteOfDay(target.StartTime); ok {
				startStr = utils.FormatMinute(m)
			}
		}
		if endStr == "" {
			if m, ok := utils.MinuteOfDay(target.EndTime); ok {
				endStr = utils.FormatMinute(m)
			}
		}

		startMin, err := utils.ParseTimeToMinutes(startStr)
		if err != nil {
			return fmt.Errorf("invalid start time %q: expected HH:MM", startStr)
		}
		endMin, err := utils.ParseTimeToMinutes(endStr)
		if err != nil {
			return fmt.Errorf("invalid end time %q: expected HH:MM", endStr)
		}

		if err := progress.ValidateIntervalExcluding(startMin, endMin, existing, target.ID); err != nil {
			return validationMessage(err)
		}

		today := utils.Today()
		if update.StartTime, err = utils.ComposeISOTime(today, startStr); err != nil {
			return err
		}
		if update.EndTime, err = utils.ComposeISOTime(today, endStr); err != nil {
			return err
		}
	}

	if err := ctx.API.UpdateActivity(update); err != nil {
		return err
	}
	fmt.Printf("Updated activity %d\n", c.ID)
	return nil
}
