package activities

import (
	"fmt"
	"sort"

	"github.com/dailystep/dailystep/internal/cli"
	"github.com/dailystep/dailystep/internal/dashboard"
	"github.com/dailystep/dailystep/internal/utils"
)

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	profile, err := ctx.RequireIdentity()
	if err != nil {
		return err
	}

	_, activities, err := dashboard.LoadToday(ctx.API, profile.UserID)
	if err != nil {
		return err
	}
	if len(activities) == 0 {
		fmt.Println("No activities planned for today")
		return nil
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].StartTime < activities[j].StartTime
	})

	for _, a := range activities {
		start, end := "--:--", "--:--"
		if m, ok := utils.MinuteOfDay(a.StartTime); ok {
			start = utils.FormatMinute(m)
		}
		if m, ok := utils.MinuteOfDay(a.EndTime); ok {
			end = utils.FormatMinute(m)
		}
		mark := " "
		if a.IsCompleted {
			mark = "x"
		}
		fmt.Printf("[%s] %4d  %s - %s  %s\n", mark, a.ID, start, end, a.Description)
	}
	return nil
}
