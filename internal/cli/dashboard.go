package cli

import (
	"fmt"
	"time"

	"github.com/dailystep/dailystep/internal/cache"
	"github.com/dailystep/dailystep/internal/dashboard"
	"github.com/dailystep/dailystep/internal/logger"
	"github.com/dailystep/dailystep/internal/utils"
)

type DashboardCmd struct{}

func (c *DashboardCmd) Run(ctx *Context) error {
	profile, err := ctx.RequireIdentity()
	if err != nil {
		return err
	}

	store, err := ctx.OpenCache()
	if err != nil {
		return err
	}
	defer store.Close()

	now := time.Now()
	snap, err := dashboard.Refresh(ctx.API, profile.UserID, now)
	if err != nil {
		logger.Warn("falling back to cached dashboard", "error", err)
		snap, err = dashboard.Cached(store, profile.UserID, now)
		if err != nil {
			return err
		}
	} else if err := dashboard.Save(store, snap); err != nil {
		logger.Warn("failed to cache dashboard", "error", err)
	}

	printSnapshot(profile.Username, snap, store)
	return nil
}

func printSnapshot(username string, snap dashboard.Snapshot, store *cache.Store) {
	p := snap.Progress

	fmt.Printf("Hi, %s!\n", username)
	if snap.FromCache {
		refreshed := store.RefreshedAt()
		if refreshed.IsZero() {
			fmt.Println("(offline, showing cached data)")
		} else {
			fmt.Printf("(offline, showing data cached %s)\n", refreshed.Local().Format("2006-01-02 15:04"))
		}
	}

	fmt.Printf("\nToday's progress: %d/%d (%.0f%%)\n", p.Completed, p.Total, p.Percentage*100)
	if p.Unparsed > 0 {
		fmt.Printf("Warning: %d activities have unreadable times and were left out\n", p.Unparsed)
	}

	if p.Current != nil {
		fmt.Printf("\nNow: %s (%s - %s)\n",
			p.Current.Description, clock(p.Current.StartTime), clock(p.Current.EndTime))
	} else {
		fmt.Println("\nNo activity in progress")
	}

	if len(p.Upcoming) > 0 {
		fmt.Println("\nUp next:")
		for _, a := range p.Upcoming {
			fmt.Printf("  %s  %s\n", clock(a.StartTime), a.Description)
		}
	}
}

func clock(iso string) string {
	minute, ok := utils.MinuteOfDay(iso)
	if !ok {
		return "--:--"
	}
	return utils.FormatMinute(minute)
}
