package cli

import (
	"fmt"

	"github.com/dailystep/dailystep/internal/logger"
	"github.com/dailystep/dailystep/internal/models"
)

type RewardsCmd struct{}

func (c *RewardsCmd) Run(ctx *Context) error {
	if _, err := ctx.RequireIdentity(); err != nil {
		return err
	}

	store, cacheErr := ctx.OpenCache()
	if cacheErr == nil {
		defer store.Close()
	}

	fromCache := false
	gallery, err := ctx.API.GetRewardsGallery()
	if err != nil {
		if cacheErr != nil {
			return err
		}
		logger.Warn("falling back to cached rewards", "error", err)
		gallery, err = store.Gallery()
		if err != nil {
			return err
		}
		fromCache = true
	} else if cacheErr == nil {
		if err := store.SaveGallery(gallery); err != nil {
			logger.Warn("failed to cache rewards", "error", err)
		}
	}

	if fromCache {
		fmt.Println("(offline, showing cached rewards)")
	}

	fmt.Printf("Earned (%d):\n", len(gallery.EarnedRewards))
	printRewards(gallery.EarnedRewards, "🏆")

	fmt.Printf("\nLocked (%d):\n", len(gallery.LockedRewards))
	printRewards(gallery.LockedRewards, "🔒")
	return nil
}

func printRewards(rewards []models.Reward, marker string) {
	if len(rewards) == 0 {
		fmt.Println("  (none)")
		return
	}
	for _, r := range rewards {
		fmt.Printf("  %s %s", marker, r.Title)
		if r.Description != "" {
			fmt.Printf(" - %s", r.Description)
		}
		fmt.Printf(" [%s >= %d]\n", r.TriggerType, r.Threshold)
	}
}
