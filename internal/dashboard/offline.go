package dashboard

import (
	"fmt"
	"time"

	"github.com/dailystep/dailystep/internal/cache"
	"github.com/dailystep/dailystep/internal/progress"
	"github.com/dailystep/dailystep/internal/utils"
)

// Cached rebuilds today's snapshot from the offline cache, recomputing
// progress for the given wall clock rather than trusting stale counters.
func Cached(store *cache.Store, userID int, now time.Time) (Snapshot, error) {
	schedule, ok := store.ScheduleForDate(userID, utils.Today())
	if !ok {
		return Snapshot{}, fmt.Errorf("server unreachable and no cached schedule for today")
	}
	activities, err := store.Activities(schedule.ID)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		Schedule:   schedule,
		Activities: activities,
		Progress:   progress.Compute(activities, utils.NowMinute(now)),
		FromCache:  true,
	}, nil
}

// Save stores a fresh snapshot in the offline cache.
func Save(store *cache.Store, snap Snapshot) error {
	if err := store.SaveSchedule(snap.Schedule); err != nil {
		return err
	}
	return store.SaveActivities(snap.Schedule.ID, snap.Activities)
}
