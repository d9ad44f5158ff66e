// Package dashboard orchestrates the daily view: it finds or creates today's
// schedule, fetches its activities, runs the progress engine, and pushes the
// recomputed counters back. The engine stays pure; all I/O happens here.
package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/dailystep/dailystep/internal/logger"
	"github.com/dailystep/dailystep/internal/models"
	"github.com/dailystep/dailystep/internal/progress"
	"github.com/dailystep/dailystep/internal/utils"
)

// Backend is the slice of the API client the dashboard needs.
type Backend interface {
	GetSchedules(userID int) ([]models.Schedule, error)
	CreateSchedule(userID int, dateISO string) (models.Schedule, error)
	GetActivities(scheduleID int) ([]models.Activity, error)
	UpdateScheduleCounters(scheduleID, total, completed int, percentage float64) error
}

// Snapshot bundles the schedule, its activities, and the derived progress view.
type Snapshot struct {
	Schedule   models.Schedule
	Activities []models.Activity
	Progress   progress.Snapshot
	// FromCache marks a snapshot served from the offline cache.
	FromCache bool
}

// LoadToday returns today's schedule and activities, creating the schedule on
// first access for a day that has none.
func LoadToday(backend Backend, userID int) (models.Schedule, []models.Activity, error) {
	today := utils.Today()

	schedules, err := backend.GetSchedules(userID)
	if err != nil {
		return models.Schedule{}, nil, fmt.Errorf("failed to load schedules: %w", err)
	}

	var schedule models.Schedule
	found := false
	for _, s := range schedules {
		if strings.HasPrefix(s.Date, today) {
			schedule = s
			found = true
			break
		}
	}

	if !found {
		schedule, err = backend.CreateSchedule(userID, utils.ISOStartOfDay(today))
		if err != nil {
			return models.Schedule{}, nil, fmt.Errorf("failed to create today's schedule: %w", err)
		}
	}

	activities, err := backend.GetActivities(schedule.ID)
	if err != nil {
		return models.Schedule{}, nil, fmt.Errorf("failed to load activities: %w", err)
	}
	return schedule, activities, nil
}

// Refresh loads today's data and derives the progress snapshot for the given
// wall-clock time, pushing the recomputed counters back fire-and-forget.
func Refresh(backend Backend, userID int, now time.Time) (Snapshot, error) {
	schedule, activities, err := LoadToday(backend, userID)
	if err != nil {
		return Snapshot{}, err
	}

	snap := progress.Compute(activities, utils.NowMinute(now))
	PushCounters(backend, schedule.ID, snap)

	return Snapshot{Schedule: schedule, Activities: activities, Progress: snap}, nil
}

// PushCounters writes the derived counters back to the schedule aggregate.
// Failures are logged and swallowed: the counters are a denormalized cache and
// must never affect the locally displayed snapshot.
func PushCounters(backend Backend, scheduleID int, snap progress.Snapshot) {
	if scheduleID == 0 {
		return
	}
	err := backend.UpdateScheduleCounters(scheduleID, snap.Total, snap.Completed, snap.Percentage*100)
	if err != nil {
		logger.Warn("failed to push schedule counters", "schedule", scheduleID, "error", err)
	}
}
