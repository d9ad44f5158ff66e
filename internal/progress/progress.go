// Package progress derives the dashboard view of a day's schedule: completion
// counters, the activity currently in progress, and the next few upcoming
// activities. It is a pure computation layer; fetching and persisting
// activities is the caller's job.
package progress

import (
	"errors"
	"sort"

	"github.com/dailystep/dailystep/internal/models"
	"github.com/dailystep/dailystep/internal/utils"
)

var (
	// ErrInvalidRange is returned when a candidate interval ends at or before its start.
	ErrInvalidRange = errors.New("end time must be later than start time")
	// ErrOverlap is returned when a candidate interval intersects an existing activity.
	ErrOverlap = errors.New("interval overlaps an existing activity")
)

// UpcomingLimit bounds the upcoming-activities list in a snapshot.
const UpcomingLimit = 3

// Snapshot is the derived, read-only view of a day's schedule at one moment.
type Snapshot struct {
	Completed  int
	Total      int
	Percentage float64 // [0,1]
	Current    *models.Activity
	Upcoming   []models.Activity
	// Unparsed counts activities whose start or end time could not be parsed.
	// They are included in Total but excluded from current/upcoming detection
	// and never counted as completed.
	Unparsed int
}

// Compute derives a Snapshot from the given activities and the current
// minute-of-day. It never mutates its input and is idempotent: identical
// inputs always produce identical output.
func Compute(activities []models.Activity, nowMinute int) Snapshot {
	snap := Snapshot{Total: len(activities)}

	for i := range activities {
		a := &activities[i]
		startMin, startOK := utils.MinuteOfDay(a.StartTime)
		endMin, endOK := utils.MinuteOfDay(a.EndTime)

		if !startOK || !endOK {
			snap.Unparsed++
			continue
		}

		if nowMinute >= endMin {
			snap.Completed++
		}

		if snap.Current == nil && startMin <= nowMinute && nowMinute < endMin {
			current := *a
			snap.Current = &current
		}

		if startMin > nowMinute {
			snap.Upcoming = append(snap.Upcoming, *a)
		}
	}

	if snap.Total > 0 {
		snap.Percentage = float64(snap.Completed) / float64(snap.Total)
	}

	// Same-day ISO strings sort consistently with time order.
	sort.SliceStable(snap.Upcoming, func(i, j int) bool {
		return snap.Upcoming[i].StartTime < snap.Upcoming[j].StartTime
	})
	if len(snap.Upcoming) > UpcomingLimit {
		snap.Upcoming = snap.Upcoming[:UpcomingLimit]
	}

	return snap
}

// ValidateInterval checks a candidate [start,end) minute-of-day range against
// the existing activities. It reports ErrInvalidRange for inverted or empty
// ranges and ErrOverlap when any existing interval intersects the candidate.
// Activities with unparseable times cannot be checked and are skipped.
func ValidateInterval(candidateStart, candidateEnd int, existing []models.Activity) error {
	if candidateEnd <= candidateStart {
		return ErrInvalidRange
	}

	for i := range existing {
		exStart, startOK := utils.MinuteOfDay(existing[i].StartTime)
		exEnd, endOK := utils.MinuteOfDay(existing[i].EndTime)
		if !startOK || !endOK {
			continue
		}
		if candidateStart < exEnd && candidateEnd > exStart {
			return ErrOverlap
		}
	}

	return nil
}

// ValidateIntervalExcluding is ValidateInterval for edits: the activity being
// edited is skipped so it does not collide with its own old time range.
func ValidateIntervalExcluding(candidateStart, candidateEnd int, existing []models.Activity, excludeID int) error {
	filtered := make([]models.Activity, 0, len(existing))
	for _, a := range existing {
		if a.ID == excludeID {
			continue
		}
		filtered = append(filtered, a)
	}
	return ValidateInterval(candidateStart, candidateEnd, filtered)
}
