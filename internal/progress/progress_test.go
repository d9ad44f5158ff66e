package progress

import (
	"errors"
	"reflect"
	"testing"

	"github.com/dailystep/dailystep/internal/models"
)

func activity(id int, start, end string) models.Activity {
	return models.Activity{
		ID:         id,
		ScheduleID: 1,
		IconName:   "study",
		StartTime:  "2025-12-26T" + start + ":00.000Z",
		EndTime:    "2025-12-26T" + end + ":00.000Z",
	}
}

func TestComputeEmpty(t *testing.T) {
	snap := Compute(nil, 600)
	if snap.Total != 0 || snap.Completed != 0 {
		t.Errorf("Compute(nil) counts = %d/%d, want 0/0", snap.Completed, snap.Total)
	}
	if snap.Percentage != 0 {
		t.Errorf("Compute(nil) percentage = %v, want 0", snap.Percentage)
	}
	if snap.Current != nil {
		t.Error("Compute(nil) found a current activity")
	}
}

func TestComputeCounts(t *testing.T) {
	activities := []models.Activity{
		activity(1, "06:00", "07:00"),
		activity(2, "09:00", "10:00"),
		activity(3, "14:00", "15:00"),
		activity(4, "20:00", "21:00"),
	}

	// At 09:30 the first activity is done, the second in progress, two upcoming.
	snap := Compute(activities, 9*60+30)

	if snap.Total != 4 {
		t.Errorf("Total = %d, want 4", snap.Total)
	}
	if snap.Completed != 1 {
		t.Errorf("Completed = %d, want 1", snap.Completed)
	}
	if snap.Percentage != 0.25 {
		t.Errorf("Percentage = %v, want 0.25", snap.Percentage)
	}
	if snap.Current == nil || snap.Current.ID != 2 {
		t.Errorf("Current = %+v, want activity 2", snap.Current)
	}
	if len(snap.Upcoming) != 2 {
		t.Fatalf("len(Upcoming) = %d, want 2", len(snap.Upcoming))
	}
	if snap.Upcoming[0].ID != 3 || snap.Upcoming[1].ID != 4 {
		t.Errorf("Upcoming order = [%d %d], want [3 4]", snap.Upcoming[0].ID, snap.Upcoming[1].ID)
	}
}

func TestComputeCompletedNeverExceedsTotal(t *testing.T) {
	activities := []models.Activity{
		activity(1, "06:00", "07:00"),
		activity(2, "07:00", "08:00"),
	}
	for _, now := range []int{0, 360, 420, 480, 1439} {
		snap := Compute(activities, now)
		if snap.Completed > snap.Total {
			t.Errorf("now=%d: Completed %d > Total %d", now, snap.Completed, snap.Total)
		}
		if snap.Percentage < 0 || snap.Percentage > 1 {
			t.Errorf("now=%d: Percentage %v out of [0,1]", now, snap.Percentage)
		}
	}
}

func TestComputeUpcomingBoundAndOrder(t *testing.T) {
	activities := []models.Activity{
		activity(5, "22:00", "23:00"),
		activity(3, "18:00", "19:00"),
		activity(4, "20:00", "21:00"),
		activity(2, "16:00", "17:00"),
		activity(1, "14:00", "15:00"),
	}

	snap := Compute(activities, 12*60)
	if len(snap.Upcoming) != UpcomingLimit {
		t.Fatalf("len(Upcoming) = %d, want %d", len(snap.Upcoming), UpcomingLimit)
	}
	for i, wantID := range []int{1, 2, 3} {
		if snap.Upcoming[i].ID != wantID {
			t.Errorf("Upcoming[%d].ID = %d, want %d", i, snap.Upcoming[i].ID, wantID)
		}
	}
}

func TestComputeIdempotent(t *testing.T) {
	activities := []models.Activity{
		activity(1, "06:00", "07:00"),
		activity(2, "09:00", "10:00"),
	}
	first := Compute(activities, 570)
	second := Compute(activities, 570)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Compute not idempotent:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestComputeDoesNotMutateInput(t *testing.T) {
	activities := []models.Activity{
		activity(2, "09:00", "10:00"),
		activity(1, "06:00", "07:00"),
	}
	before := make([]models.Activity, len(activities))
	copy(before, activities)

	Compute(activities, 570)

	if !reflect.DeepEqual(activities, before) {
		t.Error("Compute mutated its input slice")
	}
}

func TestComputeUnparsedTimes(t *testing.T) {
	activities := []models.Activity{
		activity(1, "06:00", "07:00"),
		{ID: 2, ScheduleID: 1, StartTime: "garbage", EndTime: "2025-12-26T10:00:00.000Z"},
	}

	snap := Compute(activities, 9*60+30)

	if snap.Total != 2 {
		t.Errorf("Total = %d, want 2 (unparsed entries still counted)", snap.Total)
	}
	if snap.Unparsed != 1 {
		t.Errorf("Unparsed = %d, want 1", snap.Unparsed)
	}
	// The broken entry must never be reported as completed or current.
	if snap.Completed != 1 {
		t.Errorf("Completed = %d, want 1", snap.Completed)
	}
	if snap.Current != nil {
		t.Errorf("Current = %+v, want nil", snap.Current)
	}
}

func TestComputeBoundaryMinutes(t *testing.T) {
	activities := []models.Activity{activity(1, "09:00", "10:00")}

	// Exactly at start: in progress.
	if snap := Compute(activities, 540); snap.Current == nil {
		t.Error("at start minute: expected current activity")
	}
	// Exactly at end: completed, not current.
	snap := Compute(activities, 600)
	if snap.Current != nil {
		t.Error("at end minute: activity still current")
	}
	if snap.Completed != 1 {
		t.Errorf("at end minute: Completed = %d, want 1", snap.Completed)
	}
}

func TestValidateInterval(t *testing.T) {
	existing := []models.Activity{activity(1, "09:00", "10:00")}

	tests := []struct {
		name    string
		start   int
		end     int
		wantErr error
	}{
		{
			name:  "adjacent after",
			start: 600,
			end:   660,
		},
		{
			name:  "adjacent before",
			start: 480,
			end:   540,
		},
		{
			name:    "one minute overlap",
			start:   599,
			end:     660,
			wantErr: ErrOverlap,
		},
		{
			name:    "contained",
			start:   550,
			end:     560,
			wantErr: ErrOverlap,
		},
		{
			name:    "surrounding",
			start:   500,
			end:     700,
			wantErr: ErrOverlap,
		},
		{
			name:    "inverted range",
			start:   630,
			end:     600,
			wantErr: ErrInvalidRange,
		},
		{
			name:    "empty range",
			start:   600,
			end:     600,
			wantErr: ErrInvalidRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInterval(tt.start, tt.end, existing)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateInterval(%d, %d) = %v, want %v", tt.start, tt.end, err, tt.wantErr)
			}
		})
	}
}

func TestValidateIntervalInvalidRangeWins(t *testing.T) {
	// An inverted range is rejected before any overlap check.
	existing := []models.Activity{activity(1, "09:00", "10:00")}
	if err := ValidateInterval(570, 540, existing); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("ValidateInterval() = %v, want ErrInvalidRange", err)
	}
}

func TestValidateIntervalExcluding(t *testing.T) {
	existing := []models.Activity{
		activity(1, "09:00", "10:00"),
		activity(2, "11:00", "12:00"),
	}

	// Re-saving activity 1 over its own slot is fine once excluded.
	if err := ValidateIntervalExcluding(540, 600, existing, 1); err != nil {
		t.Errorf("ValidateIntervalExcluding() = %v, want nil", err)
	}
	// But it still cannot collide with activity 2.
	if err := ValidateIntervalExcluding(660, 720, existing, 1); !errors.Is(err, ErrOverlap) {
		t.Errorf("ValidateIntervalExcluding() = %v, want ErrOverlap", err)
	}
}

func TestValidateIntervalSkipsUnparseable(t *testing.T) {
	existing := []models.Activity{
		{ID: 1, StartTime: "garbage", EndTime: "also-garbage"},
	}
	if err := ValidateInterval(540, 600, existing); err != nil {
		t.Errorf("ValidateInterval() = %v, want nil for unparseable existing entry", err)
	}
}
