package api

import (
	"fmt"

	"github.com/valyala/fasthttp"

	"github.com/dailystep/dailystep/internal/models"
)

// GetSchedules fetches all schedules belonging to a user.
func (c *Client) GetSchedules(userID int) ([]models.Schedule, error) {
	var out models.ScheduleListResponse
	path := fmt.Sprintf("/api/schedule/user/%d", userID)
	if err := c.doJSON(fasthttp.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// CreateSchedule creates a schedule for the given day (ISO start-of-day string).
func (c *Client) CreateSchedule(userID int, dateISO string) (models.Schedule, error) {
	req := models.ScheduleRequest{UserID: &userID, Date: dateISO}
	var out models.ScheduleResponse
	if err := c.doJSON(fasthttp.MethodPost, "/api/schedule", req, &out); err != nil {
		return models.Schedule{}, err
	}
	return out.Data, nil
}

// UpdateScheduleCounters pushes recomputed denormalized counters back to the
// schedule aggregate. percentage is 0-100. Callers treat failures as
// fire-and-forget; the counters are a cache, not a source of truth.
func (c *Client) UpdateScheduleCounters(scheduleID, total, completed int, percentage float64) error {
	req := models.ScheduleRequest{
		ID:                 &scheduleID,
		TotalTasks:         &total,
		CompletedTasks:     &completed,
		ProgressPercentage: &percentage,
	}
	return c.doJSON(fasthttp.MethodPut, "/api/schedule", req, nil)
}
