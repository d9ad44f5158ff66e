package api

import (
	"fmt"

	"github.com/valyala/fasthttp"

	"github.com/dailystep/dailystep/internal/models"
)

// GetActivities fetches all activities for one schedule, in declared order.
func (c *Client) GetActivities(scheduleID int) ([]models.Activity, error) {
	var out models.ActivityListResponse
	path := fmt.Sprintf("/api/schedule-activity/schedule/%d", scheduleID)
	if err := c.doJSON(fasthttp.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// CreateActivity adds a new activity to a schedule.
func (c *Client) CreateActivity(req models.ActivityRequest) (models.Activity, error) {
	var out models.ActivityResponse
	if err := c.doJSON(fasthttp.MethodPost, "/api/schedule-activity", req, &out); err != nil {
		return models.Activity{}, err
	}
	return out.Data, nil
}

// UpdateActivity replaces an activity's editable fields.
func (c *Client) UpdateActivity(req models.ActivityUpdateRequest) error {
	path := fmt.Sprintf("/api/schedule-activity/%d", req.ID)
	return c.doJSON(fasthttp.MethodPut, path, req, nil)
}

// DeleteActivity removes an activity by id.
func (c *Client) DeleteActivity(activityID int) error {
	path := fmt.Sprintf("/api/schedule-activity/%d", activityID)
	return c.doJSON(fasthttp.MethodDelete, path, nil, nil)
}
