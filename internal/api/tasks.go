package api

import (
	"fmt"

	"github.com/valyala/fasthttp"

	"github.com/dailystep/dailystep/internal/models"
)

// GetTasks fetches a user's tasks, optionally filtered to one schedule.
func (c *Client) GetTasks(userID int, scheduleID *int) ([]models.Task, error) {
	path := fmt.Sprintf("/tasks/user/%d", userID)
	if scheduleID != nil {
		path = fmt.Sprintf("%s?schedule_id=%d", path, *scheduleID)
	}
	var out models.TaskListResponse
	if err := c.doJSON(fasthttp.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// CreateTask adds a new task. The deadline must already be a normalized
// ISO-8601 UTC instant.
func (c *Client) CreateTask(req models.CreateTaskRequest) (models.Task, error) {
	var out models.TaskResponse
	if err := c.doJSON(fasthttp.MethodPost, "/tasks", req, &out); err != nil {
		return models.Task{}, err
	}
	return out.Data, nil
}

// UpdateTask toggles completion or renames a task.
func (c *Client) UpdateTask(req models.UpdateTaskRequest) error {
	return c.doJSON(fasthttp.MethodPut, "/tasks", req, nil)
}

// DeleteTask removes a task by id.
func (c *Client) DeleteTask(taskID int) error {
	path := fmt.Sprintf("/tasks/%d", taskID)
	return c.doJSON(fasthttp.MethodDelete, path, nil, nil)
}
