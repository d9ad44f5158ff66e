package models

// Task is an independent to-do item with a deadline, optionally linked to a
// schedule. The deadline is an ISO-8601 instant normalized client-side before
// it is ever sent.
type Task struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Deadline    string `json:"deadline"`
	IsCompleted bool   `json:"is_completed"`
	UserID      int    `json:"user_id"`
	ScheduleID  *int   `json:"schedule_id,omitempty"`
}

// CreateTaskRequest is the create payload for a new task.
type CreateTaskRequest struct {
	ScheduleID  *int   `json:"schedule_id,omitempty"`
	Title       string `json:"title"`
	Deadline    string `json:"deadline"`
	Description string `json:"description,omitempty"`
}

// UpdateTaskRequest toggles completion or renames a task. This client supports
// no other in-place edits.
type UpdateTaskRequest struct {
	ID          int    `json:"id"`
	IsCompleted *bool  `json:"is_completed,omitempty"`
	Title       string `json:"title,omitempty"`
}

// TaskListResponse wraps the task collection endpoint payload.
type TaskListResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    []Task `json:"data"`
}

// TaskResponse wraps a single-task payload.
type TaskResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    Task   `json:"data"`
}

// TaskStatusResponse is the bare success/message reply of delete endpoints.
type TaskStatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
