package models

// Schedule aggregates one calendar day. The counter fields are a denormalized
// cache of the activity set and are recomputed client-side after every change.
type Schedule struct {
	ID                 int     `json:"id"`
	UserID             int     `json:"userId"`
	Date               string  `json:"date"`
	TotalTasks         int     `json:"totalTasks"`
	CompletedTasks     int     `json:"completedTasks"`
	ProgressPercentage float64 `json:"progressPercentage"`
}

// ScheduleRequest covers both schedule creation (UserID+Date) and counter
// updates (ID+counters); unset fields are omitted from the payload.
type ScheduleRequest struct {
	ID                 *int     `json:"id,omitempty"`
	UserID             *int     `json:"userId,omitempty"`
	Date               string   `json:"date,omitempty"`
	TotalTasks         *int     `json:"totalTasks,omitempty"`
	CompletedTasks     *int     `json:"completedTasks,omitempty"`
	ProgressPercentage *float64 `json:"progressPercentage,omitempty"`
}

// ScheduleListResponse wraps the schedule collection endpoint payload.
type ScheduleListResponse struct {
	Data []Schedule `json:"data"`
}

// ScheduleResponse wraps a single-schedule payload.
type ScheduleResponse struct {
	Data Schedule `json:"data"`
}
