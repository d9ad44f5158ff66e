package models

// Activity is one planned time block within a day's schedule. Times are stored
// as ISO-8601 date-time strings exactly as the backend returns them; minute-of-day
// conversion happens in the progress engine.
type Activity struct {
	ID          int    `json:"id"`
	ScheduleID  int    `json:"scheduleId"`
	IconName    string `json:"iconName"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Description string `json:"description"`
	IsCompleted bool   `json:"isCompleted"`
}

// ActivityRequest is the create payload for a new activity.
type ActivityRequest struct {
	ScheduleID  int    `json:"scheduleId"`
	IconName    string `json:"iconName"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Description string `json:"description"`
}

// ActivityUpdateRequest is the update payload for an existing activity.
type ActivityUpdateRequest struct {
	ID          int    `json:"id"`
	IconName    string `json:"iconName"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Description string `json:"description"`
	IsCompleted *bool  `json:"isCompleted,omitempty"`
}

// ActivityListResponse wraps the activity collection endpoint payload.
type ActivityListResponse struct {
	Data []Activity `json:"data"`
}

// ActivityResponse wraps a single-activity payload.
type ActivityResponse struct {
	Data Activity `json:"data"`
}
