package constants

const (
	AppName          = "dailystep"
	Version          = "v0.3.0"
	DefaultConfigDir = "~/.config/dailystep"
	DefaultServerURL = "http://localhost:3000"
	EnvServerURL     = "DAILYSTEP_SERVER"
	EnvDebug         = "DAILYSTEP_DEBUG"
	KeyringTokenUser = "session-token"
	ProfileFileName  = "profile.json"
	TokenFileName    = "token"
	CacheFileName    = "cache.db"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// User-facing validation messages, kept identical across CLI and TUI.
	MsgInvalidRange        = "End time must be later than start time!"
	MsgOverlap             = "Schedule overlaps with existing task!"
	MsgUnparseableDeadline = "Invalid deadline format. Use ISO (e.g. 2025-12-26T10:00:00Z) or dd-MM-yyyy"
	MsgNotAuthenticated    = "Not authenticated. Run 'dailystep login' first."
)

// Reward trigger types as reported by the backend.
const (
	TriggerStreak          = "STREAK"
	TriggerTaskCount       = "TASK_COUNT"
	TriggerDailyCompletion = "DAILY_COMPLETION"
)
