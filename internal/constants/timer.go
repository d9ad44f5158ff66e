package constants

const (
	// Default Pomodoro durations in minutes.
	DefaultFocusMinutes      = 25
	DefaultShortBreakMinutes = 5
	DefaultLongBreakMinutes  = 15

	// LongBreakCadence is the number of completed focus sessions between long breaks.
	LongBreakCadence = 4

	// DashboardRefreshSeconds is how often the dashboard view recomputes progress.
	DashboardRefreshSeconds = 10
)
