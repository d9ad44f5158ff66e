// Package cache keeps the last successfully fetched server data in a local
// SQLite database so the dashboard and task list can still render when the
// backend is unreachable. It is a snapshot cache: each save replaces the
// previous snapshot for that user wholesale.
package cache

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/dailystep/dailystep/internal/models"
)

const currentVersion = 1

// Store is the local snapshot cache.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the cache database at dbPath.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o700); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}
	db.SetMaxOpenConns(1)

	for _, p := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate cache: %w", err)
	}
	return s, nil
}

// OpenMemory creates an in-memory cache for testing.
func OpenMemory() (*Store, error) {
	return Open(":memory:")
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}
	if version >= currentVersion {
		return nil
	}

	const ddl = `
	CREATE TABLE IF NOT EXISTS schedules (
		id                  INTEGER PRIMARY KEY,
		user_id             INTEGER NOT NULL,
		date                TEXT NOT NULL,
		total_tasks         INTEGER NOT NULL DEFAULT 0,
		completed_tasks     INTEGER NOT NULL DEFAULT 0,
		progress_percentage REAL NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS activities (
		id           INTEGER PRIMARY KEY,
		schedule_id  INTEGER NOT NULL,
		icon_name    TEXT NOT NULL DEFAULT '',
		start_time   TEXT NOT NULL,
		end_time     TEXT NOT NULL,
		description  TEXT NOT NULL DEFAULT '',
		is_completed INTEGER NOT NULL DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_activities_schedule ON activities(schedule_id);

	CREATE TABLE IF NOT EXISTS tasks (
		id           INTEGER PRIMARY KEY,
		user_id      INTEGER NOT NULL,
		schedule_id  INTEGER,
		title        TEXT NOT NULL,
		description  TEXT NOT NULL DEFAULT '',
		deadline     TEXT NOT NULL,
		is_completed INTEGER NOT NULL DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_tasks_user ON tasks(user_id);

	CREATE TABLE IF NOT EXISTS rewards (
		id           INTEGER PRIMARY KEY,
		title        TEXT NOT NULL,
		description  TEXT NOT NULL DEFAULT '',
		asset_url    TEXT NOT NULL DEFAULT '',
		trigger_type TEXT NOT NULL,
		threshold    INTEGER NOT NULL,
		earned       INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS meta (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	if _, err := s.db.Exec(ddl); err != nil {
		return err
	}

	_, err := s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentVersion))
	return err
}

// touch records when the cache was last refreshed.
func (s *Store) touch() error {
	_, err := s.db.Exec(
		`INSERT INTO meta (key, value) VALUES ('refreshed_at', ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// RefreshedAt returns when the cache was last written, or the zero time.
func (s *Store) RefreshedAt() time.Time {
	var value string
	if err := s.db.QueryRow(`SELECT value FROM meta WHERE key = 'refreshed_at'`).Scan(&value); err != nil {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

// SaveSchedule stores a schedule snapshot.
func (s *Store) SaveSchedule(schedule models.Schedule) error {
	_, err := s.db.Exec(
		`INSERT INTO schedules (id, user_id, date, total_tasks, completed_tasks, progress_percentage)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   user_id = excluded.user_id, date = excluded.date,
		   total_tasks = excluded.total_tasks, completed_tasks = excluded.completed_tasks,
		   progress_percentage = excluded.progress_percentage`,
		schedule.ID, schedule.UserID, schedule.Date,
		schedule.TotalTasks, schedule.CompletedTasks, schedule.ProgressPercentage,
	)
	if err != nil {
		return fmt.Errorf("save schedule: %w", err)
	}
	return s.touch()
}

// ScheduleForDate returns the cached schedule whose date starts with the given
// YYYY-MM-DD day, if any.
func (s *Store) ScheduleForDate(userID int, day string) (models.Schedule, bool) {
	var sc models.Schedule
	err := s.db.QueryRow(
		`SELECT id, user_id, date, total_tasks, completed_tasks, progress_percentage
		 FROM schedules WHERE user_id = ? AND date LIKE ? || '%'`,
		userID, day,
	).Scan(&sc.ID, &sc.UserID, &sc.Date, &sc.TotalTasks, &sc.CompletedTasks, &sc.ProgressPercentage)
	if err != nil {
		return models.Schedule{}, false
	}
	return sc, true
}

// SaveActivities replaces the cached activity set for one schedule.
func (s *Store) SaveActivities(scheduleID int, activities []models.Activity) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM activities WHERE schedule_id = ?`, scheduleID); err != nil {
		return fmt.Errorf("clear cached activities: %w", err)
	}
	for _, a := range activities {
		completed := 0
		if a.IsCompleted {
			completed = 1
		}
		if _, err := tx.Exec(
			`INSERT INTO activities (id, schedule_id, icon_name, start_time, end_time, description, is_completed)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			a.ID, scheduleID, a.IconName, a.StartTime, a.EndTime, a.Description, completed,
		); err != nil {
			return fmt.Errorf("cache activity %d: %w", a.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	return s.touch()
}

// Activities returns the cached activities for one schedule in insertion order.
func (s *Store) Activities(scheduleID int) ([]models.Activity, error) {
	rows, err := s.db.Query(
		`SELECT id, schedule_id, icon_name, start_time, end_time, description, is_completed
		 FROM activities WHERE schedule_id = ? ORDER BY rowid`,
		scheduleID,
	)
	if err != nil {
		return nil, fmt.Errorf("load cached activities: %w", err)
	}
	defer rows.Close()

	var activities []models.Activity
	for rows.Next() {
		var a models.Activity
		var completed int
		if err := rows.Scan(&a.ID, &a.ScheduleID, &a.IconName, &a.StartTime, &a.EndTime, &a.Description, &completed); err != nil {
			return nil, err
		}
		a.IsCompleted = completed == 1
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

// SaveTasks replaces the cached task set for one user.
func (s *Store) SaveTasks(userID int, tasks []models.Task) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM tasks WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("clear cached tasks: %w", err)
	}
	for _, task := range tasks {
		completed := 0
		if task.IsCompleted {
			completed = 1
		}
		var scheduleID interface{}
		if task.ScheduleID != nil {
			scheduleID = *task.ScheduleID
		}
		if _, err := tx.Exec(
			`INSERT INTO tasks (id, user_id, schedule_id, title, description, deadline, is_completed)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			task.ID, userID, scheduleID, task.Title, task.Description, task.Deadline, completed,
		); err != nil {
			return fmt.Errorf("cache task %d: %w", task.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	return s.touch()
}

// Tasks returns the cached tasks for one user.
func (s *Store) Tasks(userID int) ([]models.Task, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, schedule_id, title, description, deadline, is_completed
		 FROM tasks WHERE user_id = ? ORDER BY rowid`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("load cached tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var task models.Task
		var completed int
		var scheduleID sql.NullInt64
		if err := rows.Scan(&task.ID, &task.UserID, &scheduleID, &task.Title, &task.Description, &task.Deadline, &completed); err != nil {
			return nil, err
		}
		task.IsCompleted = completed == 1
		if scheduleID.Valid {
			id := int(scheduleID.Int64)
			task.ScheduleID = &id
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}
