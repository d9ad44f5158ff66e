// Package session holds the authenticated user's local state: the auth token
// in the OS keyring (with a file fallback for headless machines) and the
// username/user id in a profile file under the config dir. Engines never read
// this directly; the API client does.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zalando/go-keyring"

	"github.com/dailystep/dailystep/internal/constants"
	"github.com/dailystep/dailystep/internal/logger"
)

// ErrNoSession is returned when no saved session exists.
var ErrNoSession = errors.New("no saved session")

// Profile is the non-secret part of a session, persisted as JSON.
type Profile struct {
	Username string `json:"username"`
	UserID   int    `json:"user_id"`
}

// Store reads and writes the session for one config dir.
type Store struct {
	dir string
}

// NewStore returns a session store rooted at the given config dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) profilePath() string {
	return filepath.Join(s.dir, constants.ProfileFileName)
}

func (s *Store) tokenPath() string {
	return filepath.Join(s.dir, constants.TokenFileName)
}

// Save persists a full session: token to the keyring (file fallback) and
// profile to disk.
func (s *Store) Save(token, username string, userID int) error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := keyring.Set(constants.AppName, constants.KeyringTokenUser, token); err != nil {
		logger.Warn("OS keyring unavailable, storing token on disk", "error", err)
		if err := os.WriteFile(s.tokenPath(), []byte(token), 0600); err != nil {
			return fmt.Errorf("failed to store token: %w", err)
		}
	}

	data, err := json.MarshalIndent(Profile{Username: username, UserID: userID}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.profilePath(), data, 0600); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	return nil
}

// Token returns the stored auth token, or ErrNoSession.
func (s *Store) Token() (string, error) {
	token, err := keyring.Get(constants.AppName, constants.KeyringTokenUser)
	if err == nil && token != "" {
		return token, nil
	}

	data, ferr := os.ReadFile(s.tokenPath())
	if ferr != nil || len(data) == 0 {
		return "", ErrNoSession
	}
	return string(data), nil
}

// Profile returns the stored username and user id, or ErrNoSession.
func (s *Store) Profile() (Profile, error) {
	data, err := os.ReadFile(s.profilePath())
	if err != nil {
		return Profile{}, ErrNoSession
	}
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("corrupt profile file: %w", err)
	}
	return p, nil
}

// Clear removes the session from keyring and disk. Missing pieces are not errors.
func (s *Store) Clear() error {
	if err := keyring.Delete(constants.AppName, constants.KeyringTokenUser); err != nil && err != keyring.ErrNotFound {
		logger.Warn("failed to remove token from keyring", "error", err)
	}
	if err := os.Remove(s.tokenPath()); err != nil && !os.IsNotExist(err) {
		return err
	}
	if err := os.Remove(s.profilePath()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
