// Package config resolves where dailystep keeps its local state and which
// backend it talks to. Values come from flags, DAILYSTEP_* environment
// variables, and an optional .env file, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/dailystep/dailystep/internal/constants"
)

// Config is the resolved application configuration.
type Config struct {
	ConfigDir string
	ServerURL string
	Debug     bool
}

// Load resolves the configuration. dirFlag and serverFlag come from the CLI
// and may be empty. A .env file in the working directory is loaded first so
// local development setups work without exporting anything.
func Load(dirFlag, serverFlag string, debugFlag bool) (Config, error) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	dir := dirFlag
	if dir == "" {
		dir = constants.DefaultConfigDir
	}
	dir, err := ExpandPath(dir)
	if err != nil {
		return Config{}, err
	}

	server := serverFlag
	if server == "" {
		server = os.Getenv(constants.EnvServerURL)
	}
	if server == "" {
		server = constants.DefaultServerURL
	}
	server = strings.TrimSuffix(server, "/")

	debug := debugFlag
	if !debug {
		if v := os.Getenv(constants.EnvDebug); v == "1" || strings.EqualFold(v, "true") {
			debug = true
		}
	}

	return Config{ConfigDir: dir, ServerURL: server, Debug: debug}, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot resolve home directory: %w", err)
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}
