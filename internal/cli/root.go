package cli

import (
	"errors"
	"path/filepath"

	"github.com/dailystep/dailystep/internal/api"
	"github.com/dailystep/dailystep/internal/cache"
	"github.com/dailystep/dailystep/internal/config"
	"github.com/dailystep/dailystep/internal/constants"
	"github.com/dailystep/dailystep/internal/session"
)

// Context carries the shared collaborators into every command's Run method.
type Context struct {
	Cfg     config.Config
	API     *api.Client
	Session *session.Store
}

// RequireIdentity loads the saved session, attaches its token to the API
// client, and returns the profile. Commands that talk to the backend call
// this first.
func (c *Context) RequireIdentity() (session.Profile, error) {
	token, err := c.Session.Token()
	if err != nil {
		return session.Profile{}, errors.New(constants.MsgNotAuthenticated)
	}
	profile, err := c.Session.Profile()
	if err != nil {
		return session.Profile{}, errors.New(constants.MsgNotAuthenticated)
	}
	c.API.SetToken(token)
	return profile, nil
}

// OpenCache opens the offline snapshot cache under the config dir.
func (c *Context) OpenCache() (*cache.Store, error) {
	return cache.Open(filepath.Join(c.Cfg.ConfigDir, constants.CacheFileName))
}
