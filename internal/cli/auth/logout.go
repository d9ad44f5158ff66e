package auth

import (
	"fmt"

	"github.com/dailystep/dailystep/internal/cli"
)

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *cli.Context) error {
	if err := ctx.Session.Clear(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	fmt.Println("Logged out")
	return nil
}

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *cli.Context) error {
	profile, err := ctx.RequireIdentity()
	if err != nil {
		return err
	}
	fmt.Printf("%s (user %d) @ %s\n", profile.Username, profile.UserID, ctx.Cfg.ServerURL)
	return nil
}
