package auth

import (
	"errors"
	"fmt"

	"github.com/dailystep/dailystep/internal/cli"
	"github.com/dailystep/dailystep/internal/session"
)

type RegisterCmd struct {
	Username string `arg:"" help:"Display name for the new account."`
	Email    string `arg:"" help:"Account email address."`
	Password string `short:"p" help:"Password (prompted when omitted)."`
}

func (c *RegisterCmd) Run(ctx *cli.Context) error {
	password := c.Password
	if password == "" {
		if err := promptPassword(&password); err != nil {
			return err
		}
	}

	token, err := ctx.API.Register(c.Username, c.Email, password)
	if err != nil {
		return err
	}

	ident := session.DecodeIdentity(token)
	if ident.UserID == -1 {
		return errors.New("server returned an invalid token")
	}

	// The register reply's token does not always echo the username back;
	// prefer what the user just typed.
	if err := ctx.Session.Save(token, c.Username, ident.UserID); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	fmt.Printf("Account created. Welcome, %s!\n", c.Username)
	return nil
}
