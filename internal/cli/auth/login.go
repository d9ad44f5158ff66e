package auth

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/dailystep/dailystep/internal/cli"
	"github.com/dailystep/dailystep/internal/session"
)

type LoginCmd struct {
	Email    string `arg:"" help:"Account email address."`
	Password string `short:"p" help:"Password (prompted when omitted)."`
}

func (c *LoginCmd) Run(ctx *cli.Context) error {
	password := c.Password
	if password == "" {
		if err := promptPassword(&password); err != nil {
			return err
		}
	}

	token, err := ctx.API.Login(c.Email, password)
	if err != nil {
		return err
	}

	ident := session.DecodeIdentity(token)
	if ident.UserID == -1 {
		return errors.New("server returned an invalid token")
	}

	if err := ctx.Session.Save(token, ident.Username, ident.UserID); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	fmt.Printf("Logged in as %s\n", ident.Username)
	return nil
}

func promptPassword(out *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(out),
		),
	).Run()
}
