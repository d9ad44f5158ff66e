package api

import (
	"fmt"

	"github.com/valyala/fasthttp"

	"github.com/dailystep/dailystep/internal/models"
)

// Login exchanges credentials for a session token.
func (c *Client) Login(email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	var out models.AuthResponse
	if err := c.doJSON(fasthttp.MethodPost, "/api/login", body, &out); err != nil {
		return "", fmt.Errorf("login failed: %w", err)
	}
	return out.Data.Token, nil
}

// Register creates an account and returns its session token.
func (c *Client) Register(username, email, password string) (string, error) {
	body := map[string]string{"username": username, "email": email, "password": password}
	var out models.AuthResponse
	if err := c.doJSON(fasthttp.MethodPost, "/api/register", body, &out); err != nil {
		return "", fmt.Errorf("registration failed: %w", err)
	}
	return out.Data.Token, nil
}
