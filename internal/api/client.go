// Package api is the REST client for the DailyStep backend. It is a thin I/O
// wrapper: no business rules live here, the engines validate before anything
// is sent and recompute after anything changes.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"github.com/dailystep/dailystep/internal/constants"
	"github.com/dailystep/dailystep/internal/logger"
)

// ErrUnauthorized is returned when the backend rejects the session token.
var ErrUnauthorized = errors.New("unauthorized")

const requestTimeout = 15 * time.Second

// StatusError reports a non-2xx response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("server returned %d: %s", e.Code, e.Body)
	}
	return fmt.Sprintf("server returned %d", e.Code)
}

// Client talks to one backend with one session token.
type Client struct {
	baseURL string
	token   string
	http    *fasthttp.Client
}

// NewClient returns a client for the given base URL with no token attached.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http: &fasthttp.Client{
			Name:         constants.AppName + "/" + constants.Version,
			ReadTimeout:  requestTimeout,
			WriteTimeout: requestTimeout,
		},
	}
}

// SetToken attaches the session token sent on every subsequent request.
func (c *Client) SetToken(token string) {
	c.token = token
}

// doJSON performs one JSON request/response cycle. A nil out skips decoding.
func (c *Client) doJSON(method, path string, body interface{}, out interface{}) error {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + path)
	req.Header.SetMethod(method)
	req.Header.SetContentType("application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	}

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		req.SetBody(payload)
	}

	logger.Debug("api request", "method", method, "path", path)
	if err := c.http.DoTimeout(req, resp, requestTimeout); err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}

	code := resp.StatusCode()
	if code == fasthttp.StatusUnauthorized {
		return ErrUnauthorized
	}
	if code < 200 || code > 299 {
		return &StatusError{Code: code, Body: string(resp.Body())}
	}

	if out != nil {
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			return fmt.Errorf("failed to decode response from %s: %w", path, err)
		}
	}
	return nil
}
