package api

import (
	"time"

	"github.com/valyala/fasthttp"
)

// Ping checks that the backend answers HTTP at all. Any status code counts as
// reachable; only transport failures are errors.
func (c *Client) Ping() error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + "/")
	req.Header.SetMethod(fasthttp.MethodGet)

	return c.http.DoTimeout(req, resp, 5*time.Second)
}
