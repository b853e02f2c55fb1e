package keepalive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	// DefaultTimeout bounds a single ping request.
	DefaultTimeout = 10 * time.Second
	// DefaultMaxTries is the total number of attempts per ping.
	DefaultMaxTries = 3
	// DefaultBackoff is the unit of linear backoff between attempts.
	DefaultBackoff = time.Second
)

// retriableStatusCodes are response codes worth another attempt.
var retriableStatusCodes = []int{
	http.StatusRequestTimeout,      // 408
	http.StatusTooManyRequests,     // 429
	http.StatusInternalServerError, // 500
	http.StatusBadGateway,          // 502
	http.StatusServiceUnavailable,  // 503
	http.StatusGatewayTimeout,      // 504
}

// Client pings a Supabase project so its free-tier inactivity timer is
// reset. Transient failures are retried with linear backoff.
type Client struct {
	BaseURL  string
	Key      string
	MaxTries int
	Backoff  time.Duration

	*http.Client
}

func NewClient(cfg *Config, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		BaseURL:  strings.TrimRight(cfg.URL, "/"),
		Key:      cfg.Key,
		MaxTries: DefaultMaxTries,
		Backoff:  DefaultBackoff,
		Client:   &http.Client{Timeout: timeout},
	}
}

// Ping issues a minimal query against the project's REST endpoint. The
// queried table does not need to hold data; the point is to generate
// database activity.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/rest/v1/_keepalive?select=%%2A&limit=1", c.BaseURL), nil)
	if err != nil {
		return errors.Wrap(err, "failed to build ping request")
	}

	req.Header.Set("apikey", c.Key)
	req.Header.Set("Authorization", "Bearer "+c.Key)

	return c.do(req)
}

// AuthPing signs in with an email/password pair, a heavier touch that
// also exercises the project's auth schema.
func (c *Client) AuthPing(ctx context.Context, email, password string) error {
	payload, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return errors.Wrap(err, "failed to encode credentials")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/auth/v1/token?grant_type=password", c.BaseURL), bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "failed to build sign-in request")
	}

	req.Header.Set("apikey", c.Key)
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

// do sends the request, retrying on network errors and transient
// response codes. The request body, if any, is buffered by the caller
// so it can be replayed.
func (c *Client) do(req *http.Request) error {
	tries := c.MaxTries
	if tries < 1 {
		tries = 1
	}

	var lastErr error
	for attempt := 1; attempt <= tries; attempt++ {
		if attempt > 1 {
			backoff := time.Duration(attempt-1) * c.Backoff
			select {
			case <-time.After(backoff):
			case <-req.Context().Done():
				return req.Context().Err()
			}
		}

		attemptReq := req.Clone(req.Context())
		if req.GetBody != nil {
			body, err := req.GetBody()
			if err != nil {
				return errors.Wrap(err, "failed to rewind request body")
			}
			attemptReq.Body = body
		}

		resp, err := c.Do(attemptReq)
		if err != nil {
			lastErr = err
			log.WithError(err).Warnf("ping attempt %d/%d failed", attempt, tries)
			continue
		}

		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return nil
		}

		lastErr = fmt.Errorf("unexpected response status %q: %s", resp.Status, strings.TrimSpace(string(body)))
		if !retriableStatus(resp.StatusCode) {
			return lastErr
		}
		log.Warnf("ping attempt %d/%d failed: %s", attempt, tries, resp.Status)
	}

	return errors.Wrap(lastErr, "all ping attempts failed")
}

func retriableStatus(code int) bool {
	for _, c := range retriableStatusCodes {
		if code == c {
			return true
		}
	}
	return false
}
