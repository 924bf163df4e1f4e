// Package api implements the Sanita REST endpoints on top of resty.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"resty.dev/v3"
)

const (
	// DefaultBaseURL is the production server.
	DefaultBaseURL   = "https://e-comemerse-sanita-production.up.railway.app/"
	DefaultUserAgent = "Sanita/1.0"
	DefaultTimeout   = 15 * time.Second

	requestIDHeader = "X-Request-ID"
)

// Options configures a Client.
type Options struct {
	BaseURL           string
	UserAgent         string
	Timeout           time.Duration
	RequestsPerSecond float64
	Logger            logrus.FieldLogger
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s: HTTP %d", e.Method, e.Path, e.Status)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Client talks to the Sanita server. It is safe for concurrent use.
type Client struct {
	http    *resty.Client
	limiter *rate.Limiter
	log     logrus.FieldLogger
}

// New constructs a Client. Zero options fall back to defaults.
func New(opt Options) *Client {
	baseURL := strings.TrimSpace(opt.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	ua := strings.TrimSpace(opt.UserAgent)
	if ua == "" {
		ua = DefaultUserAgent
	}
	timeout := opt.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	logger := opt.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("User-Agent", ua).
		SetHeader("Accept", "application/json")

	var limiter *rate.Limiter
	if opt.RequestsPerSecond > 0 {
		burst := max(int(opt.RequestsPerSecond), 1)
		limiter = rate.NewLimiter(rate.Limit(opt.RequestsPerSecond), burst)
	}

	return new(Client{http: httpClient, limiter: limiter, log: logger})
}

// Close releases idle connections.
func (c *Client) Close() error {
	return c.http.Close()
}

type call struct {
	method string
	path   string
	body   any
	form   map[string]string
	query  map[string]string
	// lenient accepts a success body that is empty or not JSON.
	lenient bool
}

func (c *Client) do(ctx context.Context, cl call, out any) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%s %s: %w", cl.method, cl.path, err)
		}
	}

	reqID := uuid.New().String()
	entry := c.log.WithFields(logrus.Fields{
		"request_id": reqID,
		"method":     cl.method,
		"path":       cl.path,
	})

	req := c.http.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, reqID)
	if cl.body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(cl.body)
	}
	if cl.form != nil {
		req.SetFormData(cl.form)
	}
	if cl.query != nil {
		req.SetQueryParams(cl.query)
	}

	start := time.Now()
	resp, err := req.Execute(cl.method, cl.path)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			entry.WithError(ctxErr).Debug("request cancelled")
			return fmt.Errorf("%s %s: %w", cl.method, cl.path, ctxErr)
		}
		entry.WithError(err).Warn("request failed")
		return fmt.Errorf("%s %s: %w", cl.method, cl.path, err)
	}
	entry = entry.WithFields(logrus.Fields{
		"status":  resp.StatusCode(),
		"elapsed": time.Since(start).Round(time.Millisecond),
	})

	body := resp.String()
	if resp.IsError() || resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		entry.Warn("unexpected status")
		return &StatusError{
			Method: cl.method,
			Path:   cl.path,
			Status: resp.StatusCode(),
			Body:   errorMessage(body),
		}
	}
	entry.Debug("request done")

	if out == nil {
		return nil
	}
	if err := json.Unmarshal([]byte(body), out); err != nil {
		if cl.lenient {
			return nil
		}
		entry.WithError(err).Warn("decode failed")
		return fmt.Errorf("%s %s: decode response: %w", cl.method, cl.path, err)
	}
	return nil
}

// errorMessage prefers the server's mensaje field and falls back to the trimmed body.
func errorMessage(body string) string {
	body = strings.TrimSpace(body)
	if body == "" {
		return ""
	}
	var env struct {
		Message string `json:"mensaje"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal([]byte(body), &env); err == nil {
		switch {
		case env.Message != "":
			return env.Message
		case env.Error != "":
			return env.Error
		}
	}
	const limit = 200
	body = strings.ToValidUTF8(body, "\uFFFD")
	if utf8.RuneCountInString(body) > limit {
		return string([]rune(body)[:limit]) + "..."
	}
	return body
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == 404
}
