package imageboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"chancli/pkg/logging"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"
)

const clientSubsystem = "Fetcher"

// maxPayloadBytes caps a single response body; the largest threads are a few MB.
const maxPayloadBytes = 32 << 20

// Fetcher performs one blocking request per resource and returns the raw
// payload or a *FetchError.
type Fetcher interface {
	Fetch(ctx context.Context, r Resource) ([]byte, error)
}

// ClientConfig configures a Client. Zero values select defaults.
type ClientConfig struct {
	BaseURL           string
	Timeout           time.Duration
	RetryMax          int
	RetryWaitMin      time.Duration
	RetryWaitMax      time.Duration
	RequestsPerSecond float64 // 0 disables rate limiting
	UserAgent         string
	HTTPClient        *http.Client
}

// Client fetches resources over HTTP.
type Client struct {
	baseURL   string
	timeout   time.Duration
	userAgent string
	http      *retryablehttp.Client
	limiter   *rate.Limiter
}

// NewClient creates a Client from cfg.
func NewClient(cfg ClientConfig) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.RetryWaitMin <= 0 {
		cfg.RetryWaitMin = 250 * time.Millisecond
	}
	if cfg.RetryWaitMax <= 0 {
		cfg.RetryWaitMax = 2 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "chancli"
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = cfg.RetryMax
	rc.RetryWaitMin = cfg.RetryWaitMin
	rc.RetryWaitMax = cfg.RetryWaitMax
	rc.Logger = leveledLogger{}
	// Hand the final non-2xx response back so it can be classified as remote.
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	if cfg.HTTPClient != nil {
		rc.HTTPClient = cfg.HTTPClient
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		timeout:   cfg.Timeout,
		userAgent: cfg.UserAgent,
		http:      rc,
		limiter:   rate.NewLimiter(limit, 1),
	}
}

// URL returns the absolute URL of r.
func (c *Client) URL(r Resource) string {
	return c.baseURL + "/" + r.Path()
}

// Fetch implements Fetcher. The whole call, including rate-limit waits and
// retries, is bounded by the configured timeout.
func (c *Client) Fetch(ctx context.Context, r Resource) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	logging.Debug(clientSubsystem, "Fetching %s", c.URL(r))

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, c.classify(ctx, r, err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.URL(r), nil)
	if err != nil {
		return nil, &FetchError{Kind: ErrorTransport, Resource: r, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	// With the passthrough error handler a response that exhausted its
	// retries comes back together with a non-nil error.
	resp, err := c.http.Do(req)
	if resp == nil {
		if err == nil {
			err = errors.New("no response")
		}
		fe := c.classify(ctx, r, err)
		logging.Warn(clientSubsystem, "Fetch of %s failed after %s: %v", r, time.Since(start).Round(time.Millisecond), fe)
		return nil, fe
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		logging.Warn(clientSubsystem, "Fetch of %s answered %d", r, resp.StatusCode)
		return nil, &FetchError{Kind: ErrorRemote, Resource: r, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes+1))
	if err != nil {
		return nil, c.classify(ctx, r, err)
	}
	if len(body) > maxPayloadBytes {
		return nil, &FetchError{Kind: ErrorDecode, Resource: r, Err: fmt.Errorf("payload exceeds %d bytes", maxPayloadBytes)}
	}

	logging.Debug(clientSubsystem, "Fetched %s: %d bytes in %s", r, len(body), time.Since(start).Round(time.Millisecond))
	return body, nil
}

// classify turns a transport-level error into a FetchError, preferring the
// state of ctx since client libraries wrap context errors inconsistently.
func (c *Client) classify(ctx context.Context, r Resource, err error) *FetchError {
	switch {
	case errors.Is(ctx.Err(), context.Canceled), errors.Is(err, context.Canceled):
		return &FetchError{Kind: ErrorCanceled, Resource: r, Err: context.Canceled}
	case errors.Is(ctx.Err(), context.DeadlineExceeded), errors.Is(err, context.DeadlineExceeded):
		return &FetchError{Kind: ErrorTimeout, Resource: r, Err: fmt.Errorf("no answer within %s", c.timeout)}
	}
	// rate.Limiter refuses up front when the wait would overrun the deadline.
	if _, ok := ctx.Deadline(); ok && strings.HasPrefix(err.Error(), "rate: ") {
		return &FetchError{Kind: ErrorTimeout, Resource: r, Err: fmt.Errorf("no answer within %s", c.timeout)}
	}
	return &FetchError{Kind: ErrorTransport, Resource: r, Err: err}
}

// leveledLogger routes retryablehttp's diagnostics into pkg/logging.
type leveledLogger struct{}

func (leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	logging.Error(clientSubsystem, nil, "%s %s", msg, formatKV(keysAndValues))
}

func (leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	logging.Debug(clientSubsystem, "%s %s", msg, formatKV(keysAndValues))
}

func (leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	logging.Debug(clientSubsystem, "%s %s", msg, formatKV(keysAndValues))
}

func (leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	logging.Warn(clientSubsystem, "%s %s", msg, formatKV(keysAndValues))
}

func formatKV(kv []interface{}) string {
	var b strings.Builder
	for i := 0; i+1 < len(kv); i += 2 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v=%v", kv[i], kv[i+1])
	}
	return b.String()
}
