// Package slack posts notifications to a Slack incoming webhook.
package slack

import (
	"bytes"
	"context"
	"domainsync/pkg/logger"
	"domainsync/pkg/notifier"
	"io"
	"net/http"
	"time"

	"github.com/doyensec/safeurl"
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// DefaultTimeout bounds a single webhook call when no timeout is configured.
const DefaultTimeout = 10 * time.Second

// maxErrorBody caps how much of a failed response is kept in the error.
const maxErrorBody = 512

// Options configure the webhook client.
type Options struct {
	// Endpoint is the incoming webhook URL. An empty endpoint turns Notify into
	// a logged no-op.
	Endpoint string
	// HTTPClient performs the requests. Defaults to NewHTTPClient(DefaultTimeout, false).
	HTTPClient *http.Client
}

// Client implements notifier.Notifier on top of a Slack incoming webhook.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// Ensure Client conforms to the notifier.Notifier interface at compile time.
var _ notifier.Notifier = (*Client)(nil)

// NewHTTPClient returns an HTTP client that refuses to dial private,
// loopback and link-local addresses unless allowPrivate is set.
func NewHTTPClient(timeout time.Duration, allowPrivate bool) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	if allowPrivate {
		return &http.Client{Timeout: timeout}
	}

	config := safeurl.GetConfigBuilder().
		SetTimeout(timeout).
		SetAllowedSchemes("http", "https").
		SetAllowedPorts(80, 443).
		Build()

	return safeurl.Client(config).Client
}

// New constructs a webhook Client.
func New(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = NewHTTPClient(DefaultTimeout, false)
	}

	return &Client{
		endpoint:   opts.Endpoint,
		httpClient: httpClient,
	}
}

// encodeMessage renders the webhook payload {"text": text}.
func encodeMessage(text string) []byte {
	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("text", func(e *jx.Encoder) {
			e.Str(text)
		})
	})

	return e.Bytes()
}

// Notify posts text to the webhook. Any non-2xx answer is an error.
func (c *Client) Notify(ctx context.Context, text string) error {
	if c.endpoint == "" {
		logger.Warn(ctx, "slack endpoint is not configured, dropping notification", zap.String("text", text))

		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(encodeMessage(text)))
	if err != nil {
		return errors.Wrap(err, "create request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "send request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return errors.Errorf("unexpected status code %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}

	logger.Debug(ctx, "notification sent")

	return nil
}
