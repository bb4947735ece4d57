// Package webhook provides an auditsink.Client that POSTs events as JSON to a
// configured URL.
package webhook

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"taxtoken/pkg/auditsink"
	"taxtoken/pkg/domain"
	"taxtoken/pkg/serrors"
	"time"

	"github.com/go-faster/jx"
)

// Client delivers events to a webhook endpoint. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	url        string
	secret     string
}

// New constructs a Client posting to url. When secret is not empty it is sent
// in the Authorization header as a bearer token.
func New(httpClient *http.Client, url, secret string) *Client {
	return &Client{
		httpClient: httpClient,
		url:        url,
		secret:     secret,
	}
}

// ParseRateLimit extracts the X-Rate-Limit-* headers. Responses without a
// reset header yield a zero status.
func ParseRateLimit(h http.Header) (auditsink.RateLimitStatus, error) {
	resetStr := h.Get("X-Rate-Limit-Reset")
	if resetStr == "" {
		return auditsink.RateLimitStatus{}, nil
	}

	atoi := func(s string) int {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}

		return 0
	}
	limit := atoi(h.Get("X-Rate-Limit-Limit"))
	remaining := atoi(h.Get("X-Rate-Limit-Remaining"))

	resetAt, err := time.Parse(time.RFC3339Nano, resetStr)
	if err != nil {
		return auditsink.RateLimitStatus{}, fmt.Errorf("could not parse reset at: %w", err)
	}

	return auditsink.RateLimitStatus{Limit: limit, Remaining: remaining, ResetAt: resetAt}, nil
}

// EncodeEvents renders events as {"events":[{"id":..,"kind":..,"attributes":{..},"createdAt":..}]}.
func EncodeEvents(events []domain.Event) []byte {
	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("events", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, ev := range events {
					encodeEvent(e, ev)
				}
			})
		})
	})

	return e.Bytes()
}

func encodeEvent(e *jx.Encoder, ev domain.Event) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Int64(ev.ID) })
		e.Field("kind", func(e *jx.Encoder) { e.Str(string(ev.Kind)) })
		e.Field("attributes", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				for _, k := range ev.Keys() {
					e.Field(k, func(e *jx.Encoder) { e.Str(ev.Attributes[k]) })
				}
			})
		})
		e.Field("createdAt", func(e *jx.Encoder) { e.Str(ev.CreatedAt.UTC().Format(time.RFC3339Nano)) })
	})
}

// Publish posts events to the webhook.
func (c *Client) Publish(ctx context.Context, events []domain.Event) (auditsink.RateLimitStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(EncodeEvents(events)))
	if err != nil {
		return auditsink.RateLimitStatus{}, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.secret != "" {
		req.Header.Set("Authorization", "Bearer "+c.secret)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return auditsink.RateLimitStatus{}, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	rl, err := ParseRateLimit(resp.Header)
	if err != nil {
		return rl, fmt.Errorf("could not parse rate limit: %w", err)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return rl, fmt.Errorf("could not read response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return rl, serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return rl, serrors.With(serrors.ErrBadRequest, "events rejected (%d): %s", resp.StatusCode, strings.TrimSpace(string(b)))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return rl, fmt.Errorf("publish failed (%d): %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	return rl, nil
}

// Ensure Client conforms to the auditsink.Client interface at compile time.
var _ auditsink.Client = (*Client)(nil)
