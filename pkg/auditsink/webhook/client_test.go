package webhook_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"taxtoken/pkg/auditsink/webhook"
	"taxtoken/pkg/domain"
	"taxtoken/pkg/serrors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *webhook.Client {
	return webhook.New(&http.Client{Transport: fn}, "https://sink.example/events", "test-secret")
}

func response(status int, h http.Header, body string) *http.Response {
	if h == nil {
		h = http.Header{}
	}

	return &http.Response{
		StatusCode: status,
		Header:     h,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func testEvents() []domain.Event {
	ev := domain.NewEvent(domain.EventTransfer, "to", "0xb0b", "from", "0xa11ce", "value", "100")
	ev.ID = 7
	ev.CreatedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	return []domain.Event{ev}
}

func Test_parseRateLimit(t *testing.T) {
	h := http.Header{}
	resetAt := time.Date(2025, 1, 2, 3, 4, 5, 678900000, time.UTC)
	h.Set("X-Rate-Limit-Limit", "120")
	h.Set("X-Rate-Limit-Remaining", "80")
	h.Set("X-Rate-Limit-Reset", resetAt.Format(time.RFC3339Nano))

	rl, err := webhook.ParseRateLimit(h)
	require.NoError(t, err)
	require.Equal(t, 120, rl.Limit)
	require.Equal(t, 80, rl.Remaining)
	require.True(t, rl.ResetAt.Equal(resetAt))

	rl, err = webhook.ParseRateLimit(http.Header{})
	require.NoError(t, err)
	require.True(t, rl.ResetAt.IsZero())

	h.Set("X-Rate-Limit-Reset", "not-a-time")
	_, err = webhook.ParseRateLimit(h)
	require.Error(t, err)
}

func TestEncodeEvents_SortsAttributes(t *testing.T) {
	got := string(webhook.EncodeEvents(testEvents()))
	require.JSONEq(t, `{"events":[{
		"id":7,
		"kind":"Transfer",
		"attributes":{"from":"0xa11ce","to":"0xb0b","value":"100"},
		"createdAt":"2026-03-01T12:00:00Z"
	}]}`, got)
	require.Less(t, strings.Index(got, `"from"`), strings.Index(got, `"to"`))
}

func TestClient_Publish_Success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "sink.example", r.URL.Host)
		require.Equal(t, "/events", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Equal(t, "Bearer test-secret", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.Contains(t, string(body), `"kind":"Transfer"`)

		h := http.Header{}
		h.Set("X-Rate-Limit-Limit", "10")
		h.Set("X-Rate-Limit-Remaining", "9")
		h.Set("X-Rate-Limit-Reset", time.Now().Add(time.Minute).UTC().Format(time.RFC3339Nano))

		return response(http.StatusAccepted, h, ""), nil
	})

	rl, err := c.Publish(context.Background(), testEvents())
	require.NoError(t, err)
	require.Equal(t, 9, rl.Remaining)
}

func TestClient_Publish_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		kind   serrors.Kind
	}{
		{name: "throttled", status: http.StatusTooManyRequests, kind: serrors.ErrRateLimited},
		{name: "rejected", status: http.StatusUnprocessableEntity, kind: serrors.ErrBadRequest},
		{name: "server error", status: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(func(*http.Request) (*http.Response, error) {
				return response(tt.status, nil, "nope"), nil
			})

			_, err := c.Publish(context.Background(), testEvents())
			require.ErrorContains(t, err, "nope")
			if tt.kind != nil {
				require.ErrorIs(t, err, tt.kind)
			} else {
				require.Nil(t, serrors.KindOf(err))
			}
		})
	}
}
