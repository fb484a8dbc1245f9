package internal

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	pkgerrs "github.com/lmaznek/go-reddit-bulk/pkg/errors"
	"github.com/lmaznek/go-reddit-bulk/pkg/types"
	"golang.org/x/time/rate"
)

// Transport performs single HTTP GETs against Reddit and classifies the
// outcome. It never retries: retry and backoff decisions belong to the
// pagination engine. The rate limiter below is a steady-state throughput
// cap, separate from the politeness delay between pages.
type Transport struct {
	client    *http.Client
	UserAgent string
	logger    *slog.Logger

	limiter        *rate.Limiter
	mu             sync.Mutex
	forceWaitUntil time.Time
}

// RateLimitConfig controls how requests are throttled before reaching Reddit.
type RateLimitConfig struct {
	// RequestsPerMinute caps steady-state throughput. Defaults to 60 if zero.
	RequestsPerMinute float64
	// Burst allows short spikes above the steady-state rate. Defaults to 10 if zero.
	Burst int
}

const (
	DefaultRequestsPerMinute = 60
	DefaultRateLimitBurst    = 10
	secondsPerMinute         = 60.0
	parseFloatBitSize        = 64
)

// NewTransport returns a Transport using the provided HTTP client.
// If httpClient is nil, http.DefaultClient is used. If logger is nil,
// diagnostics are discarded.
func NewTransport(httpClient *http.Client, userAgent string, rateCfg *RateLimitConfig, logger *slog.Logger) *Transport {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if rateCfg == nil {
		rateCfg = &RateLimitConfig{}
	}

	return &Transport{
		client:    httpClient,
		UserAgent: userAgent,
		logger:    logger,
		limiter:   buildLimiter(*rateCfg),
	}
}

// FetchThing issues one GET and decodes the body into a single Thing
// envelope. Used by every listing and single-entity endpoint.
func (t *Transport) FetchThing(ctx context.Context, op, url string) (*types.Thing, error) {
	body, err := t.fetch(ctx, op, url)
	if err != nil {
		return nil, err
	}

	if len(body) == 0 || body[0] != '{' {
		return nil, &pkgerrs.ShapeError{Operation: op, Message: "response body is not a JSON object"}
	}

	var thing types.Thing
	if err := json.Unmarshal(body, &thing); err != nil {
		return nil, &pkgerrs.ShapeError{Operation: op, Err: err}
	}
	return &thing, nil
}

// FetchThings issues one GET and decodes a body that may be either a
// single Thing or an array of Things. Post-detail endpoints return the
// two-element [post, comments] array; everything else is an object.
func (t *Transport) FetchThings(ctx context.Context, op, url string) ([]*types.Thing, error) {
	body, err := t.fetch(ctx, op, url)
	if err != nil {
		return nil, err
	}

	switch {
	case len(body) > 0 && body[0] == '[':
		var things []*types.Thing
		if err := json.Unmarshal(body, &things); err != nil {
			return nil, &pkgerrs.ShapeError{Operation: op, Err: err}
		}
		return things, nil
	case len(body) > 0 && body[0] == '{':
		var thing types.Thing
		if err := json.Unmarshal(body, &thing); err != nil {
			return nil, &pkgerrs.ShapeError{Operation: op, Err: err}
		}
		return []*types.Thing{&thing}, nil
	default:
		return nil, &pkgerrs.ShapeError{Operation: op, Message: "response body is neither object nor array"}
	}
}

// fetch performs exactly one GET and returns the raw body on HTTP 200.
// Outcomes are classified into the error taxonomy; no retries happen here.
func (t *Transport) fetch(ctx context.Context, op, url string) ([]byte, error) {
	if err := t.waitForRateLimit(ctx); err != nil {
		return nil, &pkgerrs.TransportError{URL: url, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &pkgerrs.RequestError{Operation: op, URL: url, Err: err}
	}
	req.Header.Set("User-Agent", t.UserAgent)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, &pkgerrs.TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	t.applyRateHeaders(resp)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &pkgerrs.TransportError{URL: url, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, upstreamError(resp.StatusCode, url, body)
	}

	if t.logger != nil {
		t.logger.Debug("fetched page", "operation", op, "url", url, "bytes", len(body))
	}
	return body, nil
}

// upstreamError decodes Reddit's error body where possible and falls back
// to the bare status code.
func upstreamError(status int, url string, body []byte) *pkgerrs.UpstreamError {
	var decoded struct {
		Error   json.Number `json:"error"`
		Message string      `json:"message"`
		Reason  string      `json:"reason"`
	}
	e := &pkgerrs.UpstreamError{StatusCode: status, URL: url}
	if err := json.Unmarshal(body, &decoded); err == nil {
		e.Code = decoded.Error.String()
		e.Message = decoded.Message
		if decoded.Reason != "" {
			e.Message = decoded.Reason
		}
	}
	return e
}

func buildLimiter(cfg RateLimitConfig) *rate.Limiter {
	requestsPerMinute := cfg.RequestsPerMinute
	if requestsPerMinute <= 0 {
		requestsPerMinute = DefaultRequestsPerMinute
	}

	burst := cfg.Burst
	if burst <= 0 {
		burst = DefaultRateLimitBurst
	}

	limitPerSecond := rate.Limit(requestsPerMinute / secondsPerMinute)
	if limitPerSecond <= 0 {
		limitPerSecond = rate.Limit(1)
	}

	return rate.NewLimiter(limitPerSecond, burst)
}

func (t *Transport) waitForRateLimit(ctx context.Context) error {
	if err := t.waitForForcedDelay(ctx); err != nil {
		return err
	}

	if t.limiter == nil {
		return nil
	}

	return t.limiter.Wait(ctx)
}

func (t *Transport) waitForForcedDelay(ctx context.Context) error {
	for {
		t.mu.Lock()
		waitUntil := t.forceWaitUntil
		t.mu.Unlock()

		if waitUntil.IsZero() {
			return nil
		}

		now := time.Now()
		if !now.Before(waitUntil) {
			t.clearForcedDelay(waitUntil)
			return nil
		}

		timer := time.NewTimer(waitUntil.Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
			t.clearForcedDelay(waitUntil)
		}
	}
}

func (t *Transport) clearForcedDelay(previous time.Time) {
	t.mu.Lock()
	if previous.Equal(t.forceWaitUntil) {
		t.forceWaitUntil = time.Time{}
	}
	t.mu.Unlock()
}

func (t *Transport) applyRateHeaders(resp *http.Response) {
	if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
		if seconds, err := strconv.ParseFloat(retryAfter, parseFloatBitSize); err == nil && seconds > 0 {
			t.deferRequests(time.Duration(seconds * float64(time.Second)))
		}
	}

	remainingHeader := resp.Header.Get("X-Ratelimit-Remaining")
	resetHeader := resp.Header.Get("X-Ratelimit-Reset")
	if remainingHeader == "" || resetHeader == "" {
		return
	}

	remaining, errRemaining := strconv.ParseFloat(remainingHeader, parseFloatBitSize)
	resetSeconds, errReset := strconv.ParseFloat(resetHeader, parseFloatBitSize)
	if errRemaining != nil || errReset != nil || resetSeconds <= 0 {
		return
	}

	if remaining <= 1 {
		t.deferRequests(time.Duration(resetSeconds * float64(time.Second)))
	}
}

func (t *Transport) deferRequests(d time.Duration) {
	if d <= 0 {
		return
	}

	until := time.Now().Add(d)

	t.mu.Lock()
	if until.After(t.forceWaitUntil) {
		t.forceWaitUntil = until
	}
	t.mu.Unlock()
}
