// Package download fetches blob contents through signed read handles.
package download

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/heartmarshall/ecovoice-backend/internal/domain"
)

const (
	defaultTimeout    = 60 * time.Second
	defaultRetryDelay = 500 * time.Millisecond
)

// Fetcher downloads objects over HTTP.
type Fetcher struct {
	httpClient *http.Client
	retryDelay time.Duration
	maxBytes   int64
	userAgent  string
	log        *slog.Logger
}

// NewFetcher creates a Fetcher. maxBytes <= 0 disables the size cap.
func NewFetcher(logger *slog.Logger, timeout time.Duration, maxBytes int64) *Fetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Fetcher{
		httpClient: &http.Client{Timeout: timeout},
		retryDelay: defaultRetryDelay,
		maxBytes:   maxBytes,
		log:        logger.With("adapter", "download"),
	}
}

// WithUserAgent sets the User-Agent sent on every download.
func (f *Fetcher) WithUserAgent(ua string) *Fetcher {
	f.userAgent = ua
	return f
}

// Fetch streams the object at signedURL into w and returns the number of
// bytes written.
//
// Errors wrap domain.ErrNotFound (404), domain.ErrConfiguration (401/403,
// the handle was rejected), domain.ErrTransient (network or 5xx after one
// retry) or domain.ErrUpstreamContract (any other status, or the object
// exceeds the size cap).
func (f *Fetcher) Fetch(ctx context.Context, signedURL string, w io.Writer) (int64, error) {
	resp, err := f.get(ctx, signedURL)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	body := io.Reader(resp.Body)
	if f.maxBytes > 0 {
		body = io.LimitReader(resp.Body, f.maxBytes+1)
	}

	n, err := io.Copy(w, body)
	if err != nil {
		if ctx.Err() != nil {
			return n, fmt.Errorf("download: %w", ctx.Err())
		}
		return n, fmt.Errorf("download: read body: %v: %w", err, domain.ErrTransient)
	}
	if f.maxBytes > 0 && n > f.maxBytes {
		return n, fmt.Errorf("download: object larger than %d bytes: %w", f.maxBytes, domain.ErrUpstreamContract)
	}

	f.log.DebugContext(ctx, "download complete", slog.Int64("bytes", n))
	return n, nil
}

// FetchBytes reads the whole object into memory and returns it along with
// the Content-Type reported by the server.
func (f *Fetcher) FetchBytes(ctx context.Context, signedURL string) ([]byte, string, error) {
	resp, err := f.get(ctx, signedURL)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	body := io.Reader(resp.Body)
	if f.maxBytes > 0 {
		body = io.LimitReader(resp.Body, f.maxBytes+1)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, "", fmt.Errorf("download: %w", ctx.Err())
		}
		return nil, "", fmt.Errorf("download: read body: %v: %w", err, domain.ErrTransient)
	}
	if f.maxBytes > 0 && int64(len(data)) > f.maxBytes {
		return nil, "", fmt.Errorf("download: object larger than %d bytes: %w", f.maxBytes, domain.ErrUpstreamContract)
	}

	return data, resp.Header.Get("Content-Type"), nil
}

// get performs the request and returns a response with status 200.
func (f *Fetcher) get(ctx context.Context, signedURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, signedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("download: create request: %w", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.doWithRetry(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("download: %w", ctx.Err())
		}
		f.log.ErrorContext(ctx, "download request failed", slog.String("host", hostOf(signedURL)), slog.String("error", err.Error()))
		return nil, fmt.Errorf("download: request failed: %v: %w", err, domain.ErrTransient)
	}

	if resp.StatusCode == http.StatusOK {
		return resp, nil
	}
	resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("download: object not found: %w", domain.ErrNotFound)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("download: read handle rejected (status %d): %w", resp.StatusCode, domain.ErrConfiguration)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, fmt.Errorf("download: status %d: %w", resp.StatusCode, domain.ErrTransient)
	default:
		return nil, fmt.Errorf("download: unexpected status %d: %w", resp.StatusCode, domain.ErrUpstreamContract)
	}
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (f *Fetcher) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := f.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	f.log.WarnContext(ctx, "download retry", slog.String("host", hostOf(req.URL.String())), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	t := time.NewTimer(f.retryDelay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-t.C:
	}

	return f.httpClient.Do(req.Clone(ctx))
}

// hostOf strips path and query so signatures never reach the logs.
func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "invalid-url"
	}
	return u.Host
}

