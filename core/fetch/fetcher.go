// Package fetch implements the Fetcher interface.
// It performs HTTP GET requests with browser-like headers and a mandatory
// politeness delay before every outbound call.
package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/gaurav-prasanna/jitadeck/core"
)

const defaultTimeout = 30 * time.Second

// DefaultHeaders are sent with every outbound request, image downloads
// included. The source site serves a reduced page to clients without a
// browser user agent.
var DefaultHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Accept-Language": "ja,en-US;q=0.9,en;q=0.8",
}

// HTTPFetcher fetches web pages via HTTP, one at a time, sleeping the
// configured delay before each request.
type HTTPFetcher struct {
	client *resty.Client
	delay  time.Duration
	log    *zap.Logger
}

// New creates an HTTPFetcher. delay is slept before every fetch; it is the
// global rate limit for page requests and must stay above zero for any run
// against the live site.
func New(delay time.Duration, log *zap.Logger) *HTTPFetcher {
	client := resty.New().
		SetTimeout(defaultTimeout).
		SetHeaders(DefaultHeaders)
	return &HTTPFetcher{client: client, delay: delay, log: log}
}

// Fetch retrieves the HTML content of the given URL. A non-2xx response is
// an error; the caller decides whether that skips an article or truncates
// a pagination walk.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*core.FetchResult, error) {
	time.Sleep(f.delay)

	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode(), url)
	}

	f.log.Debug("fetched page",
		zap.String("url", url),
		zap.Int("status", resp.StatusCode()),
		zap.Int("bytes", len(resp.Body())))

	return &core.FetchResult{
		URL:        url,
		StatusCode: resp.StatusCode(),
		HTML:       string(resp.Body()),
	}, nil
}
