package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	radio "github.com/R-a-dio/tracklog"
	"github.com/R-a-dio/tracklog/config"
	"github.com/R-a-dio/tracklog/errors"
	"github.com/R-a-dio/tracklog/telemetry"
	"github.com/cenkalti/backoff/v4"
	"github.com/klauspost/compress/gzhttp"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/net/html/charset"
)

// NewClient returns the http client used to talk to the playlist endpoint
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(gzhttp.Transport(http.DefaultTransport)),
	}
}

// Fetcher submits the playlist search form, it makes sure that two
// requests are always at least delay apart
type Fetcher struct {
	client     *http.Client
	endpoint   string
	userAgent  string
	delay      time.Duration
	maxRetries uint64

	// now and sleep are replaced in tests
	now   func() time.Time
	sleep func(context.Context, time.Duration) error

	mu   sync.Mutex
	last time.Time
}

// NewFetcher returns a Fetcher configured from the [scraper] section, delay
// overrides the configured delay if it is non-negative
func NewFetcher(cfg config.Config, delay time.Duration) *Fetcher {
	conf := cfg.Conf()
	if delay < 0 {
		delay = time.Duration(conf.Scraper.Delay)
	}

	return &Fetcher{
		client:     NewClient(time.Duration(conf.Scraper.Timeout)),
		endpoint:   conf.Scraper.Endpoint.String(),
		userAgent:  conf.UserAgent,
		delay:      delay,
		maxRetries: conf.Scraper.MaxRetries,
		now:        time.Now,
		sleep:      sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Form returns the form values submitted for the date and time given
func Form(date time.Time, hour, minute int) url.Values {
	return url.Values{
		"playlistSearch_date":    {date.Format(radio.DateFormat)},
		"playlistSearch_hours":   {fmt.Sprintf("%02d", hour)},
		"playlistSearch_minutes": {fmt.Sprintf("%02d", minute)},
		"submit":                 {"suchen"},
	}
}

// Fetch returns the playlist page around the date and time given decoded
// to UTF-8, any failure is logged and a nil slice returned
func (f *Fetcher) Fetch(ctx context.Context, date time.Time, hour, minute int) []byte {
	const op errors.Op = "scraper/Fetcher.Fetch"
	logger := zerolog.Ctx(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.wait(ctx); err != nil {
		logger.Warn().Err(err).Msg("cancelled while waiting for rate limit")
		return nil
	}
	defer func() { f.last = f.now() }()

	form := Form(date, hour, minute)

	var body []byte
	operation := func() error {
		var err error
		body, err = f.do(ctx, form)
		return err
	}
	notify := func(err error, d time.Duration) {
		logger.Warn().Err(err).Dur("backoff", d).Msg("retrying playlist fetch")
	}

	err := backoff.RetryNotify(operation, config.NewFetchBackoff(ctx, f.maxRetries), notify)
	if err != nil {
		err = errors.E(op, errors.FetchFailed, date, errors.Info(fmt.Sprintf("%02d:%02d", hour, minute)), err)
		logger.Error().Err(err).Msg("failed to fetch playlist")
		telemetry.PlaylistFetches.WithLabelValues("error").Inc()
		return nil
	}
	return body
}

// wait blocks until delay has passed since the previous request
func (f *Fetcher) wait(ctx context.Context) error {
	if f.last.IsZero() {
		return ctx.Err()
	}
	return f.sleep(ctx, f.last.Add(f.delay).Sub(f.now()))
}

// do does a single request, errors that should not be retried are wrapped
// in backoff.Permanent
func (f *Fetcher) do(ctx context.Context, form url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := errors.Errorf("unexpected status code: %s", resp.Status)
		// only server errors are worth retrying
		if resp.StatusCode < 500 {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	}

	r, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, backoff.Permanent(err)
	}

	body, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return body, nil
}
