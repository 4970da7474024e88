// Package scraper collects play events from the playlist search form of
// the station website
package scraper

import (
	"bytes"
	"context"
	"time"

	radio "github.com/R-a-dio/tracklog"
	"github.com/R-a-dio/tracklog/config"
	"github.com/R-a-dio/tracklog/telemetry"
)

// FetchFunc returns the raw page for a single playlist query
type FetchFunc func(ctx context.Context, date time.Time, hour, minute int) []byte

// Scraper combines fetching and extracting of a playlist page, it implements
// radio.PlaylistSource
type Scraper struct {
	fetch FetchFunc
}

// NewScraper returns a Scraper using a Fetcher configured from cfg
func NewScraper(cfg config.Config, delay time.Duration) *Scraper {
	return &Scraper{fetch: NewFetcher(cfg, delay).Fetch}
}

// Playlist implements radio.PlaylistSource
func (s *Scraper) Playlist(ctx context.Context, date time.Time, hour, minute int) []radio.PlayEvent {
	body := s.fetch(ctx, date, hour, minute)
	if body == nil {
		return nil
	}

	events := Extract(ctx, bytes.NewReader(body), date)
	if len(events) == 0 {
		telemetry.PlaylistFetches.WithLabelValues("empty").Inc()
	} else {
		telemetry.PlaylistFetches.WithLabelValues("ok").Inc()
	}
	return events
}

var _ radio.PlaylistSource = &Scraper{}
