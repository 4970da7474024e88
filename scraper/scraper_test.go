package scraper

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/R-a-dio/tracklog/config"
	"github.com/R-a-dio/tracklog/mocks"
	"github.com/R-a-dio/tracklog/telemetry"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDocument(t *testing.T, page string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)
	return doc
}

func testConfig(endpoint string) config.Config {
	cfg := config.TestConfig()
	c := cfg.Conf()
	c.Scraper.Endpoint = config.URL(endpoint)
	c.Scraper.Timeout = config.Duration(time.Second * 5)
	cfg.StoreConf(c)
	return cfg
}

func TestScraperPlaylist(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	srv := mocks.PlaylistServerMock(t)
	srv.Handler = func(q mocks.PlaylistQuery) (int, string) {
		if q.Hours != "17" {
			return http.StatusOK, mocks.PlaylistPage()
		}
		return http.StatusOK, mocks.PlaylistPage(
			mocks.PageRow{Time: mocks.TimeCell(date, "17.15"), Title: "Title", Performer: "Artist"},
		)
	}

	s := NewScraper(testConfig(srv.URL), 0)

	events := s.Playlist(context.Background(), date, 17, 0)
	require.Len(t, events, 1)
	assert.Equal(t, "Artist", events[0].Artist)
	assert.Equal(t, "17:15", events[0].LocalTime)

	assert.Empty(t, s.Playlist(context.Background(), date, 3, 0))
}

func TestScraperPlaylistFetchFailed(t *testing.T) {
	srv := mocks.PlaylistServerMock(t)
	srv.Handler = func(q mocks.PlaylistQuery) (int, string) {
		return http.StatusNotFound, "not found"
	}

	s := NewScraper(testConfig(srv.URL), 0)
	assert.Empty(t, s.Playlist(context.Background(), time.Now(), 0, 0))
}

func TestScraperPlaylistCountsEachRequestOnce(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	srv := mocks.PlaylistServerMock(t)
	srv.Handler = func(q mocks.PlaylistQuery) (int, string) {
		switch q.Hours {
		case "17":
			return http.StatusOK, mocks.PlaylistPage(
				mocks.PageRow{Time: mocks.TimeCell(date, "17.15"), Title: "Title", Performer: "Artist"},
			)
		case "18":
			return http.StatusNotFound, "not found"
		}
		return http.StatusOK, mocks.PlaylistPage()
	}

	count := func() (ok, empty, failed float64) {
		return testutil.ToFloat64(telemetry.PlaylistFetches.WithLabelValues("ok")),
			testutil.ToFloat64(telemetry.PlaylistFetches.WithLabelValues("empty")),
			testutil.ToFloat64(telemetry.PlaylistFetches.WithLabelValues("error"))
	}

	s := NewScraper(testConfig(srv.URL), 0)
	ok, empty, failed := count()

	s.Playlist(context.Background(), date, 17, 0)
	s.Playlist(context.Background(), date, 3, 0)
	s.Playlist(context.Background(), date, 4, 0)
	s.Playlist(context.Background(), date, 18, 0)

	ok2, empty2, failed2 := count()
	assert.Equal(t, 1.0, ok2-ok)
	assert.Equal(t, 2.0, empty2-empty)
	assert.Equal(t, 1.0, failed2-failed)
}
