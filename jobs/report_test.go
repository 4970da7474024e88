package jobs

import (
	"bytes"
	"testing"
	"time"

	radio "github.com/R-a-dio/tracklog"
	"github.com/R-a-dio/tracklog/errors"
	"github.com/R-a-dio/tracklog/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	march1 = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	march7 = time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)
)

func songStore() *mocks.PlayStorageMock {
	songs := []radio.SongCount{
		{Artist: "Daft Punk", Title: "Get Lucky", PlayCount: 1234},
		{Artist: "Radiohead", Title: "Creep", PlayCount: 7},
	}
	return &mocks.PlayStorageMock{
		TopSongsFunc: func(filter radio.DateFilter, limit int) ([]radio.SongCount, error) {
			return songs, nil
		},
		TopSongsByMonthFunc: func(year int, month time.Month, limit int) ([]radio.SongCount, error) {
			return songs[:1], nil
		},
		TopArtistsFunc: func(filter radio.DateFilter, limit int) ([]radio.ArtistCount, error) {
			return []radio.ArtistCount{{Artist: "Daft Punk", PlayCount: 2000}}, nil
		},
		StatisticsFunc: func() (*radio.Statistics, error) {
			return &radio.Statistics{
				TotalPlays:    12345,
				UniqueSongs:   678,
				UniqueArtists: 90,
				Earliest:      march1,
				Latest:        march7,
			}, nil
		},
	}
}

const songLines = `----------------------------------------------------------------------
 1. Daft Punk - Get Lucky
    Played 1,234 times
 2. Radiohead - Creep
    Played 7 times
`

func TestTopDay(t *testing.T) {
	store := songStore()
	var buf bytes.Buffer

	require.NoError(t, TopDay(march1, 10)(&buf, store))
	assert.Equal(t, "\nTop 10 songs on 2024-03-01:\n"+songLines, buf.String())

	calls := store.TopSongsCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, radio.DateFilter{Start: march1, End: march1}, calls[0].Filter)
	assert.Equal(t, 10, calls[0].Limit)
}

func TestTopWeek(t *testing.T) {
	store := songStore()
	var buf bytes.Buffer

	require.NoError(t, TopWeek(march1, 5)(&buf, store))
	assert.Equal(t, "\nTop 5 songs for week 2024-03-01 to 2024-03-07:\n"+songLines, buf.String())
	assert.Equal(t, radio.DateFilter{Start: march1, End: march7}, store.TopSongsCalls()[0].Filter)
}

func TestTopMonth(t *testing.T) {
	store := songStore()
	var buf bytes.Buffer

	require.NoError(t, TopMonth(2024, time.March, 10)(&buf, store))
	assert.Equal(t, "\nTop 10 songs for 2024-03:\n"+
		"----------------------------------------------------------------------\n"+
		" 1. Daft Punk - Get Lucky\n"+
		"    Played 1,234 times\n", buf.String())
}

func TestTopRange(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, TopRange(march1, march7, 10)(&buf, songStore()))
	assert.Equal(t, "\nTop 10 songs from 2024-03-01 to 2024-03-07:\n"+songLines, buf.String())
}

func TestTopSongsHeader(t *testing.T) {
	cases := []struct {
		filter radio.DateFilter
		header string
	}{
		{radio.DateFilter{}, "Top 10 songs of all time:"},
		{radio.DateFilter{Start: march1}, "Top 10 songs from 2024-03-01:"},
		{radio.DateFilter{End: march7}, "Top 10 songs until 2024-03-07:"},
		{radio.DateFilter{Start: march1, End: march7}, "Top 10 songs from 2024-03-01 to 2024-03-07:"},
	}
	for _, c := range cases {
		var buf bytes.Buffer
		require.NoError(t, TopSongs(c.filter, 10)(&buf, songStore()))
		assert.Equal(t, "\n"+c.header+"\n"+songLines, buf.String())
	}
}

func TestTopArtists(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, TopArtists(radio.DateFilter{}, 3)(&buf, songStore()))
	assert.Equal(t, "\nTop 3 artists:\n"+
		"----------------------------------------------------------------------\n"+
		" 1. Daft Punk\n"+
		"    Played 2,000 times\n", buf.String())
}

func TestStats(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Stats()(&buf, songStore()))
	assert.Equal(t, `
Database Statistics:
--------------------------------------------------
Total songs played:    12,345
Unique songs:          678
Unique artists:        90
Earliest date:         2024-03-01
Latest date:           2024-03-07
Days covered:          7
`, buf.String())
}

func TestStatsEmpty(t *testing.T) {
	store := &mocks.PlayStorageMock{
		StatisticsFunc: func() (*radio.Statistics, error) {
			return &radio.Statistics{}, nil
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Stats()(&buf, store))
	assert.NotContains(t, buf.String(), "Earliest date")
	assert.Contains(t, buf.String(), "Total songs played:    0\n")
}

func TestReportError(t *testing.T) {
	store := &mocks.PlayStorageMock{
		TopSongsFunc: func(radio.DateFilter, int) ([]radio.SongCount, error) {
			return nil, errors.E(errors.Testing)
		},
	}

	var buf bytes.Buffer
	err := TopDay(march1, 10)(&buf, store)
	assert.True(t, errors.Is(errors.Testing, err))
	assert.Empty(t, buf.String())
}
