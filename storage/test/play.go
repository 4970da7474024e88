package storagetest

import (
	"fmt"
	"testing"
	"time"

	radio "github.com/R-a-dio/tracklog"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playEvent(date time.Time, artist, title string, hour, minute int) radio.PlayEvent {
	return radio.PlayEvent{
		Artist:    artist,
		Title:     title,
		LocalTime: fmt.Sprintf("%02d:%02d", hour, minute),
		Date:      radio.Day(date),
		Timestamp: radio.Day(date).Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute),
	}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func (suite *Suite) TestPlayInsertIdempotent(t *testing.T) {
	ps := suite.Storage(t).Play(suite.ctx)
	date := day(2024, 3, 1)

	events := []radio.PlayEvent{
		playEvent(date, "Artist", "Title", 17, 15),
		playEvent(date, "Artist", "Title", 19, 40),
		playEvent(date, "Other", "Song", 17, 19),
	}

	n, err := ps.Insert(events)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// re-scraping the same day stores nothing new
	n, err = ps.Insert(events)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	stored, err := ps.ByDate(date)
	require.NoError(t, err)
	require.Len(t, stored, 3)
	assert.Equal(t, "17:15", stored[0].LocalTime)
	assert.Equal(t, "17:19", stored[1].LocalTime)
	assert.Equal(t, "19:40", stored[2].LocalTime)
	for _, e := range stored {
		assert.Equal(t, "2024-03-01", e.Date.Format(radio.DateFormat))
		assert.True(t, e.HasTimestamp())
	}
	assert.True(t, events[0].Timestamp.Equal(stored[0].Timestamp))
}

func (suite *Suite) TestPlayInsertWithoutTimestamp(t *testing.T) {
	ps := suite.Storage(t).Play(suite.ctx)
	date := day(2024, 3, 2)

	event := radio.PlayEvent{
		Artist: "Artist",
		Title:  "Untimed",
		Date:   date,
	}

	n, err := ps.Insert([]radio.PlayEvent{event})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// a missing timestamp never collides with anything
	n, err = ps.Insert([]radio.PlayEvent{event})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	stored, err := ps.ByDate(date)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.False(t, stored[0].HasTimestamp())
}

func (suite *Suite) TestPlayInsertCaseSensitive(t *testing.T) {
	ps := suite.Storage(t).Play(suite.ctx)
	date := day(2024, 3, 3)

	n, err := ps.Insert([]radio.PlayEvent{
		playEvent(date, "artist", "title", 10, 0),
		playEvent(date, "ARTIST", "TITLE", 10, 0),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func (suite *Suite) TestPlayTopSongs(t *testing.T) {
	ps := suite.Storage(t).Play(suite.ctx)

	var events []radio.PlayEvent
	for i := range 3 {
		events = append(events, playEvent(day(2024, 3, 1+i), "A", "Three", 10, 0))
	}
	for i := range 2 {
		events = append(events, playEvent(day(2024, 3, 1+i), "B", "Two", 11, 0))
		events = append(events, playEvent(day(2024, 3, 1+i), "C", "Two", 12, 0))
	}
	events = append(events, playEvent(day(2024, 4, 1), "D", "April", 12, 0))

	_, err := ps.Insert(events)
	require.NoError(t, err)

	songs, err := ps.TopSongs(radio.DateFilter{}, 10)
	require.NoError(t, err)
	require.Len(t, songs, 4)
	assert.Equal(t, radio.SongCount{Artist: "A", Title: "Three", PlayCount: 3}, songs[0])
	// ties are ordered by artist
	assert.Equal(t, "B", songs[1].Artist)
	assert.Equal(t, "C", songs[2].Artist)
	assert.Equal(t, "D", songs[3].Artist)

	songs, err = ps.TopSongs(radio.DateFilter{}, 2)
	require.NoError(t, err)
	assert.Len(t, songs, 2)

	// end is inclusive
	songs, err = ps.TopSongs(radio.DateFilter{Start: day(2024, 3, 2), End: day(2024, 3, 3)}, 10)
	require.NoError(t, err)
	require.Len(t, songs, 3)
	assert.EqualValues(t, 2, songs[0].PlayCount)

	songs, err = ps.TopSongsByMonth(2024, time.April, 10)
	require.NoError(t, err)
	require.Len(t, songs, 1)
	assert.Equal(t, "April", songs[0].Title)

	songs, err = ps.TopSongsByMonth(2023, time.April, 10)
	require.NoError(t, err)
	assert.Empty(t, songs)
}

func (suite *Suite) TestPlayTopArtists(t *testing.T) {
	ps := suite.Storage(t).Play(suite.ctx)
	date := day(2024, 5, 1)

	_, err := ps.Insert([]radio.PlayEvent{
		playEvent(date, "A", "One", 1, 0),
		playEvent(date, "A", "Two", 2, 0),
		playEvent(date, "B", "One", 3, 0),
	})
	require.NoError(t, err)

	artists, err := ps.TopArtists(radio.DateFilter{Start: date}, 10)
	require.NoError(t, err)
	assert.Equal(t, []radio.ArtistCount{
		{Artist: "A", PlayCount: 2},
		{Artist: "B", PlayCount: 1},
	}, artists)

	artists, err = ps.TopArtists(radio.DateFilter{End: date.AddDate(0, 0, -1)}, 10)
	require.NoError(t, err)
	assert.Empty(t, artists)
}

func (suite *Suite) TestPlayStatistics(t *testing.T) {
	ps := suite.Storage(t).Play(suite.ctx)

	stats, err := ps.Statistics()
	require.NoError(t, err)
	assert.Zero(t, stats.TotalPlays)
	assert.Zero(t, stats.DaysCovered())

	_, err = ps.Insert([]radio.PlayEvent{
		playEvent(day(2024, 3, 1), "A", "One", 1, 0),
		playEvent(day(2024, 3, 1), "A", "One", 2, 0),
		playEvent(day(2024, 3, 5), "A", "Two", 1, 0),
		playEvent(day(2024, 3, 10), "B", "One", 1, 0),
	})
	require.NoError(t, err)

	stats, err = ps.Statistics()
	require.NoError(t, err)
	assert.EqualValues(t, 4, stats.TotalPlays)
	assert.EqualValues(t, 3, stats.UniqueSongs)
	assert.EqualValues(t, 2, stats.UniqueArtists)
	assert.Equal(t, "2024-03-01", stats.Earliest.Format(radio.DateFormat))
	assert.Equal(t, "2024-03-10", stats.Latest.Format(radio.DateFormat))
	assert.Equal(t, 10, stats.DaysCovered())

	earliest, latest, err := ps.DateRange()
	require.NoError(t, err)
	assert.Equal(t, stats.Earliest, earliest)
	assert.Equal(t, stats.Latest, latest)
}

func (suite *Suite) TestPlayTracks(t *testing.T) {
	ps := suite.Storage(t).Play(suite.ctx)

	_, err := ps.Insert([]radio.PlayEvent{
		playEvent(day(2024, 6, 1), "B", "One", 1, 0),
		playEvent(day(2024, 6, 1), "A", "One", 2, 0),
		playEvent(day(2024, 6, 2), "A", "One", 2, 0),
	})
	require.NoError(t, err)

	tracks, err := ps.Tracks(radio.DateFilter{})
	require.NoError(t, err)
	assert.Equal(t, []radio.Track{{Artist: "A", Title: "One"}, {Artist: "B", Title: "One"}}, tracks)
}

func (suite *Suite) TestPlayInsertTwiceProperty(t *testing.T) {
	ps := suite.Storage(t).Play(suite.ctx)
	p := gopter.NewProperties(nil)

	var run int
	p.Property("second insert of the same events stores nothing", prop.ForAll(
		func(minutes []int) bool {
			run++
			date := day(2020, 1, 1).AddDate(0, 0, run)

			var events []radio.PlayEvent
			seen := map[int]bool{}
			for _, m := range minutes {
				if seen[m] {
					continue
				}
				seen[m] = true
				events = append(events, playEvent(date, "Artist", fmt.Sprint(m%3), m/60, m%60))
			}

			first, err := ps.Insert(events)
			if err != nil || first != len(events) {
				return false
			}
			second, err := ps.Insert(events)
			return err == nil && second == 0
		},
		gen.SliceOf(gen.IntRange(0, 24*60-1)),
	))

	p.TestingRun(t)
}
