package storagetest

import (
	"testing"
	"time"

	radio "github.com/R-a-dio/tracklog"
	"github.com/R-a-dio/tracklog/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *Suite) TestGenreStoreAndGet(t *testing.T) {
	gs := suite.Storage(t).Genre(suite.ctx)
	track := radio.Track{Artist: "Artist", Title: "Title"}

	_, err := gs.Get(track)
	assert.True(t, errors.Is(errors.GenreNotFound, err))

	lookedUp := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, gs.Store(radio.Genre{Track: track, LookedUp: lookedUp}))

	genre, err := gs.Get(track)
	require.NoError(t, err)
	assert.False(t, genre.Found)
	assert.Empty(t, genre.Tags)

	// a later lookup replaces the earlier one
	require.NoError(t, gs.Store(radio.Genre{
		Track:    track,
		Tags:     "pop, dance",
		Found:    true,
		LookedUp: lookedUp.Add(time.Hour),
	}))

	genre, err = gs.Get(track)
	require.NoError(t, err)
	assert.True(t, genre.Found)
	assert.Equal(t, "pop, dance", genre.Tags)
	assert.True(t, lookedUp.Add(time.Hour).Equal(genre.LookedUp))
}

func (suite *Suite) TestGenreMissing(t *testing.T) {
	s := suite.Storage(t)
	ps, gs := s.Play(suite.ctx), s.Genre(suite.ctx)
	date := day(2024, 3, 1)

	_, err := ps.Insert([]radio.PlayEvent{
		playEvent(date, "A", "One", 1, 0),
		playEvent(date, "A", "One", 2, 0),
		playEvent(date, "B", "Two", 3, 0),
		playEvent(date, "C", "Three", 4, 0),
	})
	require.NoError(t, err)

	missing, err := gs.Missing(0)
	require.NoError(t, err)
	assert.Equal(t, []radio.Track{
		{Artist: "A", Title: "One"},
		{Artist: "B", Title: "Two"},
		{Artist: "C", Title: "Three"},
	}, missing)

	require.NoError(t, gs.Store(radio.Genre{Track: radio.Track{Artist: "B", Title: "Two"}}))

	missing, err = gs.Missing(1)
	require.NoError(t, err)
	assert.Equal(t, []radio.Track{{Artist: "A", Title: "One"}}, missing)

	missing, err = gs.Missing(10)
	require.NoError(t, err)
	assert.Len(t, missing, 2)
}
