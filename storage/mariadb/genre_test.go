package mariadb

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	radio "github.com/R-a-dio/tracklog"
	"github.com/R-a-dio/tracklog/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenreStorageStore(t *testing.T) {
	storage, mock := newTestStorage(t)
	gs := storage.Genre(context.Background())
	now := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)

	mock.ExpectExec(`INSERT INTO\s+genres`).
		WithArgs("Artist", "Title", "pop, dance", true, now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO\s+genres`).
		WithArgs("Nobody", "Knows", nil, false, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, gs.Store(radio.Genre{
		Track:    radio.Track{Artist: "Artist", Title: "Title"},
		Tags:     "pop, dance",
		Found:    true,
		LookedUp: now,
	}))
	require.NoError(t, gs.Store(radio.Genre{
		Track:    radio.Track{Artist: "Nobody", Title: "Knows"},
		LookedUp: now,
	}))
	assert.NoError(t, mock.ExpectationsWereMet())

	err := gs.Store(radio.Genre{})
	assert.True(t, errors.Is(errors.InvalidArgument, err))
}

func TestGenreStorageGet(t *testing.T) {
	storage, mock := newTestStorage(t)
	gs := storage.Genre(context.Background())
	now := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	track := radio.Track{Artist: "Artist", Title: "Title"}

	rows := sqlmock.NewRows([]string{"artist", "title", "tags", "found", "looked_up_at"}).
		AddRow("Artist", "Title", "rock", true, now)
	mock.ExpectQuery(`(?s)SELECT.+FROM\s+genres`).
		WithArgs("Artist", "Title").
		WillReturnRows(rows)

	genre, err := gs.Get(track)
	require.NoError(t, err)
	assert.Equal(t, &radio.Genre{Track: track, Tags: "rock", Found: true, LookedUp: now}, genre)

	mock.ExpectQuery(`(?s)SELECT.+FROM\s+genres`).
		WithArgs("Artist", "Title").
		WillReturnError(sql.ErrNoRows)

	_, err = gs.Get(track)
	assert.True(t, errors.Is(errors.GenreNotFound, err))
}

func TestGenreStorageMissing(t *testing.T) {
	storage, mock := newTestStorage(t)
	gs := storage.Genre(context.Background())

	rows := sqlmock.NewRows([]string{"artist", "title"}).
		AddRow("A", "One").
		AddRow("B", "Two")
	mock.ExpectQuery(`(?s)SELECT DISTINCT.+LEFT JOIN\s+genres`).
		WithArgs(5).
		WillReturnRows(rows)

	tracks, err := gs.Missing(5)
	require.NoError(t, err)
	assert.Equal(t, []radio.Track{{Artist: "A", Title: "One"}, {Artist: "B", Title: "Two"}}, tracks)
	assert.NoError(t, mock.ExpectationsWereMet())
}
