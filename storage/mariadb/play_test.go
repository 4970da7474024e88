package mariadb

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	radio "github.com/R-a-dio/tracklog"
	"github.com/R-a-dio/tracklog/errors"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) (*StorageService, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open stub database: %s", err)
	}
	t.Cleanup(func() { db.Close() })

	sqldb := sqlx.NewDb(db, "mock")
	sqldb.MapperFunc(mapperFunc)

	storage := &StorageService{db: sqldb, loc: time.UTC}
	return storage, mock
}

func TestInvalidQueries(t *testing.T) {
	for identifier, err := range invalidQueries {
		t.Errorf("invalid query at %s: %s", identifier, err)
	}
}

func testEvent(artist, title, hhmm string) radio.PlayEvent {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	e := radio.PlayEvent{
		Artist:    artist,
		Title:     title,
		LocalTime: hhmm,
		Date:      date,
	}
	if hhmm != "" {
		t, _ := time.Parse("15:04", hhmm)
		e.Timestamp = date.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute)
	}
	return e
}

func TestPlayStorageInsert(t *testing.T) {
	storage, mock := newTestStorage(t)
	ps := storage.Play(context.Background())

	events := []radio.PlayEvent{
		testEvent("Artist", "Title", "17:15"),
		testEvent("Dupe", "Title", "17:19"),
		testEvent("Broken", "Title", "17:22"),
		testEvent("NoTime", "Title", ""),
		{Artist: "", Title: "Invalid"},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO\s+plays`).
		WithArgs("Artist", "Title", "17:15", "2024-03-01", events[0].Timestamp).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO\s+plays`).
		WithArgs("Dupe", "Title", "17:19", "2024-03-01", sqlmock.AnyArg()).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectExec(`INSERT INTO\s+plays`).
		WithArgs("Broken", "Title", "17:22", "2024-03-01", sqlmock.AnyArg()).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectExec(`INSERT INTO\s+plays`).
		WithArgs("NoTime", "Title", "", "2024-03-01", nil).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	n, err := ps.Insert(events)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlayStorageInsertEmpty(t *testing.T) {
	storage, mock := newTestStorage(t)

	n, err := storage.Play(context.Background()).Insert(nil)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlayStorageInsertBeginFails(t *testing.T) {
	storage, mock := newTestStorage(t)

	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	_, err := storage.Play(context.Background()).Insert([]radio.PlayEvent{testEvent("A", "T", "10:00")})
	assert.True(t, errors.Is(errors.TransactionBegin, err))
}

func TestPlayStorageInsertTruncates(t *testing.T) {
	storage, mock := newTestStorage(t)

	long := make([]rune, radio.LimitArtistLength+10)
	for i := range long {
		long[i] = 'é'
	}
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO\s+plays`).
		WithArgs(string(long[:radio.LimitArtistLength]), "T", "10:00", "2024-03-01", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	n, err := storage.Play(context.Background()).Insert([]radio.PlayEvent{testEvent(string(long), "T", "10:00")})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestPlayStorageByDate(t *testing.T) {
	storage, mock := newTestStorage(t)
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	played := time.Date(2024, 3, 1, 17, 15, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"artist", "title", "local_time", "date", "played_at"}).
		AddRow("NoTime", "Title", "", "2024-03-01", nil).
		AddRow("Artist", "Title", "17:15", "2024-03-01", played)
	mock.ExpectQuery(`(?s)SELECT.+FROM\s+plays\s+WHERE\s+date = \?`).
		WithArgs("2024-03-01").
		WillReturnRows(rows)

	events, err := storage.Play(context.Background()).ByDate(date)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.False(t, events[0].HasTimestamp())
	assert.Equal(t, date, events[0].Date)
	assert.True(t, played.Equal(events[1].Timestamp))
	assert.Equal(t, "17:15", events[1].LocalTime)
}

func TestPlayStorageTopSongs(t *testing.T) {
	storage, mock := newTestStorage(t)

	rows := sqlmock.NewRows([]string{"artist", "title", "play_count"}).
		AddRow("A", "One", 5).
		AddRow("B", "Two", 3)
	mock.ExpectQuery(`SELECT\s+artist,\s+title,\s+COUNT\(\*\) AS play_count`).
		WithArgs("2024-03-01", "2024-03-01", "2024-03-08", "2024-03-08", 10).
		WillReturnRows(rows)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	songs, err := storage.Play(context.Background()).TopSongs(radio.Week(start), 10)
	require.NoError(t, err)
	assert.Equal(t, []radio.SongCount{
		{Artist: "A", Title: "One", PlayCount: 5},
		{Artist: "B", Title: "Two", PlayCount: 3},
	}, songs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlayStorageTopSongsUnbounded(t *testing.T) {
	storage, mock := newTestStorage(t)

	mock.ExpectQuery(`SELECT\s+artist,\s+title,\s+COUNT`).
		WithArgs(nil, nil, nil, nil, 20).
		WillReturnRows(sqlmock.NewRows([]string{"artist", "title", "play_count"}))

	songs, err := storage.Play(context.Background()).TopSongs(radio.DateFilter{}, 20)
	require.NoError(t, err)
	assert.Empty(t, songs)
}

func TestPlayStorageTopSongsByMonth(t *testing.T) {
	storage, mock := newTestStorage(t)

	mock.ExpectQuery(`SELECT\s+artist,\s+title,\s+COUNT`).
		WithArgs("2024-02-01", "2024-02-01", "2024-03-01", "2024-03-01", 10).
		WillReturnRows(sqlmock.NewRows([]string{"artist", "title", "play_count"}).AddRow("A", "B", 1))

	songs, err := storage.Play(context.Background()).TopSongsByMonth(2024, time.February, 10)
	require.NoError(t, err)
	assert.Len(t, songs, 1)

	_, err = storage.Play(context.Background()).TopSongsByMonth(2024, 13, 10)
	assert.True(t, errors.Is(errors.InvalidArgument, err))
}

func TestPlayStorageTopArtists(t *testing.T) {
	storage, mock := newTestStorage(t)

	rows := sqlmock.NewRows([]string{"artist", "play_count"}).
		AddRow("A", 9).
		AddRow("B", 9).
		AddRow("C", 1)
	mock.ExpectQuery(`SELECT\s+artist,\s+COUNT\(\*\) AS play_count`).
		WithArgs(nil, nil, "2024-03-02", "2024-03-02", 3).
		WillReturnRows(rows)

	filter := radio.DateFilter{End: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}
	artists, err := storage.Play(context.Background()).TopArtists(filter, 3)
	require.NoError(t, err)
	require.Len(t, artists, 3)
	assert.Equal(t, radio.ArtistCount{Artist: "A", PlayCount: 9}, artists[0])
}

func TestPlayStorageTracks(t *testing.T) {
	storage, mock := newTestStorage(t)

	rows := sqlmock.NewRows([]string{"artist", "title"}).
		AddRow("A", "One").
		AddRow("A", "Two")
	mock.ExpectQuery(`SELECT DISTINCT\s+artist,\s+title\s+FROM\s+plays`).
		WillReturnRows(rows)

	tracks, err := storage.Play(context.Background()).Tracks(radio.DateFilter{})
	require.NoError(t, err)
	assert.Equal(t, []radio.Track{{Artist: "A", Title: "One"}, {Artist: "A", Title: "Two"}}, tracks)
}

func TestPlayStorageStatistics(t *testing.T) {
	storage, mock := newTestStorage(t)

	rows := sqlmock.NewRows([]string{"total_plays", "unique_songs", "unique_artists", "earliest", "latest"}).
		AddRow(120, 80, 50, "2024-03-01", "2024-03-10")
	mock.ExpectQuery(`SELECT\s+COUNT\(\*\) AS total_plays`).WillReturnRows(rows)

	stats, err := storage.Play(context.Background()).Statistics()
	require.NoError(t, err)
	assert.EqualValues(t, 120, stats.TotalPlays)
	assert.EqualValues(t, 80, stats.UniqueSongs)
	assert.EqualValues(t, 50, stats.UniqueArtists)
	assert.Equal(t, 10, stats.DaysCovered())
}

func TestPlayStorageStatisticsEmpty(t *testing.T) {
	storage, mock := newTestStorage(t)

	rows := sqlmock.NewRows([]string{"total_plays", "unique_songs", "unique_artists", "earliest", "latest"}).
		AddRow(0, 0, 0, nil, nil)
	mock.ExpectQuery(`SELECT\s+COUNT\(\*\) AS total_plays`).WillReturnRows(rows)

	stats, err := storage.Play(context.Background()).Statistics()
	require.NoError(t, err)
	assert.Zero(t, stats.TotalPlays)
	assert.True(t, stats.Earliest.IsZero())
	assert.Equal(t, 0, stats.DaysCovered())
}

func TestPlayStorageDateRange(t *testing.T) {
	storage, mock := newTestStorage(t)

	rows := sqlmock.NewRows([]string{"earliest", "latest"}).AddRow("2024-02-28", "2024-03-01")
	mock.ExpectQuery(`SELECT\s+DATE_FORMAT\(MIN\(date\)`).WillReturnRows(rows)

	earliest, latest, err := storage.Play(context.Background()).DateRange()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC), earliest)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), latest)
}
