package mariadb

import (
	"database/sql"
	"math"
	"time"
	"unicode/utf8"

	radio "github.com/R-a-dio/tracklog"
	"github.com/R-a-dio/tracklog/errors"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
)

// errDuplicateEntry is the mysql error number for a unique constraint violation
const errDuplicateEntry = 1062

// PlayStorage implements radio.PlayStorage
type PlayStorage struct {
	handle handle
	loc    *time.Location
}

// playRow is a single row of the plays table
type playRow struct {
	Artist    string       `db:"artist"`
	Title     string       `db:"title"`
	LocalTime string       `db:"local_time"`
	Date      string       `db:"date"`
	PlayedAt  sql.NullTime `db:"played_at"`
}

func toPlayRow(e radio.PlayEvent) playRow {
	row := playRow{
		Artist:    truncate(e.Artist, radio.LimitArtistLength),
		Title:     truncate(e.Title, radio.LimitTitleLength),
		LocalTime: e.LocalTime,
		Date:      e.Date.Format(radio.DateFormat),
	}
	if e.HasTimestamp() {
		row.PlayedAt = sql.NullTime{Time: e.Timestamp, Valid: true}
	}
	return row
}

func (row playRow) event(loc *time.Location) radio.PlayEvent {
	e := radio.PlayEvent{
		Artist:    row.Artist,
		Title:     row.Title,
		LocalTime: row.LocalTime,
	}
	e.Date, _ = radio.ParseDate(row.Date, loc)
	if row.PlayedAt.Valid {
		e.Timestamp = row.PlayedAt.Time.In(loc)
	}
	return e
}

// truncate cuts s to at most n runes
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func isDuplicate(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == errDuplicateEntry
}

const playInsertQuery = `
INSERT INTO
	plays (artist, title, local_time, date, played_at)
VALUES
	(:artist, :title, :local_time, :date, :played_at);
`

var _ = CheckQuery[playRow](playInsertQuery)

// Insert implements radio.PlayStorage
func (ps PlayStorage) Insert(events []radio.PlayEvent) (int, error) {
	const op errors.Op = "mariadb/PlayStorage.Insert"
	handle, deferFn := ps.handle.span(op)
	defer deferFn()

	if len(events) == 0 {
		return 0, nil
	}

	handle, tx, err := requireTx(handle)
	if err != nil {
		return 0, errors.E(op, errors.TransactionBegin, err)
	}
	defer tx.Rollback()

	logger := zerolog.Ctx(handle.ctx)

	var inserted int
	for _, event := range events {
		if !event.IsValid() {
			logger.Warn().Err(errors.E(op, errors.EventMissingField, event)).Msg("skipping invalid event")
			continue
		}

		_, err := sqlx.NamedExec(handle, playInsertQuery, toPlayRow(event))
		if isDuplicate(err) {
			logger.Debug().Err(errors.E(op, errors.DuplicateEvent, event, err)).Msg("skipping duplicate event")
			continue
		}
		if err != nil {
			logger.Error().Err(errors.E(op, event, err)).Msg("failed to insert event")
			continue
		}
		inserted++
	}

	if err = tx.Commit(); err != nil {
		return 0, errors.E(op, errors.TransactionCommit, err)
	}
	return inserted, nil
}

const playByDateQuery = `
SELECT
	artist,
	title,
	local_time,
	DATE_FORMAT(date, '%Y-%m-%d') AS date,
	played_at
FROM
	plays
WHERE
	date = :date
ORDER BY
	played_at ASC, id ASC;
`

type playByDateParams struct {
	Date string `db:"date"`
}

var _ = CheckQuery[playByDateParams](playByDateQuery)

// ByDate implements radio.PlayStorage
func (ps PlayStorage) ByDate(date time.Time) ([]radio.PlayEvent, error) {
	const op errors.Op = "mariadb/PlayStorage.ByDate"
	handle, deferFn := ps.handle.span(op)
	defer deferFn()

	rows := SelectIter[playRow](handle, playByDateQuery, playByDateParams{
		Date: date.Format(radio.DateFormat),
	})

	var events []radio.PlayEvent
	for row, err := range rows {
		if err != nil {
			return nil, errors.E(op, err, date)
		}
		events = append(events, row.event(ps.loc))
	}
	return events, nil
}

type dateRange struct {
	Earliest sql.NullString `db:"earliest"`
	Latest   sql.NullString `db:"latest"`
}

func (dr dateRange) parse(loc *time.Location) (earliest, latest time.Time, err error) {
	if dr.Earliest.Valid {
		earliest, err = radio.ParseDate(dr.Earliest.String, loc)
		if err != nil {
			return
		}
	}
	if dr.Latest.Valid {
		latest, err = radio.ParseDate(dr.Latest.String, loc)
	}
	return
}

const playDateRangeQuery = `
SELECT
	DATE_FORMAT(MIN(date), '%Y-%m-%d') AS earliest,
	DATE_FORMAT(MAX(date), '%Y-%m-%d') AS latest
FROM
	plays;
`

// DateRange implements radio.PlayStorage
func (ps PlayStorage) DateRange() (earliest, latest time.Time, err error) {
	const op errors.Op = "mariadb/PlayStorage.DateRange"
	handle, deferFn := ps.handle.span(op)
	defer deferFn()

	var dr dateRange
	err = sqlx.Get(handle, &dr, playDateRangeQuery)
	if err != nil {
		return earliest, latest, errors.E(op, err)
	}

	earliest, latest, err = dr.parse(ps.loc)
	if err != nil {
		return earliest, latest, errors.E(op, err)
	}
	return earliest, latest, nil
}

// filterParams is the named parameter set of every query that accepts a
// radio.DateFilter, Start and End are NULL when unbounded
type filterParams struct {
	Start sql.NullString `db:"start"`
	End   sql.NullString `db:"end"`
	Limit int            `db:"limit"`
}

func newFilterParams(filter radio.DateFilter, limit int) filterParams {
	var p filterParams
	if !filter.Start.IsZero() {
		p.Start = sql.NullString{String: filter.Start.Format(radio.DateFormat), Valid: true}
	}
	if !filter.End.IsZero() {
		// end is inclusive
		end := radio.Day(filter.End).AddDate(0, 0, 1)
		p.End = sql.NullString{String: end.Format(radio.DateFormat), Valid: true}
	}
	if limit <= 0 {
		limit = math.MaxInt32
	}
	p.Limit = limit
	return p
}

const playTracksQuery = `
SELECT DISTINCT
	artist,
	title
FROM
	plays
WHERE
	(:start IS NULL OR date >= :start)
	AND (:end IS NULL OR date < :end)
ORDER BY
	artist ASC, title ASC
LIMIT :limit;
`

var _ = CheckQuery[filterParams](playTracksQuery)

type trackRow struct {
	Artist string `db:"artist"`
	Title  string `db:"title"`
}

// Tracks implements radio.PlayStorage
func (ps PlayStorage) Tracks(filter radio.DateFilter) ([]radio.Track, error) {
	const op errors.Op = "mariadb/PlayStorage.Tracks"
	handle, deferFn := ps.handle.span(op)
	defer deferFn()

	rows, err := Collect(SelectIter[trackRow](handle, playTracksQuery, newFilterParams(filter, 0)))
	if err != nil {
		return nil, errors.E(op, err)
	}

	tracks := make([]radio.Track, 0, len(rows))
	for _, row := range rows {
		tracks = append(tracks, radio.Track(row))
	}
	return tracks, nil
}

const playTopSongsQuery = `
SELECT
	artist,
	title,
	COUNT(*) AS play_count
FROM
	plays
WHERE
	(:start IS NULL OR date >= :start)
	AND (:end IS NULL OR date < :end)
GROUP BY
	artist, title
ORDER BY
	play_count DESC, artist ASC, title ASC
LIMIT :limit;
`

var _ = CheckQuery[filterParams](playTopSongsQuery)

type songCountRow struct {
	Artist    string `db:"artist"`
	Title     string `db:"title"`
	PlayCount int64  `db:"play_count"`
}

// TopSongs implements radio.PlayStorage
func (ps PlayStorage) TopSongs(filter radio.DateFilter, limit int) ([]radio.SongCount, error) {
	const op errors.Op = "mariadb/PlayStorage.TopSongs"
	handle, deferFn := ps.handle.span(op)
	defer deferFn()

	var rows []songCountRow
	err := handle.Select(&rows, playTopSongsQuery, newFilterParams(filter, limit))
	if err != nil {
		return nil, errors.E(op, err)
	}

	res := make([]radio.SongCount, 0, len(rows))
	for _, row := range rows {
		res = append(res, radio.SongCount(row))
	}
	return res, nil
}

// TopSongsByMonth implements radio.PlayStorage
func (ps PlayStorage) TopSongsByMonth(year int, month time.Month, limit int) ([]radio.SongCount, error) {
	const op errors.Op = "mariadb/PlayStorage.TopSongsByMonth"

	if month < time.January || month > time.December {
		return nil, errors.E(op, errors.InvalidArgument, errors.Info("month"))
	}

	start := time.Date(year, month, 1, 0, 0, 0, 0, ps.loc)
	filter := radio.DateFilter{
		Start: start,
		End:   start.AddDate(0, 1, -1),
	}

	res, err := ps.TopSongs(filter, limit)
	if err != nil {
		return nil, errors.E(op, err)
	}
	return res, nil
}

const playTopArtistsQuery = `
SELECT
	artist,
	COUNT(*) AS play_count
FROM
	plays
WHERE
	(:start IS NULL OR date >= :start)
	AND (:end IS NULL OR date < :end)
GROUP BY
	artist
ORDER BY
	play_count DESC, artist ASC
LIMIT :limit;
`

var _ = CheckQuery[filterParams](playTopArtistsQuery)

type artistCountRow struct {
	Artist    string `db:"artist"`
	PlayCount int64  `db:"play_count"`
}

// TopArtists implements radio.PlayStorage
func (ps PlayStorage) TopArtists(filter radio.DateFilter, limit int) ([]radio.ArtistCount, error) {
	const op errors.Op = "mariadb/PlayStorage.TopArtists"
	handle, deferFn := ps.handle.span(op)
	defer deferFn()

	var rows []artistCountRow
	err := handle.Select(&rows, playTopArtistsQuery, newFilterParams(filter, limit))
	if err != nil {
		return nil, errors.E(op, err)
	}

	res := make([]radio.ArtistCount, 0, len(rows))
	for _, row := range rows {
		res = append(res, radio.ArtistCount(row))
	}
	return res, nil
}

const playStatisticsQuery = `
SELECT
	COUNT(*) AS total_plays,
	COUNT(DISTINCT artist, title) AS unique_songs,
	COUNT(DISTINCT artist) AS unique_artists,
	DATE_FORMAT(MIN(date), '%Y-%m-%d') AS earliest,
	DATE_FORMAT(MAX(date), '%Y-%m-%d') AS latest
FROM
	plays;
`

type statisticsRow struct {
	TotalPlays    int64 `db:"total_plays"`
	UniqueSongs   int64 `db:"unique_songs"`
	UniqueArtists int64 `db:"unique_artists"`
	dateRange
}

// Statistics implements radio.PlayStorage
func (ps PlayStorage) Statistics() (*radio.Statistics, error) {
	const op errors.Op = "mariadb/PlayStorage.Statistics"
	handle, deferFn := ps.handle.span(op)
	defer deferFn()

	var row statisticsRow
	err := sqlx.Get(handle, &row, playStatisticsQuery)
	if err != nil {
		return nil, errors.E(op, err)
	}

	earliest, latest, err := row.parse(ps.loc)
	if err != nil {
		return nil, errors.E(op, err)
	}

	return &radio.Statistics{
		TotalPlays:    row.TotalPlays,
		UniqueSongs:   row.UniqueSongs,
		UniqueArtists: row.UniqueArtists,
		Earliest:      earliest,
		Latest:        latest,
	}, nil
}
