package mariadb

import (
	"database/sql"
	"math"
	"time"

	radio "github.com/R-a-dio/tracklog"
	"github.com/R-a-dio/tracklog/errors"
	"github.com/jmoiron/sqlx"
)

// GenreStorage implements radio.GenreStorage
type GenreStorage struct {
	handle handle
}

type genreRow struct {
	Artist   string         `db:"artist"`
	Title    string         `db:"title"`
	Tags     sql.NullString `db:"tags"`
	Found    bool           `db:"found"`
	LookedUp time.Time      `db:"looked_up_at"`
}

const genreStoreQuery = `
INSERT INTO
	genres (artist, title, tags, found, looked_up_at)
VALUES
	(:artist, :title, :tags, :found, :looked_up_at)
ON DUPLICATE KEY UPDATE
	tags=VALUES(tags),
	found=VALUES(found),
	looked_up_at=VALUES(looked_up_at);
`

var _ = CheckQuery[genreRow](genreStoreQuery)

// Store implements radio.GenreStorage
func (gs GenreStorage) Store(genre radio.Genre) error {
	const op errors.Op = "mariadb/GenreStorage.Store"
	handle, deferFn := gs.handle.span(op)
	defer deferFn()

	if genre.Artist == "" || genre.Title == "" {
		return errors.E(op, errors.InvalidArgument, errors.Info("genre needs an artist and title"))
	}

	if genre.LookedUp.IsZero() {
		genre.LookedUp = time.Now()
	}

	row := genreRow{
		Artist:   truncate(genre.Artist, radio.LimitArtistLength),
		Title:    truncate(genre.Title, radio.LimitTitleLength),
		Tags:     sql.NullString{String: genre.Tags, Valid: genre.Found},
		Found:    genre.Found,
		LookedUp: genre.LookedUp,
	}

	_, err := sqlx.NamedExec(handle, genreStoreQuery, row)
	if err != nil {
		return errors.E(op, err)
	}
	return nil
}

const genreGetQuery = `
SELECT
	artist,
	title,
	tags,
	found,
	looked_up_at
FROM
	genres
WHERE
	artist = :artist AND title = :title;
`

var _ = CheckQuery[trackRow](genreGetQuery)

// Get implements radio.GenreStorage
func (gs GenreStorage) Get(track radio.Track) (*radio.Genre, error) {
	const op errors.Op = "mariadb/GenreStorage.Get"
	handle, deferFn := gs.handle.span(op)
	defer deferFn()

	var row genreRow
	err := handle.Get(&row, genreGetQuery, trackRow(track))
	if errors.IsE(err, sql.ErrNoRows) {
		return nil, errors.E(op, errors.GenreNotFound, errors.Info(track.String()))
	}
	if err != nil {
		return nil, errors.E(op, err)
	}

	return &radio.Genre{
		Track:    track,
		Tags:     row.Tags.String,
		Found:    row.Found,
		LookedUp: row.LookedUp,
	}, nil
}

const genreMissingQuery = `
SELECT DISTINCT
	plays.artist AS artist,
	plays.title AS title
FROM
	plays
LEFT JOIN
	genres ON genres.artist = plays.artist AND genres.title = plays.title
WHERE
	genres.artist IS NULL
ORDER BY
	plays.artist ASC, plays.title ASC
LIMIT :limit;
`

type genreMissingParams struct {
	Limit int `db:"limit"`
}

var _ = CheckQuery[genreMissingParams](genreMissingQuery)

// Missing implements radio.GenreStorage
func (gs GenreStorage) Missing(limit int) ([]radio.Track, error) {
	const op errors.Op = "mariadb/GenreStorage.Missing"
	handle, deferFn := gs.handle.span(op)
	defer deferFn()

	if limit <= 0 {
		limit = math.MaxInt32
	}

	var rows []trackRow
	err := handle.Select(&rows, genreMissingQuery, genreMissingParams{limit})
	if err != nil {
		return nil, errors.E(op, err)
	}

	tracks := make([]radio.Track, 0, len(rows))
	for _, row := range rows {
		tracks = append(tracks, radio.Track(row))
	}
	return tracks, nil
}
