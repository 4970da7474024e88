package genre

import (
	"context"
	"fmt"
	"time"

	radio "github.com/R-a-dio/tracklog"
	"github.com/R-a-dio/tracklog/errors"
	"github.com/R-a-dio/tracklog/telemetry"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// EnrichStats is the outcome of an Enrich call
type EnrichStats struct {
	Total    int
	Found    int
	NotFound int
	Errors   int
	// NotFoundTracks are the tracks that had no tags, in lookup order
	NotFoundTracks []radio.Track
}

// Enricher looks up genres of tracks one by one and stores the results
type Enricher struct {
	provider radio.GenreProvider
	store    radio.GenreStorage

	fs          afero.Fs
	notFoundLog string

	now func() time.Time
}

// NewEnricher returns an Enricher that writes the tracks it could not find
// to notFoundLog on fs, an empty notFoundLog disables that
func NewEnricher(provider radio.GenreProvider, store radio.GenreStorage, fs afero.Fs, notFoundLog string) *Enricher {
	return &Enricher{
		provider:    provider,
		store:       store,
		fs:          fs,
		notFoundLog: notFoundLog,
		now:         time.Now,
	}
}

// Enrich looks up every track given and stores the result. A track without
// tags is stored as not found so it isn't looked up again, a track whose
// lookup failed is not stored at all.
func (e *Enricher) Enrich(ctx context.Context, tracks []radio.Track) (EnrichStats, error) {
	const op errors.Op = "genre/Enricher.Enrich"
	logger := zerolog.Ctx(ctx)

	stats := EnrichStats{Total: len(tracks)}

	for i, track := range tracks {
		if err := ctx.Err(); err != nil {
			return stats, errors.E(op, err)
		}

		tags, err := e.provider.LookupGenre(ctx, track.Artist, track.Title)
		if err != nil && !errors.Is(errors.GenreNotFound, err) {
			stats.Errors++
			telemetry.GenreLookups.WithLabelValues("error").Inc()
			logger.Error().Err(err).Str("track", track.String()).Msg("genre lookup failed")
			continue
		}

		genre := radio.Genre{
			Track:    track,
			Tags:     tags,
			Found:    err == nil,
			LookedUp: e.now(),
		}
		if err := e.store.Store(genre); err != nil {
			stats.Errors++
			telemetry.GenreLookups.WithLabelValues("error").Inc()
			logger.Error().Err(err).Str("track", track.String()).Msg("failed to store genre")
			continue
		}

		if genre.Found {
			stats.Found++
			telemetry.GenreLookups.WithLabelValues("found").Inc()
		} else {
			stats.NotFound++
			stats.NotFoundTracks = append(stats.NotFoundTracks, track)
			telemetry.GenreLookups.WithLabelValues("not_found").Inc()
		}

		logger.Info().
			Int("n", i+1).
			Int("total", len(tracks)).
			Str("track", track.String()).
			Str("tags", tags).
			Bool("found", genre.Found).
			Msg("genre lookup")
	}

	if err := e.writeNotFound(stats.NotFoundTracks); err != nil {
		return stats, errors.E(op, err)
	}
	return stats, nil
}

// writeNotFound replaces the not found log with the tracks given
func (e *Enricher) writeNotFound(tracks []radio.Track) error {
	if e.notFoundLog == "" || len(tracks) == 0 {
		return nil
	}

	f, err := e.fs.Create(e.notFoundLog)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintln(f, "# Songs not found in Last.fm")
	fmt.Fprintf(f, "# Total: %d\n\n", len(tracks))
	for _, t := range tracks {
		fmt.Fprintln(f, t.String())
	}
	return f.Close()
}
