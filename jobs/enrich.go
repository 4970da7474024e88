package jobs

import (
	"context"

	"github.com/R-a-dio/tracklog/config"
	"github.com/R-a-dio/tracklog/errors"
	"github.com/R-a-dio/tracklog/genre"
	"github.com/R-a-dio/tracklog/migrations"
	"github.com/R-a-dio/tracklog/storage"
	"github.com/R-a-dio/tracklog/telemetry"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// ExecuteEnrich looks up the genre of up to limit tracks that were never
// looked up before, a limit of zero or less looks up all of them
func ExecuteEnrich(ctx context.Context, cfg config.Config, limit int) error {
	const op errors.Op = "jobs/ExecuteEnrich"
	logger := zerolog.Ctx(ctx)

	// open the provider first, a missing api key should fail before we
	// touch the database
	provider, err := genre.Open(ctx, cfg)
	if err != nil {
		return errors.E(op, err)
	}

	if err := migrations.Up(ctx, cfg); err != nil {
		return errors.E(op, err)
	}

	store, err := storage.Open(ctx, cfg)
	if err != nil {
		return errors.E(op, err)
	}
	defer store.Close()

	gs := store.Genre(ctx)
	tracks, err := gs.Missing(limit)
	if err != nil {
		return errors.E(op, err)
	}
	if len(tracks) == 0 {
		logger.Info().Msg("no tracks need a genre lookup")
		return nil
	}

	logger.Info().Int("tracks", len(tracks)).Msg("looking up genres")

	notFoundLog := cfg.Conf().LastFM.NotFoundLog
	enricher := genre.NewEnricher(provider, gs, afero.NewOsFs(), notFoundLog)

	stats, err := enricher.Enrich(ctx, tracks)
	logger.Info().
		Int("total", stats.Total).
		Int("found", stats.Found).
		Int("not_found", stats.NotFound).
		Int("errors", stats.Errors).
		Msg("finished genre lookups")
	if stats.NotFound > 0 && notFoundLog != "" {
		logger.Info().Str("file", notFoundLog).Msg("wrote tracks without genre")
	}

	if err := telemetry.Push(ctx, cfg); err != nil {
		logger.Warn().Err(err).Msg("failed to push metrics")
	}

	if err != nil {
		return errors.E(op, err)
	}
	return nil
}
