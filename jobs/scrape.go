package jobs

import (
	"context"
	"time"

	radio "github.com/R-a-dio/tracklog"
	"github.com/R-a-dio/tracklog/config"
	"github.com/R-a-dio/tracklog/errors"
	"github.com/R-a-dio/tracklog/migrations"
	"github.com/R-a-dio/tracklog/scraper"
	"github.com/R-a-dio/tracklog/storage"
	"github.com/R-a-dio/tracklog/telemetry"
	"github.com/rs/zerolog"
)

// ScrapeOptions selects the days to scrape, the first of Date, Start and
// End, or Days that is set is used. Today is scraped if none are set.
type ScrapeOptions struct {
	// Date is a single day to scrape
	Date time.Time
	// Start and End are the first and last day of a range, inclusive
	Start time.Time
	End   time.Time
	// Days scrapes the last Days days including today
	Days int
	// Delay between requests, a negative value uses the configured delay
	Delay time.Duration
}

func (o ScrapeOptions) validate() error {
	if o.Start.IsZero() != o.End.IsZero() {
		return errors.E(errors.InvalidArgument, errors.Info("start and end date must be given together"))
	}
	if o.Days < 0 {
		return errors.E(errors.InvalidArgument, errors.Info("days must be positive"))
	}
	return nil
}

func (o ScrapeOptions) collect(ctx context.Context, c *scraper.Collector) []radio.PlayEvent {
	logger := zerolog.Ctx(ctx)

	switch {
	case !o.Date.IsZero():
		logger.Info().Time("date", o.Date).Msg("scraping playlist")
		return c.Day(ctx, o.Date)
	case !o.Start.IsZero():
		logger.Info().Time("start", o.Start).Time("end", o.End).Msg("scraping playlists")
		return c.Range(ctx, o.Start, o.End)
	case o.Days > 0:
		logger.Info().Int("days", o.Days).Msg("scraping last days")
		return c.LastDays(ctx, o.Days)
	default:
		logger.Info().Msg("scraping today's playlist")
		return c.Day(ctx, c.Today())
	}
}

// ScrapeResult is the outcome of a scrape
type ScrapeResult struct {
	Scraped  int
	Inserted int
	Skipped  int
}

// Scrape collects the days selected by opts and inserts them into store
func Scrape(ctx context.Context, c *scraper.Collector, store radio.PlayStorage, opts ScrapeOptions) (ScrapeResult, error) {
	const op errors.Op = "jobs/Scrape"

	if err := opts.validate(); err != nil {
		return ScrapeResult{}, errors.E(op, err)
	}

	events := opts.collect(ctx, c)
	res := ScrapeResult{Scraped: len(events)}
	if len(events) == 0 {
		return res, nil
	}

	inserted, err := store.Insert(events)
	if err != nil {
		return res, errors.E(op, err)
	}
	res.Inserted = inserted
	res.Skipped = len(events) - inserted

	telemetry.IngestEvents.WithLabelValues("inserted").Add(float64(res.Inserted))
	telemetry.IngestEvents.WithLabelValues("skipped").Add(float64(res.Skipped))
	return res, nil
}

// ExecuteScrape scrapes the station playlist and stores everything new
func ExecuteScrape(ctx context.Context, cfg config.Config, opts ScrapeOptions) error {
	const op errors.Op = "jobs/ExecuteScrape"
	logger := zerolog.Ctx(ctx)

	if err := opts.validate(); err != nil {
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

	collector := scraper.NewCollector(
		scraper.NewScraper(cfg, opts.Delay),
		cfg.Conf().Scraper.Loc(),
	)

	res, err := Scrape(ctx, collector, store.Play(ctx), opts)
	if err != nil {
		return errors.E(op, err)
	}

	logger.Info().
		Int("scraped", res.Scraped).
		Int("inserted", res.Inserted).
		Int("skipped", res.Skipped).
		Msgf("scraped %d, inserted %d, skipped %d", res.Scraped, res.Inserted, res.Skipped)

	if err := telemetry.Push(ctx, cfg); err != nil {
		logger.Warn().Err(err).Msg("failed to push metrics")
	}
	return nil
}
