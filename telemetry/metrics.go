package telemetry

import (
	"context"

	"github.com/R-a-dio/tracklog/config"
	"github.com/R-a-dio/tracklog/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/rs/zerolog"
)

// Registry holds every metric this program exports
var Registry = prometheus.NewRegistry()

var (
	// PlaylistFetches counts playlist page requests by result, one of
	// ok, error or empty. Every request is counted once
	PlaylistFetches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tracklog",
		Name:      "playlist_fetches_total",
		Help:      "Playlist page requests made, by result",
	}, []string{"result"})
	// PlaylistEvents counts play events seen by the collector, stage is
	// fetched for everything extracted and admitted for events that were new
	PlaylistEvents = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tracklog",
		Name:      "playlist_events_total",
		Help:      "Play events extracted from playlist pages, by stage",
	}, []string{"stage"})
	// IngestEvents counts events handed to storage, by result inserted or skipped
	IngestEvents = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tracklog",
		Name:      "ingest_events_total",
		Help:      "Play events handed to storage, by result",
	}, []string{"result"})
	// GenreLookups counts genre lookups by result, one of found, not_found
	// or error
	GenreLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tracklog",
		Name:      "genre_lookups_total",
		Help:      "Genre lookups done, by result",
	}, []string{"result"})
)

func init() {
	Registry.MustRegister(
		PlaylistFetches,
		PlaylistEvents,
		IngestEvents,
		GenreLookups,
	)
}

// Push pushes the current value of all metrics to the configured pushgateway,
// it does nothing if no pushgateway is configured
func Push(ctx context.Context, cfg config.Config) error {
	const op errors.Op = "telemetry/Push"

	conf := cfg.Conf().Metrics
	if conf.PushgatewayURL == "" {
		return nil
	}

	job := conf.Job
	if job == "" {
		job = "tracklog"
	}

	err := push.New(conf.PushgatewayURL, job).
		Gatherer(Registry).
		PushContext(ctx)
	if err != nil {
		return errors.E(op, err)
	}

	zerolog.Ctx(ctx).Debug().Str("url", conf.PushgatewayURL).Str("job", job).Msg("pushed metrics")
	return nil
}
