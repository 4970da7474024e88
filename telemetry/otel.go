package telemetry

import (
	"context"

	"github.com/R-a-dio/tracklog/config"
	"github.com/R-a-dio/tracklog/storage/mariadb"
	"github.com/XSAM/otelsql"
	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

// Init sets up trace exporting if it is enabled in the configuration, the
// function returned flushes and stops the exporter
func Init(ctx context.Context, cfg config.Config, service string) (func(), error) {
	if !cfg.Conf().Telemetry.Use {
		return func() {}, nil
	}

	tp, err := InitTracer(ctx, cfg, service)
	if err != nil {
		return nil, err
	}
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	// done setting up, swap global functions to inject telemetry
	mariadb.DatabaseConnectFunc = DatabaseConnect

	closeFn := func() {
		tp.Shutdown(context.Background())
	}
	return closeFn, nil
}

func InitTracer(ctx context.Context, cfg config.Config, service string) (*trace.TracerProvider, error) {
	conf := cfg.Conf().Telemetry

	headers := map[string]string{}
	if conf.Auth != "" {
		headers["Authorization"] = conf.Auth
	}

	trace_exporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(conf.Endpoint),
		otlptracegrpc.WithHeaders(headers),
	)
	if err != nil {
		return nil, err
	}

	res, err := resource.Merge(resource.Default(), resource.Environment())
	if err != nil {
		return nil, err
	}
	res, err = resource.Merge(res, resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName("tracklog:"+service)))
	if err != nil {
		return nil, err
	}

	tp := trace.NewTracerProvider(
		trace.WithSampler(trace.AlwaysSample()),
		trace.WithBatcher(trace_exporter),
		trace.WithResource(res),
	)
	return tp, nil
}

// DatabaseConnect applies telemetry to a database/sql driver
func DatabaseConnect(ctx context.Context, driverName string, dataSourceName string) (*sqlx.DB, error) {
	db, err := otelsql.Open(driverName, dataSourceName, otelsql.WithSpanOptions(otelsql.SpanOptions{
		DisableErrSkip: true,
	}))
	if err != nil {
		return nil, err
	}

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return sqlx.NewDb(db, driverName), nil
}
