package telemetry

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/R-a-dio/tracklog/config"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushDisabled(t *testing.T) {
	cfg := config.TestConfig()
	require.NoError(t, Push(context.Background(), cfg))
}

func TestPush(t *testing.T) {
	var gotPath, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	IngestEvents.WithLabelValues("inserted").Add(3)

	cfg := config.TestConfig()
	c := cfg.Conf()
	c.Metrics.PushgatewayURL = srv.URL
	c.Metrics.Job = "tracklog-test"
	cfg.StoreConf(c)

	require.NoError(t, Push(context.Background(), cfg))
	assert.True(t, strings.HasPrefix(gotPath, "/metrics/job/tracklog-test"), gotPath)
	assert.NotEmpty(t, gotBody)
}

func TestPushError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := config.TestConfig()
	c := cfg.Conf()
	c.Metrics.PushgatewayURL = srv.URL
	cfg.StoreConf(c)

	assert.Error(t, Push(context.Background(), cfg))
}

func TestCountersRegistered(t *testing.T) {
	GenreLookups.WithLabelValues("found").Inc()
	assert.GreaterOrEqual(t, testutil.ToFloat64(GenreLookups.WithLabelValues("found")), 1.0)

	n, err := testutil.GatherAndCount(Registry, "tracklog_genre_lookups_total")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 1)
}

func TestInitDisabled(t *testing.T) {
	cfg := config.TestConfig()
	closeFn, err := Init(context.Background(), cfg, "test")
	require.NoError(t, err)
	require.NotNil(t, closeFn)
	closeFn()
}
