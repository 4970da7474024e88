package storage

import (
	"context"
	"testing"

	radio "github.com/R-a-dio/tracklog"
	"github.com/R-a-dio/tracklog/config"
	"github.com/R-a-dio/tracklog/errors"
	"github.com/R-a-dio/tracklog/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenUnknown(t *testing.T) {
	cfg := config.TestConfig()
	c := cfg.Conf()
	c.Providers.Storage = "does-not-exist"
	cfg.StoreConf(c)

	_, err := Open(context.Background(), cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(errors.StorageUnknown, err))
}

func TestRegisterAndOpen(t *testing.T) {
	want := mocks.Storage(nil, nil)
	Register("test-provider", func(ctx context.Context, cfg config.Config) (radio.StorageService, error) {
		return want, nil
	})
	assert.Contains(t, Providers(), "test-provider")
	assert.Panics(t, func() {
		Register("test-provider", nil)
	})

	cfg := config.TestConfig()
	c := cfg.Conf()
	c.Providers.Storage = "test-provider"
	cfg.StoreConf(c)

	got, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	assert.Same(t, want, got)
}
