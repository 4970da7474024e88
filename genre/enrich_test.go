package genre

import (
	"context"
	"testing"
	"time"

	radio "github.com/R-a-dio/tracklog"
	"github.com/R-a-dio/tracklog/config"
	"github.com/R-a-dio/tracklog/errors"
	"github.com/R-a-dio/tracklog/mocks"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupTable(known map[radio.Track]string, failing ...radio.Track) *mocks.GenreProviderMock {
	return &mocks.GenreProviderMock{
		LookupGenreFunc: func(ctx context.Context, artist, title string) (string, error) {
			track := radio.Track{Artist: artist, Title: title}
			for _, f := range failing {
				if f == track {
					return "", errors.E(errors.Testing)
				}
			}
			tags, ok := known[track]
			if !ok {
				return "", errors.E(errors.GenreNotFound)
			}
			return tags, nil
		},
	}
}

func TestEnrich(t *testing.T) {
	ctx := context.Background()
	lucky := radio.Track{Artist: "Daft Punk", Title: "Get Lucky"}
	creep := radio.Track{Artist: "Radiohead", Title: "Creep"}
	unknown := radio.Track{Artist: "Unknown Artist 12345", Title: "Unknown Song 67890"}
	broken := radio.Track{Artist: "Broken", Title: "Connection"}

	provider := lookupTable(map[radio.Track]string{
		lucky: "electronic, disco, funk",
		creep: "alternative, rock, grunge",
	}, broken)
	store := mocks.GenreStore()
	fs := afero.NewMemMapFs()

	lookedUp := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	e := NewEnricher(provider, store, fs, "not_found.txt")
	e.now = func() time.Time { return lookedUp }

	stats, err := e.Enrich(ctx, []radio.Track{lucky, unknown, broken, creep})
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.Found)
	assert.Equal(t, 1, stats.NotFound)
	assert.Equal(t, 1, stats.Errors)
	assert.Equal(t, stats.Total, stats.Found+stats.NotFound+stats.Errors)
	assert.Equal(t, []radio.Track{unknown}, stats.NotFoundTracks)

	g, err := store.Get(lucky)
	require.NoError(t, err)
	assert.Equal(t, "electronic, disco, funk", g.Tags)
	assert.True(t, g.Found)
	assert.Equal(t, lookedUp, g.LookedUp)

	g, err = store.Get(unknown)
	require.NoError(t, err)
	assert.False(t, g.Found)
	assert.Empty(t, g.Tags)

	// failed lookups are retried on the next run
	_, err = store.Get(broken)
	assert.True(t, errors.Is(errors.GenreNotFound, err))

	content, err := afero.ReadFile(fs, "not_found.txt")
	require.NoError(t, err)
	assert.Equal(t,
		"# Songs not found in Last.fm\n# Total: 1\n\nUnknown Artist 12345 - Unknown Song 67890\n",
		string(content))
}

func TestEnrichStoreError(t *testing.T) {
	track := radio.Track{Artist: "Artist", Title: "Title"}
	unknown := radio.Track{Artist: "Unknown", Title: "Unknown"}
	store := &mocks.GenreStorageMock{
		StoreFunc: func(radio.Genre) error {
			return errors.E(errors.Testing)
		},
	}

	e := NewEnricher(lookupTable(map[radio.Track]string{track: "pop"}), store, afero.NewMemMapFs(), "")
	stats, err := e.Enrich(context.Background(), []radio.Track{track, unknown})
	require.NoError(t, err)
	// a track that could not be stored is only counted as an error
	assert.Equal(t, 0, stats.Found)
	assert.Equal(t, 0, stats.NotFound)
	assert.Equal(t, 2, stats.Errors)
	assert.Equal(t, stats.Total, stats.Found+stats.NotFound+stats.Errors)
	assert.Empty(t, stats.NotFoundTracks)
	assert.Len(t, store.StoreCalls(), 2)
}

func TestEnrichNoLogWhenAllFound(t *testing.T) {
	track := radio.Track{Artist: "Artist", Title: "Title"}
	fs := afero.NewMemMapFs()

	e := NewEnricher(lookupTable(map[radio.Track]string{track: "pop"}), mocks.GenreStore(), fs, "not_found.txt")
	_, err := e.Enrich(context.Background(), []radio.Track{track})
	require.NoError(t, err)

	exists, err := afero.Exists(fs, "not_found.txt")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestEnrichCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	track := radio.Track{Artist: "Artist", Title: "Title"}

	provider := &mocks.GenreProviderMock{
		LookupGenreFunc: func(context.Context, string, string) (string, error) {
			cancel()
			return "pop", nil
		},
	}

	e := NewEnricher(provider, mocks.GenreStore(), afero.NewMemMapFs(), "")
	stats, err := e.Enrich(ctx, []radio.Track{track, track, track})
	require.Error(t, err)
	assert.Equal(t, 1, stats.Found)
	assert.Len(t, provider.LookupGenreCalls(), 1)
}

func TestOpenUnknown(t *testing.T) {
	cfg := testConfig("does-not-exist")
	_, err := Open(context.Background(), cfg)
	assert.True(t, errors.Is(errors.InvalidArgument, err))
}

func TestRegisterAndOpen(t *testing.T) {
	want := lookupTable(nil)
	Register("test-provider", func(ctx context.Context, cfg config.Config) (radio.GenreProvider, error) {
		return want, nil
	})
	t.Cleanup(func() { delete(providers, "test-provider") })

	assert.Contains(t, Providers(), "test-provider")
	assert.Panics(t, func() {
		Register("test-provider", nil)
	})

	got, err := Open(context.Background(), testConfig("test-provider"))
	require.NoError(t, err)
	assert.Same(t, want, got)
}

func testConfig(provider string) config.Config {
	cfg := config.TestConfig()
	c := cfg.Conf()
	c.Providers.Genre = provider
	cfg.StoreConf(c)
	return cfg
}
