package storage

import (
	"context"
	"maps"
	"slices"

	radio "github.com/R-a-dio/tracklog"
	"github.com/R-a-dio/tracklog/config"
	"github.com/R-a-dio/tracklog/errors"
	"github.com/rs/zerolog"
)

// OpenFn is a function that returns a StorageService configured with the config given
type OpenFn func(context.Context, config.Config) (radio.StorageService, error)

var providers = map[string]OpenFn{}

// Register registers an OpenFn under the name given, it is not safe to
// call Register from multiple goroutines
//
// Register will panic if the name already exists
func Register(name string, fn OpenFn) {
	if _, ok := providers[name]; ok {
		panic("storage already exists with name: " + name)
	}
	providers[name] = fn
}

// Providers returns the names of all registered providers
func Providers() []string {
	return slices.Sorted(maps.Keys(providers))
}

// Open returns a radio.StorageService as configured by the config given
func Open(ctx context.Context, cfg config.Config) (radio.StorageService, error) {
	const op errors.Op = "storage/Open"

	name := cfg.Conf().Providers.Storage
	fn, ok := providers[name]
	if !ok {
		return nil, errors.E(op, errors.StorageUnknown, errors.Info(name))
	}

	zerolog.Ctx(ctx).Debug().Str("provider", name).Msg("opening storage")
	store, err := fn(ctx, cfg)
	if err != nil {
		return nil, errors.E(op, err)
	}
	return store, nil
}
