// Package genre looks up genre tags for tracks that were played and stores
// the results
package genre

import (
	"context"
	"maps"
	"slices"

	radio "github.com/R-a-dio/tracklog"
	"github.com/R-a-dio/tracklog/config"
	"github.com/R-a-dio/tracklog/errors"
)

// OpenFn returns a provider configured from cfg
type OpenFn func(context.Context, config.Config) (radio.GenreProvider, error)

var providers = map[string]OpenFn{}

// Register registers an OpenFn under the name given, it is not safe to
// call Register from multiple goroutines
//
// Register will panic if the name already exists
func Register(name string, fn OpenFn) {
	if _, ok := providers[name]; ok {
		panic("genre provider already exists with name: " + name)
	}
	providers[name] = fn
}

// Providers returns the names of all registered providers
func Providers() []string {
	return slices.Sorted(maps.Keys(providers))
}

// Open opens the provider named in [providers] genre
func Open(ctx context.Context, cfg config.Config) (radio.GenreProvider, error) {
	const op errors.Op = "genre/Open"

	name := cfg.Conf().Providers.Genre
	fn, ok := providers[name]
	if !ok {
		return nil, errors.E(op, errors.InvalidArgument,
			errors.Info("unknown genre provider: "+name))
	}

	pvd, err := fn(ctx, cfg)
	if err != nil {
		return nil, errors.E(op, err)
	}
	return pvd, nil
}
