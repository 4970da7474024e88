package mocks

import (
	"context"
	"sync"
	"time"

	radio "github.com/R-a-dio/tracklog"
	"github.com/R-a-dio/tracklog/errors"
)

// HourlySource returns a PlaylistSource that returns the events in windows
// for the hour queried, the date is filled in on every event returned
func HourlySource(windows map[int][]radio.PlayEvent) *PlaylistSourceMock {
	return &PlaylistSourceMock{
		PlaylistFunc: func(ctx context.Context, date time.Time, hour, minute int) []radio.PlayEvent {
			events := windows[hour]
			res := make([]radio.PlayEvent, 0, len(events))
			for _, e := range events {
				e.Date = date
				res = append(res, e)
			}
			return res
		},
	}
}

// GenreStore returns a GenreStorage that keeps everything in memory, missing
// is returned by Missing minus anything stored
func GenreStore(missing ...radio.Track) *GenreStorageMock {
	var mu sync.Mutex
	stored := map[radio.Track]radio.Genre{}

	return &GenreStorageMock{
		StoreFunc: func(genre radio.Genre) error {
			mu.Lock()
			defer mu.Unlock()
			stored[genre.Track] = genre
			return nil
		},
		GetFunc: func(track radio.Track) (*radio.Genre, error) {
			mu.Lock()
			defer mu.Unlock()
			g, ok := stored[track]
			if !ok {
				return nil, errors.E(errors.GenreNotFound)
			}
			return &g, nil
		},
		MissingFunc: func(limit int) ([]radio.Track, error) {
			mu.Lock()
			defer mu.Unlock()
			var res []radio.Track
			for _, t := range missing {
				if _, ok := stored[t]; ok {
					continue
				}
				if limit > 0 && len(res) >= limit {
					break
				}
				res = append(res, t)
			}
			return res, nil
		},
	}
}

// Storage returns a StorageService that hands out the storages given
func Storage(play radio.PlayStorage, genre radio.GenreStorage) *StorageServiceMock {
	return &StorageServiceMock{
		PlayFunc: func(context.Context) radio.PlayStorage {
			return play
		},
		GenreFunc: func(context.Context) radio.GenreStorage {
			return genre
		},
		CloseFunc: func() error {
			return nil
		},
	}
}
