package scraper

import (
	"context"
	"slices"
	"time"

	radio "github.com/R-a-dio/tracklog"
	"github.com/R-a-dio/tracklog/telemetry"
	"github.com/elliotchance/orderedmap/v3"
	"github.com/rs/zerolog"
)

// queryMinute is the minute every hourly query is made at, the station returns
// plays from roughly half an hour around the time queried so neighbouring
// queries overlap
const queryMinute = 0

// closingMinute is the minute of an extra query in the last hour of a complete
// day, the hourly queries stop at half past eleven otherwise. Only plays that
// are timed in the last hour are taken from it since the window runs into the
// next day
const closingMinute = 59

type query struct {
	hour, minute int
	closing      bool
}

// admits reports if event is kept from the window returned for q
func (q query) admits(event radio.PlayEvent) bool {
	if !q.closing {
		return true
	}
	return event.HasTimestamp() && event.Timestamp.Hour() == q.hour
}

// Collector collects all plays of one or more days by querying a playlist
// source once for every hour of the day, and once more at the end of a
// complete day
type Collector struct {
	source radio.PlaylistSource
	loc    *time.Location
	now    func() time.Time
}

// NewCollector returns a collector reading from source, calendar dates are
// interpreted in loc
func NewCollector(source radio.PlaylistSource, loc *time.Location) *Collector {
	if loc == nil {
		loc = time.Local
	}
	return &Collector{
		source: source,
		loc:    loc,
		now:    time.Now,
	}
}

// Today returns midnight of the current date
func (c *Collector) Today() time.Time {
	return radio.Day(c.now().In(c.loc))
}

// date returns midnight of the calendar date of t in the collector location
func (c *Collector) date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, c.loc)
}

// Hours returns the hours that are queried for date, all 24 hours unless date
// is today in which case only the hours that have started
func (c *Collector) Hours(date time.Time) int {
	now := c.now().In(c.loc)
	if radio.SameDay(c.date(date), now) {
		return now.Hour() + 1
	}
	return 24
}

// queries returns the queries made for date in order
func (c *Collector) queries(date time.Time) []query {
	hours := c.Hours(date)
	res := make([]query, 0, hours+1)
	for hour := range hours {
		res = append(res, query{hour: hour, minute: queryMinute})
	}
	if hours == 24 {
		res = append(res, query{hour: 23, minute: closingMinute, closing: true})
	}
	return res
}

// Day returns the plays of a single day without duplicates, ordered by time.
// Plays without a time are ordered first
func (c *Collector) Day(ctx context.Context, date time.Time) []radio.PlayEvent {
	logger := zerolog.Ctx(ctx)
	date = c.date(date)
	logger.Info().Str("date", date.Format(radio.DateFormat)).Msg("collecting playlist")

	seen := orderedmap.NewOrderedMap[radio.EventKey, radio.PlayEvent]()

	for _, q := range c.queries(date) {
		if ctx.Err() != nil {
			break
		}

		events := c.source.Playlist(ctx, date, q.hour, q.minute)

		var admitted int
		for _, event := range events {
			if !q.admits(event) {
				continue
			}
			key := event.Key()
			if _, ok := seen.Get(key); ok {
				continue
			}
			seen.Set(key, event)
			admitted++
		}

		telemetry.PlaylistEvents.WithLabelValues("fetched").Add(float64(len(events)))
		telemetry.PlaylistEvents.WithLabelValues("admitted").Add(float64(admitted))
		logger.Debug().
			Int("hour", q.hour).
			Int("minute", q.minute).
			Int("fetched", len(events)).
			Int("new", admitted).
			Msg("queried playlist")
	}

	res := make([]radio.PlayEvent, 0, seen.Len())
	for event := range seen.Values() {
		res = append(res, event)
	}
	slices.SortStableFunc(res, radio.CompareTimestamp)

	if len(res) > 0 {
		logger.Info().
			Str("date", date.Format(radio.DateFormat)).
			Int("total", len(res)).
			Str("first", res[0].LocalTime).
			Str("last", res[len(res)-1].LocalTime).
			Msg("collected playlist")
	}
	return res
}

// Range returns the plays of every day from start to end inclusive, days are
// collected independently and in order. Duplicates across days are kept
func (c *Collector) Range(ctx context.Context, start, end time.Time) []radio.PlayEvent {
	logger := zerolog.Ctx(ctx)
	start, end = c.date(start), c.date(end)

	var res []radio.PlayEvent
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		if ctx.Err() != nil {
			logger.Warn().Err(ctx.Err()).Str("date", date.Format(radio.DateFormat)).Msg("stopping collection early")
			break
		}

		events := c.Day(ctx, date)
		logger.Info().Str("date", date.Format(radio.DateFormat)).Int("total", len(events)).Msg("day done")
		res = append(res, events...)
	}
	return res
}

// LastDays returns the plays of the last n days, today included
func (c *Collector) LastDays(ctx context.Context, n int) []radio.PlayEvent {
	if n < 1 {
		return nil
	}
	end := c.Today()
	start := end.AddDate(0, 0, -(n - 1))
	return c.Range(ctx, start, end)
}
