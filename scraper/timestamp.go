package scraper

import (
	"context"
	"strings"
	"time"

	"github.com/R-a-dio/tracklog/errors"
	"github.com/rs/zerolog"
)

// timeLayouts are the formats a playlist time is tried against, in order
var timeLayouts = []string{
	"15:04",
	"03:04 PM",
	"3:04 PM",
	"15:04:05",
}

// ParseTimestamp combines the time of day in s with the calendar date of date,
// the result is in the location of date. An empty s returns the zero time and
// no error, a string that matches none of the known formats returns the zero
// time and an error of kind TimeUnparseable. So does a time that the clocks
// skip in the location of date
func ParseTimestamp(s string, date time.Time) (time.Time, error) {
	const op errors.Op = "scraper/ParseTimestamp"

	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	// meridiem parsing only understands upper case
	s = strings.ToUpper(s)

	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		y, m, d := date.Date()
		res := time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), 0, date.Location())
		if res.Hour() != t.Hour() || res.Minute() != t.Minute() {
			return time.Time{}, errors.E(op, errors.TimeUnparseable,
				errors.Info(s+" does not exist in "+date.Location().String()), date)
		}
		return res, nil
	}

	return time.Time{}, errors.E(op, errors.TimeUnparseable, errors.Info(s), date)
}

// Timestamp is ParseTimestamp but logs the error instead of returning it
func Timestamp(ctx context.Context, s string, date time.Time) time.Time {
	t, err := ParseTimestamp(s, date)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("time", s).Msg("failed to parse playlist time")
	}
	return t
}
