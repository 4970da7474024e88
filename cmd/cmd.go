// Package cmd contains helpers shared by the commands in cmd/
package cmd

import (
	"context"
	"strconv"
	"time"

	radio "github.com/R-a-dio/tracklog"
	"github.com/R-a-dio/tracklog/config"
	"github.com/R-a-dio/tracklog/errors"
)

// ExecuteFn is the function signature used by the jobs that are runnable
// from the command line, it's effectively the type of our 'main' function.
type ExecuteFn func(context.Context, config.Config) error

// Date is a flag.Value that holds a YYYY-MM-DD date, the zero value means
// the flag wasn't given
type Date struct {
	time.Time
}

func (d *Date) String() string {
	if d == nil || d.IsZero() {
		return ""
	}
	return d.Format(radio.DateFormat)
}

func (d *Date) Set(s string) error {
	t, err := ParseDate(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// ParseDate parses a YYYY-MM-DD argument
func ParseDate(s string) (time.Time, error) {
	const op errors.Op = "cmd/ParseDate"

	t, err := radio.ParseDate(s, time.Local)
	if err != nil {
		return time.Time{}, errors.E(op, errors.InvalidArgument, errors.Info("expected YYYY-MM-DD: "+s))
	}
	return t, nil
}

// ParseMonth parses a year and month argument, the month is 1 to 12
func ParseMonth(year, month string) (int, time.Month, error) {
	const op errors.Op = "cmd/ParseMonth"

	y, err := strconv.Atoi(year)
	if err != nil {
		return 0, 0, errors.E(op, errors.InvalidArgument, errors.Info("malformed year: "+year))
	}
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return 0, 0, errors.E(op, errors.InvalidArgument, errors.Info("month must be 1-12: "+month))
	}
	return y, time.Month(m), nil
}

// Filter returns a date filter from two optional date flags
func Filter(start, end Date) radio.DateFilter {
	return radio.DateFilter{Start: start.Time, End: end.Time}
}
