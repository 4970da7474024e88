package scraper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/R-a-dio/tracklog/errors"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, berlin)

	cases := []struct {
		in   string
		want time.Time
	}{
		{"17:15", time.Date(2024, 3, 1, 17, 15, 0, 0, berlin)},
		{"00:00", time.Date(2024, 3, 1, 0, 0, 0, 0, berlin)},
		{"9:05", time.Date(2024, 3, 1, 9, 5, 0, 0, berlin)},
		{"02:35 PM", time.Date(2024, 3, 1, 14, 35, 0, 0, berlin)},
		{"2:35 pm", time.Date(2024, 3, 1, 14, 35, 0, 0, berlin)},
		{"12:10 AM", time.Date(2024, 3, 1, 0, 10, 0, 0, berlin)},
		{"23:59:58", time.Date(2024, 3, 1, 23, 59, 58, 0, berlin)},
		{" 17:15 ", time.Date(2024, 3, 1, 17, 15, 0, 0, berlin)},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseTimestamp(c.in, date)
			require.NoError(t, err)
			assert.True(t, c.want.Equal(got), "want %s got %s", c.want, got)
			assert.Equal(t, berlin, got.Location())
		})
	}
}

func TestParseTimestampEmpty(t *testing.T) {
	got, err := ParseTimestamp("", time.Now())
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestParseTimestampUnparseable(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"17.15", "25:00", "abc", "17:15 Uhr", "13.01.2026"} {
		got, err := ParseTimestamp(in, date)
		assert.True(t, got.IsZero(), in)
		assert.True(t, errors.Is(errors.TimeUnparseable, err), in)
	}

	// the logging variant swallows the error
	assert.True(t, Timestamp(context.Background(), "nope", date).IsZero())
}

func TestParseTimestampSkippedByDST(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	// clocks go from 02:00 to 03:00
	date := time.Date(2024, 3, 31, 0, 0, 0, 0, berlin)

	got, err := ParseTimestamp("02:30", date)
	assert.True(t, got.IsZero())
	assert.True(t, errors.Is(errors.TimeUnparseable, err))

	got, err = ParseTimestamp("03:30", date)
	require.NoError(t, err)
	assert.Equal(t, "03:30", got.Format("15:04"))

	// the repeated hour in autumn exists
	got, err = ParseTimestamp("02:30", time.Date(2024, 10, 27, 0, 0, 0, 0, berlin))
	require.NoError(t, err)
	assert.Equal(t, "02:30", got.Format("15:04"))
}

func TestParseTimestampSameDay(t *testing.T) {
	p := gopter.NewProperties(nil)
	date := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	p.Property("wall clock and date are kept", prop.ForAll(
		func(hour, minute int) bool {
			s := fmt.Sprintf("%02d:%02d", hour, minute)
			got, err := ParseTimestamp(s, date)
			if err != nil {
				return false
			}
			y, m, d := got.Date()
			return y == 2024 && m == time.March && d == 31 &&
				got.Hour() == hour && got.Minute() == minute &&
				got.Format("15:04") == s
		},
		gen.IntRange(0, 23),
		gen.IntRange(0, 59),
	))

	p.TestingRun(t)
}
