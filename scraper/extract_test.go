package scraper

import (
	"context"
	"strings"
	"testing"
	"time"

	radio "github.com/R-a-dio/tracklog"
	"github.com/R-a-dio/tracklog/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeLabel(t *testing.T) {
	cases := map[string]string{
		"13.01.2026,17.15 Uhr":    "17:15",
		"13.01.2026,\n17.15 Uhr":  "17:15",
		"  01.03.2024, 09.05Uhr ": "09:05",
		"17.15 Uhr":               "",
		"":                        "",
		"01.03.2024,17.15,extra":  "17:15",
	}

	for in, want := range cases {
		assert.Equal(t, want, TimeLabel(in), "input %q", in)
	}
}

func TestExtract(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	page := mocks.PlaylistPage(
		mocks.PageRow{Time: mocks.TimeCell(date, "17.15"), Title: "Title", Performer: "Artist"},
		mocks.PageRow{Time: mocks.TimeCell(date, "17.19"), Title: "Rock & Roll", Performer: "Band"},
		// the page date is ignored
		mocks.PageRow{Time: "29.02.2024,<br>17.22 Uhr", Title: "Other", Performer: "Someone"},
	)

	events := Extract(ctx, strings.NewReader(page), date)
	require.Len(t, events, 3)

	first := events[0]
	assert.Equal(t, "Artist", first.Artist)
	assert.Equal(t, "Title", first.Title)
	assert.Equal(t, "17:15", first.LocalTime)
	assert.Equal(t, date, first.Date)
	assert.True(t, time.Date(2024, 3, 1, 17, 15, 0, 0, time.UTC).Equal(first.Timestamp))

	assert.Equal(t, "Rock & Roll", events[1].Title)

	third := events[2]
	assert.Equal(t, date, third.Date)
	assert.Equal(t, 1, third.Timestamp.Day())
	assert.Equal(t, "17:22", third.LocalTime)
}

func TestExtractSkipsIncompleteRows(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	page := mocks.PlaylistPage(
		mocks.PageRow{Time: mocks.TimeCell(date, "10.00"), Title: "", Performer: "Artist"},
		mocks.PageRow{Time: mocks.TimeCell(date, "10.03"), Title: "Title", Performer: "   "},
		mocks.PageRow{Time: mocks.TimeCell(date, "10.07"), Title: "Kept", Performer: "Artist"},
	)
	// a row without a performer cell at all
	page = strings.Replace(page, `</table>`,
		`<tr class="data"><th class="entry datetime">x</th><td class="entry title">Lonely</td></tr></table>`, 1)

	events := Extract(ctx, strings.NewReader(page), date)
	require.Len(t, events, 1)
	assert.Equal(t, "Kept", events[0].Title)
}

func TestExtractAbsentTime(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	page := mocks.PlaylistPage(
		mocks.PageRow{Time: "17.15 Uhr", Title: "No Comma", Performer: "Artist"},
		mocks.PageRow{Time: "01.03.2024,<br>late Uhr", Title: "Garbage", Performer: "Artist"},
		mocks.PageRow{Time: "", Title: "Empty", Performer: "Artist"},
	)

	events := Extract(ctx, strings.NewReader(page), date)
	require.Len(t, events, 3)
	for _, e := range events {
		assert.False(t, e.HasTimestamp(), e.Title)
		assert.Equal(t, date, e.Date)
	}
	assert.Equal(t, "", events[0].LocalTime)
	assert.Equal(t, "late", events[1].LocalTime)
}

func TestExtractMissingTable(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	for _, page := range []string{
		"",
		"<html><body><p>Wartungsarbeiten</p></body></html>",
		`<table class="other"><tr class="data"><td class="entry title">T</td><td class="entry performer">A</td></tr></table>`,
	} {
		assert.Empty(t, Extract(ctx, strings.NewReader(page), date))
	}
}

func TestRowsStopsEarly(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	page := mocks.PlaylistPage(
		mocks.PageRow{Time: mocks.TimeCell(date, "10.00"), Title: "One", Performer: "A"},
		mocks.PageRow{Time: mocks.TimeCell(date, "10.03"), Title: "Two", Performer: "A"},
	)
	doc := mustDocument(t, page)

	var seen []radio.PlayEvent
	for event, err := range Rows(ctx, doc.Find(selectorTable), date) {
		require.NoError(t, err)
		seen = append(seen, event)
		break
	}
	assert.Len(t, seen, 1)
}
