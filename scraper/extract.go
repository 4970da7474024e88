package scraper

import (
	"context"
	"io"
	"iter"
	"strings"
	"time"

	radio "github.com/R-a-dio/tracklog"
	"github.com/R-a-dio/tracklog/errors"
	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
)

const (
	selectorTable     = "table.thleft"
	selectorRow       = "tr.data"
	selectorTime      = "th.entry.datetime"
	selectorTitle     = "td.entry.title"
	selectorPerformer = "td.entry.performer"
)

// Extract parses a playlist page into play events, every event gets the date
// given regardless of what the page says. A page without a playlist table
// returns no events
func Extract(ctx context.Context, r io.Reader, date time.Time) []radio.PlayEvent {
	const op errors.Op = "scraper/Extract"
	logger := zerolog.Ctx(ctx)

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		logger.Warn().Err(errors.E(op, err, date)).Msg("failed to parse playlist page")
		return nil
	}

	table := doc.Find(selectorTable).First()
	if table.Length() == 0 {
		logger.Warn().Err(errors.E(op, errors.PlaylistMissing, date)).Msg("could not find playlist table")
		return nil
	}

	var events []radio.PlayEvent
	for event, err := range Rows(ctx, table, date) {
		if err != nil {
			logger.Debug().Err(err).Msg("skipping playlist row")
			continue
		}
		events = append(events, event)
	}
	return events
}

// Rows yields a play event or the reason it was skipped for every row in the
// playlist table given
func Rows(ctx context.Context, table *goquery.Selection, date time.Time) iter.Seq2[radio.PlayEvent, error] {
	const op errors.Op = "scraper/Rows"

	return func(yield func(radio.PlayEvent, error) bool) {
		table.Find(selectorRow).EachWithBreak(func(i int, row *goquery.Selection) bool {
			title := row.Find(selectorTitle).First()
			performer := row.Find(selectorPerformer).First()
			if title.Length() == 0 || performer.Length() == 0 {
				return yield(radio.PlayEvent{}, errors.E(op, errors.EventMissingField, date,
					errors.Info("missing title or performer cell")))
			}

			localTime := TimeLabel(row.Find(selectorTime).First().Text())
			event := radio.PlayEvent{
				Artist:    strings.TrimSpace(performer.Text()),
				Title:     strings.TrimSpace(title.Text()),
				LocalTime: localTime,
				Date:      radio.Day(date),
				Timestamp: Timestamp(ctx, localTime, date),
			}
			if !event.IsValid() {
				return yield(radio.PlayEvent{}, errors.E(op, errors.EventMissingField, event))
			}
			return yield(event, nil)
		})
	}
}

// TimeLabel normalizes a time label like "13.01.2026,17.15 Uhr" into "17:15",
// it returns an empty string if the label has no time part
func TimeLabel(s string) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "Uhr", ""))
	_, after, ok := strings.Cut(s, ",")
	if !ok {
		return ""
	}
	// only the part between the first and second comma is the time
	after, _, _ = strings.Cut(after, ",")
	return strings.ReplaceAll(strings.TrimSpace(after), ".", ":")
}
