package jobs

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	radio "github.com/R-a-dio/tracklog"
	"github.com/R-a-dio/tracklog/config"
	"github.com/R-a-dio/tracklog/errors"
	"github.com/R-a-dio/tracklog/storage"
	"github.com/dustin/go-humanize"
)

var (
	songRule  = strings.Repeat("-", 70)
	statsRule = strings.Repeat("-", 50)
)

// ReportFn writes a report about the plays in store to w
type ReportFn func(w io.Writer, store radio.PlayStorage) error

// ExecuteReport opens the configured storage and writes the report to w
func ExecuteReport(ctx context.Context, cfg config.Config, w io.Writer, fn ReportFn) error {
	const op errors.Op = "jobs/ExecuteReport"

	store, err := storage.Open(ctx, cfg)
	if err != nil {
		return errors.E(op, err)
	}
	defer store.Close()

	if err := fn(w, store.Play(ctx)); err != nil {
		return errors.E(op, err)
	}
	return nil
}

// TopDay reports the most played songs on date
func TopDay(date time.Time, limit int) ReportFn {
	return func(w io.Writer, store radio.PlayStorage) error {
		songs, err := store.TopSongs(radio.DateFilter{Start: date, End: date}, limit)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\nTop %d songs on %s:\n", limit, date.Format(radio.DateFormat))
		writeSongs(w, songs)
		return nil
	}
}

// TopWeek reports the most played songs in the seven days starting at start
func TopWeek(start time.Time, limit int) ReportFn {
	return func(w io.Writer, store radio.PlayStorage) error {
		week := radio.Week(start)
		songs, err := store.TopSongs(week, limit)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\nTop %d songs for week %s to %s:\n", limit,
			week.Start.Format(radio.DateFormat), week.End.Format(radio.DateFormat))
		writeSongs(w, songs)
		return nil
	}
}

// TopMonth reports the most played songs in a month
func TopMonth(year int, month time.Month, limit int) ReportFn {
	return func(w io.Writer, store radio.PlayStorage) error {
		songs, err := store.TopSongsByMonth(year, month, limit)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\nTop %d songs for %d-%02d:\n", limit, year, int(month))
		writeSongs(w, songs)
		return nil
	}
}

// TopRange reports the most played songs between start and end, inclusive
func TopRange(start, end time.Time, limit int) ReportFn {
	return func(w io.Writer, store radio.PlayStorage) error {
		songs, err := store.TopSongs(radio.DateFilter{Start: start, End: end}, limit)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\nTop %d songs from %s to %s:\n", limit,
			start.Format(radio.DateFormat), end.Format(radio.DateFormat))
		writeSongs(w, songs)
		return nil
	}
}

// TopSongs reports the most played songs within filter
func TopSongs(filter radio.DateFilter, limit int) ReportFn {
	return func(w io.Writer, store radio.PlayStorage) error {
		songs, err := store.TopSongs(filter, limit)
		if err != nil {
			return err
		}
		info := describeFilter(filter)
		if filter.IsZero() {
			info = " of all time"
		}
		fmt.Fprintf(w, "\nTop %d songs%s:\n", limit, info)
		writeSongs(w, songs)
		return nil
	}
}

// TopArtists reports the most played artists within filter
func TopArtists(filter radio.DateFilter, limit int) ReportFn {
	return func(w io.Writer, store radio.PlayStorage) error {
		artists, err := store.TopArtists(filter, limit)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\nTop %d artists%s:\n", limit, describeFilter(filter))
		fmt.Fprintln(w, songRule)
		for i, a := range artists {
			fmt.Fprintf(w, "%2d. %s\n", i+1, a.Artist)
			fmt.Fprintf(w, "    Played %s times\n", humanize.Comma(a.PlayCount))
		}
		return nil
	}
}

// Stats reports the summary statistics of everything stored
func Stats() ReportFn {
	return func(w io.Writer, store radio.PlayStorage) error {
		stats, err := store.Statistics()
		if err != nil {
			return err
		}

		fmt.Fprintln(w, "\nDatabase Statistics:")
		fmt.Fprintln(w, statsRule)
		fmt.Fprintf(w, "Total songs played:    %s\n", humanize.Comma(stats.TotalPlays))
		fmt.Fprintf(w, "Unique songs:          %s\n", humanize.Comma(stats.UniqueSongs))
		fmt.Fprintf(w, "Unique artists:        %s\n", humanize.Comma(stats.UniqueArtists))
		if !stats.Earliest.IsZero() {
			fmt.Fprintf(w, "Earliest date:         %s\n", stats.Earliest.Format(radio.DateFormat))
			fmt.Fprintf(w, "Latest date:           %s\n", stats.Latest.Format(radio.DateFormat))
			fmt.Fprintf(w, "Days covered:          %s\n", humanize.Comma(int64(stats.DaysCovered())))
		}
		return nil
	}
}

func writeSongs(w io.Writer, songs []radio.SongCount) {
	fmt.Fprintln(w, songRule)
	for i, s := range songs {
		fmt.Fprintf(w, "%2d. %s - %s\n", i+1, s.Artist, s.Title)
		fmt.Fprintf(w, "    Played %s times\n", humanize.Comma(s.PlayCount))
	}
}

func describeFilter(filter radio.DateFilter) string {
	switch {
	case !filter.Start.IsZero() && !filter.End.IsZero():
		return fmt.Sprintf(" from %s to %s",
			filter.Start.Format(radio.DateFormat), filter.End.Format(radio.DateFormat))
	case !filter.Start.IsZero():
		return " from " + filter.Start.Format(radio.DateFormat)
	case !filter.End.IsZero():
		return " until " + filter.End.Format(radio.DateFormat)
	}
	return ""
}
