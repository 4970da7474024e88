package main

import (
	"context"
	"flag"
	"os"
	"time"

	tlcmd "github.com/R-a-dio/tracklog/cmd"
	"github.com/R-a-dio/tracklog/config"
	"github.com/R-a-dio/tracklog/errors"
	"github.com/R-a-dio/tracklog/jobs"
)

func scrapeCmd() cmd {
	var date, start, end tlcmd.Date
	var days int
	var delay time.Duration

	return cmd{
		name:     "scrape",
		synopsis: "scrape the station playlist into the database",
		usage: `scrape [-date YYYY-MM-DD | -start-date YYYY-MM-DD -end-date YYYY-MM-DD | -days N] [-delay 1s]:
	scrape the station playlist into the database, scrapes today if no
	dates are given
`,
		setFlags: func(f *flag.FlagSet) {
			f.Var(&date, "date", "specific date to scrape (YYYY-MM-DD)")
			f.Var(&start, "start-date", "first date to scrape (YYYY-MM-DD)")
			f.Var(&end, "end-date", "last date to scrape (YYYY-MM-DD)")
			f.IntVar(&days, "days", 0, "scrape the last N days")
			f.DurationVar(&delay, "delay", -1, "delay between requests, defaults to the configured delay")
		},
		execute: withConfig(func(ctx context.Context, cfg config.Config) error {
			return jobs.ExecuteScrape(ctx, cfg, jobs.ScrapeOptions{
				Date:  date.Time,
				Start: start.Time,
				End:   end.Time,
				Days:  days,
				Delay: delay,
			})
		}),
	}
}

func enrichCmd() cmd {
	var limit int

	return cmd{
		name:     "enrich",
		synopsis: "look up genres of tracks that don't have one yet",
		usage: `enrich [-limit N]:
	look up genres of tracks that don't have one yet, requires a last.fm api key
`,
		setFlags: func(f *flag.FlagSet) {
			f.IntVar(&limit, "limit", 0, "maximum amount of tracks to look up, 0 looks up all")
		},
		execute: withConfig(func(ctx context.Context, cfg config.Config) error {
			return jobs.ExecuteEnrich(ctx, cfg, limit)
		}),
	}
}

// reportCmd is a command that writes a report to stdout, build is called
// with the positional arguments after flag parsing
type reportCmd struct {
	name     string
	synopsis string
	usage    string
	nargs    int
	setFlags func(*flag.FlagSet)
	build    func(args []string, limit int) (jobs.ReportFn, error)
}

func (r reportCmd) cmd() cmd {
	var limit int
	var f *flag.FlagSet

	return cmd{
		name:     r.name,
		synopsis: r.synopsis,
		usage:    r.usage,
		setFlags: func(fs *flag.FlagSet) {
			f = fs
			fs.IntVar(&limit, "limit", 10, "number of results")
			if r.setFlags != nil {
				r.setFlags(fs)
			}
		},
		execute: withConfig(func(ctx context.Context, cfg config.Config) error {
			args := f.Args()
			if len(args) != r.nargs {
				return errors.E(errors.InvalidArgument, errors.Info("usage: "+r.usage))
			}
			fn, err := r.build(args, limit)
			if err != nil {
				return err
			}
			return jobs.ExecuteReport(ctx, cfg, os.Stdout, fn)
		}),
	}
}

func reportCmds() []cmd {
	var start, end tlcmd.Date
	dateFlags := func(f *flag.FlagSet) {
		f.Var(&start, "start-date", "first date (YYYY-MM-DD)")
		f.Var(&end, "end-date", "last date (YYYY-MM-DD)")
	}

	reports := []reportCmd{{
		name:     "top-day",
		synopsis: "top songs of a day",
		usage: `top-day [-limit N] <YYYY-MM-DD>:
	top songs of a day
`,
		nargs: 1,
		build: func(args []string, limit int) (jobs.ReportFn, error) {
			date, err := tlcmd.ParseDate(args[0])
			if err != nil {
				return nil, err
			}
			return jobs.TopDay(date, limit), nil
		},
	}, {
		name:     "top-week",
		synopsis: "top songs of a week",
		usage: `top-week [-limit N] <YYYY-MM-DD>:
	top songs of the seven days starting at the date given
`,
		nargs: 1,
		build: func(args []string, limit int) (jobs.ReportFn, error) {
			date, err := tlcmd.ParseDate(args[0])
			if err != nil {
				return nil, err
			}
			return jobs.TopWeek(date, limit), nil
		},
	}, {
		name:     "top-month",
		synopsis: "top songs of a month",
		usage: `top-month [-limit N] <year> <month>:
	top songs of a month
`,
		nargs: 2,
		build: func(args []string, limit int) (jobs.ReportFn, error) {
			year, month, err := tlcmd.ParseMonth(args[0], args[1])
			if err != nil {
				return nil, err
			}
			return jobs.TopMonth(year, month, limit), nil
		},
	}, {
		name:     "top-range",
		synopsis: "top songs between two dates",
		usage: `top-range [-limit N] <YYYY-MM-DD> <YYYY-MM-DD>:
	top songs between two dates, both inclusive
`,
		nargs: 2,
		build: func(args []string, limit int) (jobs.ReportFn, error) {
			s, err := tlcmd.ParseDate(args[0])
			if err != nil {
				return nil, err
			}
			e, err := tlcmd.ParseDate(args[1])
			if err != nil {
				return nil, err
			}
			return jobs.TopRange(s, e, limit), nil
		},
	}, {
		name:     "top-artists",
		synopsis: "top artists",
		usage: `top-artists [-limit N] [-start-date YYYY-MM-DD] [-end-date YYYY-MM-DD]:
	top artists of all time or between the dates given
`,
		setFlags: dateFlags,
		build: func(_ []string, limit int) (jobs.ReportFn, error) {
			return jobs.TopArtists(tlcmd.Filter(start, end), limit), nil
		},
	}, {
		name:     "top-songs",
		synopsis: "top songs",
		usage: `top-songs [-limit N] [-start-date YYYY-MM-DD] [-end-date YYYY-MM-DD]:
	top songs of all time or between the dates given
`,
		setFlags: dateFlags,
		build: func(_ []string, limit int) (jobs.ReportFn, error) {
			return jobs.TopSongs(tlcmd.Filter(start, end), limit), nil
		},
	}, {
		name:     "stats",
		synopsis: "summary statistics of the database",
		usage: `stats:
	summary statistics of the database
`,
		build: func([]string, int) (jobs.ReportFn, error) {
			return jobs.Stats(), nil
		},
	}}

	res := make([]cmd, 0, len(reports))
	for _, r := range reports {
		res = append(res, r.cmd())
	}
	return res
}
