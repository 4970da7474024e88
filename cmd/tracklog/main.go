package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"
	"syscall"

	tlcmd "github.com/R-a-dio/tracklog/cmd"
	"github.com/R-a-dio/tracklog/config"
	_ "github.com/R-a-dio/tracklog/genre/lastfm"     // lastfm genre provider
	_ "github.com/R-a-dio/tracklog/storage/mariadb" // mariadb storage interface
	"github.com/R-a-dio/tracklog/telemetry"
	"github.com/google/subcommands"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

type executeFn func(context.Context, config.Loader) error

type cmd struct {
	name     string
	synopsis string
	usage    string
	setFlags func(*flag.FlagSet)
	execute  executeFn
}

func (c cmd) Name() string     { return c.name }
func (c cmd) Synopsis() string { return c.synopsis }
func (c cmd) Usage() string    { return c.usage }
func (c cmd) SetFlags(f *flag.FlagSet) {
	if c.setFlags != nil {
		c.setFlags(f)
	}
}
func (c cmd) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	// extract extra arguments from the interface slice; it's fine if we panic here
	// because that is an unrecoverable programmer error
	errCh := args[0].(chan error)

	// add the subcommand name to the logging
	zerolog.Ctx(ctx).UpdateContext(func(zc zerolog.Context) zerolog.Context {
		return zc.Str("service", c.name)
	})

	var telemetryMu sync.Mutex
	var telemetryShutdown func()
	defer func() {
		telemetryMu.Lock()
		if telemetryShutdown != nil {
			telemetryShutdown()
		}
		telemetryMu.Unlock()
	}()

	loader := func() (config.Config, error) {
		cfg, err := config.LoadFile(configFile, configEnvFile)
		if err != nil {
			return cfg, err
		}
		config.ApplyEnv(cfg)
		if dsn != "" {
			conf := cfg.Conf()
			conf.Database.DSN = dsn
			cfg.StoreConf(conf)
		}

		telemetryMu.Lock()
		defer telemetryMu.Unlock()
		telemetryShutdown, err = telemetry.Init(ctx, cfg, c.name)
		if err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Msg("failed to initialize telemetry")
		}
		return cfg, err
	}

	errCh <- c.execute(ctx, loader)
	return subcommands.ExitSuccess
}

// withConfig turns a cmd.ExecuteFn into an executeFn
func withConfig(fn tlcmd.ExecuteFn) executeFn {
	return func(ctx context.Context, l config.Loader) error {
		cfg, err := l()
		if err != nil {
			return err
		}
		return fn(ctx, cfg)
	}
}

var CommitHash = sync.OnceValue(func() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				return setting.Value
			}
		}
	}
	return "(devel)"
})

var versionCmd = cmd{
	name:     "version",
	synopsis: "display version information of executable",
	usage: `version:
	display version information of executable
`,
	execute: printVersion,
}

func printVersion(context.Context, config.Loader) error {
	if info, ok := debug.ReadBuildInfo(); ok {
		fmt.Printf("%s %s\n", info.Path, CommitHash())
		for _, mod := range info.Deps {
			fmt.Printf("\t%s %s\n", mod.Path, mod.Version)
		}
	} else {
		fmt.Printf("%s %s\n", "tracklog", "(devel)")
	}
	return nil
}

var configCmd = cmd{
	name:     "config",
	synopsis: "display current configuration",
	usage: `config:
	display current configuration
`,
	execute: printConfig,
}

func printConfig(_ context.Context, l config.Loader) error {
	// try and load the configuration, but otherwise just print the defaults
	cfg, _ := l()
	return cfg.Save(os.Stdout)
}

// configEnvFile will be resolved to the environment variable given here
var configEnvFile = "TRACKLOG_CONFIG"

var (
	// configFile will be filled with the -config flag value
	configFile string
	// logLevel will be filled with the -loglevel flag value
	logLevel string
	// logFile will be filled with the -logfile flag value
	logFile string
	// dsn will be filled with the -dsn flag value
	dsn string
)

func main() {
	var disableStdout bool
	flag.StringVar(&configFile, "config", "tracklog.toml", "filepath to configuration file")
	flag.StringVar(&logLevel, "loglevel", "info", "loglevel to use")
	flag.StringVar(&logFile, "logfile", "", "file to write logs to, rotated when it gets large")
	flag.BoolVar(&disableStdout, "disable-stdout", false, "set to true to stop logs being printed")
	flag.StringVar(&dsn, "dsn", "", "database to use, overrides the configuration file")

	// add all our top-level flags as important flags to subcommands
	flag.VisitAll(func(f *flag.Flag) {
		subcommands.ImportantFlag(f.Name)
	})
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(versionCmd, "")
	subcommands.Register(configCmd, "")

	subcommands.Register(scrapeCmd(), "jobs")
	subcommands.Register(enrichCmd(), "jobs")

	for _, c := range reportCmds() {
		subcommands.Register(c, "reports")
	}

	subcommands.Register(&migrateCmd{}, "migrate")

	flag.Parse()
	configEnvFile = os.Getenv(configEnvFile)

	// exit code passed to os.Exit
	var code int

	// setup logger, logs go to stderr so that reports on stdout stay clean
	var writers []io.Writer
	if !disableStdout {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr})
	}
	if logFile != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    50, // megabytes
			MaxBackups: 5,
		})
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().
		Timestamp().
		Str("run_id", xid.New().String()).
		Logger()
	// change the level to what the flag told us
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		logger.Error().Err(err).Msg("failed to parse loglevel flag")
		os.Exit(1)
	}
	logger = logger.Level(level)

	// setup root context
	ctx := context.Background()
	ctx = logger.WithContext(ctx)

	// setup our error channel, we only use this channel if a nil error is returned by
	// executeCommand; because if it is a non-nil error we know our cmd.Execute finished
	// running; otherwise we have to wait for it to finish so we know it had the chance
	// to clean up resources
	errCh := make(chan error, 1)

	err = executeCommand(ctx, errCh)
	if err == nil {
		// executeCommand only returns nil when a signal asked us to stop running, this
		// means the command running has already been notified to shutdown and we will
		// wait for it to return
		<-errCh
	} else if exitErr, ok := err.(ExitError); ok {
		// we've received an ExitError which indicates a (potentially) different
		// failure exit code than the default
		code = exitErr.StatusCode()
	} else {
		// normal non-nil error, we exit with the default failure exit code
		code = 1
		// print the error if it's a non-ExitError since it's probably important
		if disableStdout {
			log.Println("exit error:", err)
		}
		logger.Error().Err(err).Msg("exit")
	}

	os.Exit(code)
}

// executeCommand runs subcommands.Execute and handles OS signals
//
// if someone is asking us to shutdown by sending us a SIGINT executeCommand
// should (and does) return a nil error. Otherwise it should return the error
// given by subcommands.Execute
func executeCommand(ctx context.Context, errCh chan error) error {
	// setup context that is passed to the command
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	signalCh := make(chan os.Signal, 2)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)

	// run our command in another goroutine so we can
	// do signal handling on the main goroutine
	go func() {
		code := subcommands.Execute(ctx, errCh)
		// send a fake error over the errCh, this is so subcommands that don't use our
		// `cmd` type don't hang the process
		errCh <- WithStatusCode(nil, int(code))
	}()

	select {
	case sig := <-signalCh:
		zerolog.Ctx(ctx).Info().Str("signal", sig.String()).Msg("stopping")
		return nil
	case err := <-errCh:
		return err
	}
}

// WithStatusCode returns an ExitError with the given status code
func WithStatusCode(err error, code int) error {
	return exitError{err, code}
}

// ExitError is an error that can carry a statuscode to be passed to os.Exit;
type ExitError interface {
	error
	// StatusCode returns a status code to be passed to os.Exit
	StatusCode() int
}

type exitError struct {
	error
	code int
}

// StatusCode returns a status code to be passed to os.Exit
func (err exitError) StatusCode() int {
	return err.code
}

func (err exitError) Error() string {
	if err.error == nil {
		return fmt.Sprintf("exit status %d", err.code)
	}
	return err.error.Error()
}
