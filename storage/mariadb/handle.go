package mariadb

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"sync"
	"time"

	radio "github.com/R-a-dio/tracklog"
	"github.com/R-a-dio/tracklog/config"
	"github.com/R-a-dio/tracklog/errors"
	"github.com/R-a-dio/tracklog/storage"
	"github.com/go-sql-driver/mysql" // mariadb
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

func init() {
	storage.Register("mariadb", Connect)
}

var DatabaseConnectFunc = sqlx.ConnectContext

// specialCasedColumnNames is a map of Go <StructField> to SQL <ColumnName>
var specialCasedColumnNames = map[string]string{
	"CreatedAt":     "created_at",
	"LocalTime":     "local_time",
	"PlayedAt":      "played_at",
	"PlayCount":     "play_count",
	"LookedUp":      "looked_up_at",
	"TotalPlays":    "total_plays",
	"UniqueSongs":   "unique_songs",
	"UniqueArtists": "unique_artists",
}

var invalidQueries = map[string]string{}

// zeroValue returns the zero value of T with things allocated inside
// if possible, small wrapper around zeroValueImpl
func zeroValue[T any]() T {
	v := zeroValueImpl(reflect.TypeFor[T]())
	return v.Interface().(T)
}

// zeroValueImpl returns a "filled" in zero value of the type given
//
// It does this by recursively allocating stuff until it reaches a
// concrete type
func zeroValueImpl(t reflect.Type) reflect.Value {
	v := reflect.New(t).Elem()

	switch v.Kind() {
	case reflect.Ptr:
		v.Set(zeroValueImpl(v.Type().Elem()).Addr())
	case reflect.Struct:
		for i := range v.Type().NumField() {
			// only exported fields, or reflect will yell at us
			if v.Type().Field(i).IsExported() {
				fv := v.Field(i)
				fv.Set(zeroValueImpl(fv.Type()))
			}
		}
	}

	return v
}

// CheckQuery checks if the named query given can be bound with a T, queries
// that can't are recorded and reported by the tests
func CheckQuery[T any](query string) struct{} {
	_, _, err := sqlx.Named(query, zeroValue[T]())
	if err != nil {
		_, filename, line, _ := runtime.Caller(1)
		if tmp := strings.Split(filename, string(filepath.Separator)); len(tmp) > 2 {
			filename = filepath.Join(tmp[len(tmp)-2:]...)
		}

		identifier := fmt.Sprintf("%s:%d", filename, line)
		invalidQueries[identifier] = err.Error()
	}

	return struct{}{}
}

// mapperFunc implements the MapperFunc for sqlx to specialcase column names
// and lowercase them for scan matching
func mapperFunc(s string) string {
	n, ok := specialCasedColumnNames[s]
	if ok {
		s = n
	}
	return strings.ToLower(s)
}

// ConnectDB connects to the configured mariadb instance and returns the raw database
// object. Argument multistatement indicates if we should allow queries with multiple
// statements in them.
func ConnectDB(ctx context.Context, cfg config.Config, multistatement bool) (*sqlx.DB, error) {
	info := cfg.Conf().Database

	// we require some specific arguments in the DSN to have code work properly, so make
	// sure those are included
	dsn, err := mysql.ParseDSN(info.DSN)
	if err != nil {
		return nil, err
	}

	if multistatement {
		dsn.MultiStatements = true
	}
	// UTC location to handle time.Time location
	dsn.Loc = time.UTC
	// parsetime to handle time.Time in the driver
	dsn.ParseTime = true
	// time_zone to have the database not try and interpret dates and times as the
	// locale of the system, but as UTC+0 instead
	if dsn.Params == nil {
		dsn.Params = map[string]string{}
	}
	dsn.Params["time_zone"] = "'+00:00'"
	conndsn := dsn.FormatDSN()

	// we want to print what we're connecting to, but not print our password
	if dsn.Passwd != "" {
		dsn.Passwd = "<redacted>"
	}

	zerolog.Ctx(ctx).Info().Str("address", dsn.FormatDSN()).Msg("trying to connect")

	db, err := DatabaseConnectFunc(ctx, "mysql", conndsn)
	if err != nil {
		return nil, err
	}

	db.MapperFunc(mapperFunc)

	return db, nil
}

// Connect connects to the database configured in cfg
func Connect(ctx context.Context, cfg config.Config) (radio.StorageService, error) {
	db, err := ConnectDB(ctx, cfg, false)
	if err != nil {
		return nil, err
	}
	return &StorageService{db: db, loc: cfg.Conf().Scraper.Loc()}, nil
}

// StorageService implements radio.StorageService with a sql database
type StorageService struct {
	db *sqlx.DB
	// loc is the location calendar dates are returned in
	loc *time.Location
}

func (s *StorageService) Close() error {
	return s.db.Close()
}

func newHandle(ctx context.Context, ext extContext, name string) handle {
	return handle{
		ext:     ext,
		ctx:     ctx,
		service: name,
	}
}

func (s *StorageService) Play(ctx context.Context) radio.PlayStorage {
	return PlayStorage{
		handle: newHandle(ctx, s.db, "play"),
		loc:    s.location(),
	}
}

func (s *StorageService) Genre(ctx context.Context) radio.GenreStorage {
	return GenreStorage{
		handle: newHandle(ctx, s.db, "genre"),
	}
}

func (s *StorageService) location() *time.Location {
	if s.loc == nil {
		return time.Local
	}
	return s.loc
}

// StorageTx is a database transaction
type StorageTx interface {
	Commit() error
	Rollback() error
}

type spanTx struct {
	*sqlx.Tx
	span trace.Span
	end  func()
}

func (tx spanTx) Commit() error {
	defer tx.end()
	tx.span.AddEvent("commit")

	return tx.Tx.Commit()
}

func (tx spanTx) Rollback() error {
	defer tx.end()
	tx.span.AddEvent("rollback")

	return tx.Tx.Rollback()
}

type extContext interface {
	sqlx.ExecerContext
	sqlx.QueryerContext
	// these are methods on sqlx.binder that is private, we need to implement these
	// to be a sqlx.Ext so that we can use all extensions added by sqlx
	DriverName() string
	Rebind(string) string
	BindNamed(string, any) (string, []any, error)
}

// requireTx returns a handle that uses a new transaction, the handle given
// must not already be using one
func requireTx(h handle) (handle, StorageTx, error) {
	db, ok := h.ext.(*sqlx.DB)
	if !ok {
		panic("mariadb: requireTx called on a handle without *sqlx.DB")
	}

	tx, err := db.BeginTxx(h.ctx, nil)
	if err != nil {
		return h, nil, err
	}

	var span trace.Span
	h.ctx, span = otel.Tracer("mariadb").Start(h.ctx, "transaction")
	end := sync.OnceFunc(func() { span.End() })

	h.ext = tx
	return h, spanTx{tx, span, end}, nil
}

// handle is an implementation of sqlx.Execer and sqlx.Queryer that can either use
// a *sqlx.DB directly, or a *sqlx.Tx. It implements these with the *Context equivalents
type handle struct {
	ext extContext
	ctx context.Context

	service string
}

func (h handle) span(op errors.Op) (handle, func(...trace.SpanEndOption)) {
	var span trace.Span
	h.ctx, span = otel.Tracer("mariadb").Start(h.ctx, string(op))

	return h, span.End
}

func (h handle) Exec(query string, args ...any) (sql.Result, error) {
	defer func(start time.Time) {
		zerolog.Ctx(h.ctx).Debug().
			Str("storage_service", h.service).
			Str("query", query).
			Any("arguments", args).
			TimeDiff("execution_time", time.Now(), start).
			Msg("exec")
	}(time.Now())

	return h.ext.ExecContext(h.ctx, query, args...)
}

func (h handle) Query(query string, args ...any) (*sql.Rows, error) {
	defer func(start time.Time) {
		zerolog.Ctx(h.ctx).Debug().
			Str("storage_service", h.service).
			Str("query", query).
			Any("arguments", args).
			TimeDiff("execution_time", time.Now(), start).
			Msg("query")
	}(time.Now())

	return h.ext.QueryContext(h.ctx, query, args...)
}

func (h handle) Queryx(query string, args ...any) (*sqlx.Rows, error) {
	defer func(start time.Time) {
		zerolog.Ctx(h.ctx).Debug().
			Str("storage_service", h.service).
			Str("query", query).
			Any("arguments", args).
			TimeDiff("execution_time", time.Now(), start).
			Msg("queryx")
	}(time.Now())

	return h.ext.QueryxContext(h.ctx, query, args...)
}

func (h handle) QueryRowx(query string, args ...any) *sqlx.Row {
	defer func(start time.Time) {
		zerolog.Ctx(h.ctx).Debug().
			Str("storage_service", h.service).
			Str("query", query).
			Any("arguments", args).
			TimeDiff("execution_time", time.Now(), start).
			Msg("query_rowx")
	}(time.Now())

	return h.ext.QueryRowxContext(h.ctx, query, args...)
}

func (h handle) BindNamed(query string, arg any) (string, []any, error) {
	return h.ext.BindNamed(query, arg)
}

func (h handle) Rebind(query string) string {
	return h.ext.Rebind(query)
}

func (h handle) DriverName() string {
	return h.ext.DriverName()
}

var _ sqlx.Execer = handle{}
var _ sqlx.Queryer = handle{}
var _ sqlx.Ext = handle{}

func (h handle) Get(dest any, query string, param any) error {
	// handle named parameters
	query, args, err := sqlx.Named(query, param)
	if err != nil {
		return err
	}

	// rebind the query to our database type
	query = h.ext.Rebind(query)
	return sqlx.GetContext(h.ctx, h.ext, dest, query, args...)
}

func (h handle) Select(dest any, query string, param any) error {
	// handle named parameters
	query, args, err := sqlx.Named(query, param)
	if err != nil {
		return err
	}

	// rebind the query to our database type
	query = h.ext.Rebind(query)
	return sqlx.SelectContext(h.ctx, h.ext, dest, query, args...)
}
