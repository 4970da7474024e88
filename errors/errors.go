package errors

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"runtime"
	"time"

	radio "github.com/R-a-dio/tracklog"
)

// Errorf is equavalent to fmt.Errorf
var Errorf = fmt.Errorf

// New is equavalent to errors.New
var New = errors.New

// As is equavalent to errors.As
var As = errors.As

// IsE is equavalent to errors.Is, named differently because Is is used for
// our own Kind matching
var IsE = errors.Is

// E builds an error value from its arguments.
// There must be at least one argument or E panics.
// The type of each argument determines its meaning.
// If more than one argument of a given type is presented,
// only the last one is recorded.
//
// The types are:
//
//	time.Time:
//		The calendar date involved, only the date part is printed
//	radio.EventKey:
//		The play event involved
//	radio.PlayEvent:
//		The play event involved, fills in both Date and Event above
//	errors.Info:
//		Extra info useful to this class of error, think argument
//		name when using InvalidArgument
//	errors.Op:
//		The operation being performed
//	string:
//		Treated as an error message and assigned to the
//		Err field after a call to errors.New
//	errors.Kind:
//		The class of error
//	error:
//		The underlying error that triggered this one
//
// If the error is printed, only those items that have been
// set to non-zero values will appear in the result.
//
// If Kind is not specified or Other, we set it to the Kind of
// the underlying error.
func E(args ...interface{}) error {
	if len(args) == 0 {
		panic("call to errors.E with no arguments")
	}

	e := &Error{}
	for _, arg := range args {
		switch arg := arg.(type) {
		case Kind:
			e.Kind = arg
		case Op:
			e.Op = arg
		case Info:
			e.Info = arg
		case time.Time:
			e.Date = arg
		case radio.EventKey:
			e.Event = arg
		case radio.PlayEvent:
			e.Event = arg.Key()
			e.Date = arg.Date
		case string:
			e.Err = errors.New(arg)
		case *Error:
			copy := *arg
			e.Err = &copy
		case error:
			e.Err = arg
		default:
			_, file, line, _ := runtime.Caller(1)
			log.Printf("errors.E: bad call from %s:%d: %v", file, line, args)
			return Errorf("unknown type %T, value %v in error call", arg, arg)
		}
	}

	prev, ok := e.Err.(*Error)
	if !ok {
		return e
	}

	// The previous error was also one of ours. Suppress duplications
	// so the message won't contain the same information twice
	if prev.Kind == e.Kind {
		prev.Kind = Other
	}
	if prev.Date.Equal(e.Date) {
		prev.Date = time.Time{}
	}
	if prev.Event == e.Event {
		prev.Event = radio.EventKey{}
	}
	if prev.Info == e.Info {
		prev.Info = ""
	}
	// if this error has Kind unset or Other, pull up the inner one
	if e.Kind == Other {
		e.Kind = prev.Kind
		prev.Kind = Other
	}

	return e
}

// Is reports whether err is an *Error of the given kind
func Is(kind Kind, err error) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	if e.Kind != Other {
		return e.Kind == kind
	}
	if e.Err != nil {
		return Is(kind, e.Err)
	}
	return false
}

// Op is the operation that was being performed
type Op string

// Info is some extra information that can be included with an Error
type Info string

// Error is the type that implements the error interface.
// It contains a number of fields, each of different type.
// An Error value may leave some values unset.
type Error struct {
	Kind  Kind
	Op    Op
	Date  time.Time
	Event radio.EventKey
	Info  Info
	Err   error
}

func (e *Error) isZero() bool {
	return e == nil || (e.Kind == Other && e.Op == "" && e.Date.IsZero() &&
		e.Event == radio.EventKey{} && e.Info == "" && e.Err == nil)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// pad appends s to the buffer if the buffer already contains data
func pad(b *bytes.Buffer, s string) {
	if b.Len() != 0 {
		b.WriteString(s)
	}
}

func (e *Error) Error() string {
	b := new(bytes.Buffer)

	if e.Op != "" {
		pad(b, ": ")
		b.WriteString(string(e.Op))
	}

	if e.Kind != 0 {
		pad(b, ": ")
		b.WriteString(e.Kind.String())
	}

	var hadPrevious bool
	infoPad := func() {
		if hadPrevious {
			pad(b, ", ")
		} else {
			pad(b, ": ")
		}
		hadPrevious = true
	}

	if !e.Date.IsZero() {
		infoPad()
		b.WriteString("Date<")
		b.WriteString(e.Date.Format(radio.DateFormat))
		b.WriteString(">")
	}

	if e.Event != (radio.EventKey{}) {
		infoPad()
		b.WriteString("Event<")
		b.WriteString(e.Event.Artist)
		b.WriteString(" - ")
		b.WriteString(e.Event.Title)
		if e.Event.LocalTime != "" {
			b.WriteString(" @ ")
			b.WriteString(e.Event.LocalTime)
		}
		b.WriteString(">")
	}

	if e.Info != "" {
		infoPad()
		b.WriteString("Info<")
		b.WriteString(string(e.Info))
		b.WriteString(">")
	}

	if e.Err != nil {
		// indent on new line if we're cascading non-empty Error
		if prev, ok := e.Err.(*Error); ok && !prev.isZero() {
			pad(b, Separator)
			b.WriteString(prev.Error())
		} else {
			pad(b, ": ")
			b.WriteString(e.Err.Error())
		}
	}

	if b.Len() == 0 {
		return "no error"
	}

	return b.String()
}

// Separator is the string used to separate nested errors. By
// default, to make errors easier on the eye, nested errors are
// indented on a new line. A server may instead choose to keep each
// error on a single line by modifying the separator string, perhaps
// to ":: ".
var Separator = ":\n\t"

// Kind defines the kind of error this is
type Kind uint8

// Kinds of errors
//
// Do not reorder this list;
// New items must be added only to the end
const (
	Other               Kind = iota // Unclassified error
	InvalidArgument                 // Invalid argument given to function
	EventMissingField               // Play event lacks an artist or title
	TimeUnparseable                 // Time string did not match any known format
	PlaylistMissing                 // Page did not contain a playlist table
	FetchFailed                     // Playlist page could not be fetched
	DuplicateEvent                  // Play event already exists in storage
	GenreNotFound                   // Genre lookup found no tags
	MissingAPIKey                   // API key required but not configured
	TransactionBegin                // Database begin transaction failure
	TransactionCommit               // Database commit transaction failure
	StorageUnknown                  // Unknown storage name used
	NoMigrations                    // No migrations exist for the storage used
	Testing                         // Error used in tests
)

func (k Kind) String() string {
	switch k {
	case Other:
		return "other error"
	case InvalidArgument:
		return "invalid argument"
	case EventMissingField:
		return "play event missing artist or title"
	case TimeUnparseable:
		return "unparseable time"
	case PlaylistMissing:
		return "playlist table missing"
	case FetchFailed:
		return "failed to fetch playlist"
	case DuplicateEvent:
		return "duplicate play event"
	case GenreNotFound:
		return "genre not found"
	case MissingAPIKey:
		return "missing api key"
	case TransactionBegin:
		return "failed to begin transaction"
	case TransactionCommit:
		return "failed to commit transaction"
	case StorageUnknown:
		return "unknown storage"
	case NoMigrations:
		return "no migrations available"
	case Testing:
		return "testing error"
	}

	return "unknown error kind"
}
