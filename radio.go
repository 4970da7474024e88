package radio

import (
	"cmp"
	"context"
	"strings"
	"time"
)

const (
	LimitArtistLength = 255
	LimitTitleLength  = 255
)

// DateFormat is the layout used for calendar dates everywhere a date is
// read from or written to text
const DateFormat = "2006-01-02"

// Day returns midnight of the calendar date t falls on, in the location of t
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports if a and b fall on the same calendar date, b is compared
// in the location of a
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ParseDate parses a YYYY-MM-DD string into midnight of that date in loc
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(DateFormat, strings.TrimSpace(s), loc)
}

// PlayEvent is a single observed broadcast of a track
type PlayEvent struct {
	// Artist is the performer as shown by the station, not normalized
	Artist string
	// Title is the track title as shown by the station, not normalized
	Title string
	// LocalTime is the stations own HH:MM rendering of the play time, empty
	// if the page did not have one
	LocalTime string
	// Date is midnight of the date that was queried, it is never taken
	// from the page itself
	Date time.Time
	// Timestamp is Date combined with LocalTime, the zero value means the
	// time could not be parsed
	Timestamp time.Time
}

// Key returns the key used to detect duplicate events within a single day
func (e PlayEvent) Key() EventKey {
	return EventKey{
		Artist:    e.Artist,
		Title:     e.Title,
		LocalTime: e.LocalTime,
	}
}

// HasTimestamp returns true if the event has a parsed timestamp
func (e PlayEvent) HasTimestamp() bool {
	return !e.Timestamp.IsZero()
}

// IsValid returns true if both the artist and title are non-empty
func (e PlayEvent) IsValid() bool {
	return e.Artist != "" && e.Title != ""
}

func (e PlayEvent) String() string {
	if e.LocalTime == "" {
		return e.Artist + " - " + e.Title
	}
	return e.LocalTime + " " + e.Artist + " - " + e.Title
}

// CompareTimestamp orders events by their timestamp, events without a
// timestamp order before any event that has one
func CompareTimestamp(a, b PlayEvent) int {
	return a.Timestamp.Compare(b.Timestamp)
}

// EventKey is the (artist, title, local time) tuple that is unique within
// the events collected for one day
type EventKey struct {
	Artist    string
	Title     string
	LocalTime string
}

func (k EventKey) String() string {
	return k.Artist + "\x00" + k.Title + "\x00" + k.LocalTime
}

// Track identifies a song by artist and title
type Track struct {
	Artist string
	Title  string
}

func (t Track) String() string {
	return t.Artist + " - " + t.Title
}

// SongCount is the amount of times a song was played
type SongCount struct {
	Artist    string
	Title     string
	PlayCount int64
}

// ArtistCount is the amount of plays of all songs by an artist
type ArtistCount struct {
	Artist    string
	PlayCount int64
}

// Statistics is a summary of everything in storage
type Statistics struct {
	TotalPlays    int64
	UniqueSongs   int64
	UniqueArtists int64
	// Earliest and Latest are the first and last date with plays, zero
	// if there are no plays stored
	Earliest time.Time
	Latest   time.Time
}

// DaysCovered returns the amount of calendar days between Earliest and
// Latest, inclusive
func (s Statistics) DaysCovered() int {
	if s.Earliest.IsZero() || s.Latest.IsZero() {
		return 0
	}
	earliest, latest := Day(s.Earliest), Day(s.Latest)
	days := 0
	for d := earliest; !d.After(latest); d = d.AddDate(0, 0, 1) {
		days++
	}
	return days
}

// DateFilter limits a query to plays between Start and End, both inclusive,
// a zero value means unbounded on that side
type DateFilter struct {
	Start time.Time
	End   time.Time
}

// IsZero returns true if the filter does not filter anything
func (f DateFilter) IsZero() bool {
	return f.Start.IsZero() && f.End.IsZero()
}

// Week returns a filter for the seven days starting at start
func Week(start time.Time) DateFilter {
	start = Day(start)
	return DateFilter{Start: start, End: start.AddDate(0, 0, 6)}
}

// Genre is the result of a genre lookup for a track
type Genre struct {
	Track
	// Tags is a comma separated list of tags, empty if Found is false
	Tags string
	// Found indicates if the lookup found any tags
	Found bool
	// LookedUp is when the lookup happened
	LookedUp time.Time
}

// PlaylistSource returns the events the origin service reports around the
// time given. Errors are not returned, a failed query reports no events.
type PlaylistSource interface {
	Playlist(ctx context.Context, date time.Time, hour, minute int) []PlayEvent
}

// GenreProvider looks up genre tags for a song
type GenreProvider interface {
	// LookupGenre returns a comma separated list of tags for the song, an
	// error of kind GenreNotFound is returned if nothing was found
	LookupGenre(ctx context.Context, artist, title string) (string, error)
}

// StorageService is an interface containing all *StorageService interfaces
type StorageService interface {
	PlayStorageService
	GenreStorageService
	// Close closes the storage service and cleans up any resources
	Close() error
}

// PlayStorageService is a service able to supply a PlayStorage
type PlayStorageService interface {
	Play(context.Context) PlayStorage
}

// PlayStorage stores play events and answers aggregate queries over them
type PlayStorage interface {
	// Insert stores the events given and returns how many were new, events
	// that already exist are skipped silently and do not cause an error
	Insert(events []PlayEvent) (int, error)
	// ByDate returns all events played on the date given, ordered by time
	ByDate(date time.Time) ([]PlayEvent, error)
	// DateRange returns the first and last date that has any plays
	DateRange() (earliest, latest time.Time, err error)
	// Tracks returns all distinct tracks that played within the filter
	Tracks(filter DateFilter) ([]Track, error)

	// TopSongs returns the most played songs within the filter
	TopSongs(filter DateFilter, limit int) ([]SongCount, error)
	// TopSongsByMonth returns the most played songs in the month given
	TopSongsByMonth(year int, month time.Month, limit int) ([]SongCount, error)
	// TopArtists returns the most played artists within the filter
	TopArtists(filter DateFilter, limit int) ([]ArtistCount, error)
	// Statistics returns summary statistics of all plays
	Statistics() (*Statistics, error)
}

// GenreStorageService is a service able to supply a GenreStorage
type GenreStorageService interface {
	Genre(context.Context) GenreStorage
}

// GenreStorage stores the results of genre lookups
type GenreStorage interface {
	// Store stores the genre given, replacing an earlier lookup of the same track
	Store(Genre) error
	// Get returns the stored genre of the track given
	Get(Track) (*Genre, error)
	// Missing returns up to limit tracks that have plays but were never looked up
	Missing(limit int) ([]Track, error)
}

// SortTracks sorts tracks by artist and then title
func SortTracks(a, b Track) int {
	if c := cmp.Compare(a.Artist, b.Artist); c != 0 {
		return c
	}
	return cmp.Compare(a.Title, b.Title)
}
