package mocks

import (
	"fmt"
	"html"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

// PageRow is a single row in a mocked playlist page, Time is rendered as is
// so use the stations format: "01.03.2024,<br>17.15 Uhr"
type PageRow struct {
	Time      string
	Title     string
	Performer string
}

// PlaylistPage renders rows the way the station renders its playlist table
func PlaylistPage(rows ...PageRow) string {
	var b strings.Builder
	b.WriteString(`<html><head><title>Playlist</title></head><body>`)
	b.WriteString(`<table class="thleft"><tr><th>Datum</th><th>Titel</th><th>Interpret</th></tr>`)
	for _, row := range rows {
		b.WriteString(`<tr class="data">`)
		fmt.Fprintf(&b, `<th class="entry datetime">%s</th>`, row.Time)
		fmt.Fprintf(&b, `<td class="entry title">%s</td>`, html.EscapeString(row.Title))
		fmt.Fprintf(&b, `<td class="entry performer">%s</td>`, html.EscapeString(row.Performer))
		b.WriteString(`</tr>`)
	}
	b.WriteString(`</table></body></html>`)
	return b.String()
}

// TimeCell formats a date and HH.MM time like the station does
func TimeCell(date time.Time, hhmm string) string {
	return date.Format("02.01.2006") + ",<br>" + hhmm + " Uhr"
}

// PlaylistQuery is a form submission received by the playlist server mock
type PlaylistQuery struct {
	Date      string
	Hours     string
	Minutes   string
	Submit    string
	UserAgent string
	At        time.Time
}

type playlistServerMock struct {
	*httptest.Server

	mu      sync.Mutex
	queries []PlaylistQuery
	// Handler returns the status and body to respond with for a query
	Handler func(q PlaylistQuery) (int, string)
}

// PlaylistServerMock returns a server that mimics the station playlist search
// form, it responds with an empty playlist unless Handler is set
func PlaylistServerMock(t *testing.T) *playlistServerMock {
	var mock playlistServerMock

	mock.Server = httptest.NewServer(&mock)
	t.Cleanup(mock.Close)
	return &mock
}

func (psm *playlistServerMock) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	q := PlaylistQuery{
		Date:      r.FormValue("playlistSearch_date"),
		Hours:     r.FormValue("playlistSearch_hours"),
		Minutes:   r.FormValue("playlistSearch_minutes"),
		Submit:    r.FormValue("submit"),
		UserAgent: r.UserAgent(),
		At:        time.Now(),
	}

	psm.mu.Lock()
	psm.queries = append(psm.queries, q)
	handler := psm.Handler
	psm.mu.Unlock()

	status, body := http.StatusOK, PlaylistPage()
	if handler != nil {
		status, body = handler(q)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// Queries returns all the queries received so far
func (psm *playlistServerMock) Queries() []PlaylistQuery {
	psm.mu.Lock()
	defer psm.mu.Unlock()
	return append([]PlaylistQuery(nil), psm.queries...)
}
