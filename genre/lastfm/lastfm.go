// Package lastfm implements genre lookups with the Last.fm top tags API
package lastfm

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	radio "github.com/R-a-dio/tracklog"
	"github.com/R-a-dio/tracklog/config"
	"github.com/R-a-dio/tracklog/errors"
	"github.com/R-a-dio/tracklog/genre"
	"github.com/klauspost/compress/gzhttp"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

const Name = "lastfm"

const (
	// maxTags is the amount of tags kept from a single response
	maxTags = 5
	// genreTags is the amount of tags used for a genre
	genreTags = 3
)

func init() {
	genre.Register(Name, Open)
}

// Open implements genre.OpenFn
func Open(ctx context.Context, cfg config.Config) (radio.GenreProvider, error) {
	return New(cfg)
}

// Client talks to the Last.fm API, requests are spaced at least the
// configured delay apart
type Client struct {
	client    *http.Client
	endpoint  string
	apiKey    string
	userAgent string
	limiter   *rate.Limiter
}

// New returns a Client configured from the [lastfm] section, an error of
// kind MissingAPIKey is returned if no key is configured
func New(cfg config.Config) (*Client, error) {
	const op errors.Op = "lastfm/New"

	conf := cfg.Conf()
	if conf.LastFM.APIKey == "" {
		return nil, errors.E(op, errors.MissingAPIKey,
			errors.Info("set "+config.EnvAPIKey+" or [lastfm] apikey"))
	}

	delay := time.Duration(conf.LastFM.Delay)
	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}

	return &Client{
		client: &http.Client{
			Timeout:   time.Duration(conf.LastFM.Timeout),
			Transport: otelhttp.NewTransport(gzhttp.Transport(http.DefaultTransport)),
		},
		endpoint:  conf.LastFM.Endpoint.String(),
		apiKey:    conf.LastFM.APIKey,
		userAgent: conf.UserAgent,
		limiter:   rate.NewLimiter(limit, 1),
	}, nil
}

// TrackTags returns the top tags of a track, a nil slice without error
// means Last.fm does not know the track or has no tags for it
func (c *Client) TrackTags(ctx context.Context, artist, title string) ([]string, error) {
	const op errors.Op = "lastfm/Client.TrackTags"

	tags, err := c.topTags(ctx, url.Values{
		"method": {"track.getTopTags"},
		"artist": {artist},
		"track":  {title},
	})
	if err != nil {
		return nil, errors.E(op, err)
	}
	return tags, nil
}

// ArtistTags returns the top tags of an artist, a nil slice without error
// means Last.fm does not know the artist or has no tags for it
func (c *Client) ArtistTags(ctx context.Context, artist string) ([]string, error) {
	const op errors.Op = "lastfm/Client.ArtistTags"

	tags, err := c.topTags(ctx, url.Values{
		"method": {"artist.getTopTags"},
		"artist": {artist},
	})
	if err != nil {
		return nil, errors.E(op, err)
	}
	return tags, nil
}

func (c *Client) topTags(ctx context.Context, query url.Values) ([]string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	query.Set("api_key", c.apiKey)
	query.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.E(errors.FetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.E(errors.FetchFailed, errors.Errorf("unexpected status code: %s", resp.Status))
	}

	var res topTagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, err
	}

	if res.Error != 0 {
		zerolog.Ctx(ctx).Debug().
			Int("code", res.Error).
			Str("message", res.Message).
			Str("method", query.Get("method")).
			Msg("lastfm error response")
		return nil, nil
	}

	return res.TopTags.Tag.names(), nil
}

type topTagsResponse struct {
	Error   int    `json:"error"`
	Message string `json:"message"`
	TopTags struct {
		Tag tagList `json:"tag"`
	} `json:"toptags"`
}

type tag struct {
	Name  string   `json:"name"`
	Count tagCount `json:"count"`
}

// tagList is a list of tags, a single tag is sent as an object instead
// of a list
type tagList []tag

func (l *tagList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '{' {
		var t tag
		if err := json.Unmarshal(b, &t); err != nil {
			return err
		}
		*l = tagList{t}
		return nil
	}

	var ts []tag
	if err := json.Unmarshal(b, &ts); err != nil {
		return err
	}
	*l = ts
	return nil
}

// names returns the names of the tags that have been used at all, up to
// maxTags of them
func (l tagList) names() []string {
	var res []string
	for _, t := range l {
		if t.Count <= 0 {
			continue
		}
		res = append(res, t.Name)
		if len(res) == maxTags {
			break
		}
	}
	return res
}

// tagCount accepts both a number and a string holding a number
type tagCount int

func (c *tagCount) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*c = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*c = tagCount(n)
	return nil
}
