package lastfm

import (
	"context"
	"regexp"
	"strings"

	"github.com/R-a-dio/tracklog/errors"
	"github.com/rs/zerolog"
)

var titleSuffixes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\s*\(feat\.?\s+[^)]+\)`),
	regexp.MustCompile(`(?i)\s*\(ft\.?\s+[^)]+\)`),
	regexp.MustCompile(`(?i)\s*\(featuring\s+[^)]+\)`),
	regexp.MustCompile(`(?i)\s*\(with\s+[^)]+\)`),
	regexp.MustCompile(`(?i)\s*\(remix\)`),
	regexp.MustCompile(`(?i)\s*\([^)]*remix[^)]*\)`),
	regexp.MustCompile(`(?i)\s*\(radio\s*edit\)`),
	regexp.MustCompile(`(?i)\s*\(radio\s*version\)`),
	regexp.MustCompile(`(?i)\s*\(edit\)`),
	regexp.MustCompile(`(?i)\s*\(original\s*mix\)`),
	regexp.MustCompile(`(?i)\s*\(extended\s*mix\)`),
	regexp.MustCompile(`(?i)\s*\(club\s*mix\)`),
	regexp.MustCompile(`(?i)\s*\(acoustic\)`),
	regexp.MustCompile(`(?i)\s*\(live\)`),
	regexp.MustCompile(`(?i)\s*\(remaster(ed)?\)`),
	regexp.MustCompile(`(?i)\s*\([0-9]{4}\s*remaster\)`),
	regexp.MustCompile(`(?i)\s*-\s*remix$`),
	regexp.MustCompile(`(?i)\s*-\s*radio\s*edit$`),
}

// CleanTitle removes featured artists and version suffixes such as
// "(Radio Edit)" from a title
func CleanTitle(title string) string {
	for _, re := range titleSuffixes {
		title = re.ReplaceAllString(title, "")
	}
	return strings.TrimSpace(title)
}

// artistSeparators are checked in order, the first one that occurs is used
var artistSeparators = []string{
	" feat.", " feat ", " ft.", " ft ", " & ", " x ", " vs ", " vs. ", ", ",
}

// PrimaryArtist returns the first artist of a multi-artist credit
func PrimaryArtist(artist string) string {
	for _, sep := range artistSeparators {
		if i := indexFold(artist, sep); i >= 0 {
			return strings.TrimSpace(artist[:i])
		}
	}
	return strings.TrimSpace(artist)
}

// indexFold is strings.Index ignoring ASCII case, sep must be ASCII
func indexFold(s, sep string) int {
	for i := 0; i+len(sep) <= len(s); i++ {
		if strings.EqualFold(s[i:i+len(sep)], sep) {
			return i
		}
	}
	return -1
}

// LookupGenre implements radio.GenreProvider. It tries the exact track, then
// simplified forms of the title and artist and finally the tags of the
// artist. An error of kind GenreNotFound is returned if none had tags.
func (c *Client) LookupGenre(ctx context.Context, artist, title string) (string, error) {
	const op errors.Op = "lastfm/Client.LookupGenre"
	logger := zerolog.Ctx(ctx).With().Str("artist", artist).Str("title", title).Logger()

	cleaned := CleanTitle(title)
	primary := PrimaryArtist(artist)

	type attempt struct {
		strategy      string
		artist, title string
	}
	attempts := []attempt{{"exact", artist, title}}
	if cleaned != title {
		attempts = append(attempts, attempt{"cleaned title", artist, cleaned})
	}
	if primary != artist {
		attempts = append(attempts, attempt{"primary artist", primary, title})
		if cleaned != title {
			attempts = append(attempts, attempt{"primary artist and cleaned title", primary, cleaned})
		}
	}

	// a failed request only matters if nothing else finds tags
	var lastErr error
	for _, a := range attempts {
		tags, err := c.TrackTags(ctx, a.artist, a.title)
		if err != nil {
			if ctx.Err() != nil {
				return "", errors.E(op, err)
			}
			logger.Warn().Err(err).Str("strategy", a.strategy).Msg("track tags request failed")
			lastErr = err
			continue
		}
		if len(tags) > 0 {
			logger.Debug().Str("strategy", a.strategy).Msg("found track tags")
			return formatTags(tags), nil
		}
	}

	tags, err := c.ArtistTags(ctx, primary)
	if err != nil {
		if ctx.Err() != nil {
			return "", errors.E(op, err)
		}
		logger.Warn().Err(err).Str("strategy", "artist").Msg("artist tags request failed")
		lastErr = err
	}
	if len(tags) > 0 {
		logger.Debug().Str("strategy", "artist").Msg("found artist tags")
		return formatTags(tags), nil
	}

	if lastErr != nil {
		return "", errors.E(op, lastErr)
	}
	logger.Debug().Msg("no tags found")
	return "", errors.E(op, errors.GenreNotFound, errors.Info(artist+" - "+title))
}

func formatTags(tags []string) string {
	if len(tags) > genreTags {
		tags = tags[:genreTags]
	}
	return strings.Join(tags, ", ")
}
