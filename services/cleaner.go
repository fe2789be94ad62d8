package services

import (
	"strconv"
	"strings"
	"unicode"

	"song-stats/models"
	"song-stats/utils"
)

// Cleaner transforms RawSongs into typed Songs.
type Cleaner struct {
	logger *utils.Logger
}

// NewCleaner creates a Cleaner with the given logger.
func NewCleaner(logger *utils.Logger) *Cleaner {
	return &Cleaner{logger: logger}
}

// Clean converts every raw row into a Song. Output has the same length and
// order as raw; malformed fields fall back to zero values.
func (c *Cleaner) Clean(raw []models.RawSong) []*models.Song {
	result := make([]*models.Song, 0, len(raw))
	degraded := 0

	for i, r := range raw {
		song := &models.Song{
			Title:                pickTitle(r),
			ViewCount:            c.count(i, r, models.ColViewCount, &degraded),
			Channel:              normaliseText(r[models.ColChannel]),
			ChannelFollowerCount: c.count(i, r, models.ColChannelFollowerCount, &degraded),
			Duration:             c.count(i, r, models.ColDuration, &degraded),
			Categories:           ParseCategories(r[models.ColCategories]),
		}
		result = append(result, song)
	}

	c.logger.Info("[cleaner] Cleaned %d songs (%d numeric fields defaulted to 0)",
		len(result), degraded)
	return result
}

func (c *Cleaner) count(row int, r models.RawSong, col string, degraded *int) int64 {
	raw := r[col]
	n := ParseCount(raw)
	if n == 0 && strings.TrimSpace(raw) != "" && !isZeroCount(raw) {
		*degraded++
		c.logger.Debug("[cleaner] Row %d: %s %q is not a count, using 0", row+1, col, raw)
	}
	return n
}

// ParseCount keeps only the ASCII digits of raw and parses them as a base-10
// integer. It never fails: empty, digit-free or overflowing input yields 0.
// Signs and decimal points are dropped with everything else, so "-3.5" is 35.
func ParseCount(raw string) int64 {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if ch := raw[i]; ch >= '0' && ch <= '9' {
			b.WriteByte(ch)
		}
	}
	if b.Len() == 0 {
		return 0
	}

	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// ParseCategories splits on '|' when present, otherwise on ','. Pieces are
// trimmed and empties dropped. The result is never nil.
func ParseCategories(raw string) []string {
	sep := ","
	if strings.Contains(raw, "|") {
		sep = "|"
	}

	out := []string{}
	for _, part := range strings.Split(raw, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func pickTitle(r models.RawSong) string {
	if t := normaliseText(r[models.ColTitle]); t != "" {
		return t
	}
	return normaliseText(r[models.ColFullTitle])
}

// isZeroCount reports whether s has digits and all of them are zero.
func isZeroCount(s string) bool {
	seen := false
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; {
		case ch == '0':
			seen = true
		case ch > '0' && ch <= '9':
			return false
		}
	}
	return seen
}

// normaliseText strips leading/trailing whitespace and collapses internal whitespace.
func normaliseText(s string) string {
	return strings.Join(strings.FieldsFunc(s, unicode.IsSpace), " ")
}
