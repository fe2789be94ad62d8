package models

import "strconv"

// Column names expected in the songs CSV header.
const (
	ColTitle                = "title"
	ColFullTitle            = "fulltitle"
	ColViewCount            = "view_count"
	ColChannel              = "channel"
	ColChannelFollowerCount = "channel_follower_count"
	ColDuration             = "duration"
	ColCategories           = "categories"
)

// RawSong holds one CSV row keyed by header name, values untouched.
// Keys missing from a short row are simply absent.
type RawSong map[string]string

// Song is the cleaned record. Numeric fields are always >= 0 and
// Categories is never nil.
type Song struct {
	Title                string
	ViewCount            int64
	Channel              string
	ChannelFollowerCount int64
	Duration             int64 // seconds
	Categories           []string
}

// HasCategory reports whether the song is tagged with exactly category.
func (s *Song) HasCategory(category string) bool {
	for _, c := range s.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Tabular is any uniformly-shaped record that can be written as a CSV row.
type Tabular interface {
	Columns() []string
	Values() []string
}

var _ Tabular = TopSong{}

// TopSong is the projection written to the top songs listing.
type TopSong struct {
	Title     string
	ViewCount int64
	Channel   string
}

func (TopSong) Columns() []string {
	return []string{ColTitle, ColViewCount, ColChannel}
}

func (t TopSong) Values() []string {
	return []string{t.Title, strconv.FormatInt(t.ViewCount, 10), t.Channel}
}

// InsightReport holds the computed statistics for one run.
type InsightReport struct {
	TotalSongs int
	TopSong    *Song
	TopSongs   []TopSong

	Category        string
	AverageDuration float64

	FollowerThreshold     int64
	PercentAboveThreshold float64
}
