package services

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-runewidth"

	"song-stats/models"
	"song-stats/utils"
)

// Options selects which category, follower threshold and list size the
// report is computed for.
type Options struct {
	Category          string
	FollowerThreshold int64
	TopN              int
}

type InsightService struct {
	logger *utils.Logger
}

func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

// Generate runs every aggregation over the cleaned songs.
func (s *InsightService) Generate(songs []*models.Song, opts Options) *models.InsightReport {
	report := &models.InsightReport{
		TotalSongs:            len(songs),
		TopSong:               s.TopSong(songs),
		TopSongs:              s.TopSongsByViews(songs, opts.TopN),
		Category:              opts.Category,
		AverageDuration:       s.AverageDurationByCategory(songs, opts.Category),
		FollowerThreshold:     opts.FollowerThreshold,
		PercentAboveThreshold: s.PercentAboveFollowerThreshold(songs, opts.FollowerThreshold),
	}

	if report.TopSong == nil {
		s.logger.Warn("[insights] No songs to rank")
	}
	return report
}

// TopSong returns the most viewed song, the earliest one on ties, or nil
// when songs is empty.
func (s *InsightService) TopSong(songs []*models.Song) *models.Song {
	ranked := rankByViews(songs)
	if len(ranked) == 0 {
		return nil
	}
	return ranked[0]
}

// TopSongsByViews returns up to n songs ordered by descending views, ties in
// input order. n <= 0 yields an empty list.
func (s *InsightService) TopSongsByViews(songs []*models.Song, n int) []models.TopSong {
	if n <= 0 {
		return []models.TopSong{}
	}

	ranked := rankByViews(songs)
	if len(ranked) > n {
		ranked = ranked[:n]
	}

	out := make([]models.TopSong, len(ranked))
	for i, song := range ranked {
		out[i] = models.TopSong{Title: song.Title, ViewCount: song.ViewCount, Channel: song.Channel}
	}
	return out
}

// AverageDurationByCategory averages Duration over songs tagged with exactly
// category. Returns 0 when nothing matches.
func (s *InsightService) AverageDurationByCategory(songs []*models.Song, category string) float64 {
	var total float64
	matched := 0
	for _, song := range songs {
		if song.HasCategory(category) {
			total += float64(song.Duration)
			matched++
		}
	}
	if matched == 0 {
		return 0
	}
	return total / float64(matched)
}

// PercentAboveFollowerThreshold is the share of songs, 0-100, whose channel
// has strictly more than threshold followers. Not rounded.
func (s *InsightService) PercentAboveFollowerThreshold(songs []*models.Song, threshold int64) float64 {
	if len(songs) == 0 {
		return 0
	}
	above := 0
	for _, song := range songs {
		if song.ChannelFollowerCount > threshold {
			above++
		}
	}
	return float64(above) / float64(len(songs)) * 100
}

// rankByViews returns a copy of songs stably sorted by descending views.
func rankByViews(songs []*models.Song) []*models.Song {
	ranked := make([]*models.Song, len(songs))
	copy(ranked, songs)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ViewCount > ranked[j].ViewCount
	})
	return ranked
}

var (
	bannerColor  = color.New(color.FgMagenta, color.Bold)
	headingColor = color.New(color.FgYellow, color.Bold)
	valueColor   = color.New(color.FgGreen, color.Bold)
)

// Print writes a human-readable summary of the report to w.
func (s *InsightService) Print(w io.Writer, r *models.InsightReport) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	bannerColor.Fprintf(w, "\n%s\n", sep)
	bannerColor.Fprintf(w, "  SONG DATASET INSIGHTS\n")
	bannerColor.Fprintf(w, "%s\n\n", sep)

	headingColor.Fprintf(w, "  Overview\n")
	fmt.Fprintf(w, "  %s\n", thin)
	fmt.Fprintf(w, "  Total songs : %s\n\n", valueColor.Sprint(humanize.Comma(int64(r.TotalSongs))))

	headingColor.Fprintf(w, "  Top Song by Views\n")
	fmt.Fprintf(w, "  %s\n", thin)
	if r.TopSong != nil {
		fmt.Fprintf(w, "  %s\n", truncate(r.TopSong.Title, 50))
		fmt.Fprintf(w, "  Channel : %s\n", r.TopSong.Channel)
		fmt.Fprintf(w, "  Views   : %s\n", valueColor.Sprint(humanize.Comma(r.TopSong.ViewCount)))
	} else {
		fmt.Fprintf(w, "  No songs found\n")
	}
	fmt.Fprintln(w)

	headingColor.Fprintf(w, "  %s Songs\n", r.Category)
	fmt.Fprintf(w, "  %s\n", thin)
	fmt.Fprintf(w, "  Average duration : %s\n\n", valueColor.Sprintf("%.2f s", r.AverageDuration))

	headingColor.Fprintf(w, "  Channel Reach\n")
	fmt.Fprintf(w, "  %s\n", thin)
	fmt.Fprintf(w, "  Followers > %s : %s\n\n",
		humanize.Comma(r.FollowerThreshold), valueColor.Sprintf("%.2f%%", r.PercentAboveThreshold))

	headingColor.Fprintf(w, "  Top %d Songs by Views\n", len(r.TopSongs))
	if len(r.TopSongs) == 0 {
		fmt.Fprintf(w, "  %s\n  No songs to rank\n", thin)
	} else {
		tbl := table.NewWriter()
		tbl.SetStyle(table.StyleLight)
		tbl.AppendHeader(table.Row{"#", "Title", "Channel", "Views"})
		for i, t := range r.TopSongs {
			tbl.AppendRow(table.Row{i + 1, truncate(t.Title, 38), truncate(t.Channel, 24), humanize.Comma(t.ViewCount)})
		}
		fmt.Fprintln(w, tbl.Render())
	}

	bannerColor.Fprintf(w, "\n%s\n\n", sep)
}

// truncate shortens s to max terminal columns, so wide runes count double.
func truncate(s string, max int) string {
	return runewidth.Truncate(s, max, "...")
}
