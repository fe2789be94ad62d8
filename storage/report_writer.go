package storage

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"song-stats/models"
)

// TextReportWriter writes the plain-text results report.
type TextReportWriter struct {
	path string
}

func NewTextReportWriter(path string) *TextReportWriter {
	return &TextReportWriter{path: path}
}

// Path returns the destination file.
func (t *TextReportWriter) Path() string { return t.path }

// Write overwrites the report file with the top song, the category average
// and the follower share sections.
func (t *TextReportWriter) Write(r *models.InsightReport) (err error) {
	if err := os.MkdirAll(filepath.Dir(t.path), 0755); err != nil {
		return fmt.Errorf("report: create output dir: %w", err)
	}

	f, err := os.Create(t.path)
	if err != nil {
		return fmt.Errorf("report: create file %q: %w", t.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("report: close %q: %w", t.path, cerr)
		}
	}()

	w := bufio.NewWriter(f)

	fmt.Fprintln(w, "Top song by view count:")
	if r.TopSong != nil {
		fmt.Fprintf(w, "Title: %s\n", r.TopSong.Title)
		fmt.Fprintf(w, "Channel: %s\n", r.TopSong.Channel)
		fmt.Fprintf(w, "Views: %d\n", r.TopSong.ViewCount)
	} else {
		fmt.Fprintln(w, "No top song found")
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Average duration for %s songs: %.2f seconds\n\n",
		r.Category, r.AverageDuration)

	fmt.Fprintf(w, "Percent of songs with channel followers > %s: %.2f%%\n",
		humanize.Comma(r.FollowerThreshold), r.PercentAboveThreshold)

	if err := w.Flush(); err != nil {
		return fmt.Errorf("report: write %q: %w", t.path, err)
	}
	return nil
}
