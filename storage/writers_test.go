package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"song-stats/models"
)

func sampleTopSongs() []models.TopSong {
	return []models.TopSong{
		{Title: "Hit, Part 1", ViewCount: 900, Channel: "Chan A"},
		{Title: "Second", ViewCount: 400, Channel: "Chan B"},
	}
}

func TestCSVWriterWritesHeaderAndRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "top_songs.csv")
	w := NewCSVWriter(path)

	require.NoError(t, w.Write(TopSongRows(sampleTopSongs())))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"title,view_count,channel\n"+
			"\"Hit, Part 1\",900,Chan A\n"+
			"Second,400,Chan B\n",
		string(got))
}

func TestCSVWriterEmptyIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "top_songs.csv")
	w := NewCSVWriter(path)

	require.NoError(t, w.Write(nil))

	_, err := os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCSVWriterEmptyLeavesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "top_songs.csv")
	require.NoError(t, os.WriteFile(path, []byte("keep\n"), 0644))

	require.NoError(t, NewCSVWriter(path).Write([]models.Tabular{}))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep\n", string(got))
}

func TestCSVWriterOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "top_songs.csv")
	w := NewCSVWriter(path)
	rows := TopSongRows(sampleTopSongs())

	require.NoError(t, w.Write(rows))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, w.Write(rows))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestTextReportWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")
	report := &models.InsightReport{
		TopSong:               &models.Song{Title: "Hit", Channel: "Chan A", ViewCount: 1234567},
		Category:              "Pop",
		AverageDuration:       250,
		FollowerThreshold:     1_000_000,
		PercentAboveThreshold: 200.0 / 3,
	}

	require.NoError(t, NewTextReportWriter(path).Write(report))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"Top song by view count:\n"+
			"Title: Hit\n"+
			"Channel: Chan A\n"+
			"Views: 1234567\n"+
			"\n"+
			"Average duration for Pop songs: 250.00 seconds\n"+
			"\n"+
			"Percent of songs with channel followers > 1,000,000: 66.67%\n",
		string(got))
}

func TestTextReportWriterNoTopSong(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer than the report\n"), 0644))

	report := &models.InsightReport{Category: "Rock", FollowerThreshold: 10}
	require.NoError(t, NewTextReportWriter(path).Write(report))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"Top song by view count:\n"+
			"No top song found\n"+
			"\n"+
			"Average duration for Rock songs: 0.00 seconds\n"+
			"\n"+
			"Percent of songs with channel followers > 10: 0.00%\n",
		string(got))
}
