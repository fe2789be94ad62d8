package main

import (
	"fmt"
	"os"

	"song-stats/config"
	"song-stats/services"
	"song-stats/storage"
	"song-stats/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	logger.Info("=== Song Stats starting ===")
	logger.Info("Config — input: %s | category: %s | follower threshold: %d | top: %d",
		cfg.InputPath(), cfg.Category, cfg.FollowerThreshold, cfg.TopN)

	rawSongs, err := storage.ReadCSV(cfg.InputPath())
	if err != nil {
		logger.Error("Failed to read songs: %v", err)
		os.Exit(1)
	}

	logger.Info("Loaded %d rows from %s", len(rawSongs), cfg.InputPath())
	if len(rawSongs) > 0 {
		logger.Debug("Sample raw row: %v", rawSongs[0])
	}

	cleaner := services.NewCleaner(logger)
	songs := cleaner.Clean(rawSongs)
	if len(songs) > 0 {
		logger.Debug("Sample cleaned song: %+v", *songs[0])
	}

	insightSvc := services.NewInsightService(logger)
	report := insightSvc.Generate(songs, services.Options{
		Category:          cfg.Category,
		FollowerThreshold: cfg.FollowerThreshold,
		TopN:              cfg.TopN,
	})

	failed := false

	var reportWriter storage.ReportWriter = storage.NewTextReportWriter(cfg.ResultsPath())
	if err := reportWriter.Write(report); err != nil {
		logger.Error("Report write failed: %v", err)
		failed = true
	} else {
		logger.Info("Results saved to %s", reportWriter.Path())
	}

	var rowWriter storage.RowWriter = storage.NewCSVWriter(cfg.TopSongsPath())
	if err := rowWriter.Write(storage.TopSongRows(report.TopSongs)); err != nil {
		logger.Error("CSV write failed: %v", err)
		failed = true
	} else if len(report.TopSongs) == 0 {
		logger.Warn("No songs to list, %s not written", rowWriter.Path())
	} else {
		logger.Info("Top %d songs saved to %s", len(report.TopSongs), rowWriter.Path())
	}

	insightSvc.Print(os.Stdout, report)

	if failed {
		os.Exit(1)
	}
	fmt.Printf("  Done. Report → %s | Top songs → %s\n\n", cfg.ResultsPath(), cfg.TopSongsPath())
}
