package storage

import "song-stats/models"

// RowWriter is the interface for persisting tabular listings.
type RowWriter interface {
	Write(rows []models.Tabular) error
	Path() string
}

// ReportWriter is the interface for persisting a computed insight report.
type ReportWriter interface {
	Write(report *models.InsightReport) error
	Path() string
}

var (
	_ RowWriter    = (*CSVWriter)(nil)
	_ ReportWriter = (*TextReportWriter)(nil)
)
