package services

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chetx27/wellness-tracker/internal/config"
	"github.com/chetx27/wellness-tracker/internal/export"
	"github.com/chetx27/wellness-tracker/internal/insights"
	"github.com/chetx27/wellness-tracker/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Window bounds for a single report.
const (
	MinWindowDays = 7
	MaxWindowDays = 365
)

// ReportService fetches the three entry series for a user and window
// and hands them to the insight engine. The engine itself never
// touches the database.
type ReportService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewReportService(db *gorm.DB, cfg *config.Config) *ReportService {
	return &ReportService{db: db, cfg: cfg}
}

// GenerateReport builds the full analytics report for a user over the
// given day window. days <= 0 falls back to the configured default,
// then is clamped to [MinWindowDays, MaxWindowDays]. Any series fetch
// failure aborts assembly; no partial report is returned.
func (s *ReportService) GenerateReport(userID uuid.UUID, days int) (*insights.Report, error) {
	if days <= 0 {
		days = s.cfg.ReportWindowDays
	}
	if days < MinWindowDays {
		days = MinWindowDays
	}
	if days > MaxWindowDays {
		days = MaxWindowDays
	}

	now := time.Now().UTC()
	since := now.AddDate(0, 0, -days)

	var moods []models.MoodEntry
	if err := s.db.Where("user_id = ? AND entry_date >= ?", userID, since).
		Order("entry_date ASC").
		Find(&moods).Error; err != nil {
		return nil, fmt.Errorf("generate report: fetch mood entries for user %s: %w", userID, err)
	}

	var habitEntries []models.HabitEntry
	if err := s.db.Where("user_id = ? AND entry_date >= ?", userID, since).
		Order("entry_date ASC").
		Find(&habitEntries).Error; err != nil {
		return nil, fmt.Errorf("generate report: fetch habit entries for user %s: %w", userID, err)
	}

	var sessions []models.StudySession
	if err := s.db.Where("user_id = ? AND started_at >= ?", userID, since).
		Order("started_at ASC").
		Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("generate report: fetch study sessions for user %s: %w", userID, err)
	}

	report := insights.BuildReport(userID.String(), days, moods, habitEntries, sessions, now)
	return &report, nil
}

// ExportReport generates a report and writes it to the export
// directory in the requested format, returning the written path.
func (s *ReportService) ExportReport(userID uuid.UUID, days int, format string) (string, error) {
	report, err := s.GenerateReport(userID, days)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.cfg.ExportDir, 0o755); err != nil {
		return "", fmt.Errorf("export report for user %s: %w: %w", userID, export.ErrExport, err)
	}

	path := filepath.Join(s.cfg.ExportDir, export.DefaultFilename(userID.String(), format, report.GeneratedAt))

	switch format {
	case export.FormatJSON:
		err = export.WriteJSON(report, path)
	case export.FormatCSV:
		err = export.WriteCSV(report, path)
	default:
		return "", fmt.Errorf("%w: %q", export.ErrUnknownFormat, format)
	}
	if err != nil {
		return "", fmt.Errorf("export report for user %s: %w", userID, err)
	}

	return path, nil
}
