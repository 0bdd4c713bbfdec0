package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/chetx27/wellness-tracker/internal/dto"
	"github.com/chetx27/wellness-tracker/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvalidMoodLevel   = errors.New("mood level must be between 1 and 5")
	ErrInvalidEnergyLevel = errors.New("energy level must be between 1 and 100")
	ErrAlreadyCheckedIn   = errors.New("mood already recorded for this day")
	ErrInvalidHabitEntry  = errors.New("habit name and a target of at least 1 are required")
	ErrInvalidSession     = errors.New("subject and a positive duration are required")
	ErrInvalidDate        = errors.New("invalid date, expected YYYY-MM-DD")
	ErrEntryNotFound      = errors.New("entry not found")
)

// WellnessService handles intake and listing of the three entry
// series. Analytics live in the insights package; this service only
// validates and persists.
type WellnessService struct {
	db *gorm.DB
}

func NewWellnessService(db *gorm.DB) *WellnessService {
	return &WellnessService{db: db}
}

// CreateMoodEntry records a daily check-in. One entry per user per
// day; a second check-in for the same date is rejected.
func (s *WellnessService) CreateMoodEntry(userID uuid.UUID, req dto.CreateMoodEntryRequest) (*models.MoodEntry, error) {
	if req.MoodLevel < 1 || req.MoodLevel > 5 {
		return nil, ErrInvalidMoodLevel
	}
	if req.EnergyLevel < 1 || req.EnergyLevel > 100 {
		return nil, ErrInvalidEnergyLevel
	}

	entryDate, err := parseEntryDate(req.EntryDate)
	if err != nil {
		return nil, err
	}

	var existing models.MoodEntry
	if err := s.db.Where("user_id = ? AND entry_date = ?", userID, entryDate).First(&existing).Error; err == nil {
		return nil, ErrAlreadyCheckedIn
	}

	entry := models.MoodEntry{
		ID:          uuid.New(),
		UserID:      userID,
		EntryDate:   entryDate,
		MoodLevel:   req.MoodLevel,
		EnergyLevel: req.EnergyLevel,
		Notes:       req.Notes,
	}

	if err := s.db.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to create mood entry: %w", err)
	}
	return &entry, nil
}

func (s *WellnessService) ListMoodEntries(userID uuid.UUID, limit, offset int) ([]models.MoodEntry, int64, error) {
	var entries []models.MoodEntry
	var total int64

	s.db.Model(&models.MoodEntry{}).Where("user_id = ?", userID).Count(&total)

	err := s.db.Where("user_id = ?", userID).
		Order("entry_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error

	return entries, total, err
}

// CreateHabitEntry records one day's progress against a habit target.
func (s *WellnessService) CreateHabitEntry(userID uuid.UUID, req dto.CreateHabitEntryRequest) (*models.HabitEntry, error) {
	if req.HabitName == "" || req.Target < 1 || req.Completed < 0 {
		return nil, ErrInvalidHabitEntry
	}

	entryDate, err := parseEntryDate(req.EntryDate)
	if err != nil {
		return nil, err
	}

	entry := models.HabitEntry{
		ID:        uuid.New(),
		UserID:    userID,
		HabitName: req.HabitName,
		EntryDate: entryDate,
		Completed: req.Completed,
		Target:    req.Target,
	}

	if err := s.db.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to create habit entry: %w", err)
	}
	return &entry, nil
}

func (s *WellnessService) ListHabitEntries(userID uuid.UUID, limit, offset int) ([]models.HabitEntry, int64, error) {
	var entries []models.HabitEntry
	var total int64

	s.db.Model(&models.HabitEntry{}).Where("user_id = ?", userID).Count(&total)

	err := s.db.Where("user_id = ?", userID).
		Order("entry_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error

	return entries, total, err
}

// CreateStudySession records a finished study block.
func (s *WellnessService) CreateStudySession(userID uuid.UUID, req dto.CreateStudySessionRequest) (*models.StudySession, error) {
	if req.Subject == "" || req.DurationMinutes <= 0 {
		return nil, ErrInvalidSession
	}

	startedAt := time.Now().UTC()
	if req.StartedAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.StartedAt)
		if err != nil {
			return nil, fmt.Errorf("invalid started_at, expected RFC 3339: %w", err)
		}
		startedAt = parsed
	}

	session := models.StudySession{
		ID:              uuid.New(),
		UserID:          userID,
		Subject:         req.Subject,
		StartedAt:       startedAt,
		DurationMinutes: req.DurationMinutes,
		Completed:       req.Completed,
	}

	if err := s.db.Create(&session).Error; err != nil {
		return nil, fmt.Errorf("failed to create study session: %w", err)
	}
	return &session, nil
}

func (s *WellnessService) ListStudySessions(userID uuid.UUID, limit, offset int) ([]models.StudySession, int64, error) {
	var sessions []models.StudySession
	var total int64

	s.db.Model(&models.StudySession{}).Where("user_id = ?", userID).Count(&total)

	err := s.db.Where("user_id = ?", userID).
		Order("started_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&sessions).Error

	return sessions, total, err
}

// DeleteMoodEntry removes an entry only if owned by the user.
func (s *WellnessService) DeleteMoodEntry(userID, entryID uuid.UUID) error {
	return s.deleteOwned(&models.MoodEntry{}, userID, entryID)
}

func (s *WellnessService) DeleteHabitEntry(userID, entryID uuid.UUID) error {
	return s.deleteOwned(&models.HabitEntry{}, userID, entryID)
}

func (s *WellnessService) DeleteStudySession(userID, sessionID uuid.UUID) error {
	return s.deleteOwned(&models.StudySession{}, userID, sessionID)
}

func (s *WellnessService) deleteOwned(model interface{}, userID, id uuid.UUID) error {
	result := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(model)
	if result.Error != nil {
		return fmt.Errorf("failed to delete entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}

func parseEntryDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC().Truncate(24 * time.Hour), nil
	}
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return parsed, nil
}
