package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MoodEntry is a daily mood check-in. One entry per user per day.
type MoodEntry struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	EntryDate   time.Time      `gorm:"type:date;not null;index" json:"entry_date"`
	MoodLevel   int            `gorm:"not null" json:"mood_level"`
	EnergyLevel int            `gorm:"not null" json:"energy_level"`
	Notes       string         `gorm:"size:500" json:"notes"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// HabitEntry records one day's progress against a named habit target.
type HabitEntry struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	HabitName string         `gorm:"size:100;not null;index" json:"habit_name"`
	EntryDate time.Time      `gorm:"type:date;not null;index" json:"entry_date"`
	Completed int            `gorm:"not null" json:"completed"`
	Target    int            `gorm:"not null" json:"target"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// StudySession is a single timed study block. Zero or more per day.
type StudySession struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Subject         string         `gorm:"size:100;not null;index" json:"subject"`
	StartedAt       time.Time      `gorm:"not null;index" json:"started_at"`
	DurationMinutes int            `gorm:"not null" json:"duration_minutes"`
	Completed       bool           `gorm:"default:false" json:"completed"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
