package services

import (
	"testing"

	"github.com/chetx27/wellness-tracker/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// Validation runs before any database access, so these paths are
// testable without a connection.

func TestCreateMoodEntryValidation(t *testing.T) {
	s := NewWellnessService(nil)
	userID := uuid.New()

	cases := []struct {
		name string
		req  dto.CreateMoodEntryRequest
		want error
	}{
		{"mood too low", dto.CreateMoodEntryRequest{MoodLevel: 0, EnergyLevel: 50}, ErrInvalidMoodLevel},
		{"mood too high", dto.CreateMoodEntryRequest{MoodLevel: 6, EnergyLevel: 50}, ErrInvalidMoodLevel},
		{"energy too low", dto.CreateMoodEntryRequest{MoodLevel: 3, EnergyLevel: 0}, ErrInvalidEnergyLevel},
		{"energy too high", dto.CreateMoodEntryRequest{MoodLevel: 3, EnergyLevel: 101}, ErrInvalidEnergyLevel},
		{"bad date", dto.CreateMoodEntryRequest{MoodLevel: 3, EnergyLevel: 50, EntryDate: "15-03-2026"}, ErrInvalidDate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.CreateMoodEntry(userID, tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCreateHabitEntryValidation(t *testing.T) {
	s := NewWellnessService(nil)
	userID := uuid.New()

	cases := []struct {
		name string
		req  dto.CreateHabitEntryRequest
	}{
		{"missing name", dto.CreateHabitEntryRequest{Target: 8, Completed: 4}},
		{"zero target", dto.CreateHabitEntryRequest{HabitName: "water", Target: 0}},
		{"negative completed", dto.CreateHabitEntryRequest{HabitName: "water", Target: 8, Completed: -1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.CreateHabitEntry(userID, tc.req)
			assert.ErrorIs(t, err, ErrInvalidHabitEntry)
		})
	}
}

func TestCreateStudySessionValidation(t *testing.T) {
	s := NewWellnessService(nil)
	userID := uuid.New()

	_, err := s.CreateStudySession(userID, dto.CreateStudySessionRequest{DurationMinutes: 30})
	assert.ErrorIs(t, err, ErrInvalidSession)

	_, err = s.CreateStudySession(userID, dto.CreateStudySessionRequest{Subject: "math", DurationMinutes: 0})
	assert.ErrorIs(t, err, ErrInvalidSession)

	_, err = s.CreateStudySession(userID, dto.CreateStudySessionRequest{
		Subject: "math", DurationMinutes: 30, StartedAt: "not-a-time",
	})
	assert.Error(t, err)
}
