package dto

// CreateMoodEntryRequest records one day's mood check-in.
type CreateMoodEntryRequest struct {
	EntryDate   string `json:"entry_date"` // YYYY-MM-DD, defaults to today
	MoodLevel   int    `json:"mood_level"`
	EnergyLevel int    `json:"energy_level"`
	Notes       string `json:"notes"`
}

// CreateHabitEntryRequest records one day's progress on a habit.
type CreateHabitEntryRequest struct {
	HabitName string `json:"habit_name"`
	EntryDate string `json:"entry_date"` // YYYY-MM-DD, defaults to today
	Completed int    `json:"completed"`
	Target    int    `json:"target"`
}

// CreateStudySessionRequest records a finished study block.
type CreateStudySessionRequest struct {
	Subject         string `json:"subject"`
	StartedAt       string `json:"started_at"` // RFC 3339, defaults to now
	DurationMinutes int    `json:"duration_minutes"`
	Completed       bool   `json:"completed"`
}

// ExportResponse returns where an export was written.
type ExportResponse struct {
	Path   string `json:"path"`
	Format string `json:"format"`
}
