package insights

import (
	"time"

	"github.com/chetx27/wellness-tracker/internal/models"
)

// AnalysisPeriod is the calendar window a report covers. Start and
// end come from the requested day count, not from entry dates.
type AnalysisPeriod struct {
	Days      int    `json:"days"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// DataQuality counts the raw entries behind each insight section.
type DataQuality struct {
	MoodEntries   int `json:"mood_entries"`
	HabitEntries  int `json:"habit_entries"`
	StudySessions int `json:"study_sessions"`
}

// InsightBundle holds the three derived insight sections.
type InsightBundle struct {
	Mood   MoodInsight  `json:"mood"`
	Habits HabitInsight `json:"habits"`
	Study  StudyInsight `json:"study"`
}

// Report is the full analytics output for one user and window. It is
// a pure function of the input series and the reference time.
type Report struct {
	UserID          string         `json:"user_id"`
	AnalysisPeriod  AnalysisPeriod `json:"analysis_period"`
	Insights        InsightBundle  `json:"insights"`
	Recommendations []string       `json:"recommendations"`
	GeneratedAt     time.Time      `json:"generated_at"`
	DataQuality     DataQuality    `json:"data_quality"`
}

// BuildReport runs the three calculators and the recommendation rules
// over pre-filtered series. The caller supplies now so that repeated
// runs over the same data produce identical reports.
func BuildReport(
	userID string,
	days int,
	moods []models.MoodEntry,
	habitEntries []models.HabitEntry,
	sessions []models.StudySession,
	now time.Time,
) Report {
	mood := AnalyzeMood(moods)
	habits := AnalyzeHabits(habitEntries)
	study := AnalyzeStudy(sessions)

	return Report{
		UserID: userID,
		AnalysisPeriod: AnalysisPeriod{
			Days:      days,
			StartDate: now.AddDate(0, 0, -days).Format("2006-01-02"),
			EndDate:   now.Format("2006-01-02"),
		},
		Insights: InsightBundle{
			Mood:   mood,
			Habits: habits,
			Study:  study,
		},
		Recommendations: Recommendations(&mood, &habits, &study),
		GeneratedAt:     now,
		DataQuality: DataQuality{
			MoodEntries:   len(moods),
			HabitEntries:  len(habitEntries),
			StudySessions: len(sessions),
		},
	}
}
