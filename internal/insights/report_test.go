package insights

import (
	"testing"
	"time"

	"github.com/chetx27/wellness-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReportEmptySeries(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	report := BuildReport("user-1", 30, nil, nil, nil, now)

	assert.Equal(t, "user-1", report.UserID)
	assert.Equal(t, 30, report.AnalysisPeriod.Days)
	assert.Equal(t, "2026-02-13", report.AnalysisPeriod.StartDate)
	assert.Equal(t, "2026-03-15", report.AnalysisPeriod.EndDate)
	assert.Equal(t, TrendNoData, report.Insights.Mood.Trend)
	require.NotNil(t, report.Recommendations)
	assert.Empty(t, report.Recommendations)
	assert.Equal(t, DataQuality{}, report.DataQuality)
	assert.Equal(t, now, report.GeneratedAt)
}

func TestBuildReportIsDeterministic(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	moods := moodSeries("2026-03-01", 5, 4, 3, 2, 1)
	habitEntries := habitDays("water", "2026-03-01", true, false, true)
	sessions := []models.StudySession{
		studySession("math", 9, 45, true),
		studySession("math", 14, 30, false),
	}

	first := BuildReport("user-1", 14, moods, habitEntries, sessions, now)
	second := BuildReport("user-1", 14, moods, habitEntries, sessions, now)

	assert.Equal(t, first, second)
}

func TestBuildReportCountsDataQuality(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	moods := moodSeries("2026-03-01", 3, 3)
	habitEntries := habitDays("water", "2026-03-01", true)
	sessions := []models.StudySession{studySession("math", 9, 45, true)}

	report := BuildReport("user-1", 7, moods, habitEntries, sessions, now)

	assert.Equal(t, DataQuality{MoodEntries: 2, HabitEntries: 1, StudySessions: 1}, report.DataQuality)
}

func TestBuildReportWiresRecommendations(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	moods := moodSeries("2026-03-01", 5, 4, 3, 2, 1)

	report := BuildReport("user-1", 14, moods, nil, nil, now)

	require.NotEmpty(t, report.Recommendations)
	assert.Contains(t, report.Recommendations[0], "trending downward")
}
