package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/chetx27/wellness-tracker/internal/insights"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func csvFixture() *insights.Report {
	hour := 9
	return &insights.Report{
		UserID: "user-1",
		AnalysisPeriod: insights.AnalysisPeriod{
			Days:      30,
			StartDate: "2026-02-13",
			EndDate:   "2026-03-15",
		},
		Insights: insights.InsightBundle{
			Mood: insights.MoodInsight{
				Average:      3.2,
				Trend:        insights.TrendStable,
				TrendSlope:   0.01,
				Volatility:   0.8,
				BestWeekday:  "Monday",
				WorstWeekday: "Thursday",
				EntryCount:   12,
			},
			Habits: insights.HabitInsight{
				CompletionRates:       map[string]float64{"water": 0.75, "exercise": 0.5},
				CurrentStreaks:        map[string]int{"water": 4, "exercise": 0},
				OverallCompletionRate: 0.667,
				MostConsistentHabit:   "water",
				NeedsAttention:        "exercise",
				EntryCount:            16,
			},
			Study: insights.StudyInsight{
				TotalSessions:  5,
				TotalMinutes:   210,
				AvgDuration:    42.0,
				CompletionRate: 0.6,
				BestStudyHour:  &hour,
			},
		},
		Recommendations: []string{"Drink more water"},
		GeneratedAt:     time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC),
	}
}

func writeCSVLines(t *testing.T, report *insights.Report) []string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.csv")
	require.NoError(t, WriteCSV(report, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
}

func TestWriteCSVHeader(t *testing.T) {
	lines := writeCSVLines(t, csvFixture())

	assert.Equal(t, "metric,value,category", lines[0])
}

func TestWriteCSVRecommendationRowIsQuoted(t *testing.T) {
	lines := writeCSVLines(t, csvFixture())

	assert.Contains(t, lines, `recommendation_1,"Drink more water",recommendations`)
}

func TestWriteCSVTextValuesAlwaysQuoted(t *testing.T) {
	lines := writeCSVLines(t, csvFixture())

	assert.Contains(t, lines, `mood_trend,"stable",mood`)
	assert.Contains(t, lines, `mood_best_weekday,"Monday",mood`)
	assert.Contains(t, lines, `most_consistent_habit,"water",habits`)
}

func TestWriteCSVNumericRows(t *testing.T) {
	lines := writeCSVLines(t, csvFixture())

	assert.Contains(t, lines, "mood_average,3.2,mood")
	assert.Contains(t, lines, "overall_completion_rate,0.667,habits")
	assert.Contains(t, lines, "total_sessions,5,study")
	assert.Contains(t, lines, "best_study_hour,9,study")
}

// Per-habit rows come out in ascending name order regardless of map
// iteration order.
func TestWriteCSVHabitRowsSorted(t *testing.T) {
	lines := writeCSVLines(t, csvFixture())

	exercise, water := -1, -1
	for i, line := range lines {
		if strings.HasPrefix(line, "habit_completion_rate_exercise,") {
			exercise = i
		}
		if strings.HasPrefix(line, "habit_completion_rate_water,") {
			water = i
		}
	}
	require.NotEqual(t, -1, exercise)
	require.NotEqual(t, -1, water)
	assert.Less(t, exercise, water)
}

func TestWriteCSVSkipsAbsentOptionalRows(t *testing.T) {
	report := &insights.Report{
		Insights: insights.InsightBundle{
			Mood: insights.MoodInsight{Trend: insights.TrendNoData},
		},
		Recommendations: []string{},
	}

	lines := writeCSVLines(t, report)

	joined := strings.Join(lines, "\n")
	assert.NotContains(t, joined, "mood_best_weekday")
	assert.NotContains(t, joined, "best_study_hour")
	assert.NotContains(t, joined, "recommendation_")
}

func TestWriteCSVEscapesEmbeddedQuotes(t *testing.T) {
	report := csvFixture()
	report.Recommendations = []string{`Try the "pomodoro" method`}

	lines := writeCSVLines(t, report)

	assert.Contains(t, lines, `recommendation_1,"Try the ""pomodoro"" method",recommendations`)
}

func TestWriteCSVBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "report.csv")

	err := WriteCSV(csvFixture(), path)

	assert.ErrorIs(t, err, ErrExport)
}
