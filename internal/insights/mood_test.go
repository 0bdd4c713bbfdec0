package insights

import (
	"testing"
	"time"

	"github.com/chetx27/wellness-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func moodEntry(date string, level int) models.MoodEntry {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return models.MoodEntry{EntryDate: d, MoodLevel: level, EnergyLevel: 50}
}

func moodSeries(start string, levels ...int) []models.MoodEntry {
	first, err := time.Parse("2006-01-02", start)
	if err != nil {
		panic(err)
	}
	entries := make([]models.MoodEntry, len(levels))
	for i, level := range levels {
		entries[i] = models.MoodEntry{
			EntryDate: first.AddDate(0, 0, i),
			MoodLevel: level,
		}
	}
	return entries
}

func TestAnalyzeMoodEmpty(t *testing.T) {
	insight := AnalyzeMood(nil)

	assert.Equal(t, 0.0, insight.Average)
	assert.Equal(t, TrendNoData, insight.Trend)
	assert.Equal(t, 0.0, insight.TrendSlope)
	assert.Equal(t, 0.0, insight.Volatility)
	assert.Empty(t, insight.WeekdayPatterns)
	assert.Empty(t, insight.BestWeekday)
	assert.Empty(t, insight.WorstWeekday)
	assert.Zero(t, insight.EntryCount)
}

func TestAnalyzeMoodConstantSeries(t *testing.T) {
	insight := AnalyzeMood(moodSeries("2026-01-05", 3, 3, 3, 3, 3))

	assert.Equal(t, 3.0, insight.Average)
	assert.Equal(t, 0.0, insight.Volatility)
	assert.Equal(t, 0.0, insight.TrendSlope)
	assert.Equal(t, TrendStable, insight.Trend)
}

func TestAnalyzeMoodImprovingSeries(t *testing.T) {
	insight := AnalyzeMood(moodSeries("2026-01-05", 1, 2, 3, 4, 5))

	assert.Equal(t, 3.0, insight.Average)
	assert.Equal(t, 1.0, insight.TrendSlope)
	assert.Equal(t, TrendImproving, insight.Trend)
}

func TestAnalyzeMoodDecliningSeries(t *testing.T) {
	insight := AnalyzeMood(moodSeries("2026-01-05", 5, 4, 3, 2, 1))

	assert.Equal(t, -1.0, insight.TrendSlope)
	assert.Equal(t, TrendDeclining, insight.Trend)
}

func TestAnalyzeMoodSingleEntryIsStable(t *testing.T) {
	insight := AnalyzeMood(moodSeries("2026-01-05", 4))

	assert.Equal(t, 4.0, insight.Average)
	assert.Equal(t, 0.0, insight.TrendSlope)
	assert.Equal(t, TrendStable, insight.Trend)
}

// The average is a pure statistic; the slope treats position as the
// time axis, so reversing the series flips its sign.
func TestAnalyzeMoodReorderingKeepsAverageFlipsSlope(t *testing.T) {
	asc := AnalyzeMood(moodSeries("2026-01-05", 1, 2, 3, 4, 5))
	desc := AnalyzeMood(moodSeries("2026-01-05", 5, 4, 3, 2, 1))

	assert.Equal(t, asc.Average, desc.Average)
	assert.Equal(t, asc.Volatility, desc.Volatility)
	assert.NotEqual(t, asc.TrendSlope, desc.TrendSlope)
}

func TestAnalyzeMoodVolatility(t *testing.T) {
	// Deviations from mean 3 are -2,2,-2,2 -> variance 4, stddev 2.
	insight := AnalyzeMood(moodSeries("2026-01-05", 1, 5, 1, 5))

	assert.Equal(t, 2.0, insight.Volatility)
}

func TestAnalyzeMoodWeekdayPatterns(t *testing.T) {
	// 2026-01-05 is a Monday.
	entries := []models.MoodEntry{
		moodEntry("2026-01-05", 5), // Monday
		moodEntry("2026-01-06", 1), // Tuesday
		moodEntry("2026-01-07", 3), // Wednesday
		moodEntry("2026-01-12", 3), // Monday again
	}

	insight := AnalyzeMood(entries)

	require.Len(t, insight.WeekdayPatterns, 3)
	assert.Equal(t, 4.0, insight.WeekdayPatterns["Monday"])
	assert.Equal(t, 1.0, insight.WeekdayPatterns["Tuesday"])
	assert.Equal(t, 3.0, insight.WeekdayPatterns["Wednesday"])
	assert.Equal(t, "Monday", insight.BestWeekday)
	assert.Equal(t, "Tuesday", insight.WorstWeekday)
}

// Ties resolve to the earliest weekday in Monday-Sunday order.
func TestAnalyzeMoodWeekdayTieBreak(t *testing.T) {
	entries := []models.MoodEntry{
		moodEntry("2026-01-06", 3), // Tuesday
		moodEntry("2026-01-08", 3), // Thursday
	}

	insight := AnalyzeMood(entries)

	assert.Equal(t, "Tuesday", insight.BestWeekday)
	assert.Equal(t, "Tuesday", insight.WorstWeekday)
}
