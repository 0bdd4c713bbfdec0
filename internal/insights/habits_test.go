package insights

import (
	"testing"
	"time"

	"github.com/chetx27/wellness-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func habitEntry(name, date string, completed, target int) models.HabitEntry {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return models.HabitEntry{HabitName: name, EntryDate: d, Completed: completed, Target: target}
}

// habitDays builds one entry per day for a single habit where each
// bool says whether that day's target was met.
func habitDays(name, start string, met ...bool) []models.HabitEntry {
	first, err := time.Parse("2006-01-02", start)
	if err != nil {
		panic(err)
	}
	entries := make([]models.HabitEntry, len(met))
	for i, ok := range met {
		completed := 0
		if ok {
			completed = 1
		}
		entries[i] = models.HabitEntry{
			HabitName: name,
			EntryDate: first.AddDate(0, 0, i),
			Completed: completed,
			Target:    1,
		}
	}
	return entries
}

func TestAnalyzeHabitsEmpty(t *testing.T) {
	insight := AnalyzeHabits(nil)

	assert.Equal(t, 0.0, insight.OverallCompletionRate)
	assert.Empty(t, insight.CompletionRates)
	assert.Empty(t, insight.CurrentStreaks)
	assert.Empty(t, insight.MostConsistentHabit)
	assert.Empty(t, insight.NeedsAttention)
	assert.Zero(t, insight.EntryCount)
}

func TestAnalyzeHabitsCurrentStreak(t *testing.T) {
	entries := habitDays("water", "2026-02-02", true, true, false, true, true, true)

	insight := AnalyzeHabits(entries)

	assert.Equal(t, 3, insight.CurrentStreaks["water"])
	assert.Equal(t, round3(5.0/6.0), insight.CompletionRates["water"])
}

func TestAnalyzeHabitsStreakBrokenOnLatestDay(t *testing.T) {
	entries := habitDays("reading", "2026-02-02", true, true, false)

	insight := AnalyzeHabits(entries)

	assert.Equal(t, 0, insight.CurrentStreaks["reading"])
}

func TestAnalyzeHabitsStreakIgnoresInputOrder(t *testing.T) {
	entries := habitDays("water", "2026-02-02", true, false, true, true)
	// Present the days newest-first; the streak must still be 2.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}

	insight := AnalyzeHabits(entries)

	assert.Equal(t, 2, insight.CurrentStreaks["water"])
}

// The overall rate weights by quantity, not by qualifying days.
func TestAnalyzeHabitsOverallRateIsQuantityWeighted(t *testing.T) {
	entries := []models.HabitEntry{
		habitEntry("pushups", "2026-02-02", 30, 50),
		habitEntry("pushups", "2026-02-03", 50, 50),
		habitEntry("water", "2026-02-02", 8, 8),
	}

	insight := AnalyzeHabits(entries)

	// (30+50+8) / (50+50+8) = 88/108
	assert.Equal(t, round3(88.0/108.0), insight.OverallCompletionRate)
	assert.Equal(t, 0.5, insight.CompletionRates["pushups"])
	assert.Equal(t, 1.0, insight.CompletionRates["water"])
	assert.Equal(t, 3, insight.EntryCount)
}

func TestAnalyzeHabitsBestAndWorst(t *testing.T) {
	entries := append(
		habitDays("exercise", "2026-02-02", true, false, false, false),
		habitDays("reading", "2026-02-02", true, true, true, true)...,
	)

	insight := AnalyzeHabits(entries)

	assert.Equal(t, "reading", insight.MostConsistentHabit)
	assert.Equal(t, "exercise", insight.NeedsAttention)
}

// Equal rates resolve to the lexically first habit name.
func TestAnalyzeHabitsTieBreakIsLexical(t *testing.T) {
	entries := append(
		habitDays("water", "2026-02-02", true, true),
		habitDays("exercise", "2026-02-02", true, true)...,
	)

	insight := AnalyzeHabits(entries)

	require.Equal(t, insight.CompletionRates["water"], insight.CompletionRates["exercise"])
	assert.Equal(t, "exercise", insight.MostConsistentHabit)
	assert.Equal(t, "exercise", insight.NeedsAttention)
}
