package insights

import (
	"sort"

	"github.com/chetx27/wellness-tracker/internal/models"
)

// HabitInsight summarizes habit completion over a window.
type HabitInsight struct {
	CompletionRates       map[string]float64 `json:"completion_rates"`
	CurrentStreaks        map[string]int     `json:"current_streaks"`
	OverallCompletionRate float64            `json:"overall_completion_rate"`
	MostConsistentHabit   string             `json:"most_consistent_habit"`
	NeedsAttention        string             `json:"needs_attention"`
	EntryCount            int                `json:"entry_count"`
}

// AnalyzeHabits groups entries by habit name and computes per-habit
// completion rates and trailing streaks, plus the quantity-weighted
// overall rate. Habit names are ranked in ascending lexical order so
// ties resolve deterministically.
func AnalyzeHabits(entries []models.HabitEntry) HabitInsight {
	insight := HabitInsight{
		CompletionRates: map[string]float64{},
		CurrentStreaks:  map[string]int{},
	}
	if len(entries) == 0 {
		return insight
	}

	byHabit := make(map[string][]models.HabitEntry)
	var totalCompleted, totalTarget int
	for _, e := range entries {
		byHabit[e.HabitName] = append(byHabit[e.HabitName], e)
		totalCompleted += e.Completed
		totalTarget += e.Target
	}

	names := make([]string, 0, len(byHabit))
	for name := range byHabit {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		group := byHabit[name]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].EntryDate.Before(group[j].EntryDate)
		})

		met := 0
		for _, e := range group {
			if e.Completed >= e.Target {
				met++
			}
		}
		insight.CompletionRates[name] = round3(float64(met) / float64(len(group)))

		// Trailing run of qualifying days, newest first.
		streak := 0
		for i := len(group) - 1; i >= 0; i-- {
			if group[i].Completed < group[i].Target {
				break
			}
			streak++
		}
		insight.CurrentStreaks[name] = streak
	}

	if totalTarget > 0 {
		insight.OverallCompletionRate = round3(float64(totalCompleted) / float64(totalTarget))
	}
	insight.EntryCount = len(entries)

	best, worst := "", ""
	var bestRate, worstRate float64
	for _, name := range names {
		rate := insight.CompletionRates[name]
		if best == "" || rate > bestRate {
			best, bestRate = name, rate
		}
		if worst == "" || rate < worstRate {
			worst, worstRate = name, rate
		}
	}
	insight.MostConsistentHabit = best
	insight.NeedsAttention = worst

	return insight
}
