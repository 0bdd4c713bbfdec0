package export

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/chetx27/wellness-tracker/internal/insights"
)

// WriteCSV writes the flat encoding of a report to path: one row per
// scalar metric plus one numbered row per recommendation, with
// columns metric,value,category. Free-text values are always quoted;
// numeric values never need it.
func WriteCSV(report *insights.Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return wrapErr("create", path, err)
	}

	w := bufio.NewWriter(f)
	writeRows(w, report)

	if err := w.Flush(); err != nil {
		f.Close()
		os.Remove(path)
		return wrapErr("write", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return wrapErr("close", path, err)
	}
	return nil
}

func writeRows(w *bufio.Writer, report *insights.Report) {
	fmt.Fprintln(w, "metric,value,category")

	mood := report.Insights.Mood
	numRow(w, "mood_average", mood.Average, "mood")
	textRow(w, "mood_trend", mood.Trend, "mood")
	numRow(w, "mood_trend_slope", mood.TrendSlope, "mood")
	numRow(w, "mood_volatility", mood.Volatility, "mood")
	if mood.BestWeekday != "" {
		textRow(w, "mood_best_weekday", mood.BestWeekday, "mood")
	}
	if mood.WorstWeekday != "" {
		textRow(w, "mood_worst_weekday", mood.WorstWeekday, "mood")
	}

	habits := report.Insights.Habits
	numRow(w, "overall_completion_rate", habits.OverallCompletionRate, "habits")
	if habits.MostConsistentHabit != "" {
		textRow(w, "most_consistent_habit", habits.MostConsistentHabit, "habits")
	}
	if habits.NeedsAttention != "" {
		textRow(w, "needs_attention", habits.NeedsAttention, "habits")
	}
	for _, name := range sortedKeys(habits.CompletionRates) {
		numRow(w, "habit_completion_rate_"+name, habits.CompletionRates[name], "habits")
	}
	for _, name := range sortedStreakKeys(habits.CurrentStreaks) {
		intRow(w, "habit_current_streak_"+name, habits.CurrentStreaks[name], "habits")
	}

	study := report.Insights.Study
	intRow(w, "total_sessions", study.TotalSessions, "study")
	intRow(w, "total_minutes", study.TotalMinutes, "study")
	numRow(w, "avg_duration", study.AvgDuration, "study")
	numRow(w, "study_completion_rate", study.CompletionRate, "study")
	if study.BestStudyHour != nil {
		intRow(w, "best_study_hour", *study.BestStudyHour, "study")
	}

	for i, rec := range report.Recommendations {
		textRow(w, fmt.Sprintf("recommendation_%d", i+1), rec, "recommendations")
	}
}

func numRow(w *bufio.Writer, metric string, value float64, category string) {
	fmt.Fprintf(w, "%s,%s,%s\n", metricField(metric), strconv.FormatFloat(value, 'g', -1, 64), category)
}

func intRow(w *bufio.Writer, metric string, value int, category string) {
	fmt.Fprintf(w, "%s,%d,%s\n", metricField(metric), value, category)
}

func textRow(w *bufio.Writer, metric, value, category string) {
	fmt.Fprintf(w, "%s,%s,%s\n", metricField(metric), quote(value), category)
}

// metricField quotes a metric name only when a habit name embedded in
// it carries a delimiter character.
func metricField(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return quote(s)
	}
	return s
}

// quote wraps a free-text value in double quotes, escaping embedded
// quotes per RFC 4180, so delimiter characters in the value cannot
// break the row.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedStreakKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
