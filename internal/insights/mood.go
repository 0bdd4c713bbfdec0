package insights

import (
	"math"

	"github.com/chetx27/wellness-tracker/internal/models"
)

// Trend labels for the mood series direction.
const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"
	TrendNoData    = "no_data"
)

// Slope thresholds separating "stable" from a real direction.
const (
	slopeImproving = 0.05
	slopeDeclining = -0.05
)

// weekdayOrder fixes the iteration order for weekday maps so that
// best/worst tie-breaks are reproducible across runs.
var weekdayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday",
	"Friday", "Saturday", "Sunday",
}

// MoodInsight summarizes a window of mood entries.
type MoodInsight struct {
	Average         float64            `json:"average"`
	Trend           string             `json:"trend"`
	TrendSlope      float64            `json:"trend_slope"`
	Volatility      float64            `json:"volatility"`
	WeekdayPatterns map[string]float64 `json:"weekday_patterns"`
	BestWeekday     string             `json:"best_weekday"`
	WorstWeekday    string             `json:"worst_weekday"`
	EntryCount      int                `json:"entry_count"`
}

// AnalyzeMood computes mood statistics over entries ordered by date.
// The entry position in the slice is the regression x-axis, so order
// matters for the trend but not for the average or volatility.
func AnalyzeMood(entries []models.MoodEntry) MoodInsight {
	insight := MoodInsight{
		Trend:           TrendNoData,
		WeekdayPatterns: map[string]float64{},
	}
	if len(entries) == 0 {
		return insight
	}

	levels := make([]float64, len(entries))
	for i, e := range entries {
		levels[i] = float64(e.MoodLevel)
	}

	mean := meanOf(levels)
	insight.Average = round2(mean)
	insight.EntryCount = len(entries)

	// Single entry: slope is undefined, treat as flat.
	slope := linearSlope(levels)
	insight.TrendSlope = slope
	switch {
	case len(entries) < 2:
		insight.Trend = TrendStable
	case slope > slopeImproving:
		insight.Trend = TrendImproving
	case slope < slopeDeclining:
		insight.Trend = TrendDeclining
	default:
		insight.Trend = TrendStable
	}

	var sqSum float64
	for _, v := range levels {
		d := v - mean
		sqSum += d * d
	}
	insight.Volatility = round2(math.Sqrt(sqSum / float64(len(levels))))

	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, e := range entries {
		day := e.EntryDate.Weekday().String()
		sums[day] += float64(e.MoodLevel)
		counts[day]++
	}
	for day, n := range counts {
		insight.WeekdayPatterns[day] = round2(sums[day] / float64(n))
	}

	best, worst := "", ""
	var bestVal, worstVal float64
	for _, day := range weekdayOrder {
		avg, ok := insight.WeekdayPatterns[day]
		if !ok {
			continue
		}
		if best == "" || avg > bestVal {
			best, bestVal = day, avg
		}
		if worst == "" || avg < worstVal {
			worst, worstVal = day, avg
		}
	}
	insight.BestWeekday = best
	insight.WorstWeekday = worst

	return insight
}

// linearSlope is the ordinary least-squares slope of values against
// their 0-based index. Returns 0 when fewer than two points.
func linearSlope(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	var sumX, sumY, sumXY, sumX2 float64
	for i, y := range values {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}
	denom := float64(n)*sumX2 - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (float64(n)*sumXY - sumX*sumY) / denom
}

func meanOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
