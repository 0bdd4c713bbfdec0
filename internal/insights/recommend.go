package insights

import "fmt"

// Recommendation rule thresholds.
const (
	volatilityHigh      = 1.5
	habitRateLow        = 0.7
	studyCompletionGoal = 0.8
)

// Recommendations evaluates each rule in order against the three
// insight sections and collects the suggestions that apply. Rules do
// not suppress each other; nil sections are skipped.
func Recommendations(mood *MoodInsight, habits *HabitInsight, study *StudyInsight) []string {
	recs := []string{}

	if mood != nil {
		if mood.Trend == TrendDeclining {
			recs = append(recs, "Your mood has been trending downward. Consider a short daily mindfulness practice, and reach out to someone you trust if the dip continues.")
		}
		if mood.Volatility > volatilityHigh {
			recs = append(recs, "Your mood varies a lot from day to day. A steadier sleep and exercise routine can help smooth it out.")
		}
	}

	if habits != nil {
		if habits.EntryCount > 0 && habits.OverallCompletionRate < habitRateLow {
			recs = append(recs, "You're hitting under 70% of your habit targets. Try trimming down to fewer, smaller habits and build back up.")
		}
		if habits.NeedsAttention != "" {
			recs = append(recs, fmt.Sprintf("'%s' has your lowest completion rate. Consider lowering its target or stacking it onto a routine you already keep.", habits.NeedsAttention))
		}
	}

	if study != nil && study.BestStudyHour != nil && study.CompletionRate < studyCompletionGoal {
		recs = append(recs, fmt.Sprintf("You finish the most study sessions around %d:00. Scheduling focused work at that hour could lift your completion rate.", *study.BestStudyHour))
	}

	return recs
}
