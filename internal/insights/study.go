package insights

import (
	"github.com/chetx27/wellness-tracker/internal/models"
)

// HourStats aggregates sessions that started within one hour of day.
type HourStats struct {
	Sessions     int `json:"sessions"`
	Completed    int `json:"completed"`
	TotalMinutes int `json:"total_minutes"`
}

// SubjectStats aggregates sessions per subject. Derived rates are
// left to the report consumer.
type SubjectStats struct {
	Sessions     int `json:"sessions"`
	TotalMinutes int `json:"total_minutes"`
	Completed    int `json:"completed"`
}

// StudyInsight summarizes study sessions over a window.
type StudyInsight struct {
	TotalSessions      int                     `json:"total_sessions"`
	TotalMinutes       int                     `json:"total_minutes"`
	AvgDuration        float64                 `json:"avg_duration"`
	CompletionRate     float64                 `json:"completion_rate"`
	BestStudyHour      *int                    `json:"best_study_hour"`
	HourlyActivity     map[int]HourStats       `json:"hourly_activity"`
	SubjectPerformance map[string]SubjectStats `json:"subject_performance"`
}

// AnalyzeStudy computes session totals, the per-hour activity map and
// the hour with the highest completion ratio. When two hours tie, the
// earlier hour wins.
func AnalyzeStudy(sessions []models.StudySession) StudyInsight {
	insight := StudyInsight{
		HourlyActivity:     map[int]HourStats{},
		SubjectPerformance: map[string]SubjectStats{},
	}
	if len(sessions) == 0 {
		return insight
	}

	completed := 0
	for _, s := range sessions {
		insight.TotalSessions++
		insight.TotalMinutes += s.DurationMinutes
		if s.Completed {
			completed++
		}

		hour := s.StartedAt.Hour()
		hs := insight.HourlyActivity[hour]
		hs.Sessions++
		hs.TotalMinutes += s.DurationMinutes
		if s.Completed {
			hs.Completed++
		}
		insight.HourlyActivity[hour] = hs

		ss := insight.SubjectPerformance[s.Subject]
		ss.Sessions++
		ss.TotalMinutes += s.DurationMinutes
		if s.Completed {
			ss.Completed++
		}
		insight.SubjectPerformance[s.Subject] = ss
	}

	insight.AvgDuration = round1(float64(insight.TotalMinutes) / float64(insight.TotalSessions))
	insight.CompletionRate = round3(float64(completed) / float64(insight.TotalSessions))

	var bestHour *int
	var bestRatio float64
	for hour := 0; hour < 24; hour++ {
		hs, ok := insight.HourlyActivity[hour]
		if !ok {
			continue
		}
		ratio := float64(hs.Completed) / float64(hs.Sessions)
		if bestHour == nil || ratio > bestRatio {
			h := hour
			bestHour, bestRatio = &h, ratio
		}
	}
	insight.BestStudyHour = bestHour

	return insight
}
