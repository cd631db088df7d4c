// Package insight turns a week of study sessions into summary numbers and
// coaching messages. Everything here is pure: same sessions and the same
// reference time always produce the same report.
package insight

import (
	"fmt"
	"math"
	"sort"
	"time"

	"studycoach/internal/entity"
)

// Window is the trailing period the report covers.
const Window = 7 * 24 * time.Hour

// SubjectMinutes is one entry of the minutes-per-subject breakdown.
type SubjectMinutes struct {
	Subject string
	Minutes int
}

// WeeklyReport summarizes the sessions inside the window.
// AvgFocus and BestSubject are nil when the window holds no sessions.
type WeeklyReport struct {
	MinutesThisWeek int
	DaysStudied     int
	AvgFocus        *float64
	SubjectMinutes  []SubjectMinutes
	BestSubject     *string
	Insights        []string
}

// Analyze builds the weekly report for the sessions whose started_at falls
// inside the trailing window ending at now. The lower bound is inclusive.
func Analyze(sessions []entity.StudySession, now time.Time) WeeklyReport {
	weekStart := now.Add(-Window)

	var week []entity.StudySession
	for _, s := range sessions {
		if !s.StartedAt.Before(weekStart) {
			week = append(week, s)
		}
	}

	report := WeeklyReport{}

	days := make(map[string]struct{})
	focusTotal := 0

	// ordered by first appearance, sorted by minutes afterwards
	subjectIndex := make(map[string]int)
	var subjectFocusSum []int
	var subjectFocusCount []int

	for _, s := range week {
		report.MinutesThisWeek += s.DurationMinutes
		days[s.StartedAt.Format("2006-01-02")] = struct{}{}
		focusTotal += s.FocusRating

		i, ok := subjectIndex[s.Subject]
		if !ok {
			i = len(report.SubjectMinutes)
			subjectIndex[s.Subject] = i
			report.SubjectMinutes = append(report.SubjectMinutes, SubjectMinutes{Subject: s.Subject})
			subjectFocusSum = append(subjectFocusSum, 0)
			subjectFocusCount = append(subjectFocusCount, 0)
		}
		report.SubjectMinutes[i].Minutes += s.DurationMinutes
		subjectFocusSum[i] += s.FocusRating
		subjectFocusCount[i]++
	}

	report.DaysStudied = len(days)

	if len(week) > 0 {
		avg := math.Round(float64(focusTotal)/float64(len(week))*100) / 100
		report.AvgFocus = &avg

		// highest mean focus, first subject wins ties
		best := 0
		for i := 1; i < len(subjectFocusSum); i++ {
			if float64(subjectFocusSum[i])*float64(subjectFocusCount[best]) >
				float64(subjectFocusSum[best])*float64(subjectFocusCount[i]) {
				best = i
			}
		}
		name := report.SubjectMinutes[best].Subject
		report.BestSubject = &name
	}

	sort.SliceStable(report.SubjectMinutes, func(i, j int) bool {
		return report.SubjectMinutes[i].Minutes > report.SubjectMinutes[j].Minutes
	})

	report.Insights = buildInsights(report, len(week) == 0)

	return report
}

func buildInsights(r WeeklyReport, empty bool) []string {
	if empty {
		return []string{"Log your first study session to start getting insights."}
	}

	var insights []string

	if r.DaysStudied <= 2 {
		insights = append(insights, "Try studying on 3+ days this week to build consistency.")
	} else if r.DaysStudied >= 5 {
		insights = append(insights, "Nice consistency — 5+ study days is a strong habit.")
	}

	if r.AvgFocus != nil {
		if *r.AvgFocus < 3 {
			insights = append(insights, "Your focus is low on average. Try shorter sessions.")
		} else if *r.AvgFocus >= 4 {
			insights = append(insights, "Great focus this week — keep it up.")
		}
	}

	if r.MinutesThisWeek < 60 {
		insights = append(insights, "You studied under 60 minutes this week. Even small daily sessions help.")
	} else if r.MinutesThisWeek >= 300 {
		insights = append(insights, "Big week (300+ minutes). Make sure to rest to stay consistent.")
	}

	if r.BestSubject != nil {
		insights = append(insights, fmt.Sprintf("Your best-focus subject this week was %s.", *r.BestSubject))
	}

	return insights
}
