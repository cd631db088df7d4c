package entity

import "time"

// StudySession is one logged block of studying. Rows are immutable after
// creation, there is no edit or delete path.
type StudySession struct {
	ID              int       `json:"id"`
	UserID          int       `json:"user_id"`
	Subject         string    `json:"subject"`
	DurationMinutes int       `json:"duration_minutes"`
	FocusRating     int       `json:"focus_rating"` // 1-5
	StartedAt       time.Time `json:"started_at"`
}

func NewStudySession(userID int, subject string, durationMinutes, focusRating int, startedAt time.Time) StudySession {
	return StudySession{
		UserID:          userID,
		Subject:         subject,
		DurationMinutes: durationMinutes,
		FocusRating:     focusRating,
		StartedAt:       startedAt,
	}
}
