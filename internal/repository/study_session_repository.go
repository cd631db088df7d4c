package repository

import (
	"database/sql"
	"time"

	"studycoach/internal/entity"
)

type StudySessionRepository struct {
	db *sql.DB
}

func NewStudySessionRepository(db *sql.DB) *StudySessionRepository {
	return &StudySessionRepository{db: db}
}

func (r *StudySessionRepository) Create(session entity.StudySession) (entity.StudySession, error) {
	err := r.db.QueryRow(`
		INSERT INTO study_sessions (user_id, subject, duration_minutes, focus_rating, started_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, session.UserID, session.Subject, session.DurationMinutes, session.FocusRating, session.StartedAt).Scan(&session.ID)

	return session, err
}

// RecentByUser returns the user's latest sessions, newest first.
func (r *StudySessionRepository) RecentByUser(userID, limit int) ([]entity.StudySession, error) {
	rows, err := r.db.Query(`
		SELECT id, user_id, subject, duration_minutes, focus_rating, started_at
		FROM study_sessions
		WHERE user_id = $1
		ORDER BY started_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStudySessions(rows)
}

// ByUserSince returns the sessions started at or after the given time,
// oldest first. Used for the weekly insight window.
func (r *StudySessionRepository) ByUserSince(userID int, since time.Time) ([]entity.StudySession, error) {
	rows, err := r.db.Query(`
		SELECT id, user_id, subject, duration_minutes, focus_rating, started_at
		FROM study_sessions
		WHERE user_id = $1 AND started_at >= $2
		ORDER BY started_at ASC
	`, userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStudySessions(rows)
}

func (r *StudySessionRepository) CountByUser(userID int) (int, error) {
	var count int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM study_sessions WHERE user_id = $1
	`, userID).Scan(&count)

	return count, err
}

func scanStudySessions(rows *sql.Rows) ([]entity.StudySession, error) {
	sessions := make([]entity.StudySession, 0)

	for rows.Next() {
		var s entity.StudySession
		if err := rows.Scan(
			&s.ID,
			&s.UserID,
			&s.Subject,
			&s.DurationMinutes,
			&s.FocusRating,
			&s.StartedAt,
		); err != nil {
			return sessions, err
		}

		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}
