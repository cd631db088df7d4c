package repository

import (
	"database/sql"
	"time"

	"studycoach/internal/entity"
)

type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(userID int, title string) (entity.Task, error) {
	task := entity.Task{UserID: userID, Title: title}
	err := r.db.QueryRow(`
		INSERT INTO tasks (user_id, title, completed, created_at)
		VALUES ($1, $2, FALSE, $3)
		RETURNING id, created_at
	`, userID, title, time.Now()).Scan(&task.ID, &task.CreatedAt)

	return task, err
}

func (r *TaskRepository) RecentByUser(userID, limit int) ([]entity.Task, error) {
	rows, err := r.db.Query(`
		SELECT id, user_id, title, completed, created_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]entity.Task, 0)

	for rows.Next() {
		var t entity.Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Completed, &t.CreatedAt); err != nil {
			return tasks, err
		}

		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

func (r *TaskRepository) CountByUser(userID int) (int, error) {
	var count int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM tasks WHERE user_id = $1
	`, userID).Scan(&count)

	return count, err
}

// Toggle flips completed on the user's own task. A single UPDATE so
// concurrent toggles are serialized by the database.
func (r *TaskRepository) Toggle(taskID, userID int) error {
	res, err := r.db.Exec(`
		UPDATE tasks
		SET completed = NOT completed
		WHERE id = $1 AND user_id = $2
	`, taskID, userID)
	if err != nil {
		return err
	}

	return requireOneRow(res)
}

func (r *TaskRepository) Delete(taskID, userID int) error {
	res, err := r.db.Exec(`
		DELETE FROM tasks
		WHERE id = $1 AND user_id = $2
	`, taskID, userID)
	if err != nil {
		return err
	}

	return requireOneRow(res)
}

func requireOneRow(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return &NotFoundError{"task"}
	}
	return nil
}
