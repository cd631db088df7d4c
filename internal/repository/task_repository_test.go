package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTaskRepository(db)

	mock.ExpectQuery("INSERT INTO tasks").
		WithArgs(1, "Read chapter 4", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(12, time.Now()))

	task, err := repo.Create(1, "Read chapter 4")

	require.NoError(t, err)
	assert.Equal(t, 12, task.ID)
	assert.Equal(t, 1, task.UserID)
	assert.Equal(t, "Read chapter 4", task.Title)
	assert.False(t, task.Completed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskToggleNotOwnedIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTaskRepository(db)

	// task 12 belongs to user 2, user 1 matches zero rows
	mock.ExpectExec("UPDATE tasks").
		WithArgs(12, 1).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Toggle(12, 1)

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskToggleFlipsOwnRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTaskRepository(db)

	mock.ExpectExec("UPDATE tasks").
		WithArgs(12, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Toggle(12, 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskDeleteNotOwnedIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTaskRepository(db)

	mock.ExpectExec("DELETE FROM tasks").
		WithArgs(12, 1).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(12, 1)

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRecentByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTaskRepository(db)

	created := time.Now()
	mock.ExpectQuery("SELECT id, user_id, title, completed, created_at").
		WithArgs(1, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "completed", "created_at"}).
			AddRow(2, 1, "Newer task", false, created).
			AddRow(1, 1, "Older task", true, created.Add(-time.Hour)))

	tasks, err := repo.RecentByUser(1, 10)

	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Newer task", tasks[0].Title)
	assert.True(t, tasks[1].Completed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
