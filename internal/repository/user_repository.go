package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"studycoach/internal/entity"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Register validates the credentials, hashes the password and inserts the user.
func (r *UserRepository) Register(username, password string) (*entity.User, error) {
	// characters, not bytes, so multibyte usernames are measured correctly
	if utf8.RuneCountInString(username) < 3 {
		return nil, &ValidationError{"Username must be at least 3 characters."}
	}
	if utf8.RuneCountInString(password) < 6 {
		return nil, &ValidationError{"Password must be at least 6 characters."}
	}

	var exists bool
	err := r.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)
	`, username).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("checking username: %w", err)
	}
	if exists {
		return nil, &ValidationError{"Username already exists."}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &entity.User{Username: username, PasswordHash: string(hash)}
	err = r.db.QueryRow(`
		INSERT INTO users (username, password_hash, created_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, username, string(hash), time.Now()).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting user: %w", err)
	}

	return user, nil
}

// Login returns the user when the credentials match. Unknown username and
// wrong password produce the same error.
func (r *UserRepository) Login(username, password string) (*entity.User, error) {
	var user entity.User
	err := r.db.QueryRow(`
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = $1
	`, username).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, &AuthError{}
	}
	if err != nil {
		return nil, fmt.Errorf("loading user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, &AuthError{}
	}

	return &user, nil
}

func (r *UserRepository) GetByID(id int) (*entity.User, error) {
	var user entity.User
	err := r.db.QueryRow(`
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE id = $1
	`, id).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, &NotFoundError{"user"}
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}
