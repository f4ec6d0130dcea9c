package store

import (
	"context"
	"database/sql"

	"github.com/daybook-app/daybook-backend/internal/models"
)

// CreateUser inserts a new user and returns it with the assigned ID.
// Returns ErrDuplicate when the email or username is already taken.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (email, username, hashed_password)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, user.Email, user.Username, user.Password).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return models.User{}, mapError(err)
	}
	return user, nil
}

// GetUserByEmail returns the user with the given email, or ErrNotFound.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return s.getUser(ctx, `
		SELECT id, email, username, hashed_password, created_at
		FROM users WHERE email = $1
	`, email)
}

// GetUserByUsername returns the user with the given username, or ErrNotFound.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	return s.getUser(ctx, `
		SELECT id, email, username, hashed_password, created_at
		FROM users WHERE username = $1
	`, username)
}

func (s *Store) getUser(ctx context.Context, query, arg string) (models.User, error) {
	var user models.User
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Email, &user.Username, &user.Password, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// UpdateUser writes the user's email, username and password hash.
// Returns ErrNotFound when the ID does not exist and ErrDuplicate when the
// new email or username collides with another account.
func (s *Store) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE users SET email = $1, username = $2, hashed_password = $3
		WHERE id = $4
	`, user.Email, user.Username, user.Password, user.ID)
	if err != nil {
		return models.User{}, mapError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.User{}, err
	}
	if affected == 0 {
		return models.User{}, ErrNotFound
	}
	return user, nil
}
