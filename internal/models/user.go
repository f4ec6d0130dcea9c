package models

import "time"

type User struct {
	ID        int64     `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Username  string    `json:"username" db:"username"`
	Password  string    `json:"-" db:"hashed_password"` // Don't return password hash in JSON
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
