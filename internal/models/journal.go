package models

// Journal represents a private journal entry owned by a single user.
// Ownership is enforced at the data access layer: every read and write
// carries the owner's user ID.
type Journal struct {
	ID           int64  `json:"id" db:"id"`
	UserID       int64  `json:"user_id" db:"user_id"`
	Title        string `json:"title" db:"title"`
	Content      string `json:"content" db:"content"`
	Category     string `json:"category" db:"category"`
	CreatedDate  Date   `json:"created_date" db:"created_date"`
	DueDate      Date   `json:"due_date" db:"due_date"` // optional, null when unset
	DateOfUpdate Date   `json:"date_of_update" db:"date_of_update"`
	Archive      bool   `json:"archive" db:"archive"`
}
