// Package store is the data access layer over PostgreSQL. Handlers receive
// a *Store explicitly instead of reaching for a package-level connection, so
// every query is scoped to the request's context.
package store

import "database/sql"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}
