package repository

import (
	"github.com/jmoiron/sqlx"
)

// AccessRepo implements the access repository against Postgres
type AccessRepo struct {
	db *sqlx.DB
}

// NewAccessRepo creates a new access repository
func NewAccessRepo(db *sqlx.DB) *AccessRepo {
	return &AccessRepo{
		db: db,
	}
}
