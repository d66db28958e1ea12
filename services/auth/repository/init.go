package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/superblog/auth/internal/pkg/database"
	"github.com/superblog/auth/internal/pkg/models"
)

// AuthRepo implements the auth repository against Postgres and Redis
type AuthRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewAuthRepo creates a new auth repository
func NewAuthRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *AuthRepo {
	return &AuthRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
