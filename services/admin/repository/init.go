package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/superblog/auth/internal/pkg/database"
	"github.com/superblog/auth/internal/pkg/models"
)

// AdminRepo implements the admin repository against Postgres and Redis
type AdminRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewAdminRepo creates a new admin repository
func NewAdminRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *AdminRepo {
	return &AdminRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
