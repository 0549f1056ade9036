package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"github.com/smart-jordan/internal/domain/repository"
	"github.com/smart-jordan/internal/repository/postgres"
	"go.uber.org/zap"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewStatusRepositoryForTest creates a status repository with test database and logger
func NewStatusRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.StatusRepository {
	pgDB := NewDBForTest(db, logger)
	return postgres.NewStatusRepository(pgDB, logger)
}
