package postgres

import (
	"context"
	"fmt"

	"github.com/smart-jordan/internal/domain"
	"github.com/smart-jordan/internal/domain/repository"
	"go.uber.org/zap"
)

type statusRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewStatusRepository создает новый экземпляр status repository
func NewStatusRepository(db *DB, logger *zap.Logger) repository.StatusRepository {
	return &statusRepository{
		db:     db,
		logger: logger,
	}
}

// Create сохраняет отметку клиента
func (r *statusRepository) Create(ctx context.Context, check *domain.StatusCheck) error {
	query := `
		INSERT INTO status_checks (id, client_name, timestamp)
		VALUES (:id, :client_name, :timestamp)
	`

	if _, err := r.db.NamedExecContext(ctx, query, check); err != nil {
		r.logger.Error("failed to insert status check", zap.Error(err))
		return fmt.Errorf("insert status check: %w", err)
	}

	return nil
}

// List возвращает последние отметки, от новых к старым
func (r *statusRepository) List(ctx context.Context, limit int) ([]domain.StatusCheck, error) {
	query := `
		SELECT id, client_name, timestamp
		FROM status_checks
		ORDER BY timestamp DESC
		LIMIT $1
	`

	checks := make([]domain.StatusCheck, 0)
	if err := r.db.SelectContext(ctx, &checks, query, limit); err != nil {
		r.logger.Error("failed to list status checks", zap.Error(err))
		return nil, fmt.Errorf("list status checks: %w", err)
	}

	return checks, nil
}
