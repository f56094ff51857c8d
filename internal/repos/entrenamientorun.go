package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/smartsales/smartsales-backend/internal/logger"
	"github.com/smartsales/smartsales-backend/internal/types"
)

type EntrenamientoRunRepo interface {
	Create(ctx context.Context, tx *gorm.DB, run *types.EntrenamientoRun) error
	GetLatest(ctx context.Context, tx *gorm.DB, limit int) ([]*types.EntrenamientoRun, error)
}

type entrenamientoRunRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEntrenamientoRunRepo(db *gorm.DB, baseLog *logger.Logger) EntrenamientoRunRepo {
	repoLog := baseLog.With("repo", "EntrenamientoRunRepo")
	return &entrenamientoRunRepo{db: db, log: repoLog}
}

func (r *entrenamientoRunRepo) Create(ctx context.Context, tx *gorm.DB, run *types.EntrenamientoRun) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if run == nil {
		return nil
	}
	if err := transaction.WithContext(ctx).Create(run).Error; err != nil {
		return err
	}
	return nil
}

func (r *entrenamientoRunRepo) GetLatest(ctx context.Context, tx *gorm.DB, limit int) ([]*types.EntrenamientoRun, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if limit <= 0 {
		limit = 10
	}
	var results []*types.EntrenamientoRun
	if err := transaction.WithContext(ctx).
		Order("started_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
