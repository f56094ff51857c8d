package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/smartsales/smartsales-backend/internal/logger"
	"github.com/smartsales/smartsales-backend/internal/types"
)

type ProductoRepo interface {
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Producto, error)
	GetOtherIDs(ctx context.Context, tx *gorm.DB, excludeID uint) ([]uint, error)
}

type productoRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProductoRepo(db *gorm.DB, baseLog *logger.Logger) ProductoRepo {
	repoLog := baseLog.With("repo", "ProductoRepo")
	return &productoRepo{db: db, log: repoLog}
}

func (r *productoRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Producto, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Producto
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *productoRepo) GetOtherIDs(ctx context.Context, tx *gorm.DB, excludeID uint) ([]uint, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var ids []uint
	if err := transaction.WithContext(ctx).
		Model(&types.Producto{}).
		Where("id <> ?", excludeID).
		Order("id ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
