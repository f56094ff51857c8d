package repos

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/smartsales/smartsales-backend/internal/logger"
)

// VentaLine is a flattened sale line-item as read for the feature pipelines.
// SubcategoriaID reflects the product's subcategory at query time, not at
// sale time.
type VentaLine struct {
	VentaID        uint
	ProductoID     uint
	SubcategoriaID uint
	Cantidad       uint
	Fecha          time.Time
}

type DetalleVentaRepo interface {
	GetAllLines(ctx context.Context, tx *gorm.DB) ([]VentaLine, error)
	SumCantidadBySubcategoria(ctx context.Context, tx *gorm.DB, subcategoriaID uint, from, to time.Time) (int64, error)
	SumCantidadByProducto(ctx context.Context, tx *gorm.DB, productoID uint, since time.Time) (int64, error)
}

type detalleVentaRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDetalleVentaRepo(db *gorm.DB, baseLog *logger.Logger) DetalleVentaRepo {
	repoLog := baseLog.With("repo", "DetalleVentaRepo")
	return &detalleVentaRepo{db: db, log: repoLog}
}

func (r *detalleVentaRepo) GetAllLines(ctx context.Context, tx *gorm.DB) ([]VentaLine, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []VentaLine
	if err := transaction.WithContext(ctx).
		Table("detalle_venta").
		Select("detalle_venta.venta_id AS venta_id, detalle_venta.producto_id AS producto_id, producto.subcategoria_id AS subcategoria_id, detalle_venta.cantidad AS cantidad, venta.fecha AS fecha").
		Joins("JOIN venta ON venta.id = detalle_venta.venta_id").
		Joins("JOIN producto ON producto.id = detalle_venta.producto_id").
		Order("venta.fecha ASC, detalle_venta.id ASC").
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *detalleVentaRepo) SumCantidadBySubcategoria(ctx context.Context, tx *gorm.DB, subcategoriaID uint, from, to time.Time) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var total int64
	if err := transaction.WithContext(ctx).
		Table("detalle_venta").
		Select("COALESCE(SUM(detalle_venta.cantidad), 0)").
		Joins("JOIN venta ON venta.id = detalle_venta.venta_id").
		Joins("JOIN producto ON producto.id = detalle_venta.producto_id").
		Where("producto.subcategoria_id = ? AND venta.fecha >= ? AND venta.fecha < ?", subcategoriaID, from, to).
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *detalleVentaRepo) SumCantidadByProducto(ctx context.Context, tx *gorm.DB, productoID uint, since time.Time) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var total int64
	if err := transaction.WithContext(ctx).
		Table("detalle_venta").
		Select("COALESCE(SUM(detalle_venta.cantidad), 0)").
		Joins("JOIN venta ON venta.id = detalle_venta.venta_id").
		Where("detalle_venta.producto_id = ? AND venta.fecha >= ?", productoID, since).
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
