package types

import (
	"time"
)

type Venta struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Fecha     time.Time `gorm:"not null;index" json:"fecha"`
	Total     float64   `gorm:"not null;default:0" json:"total"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Venta) TableName() string { return "venta" }

// DetalleVenta is one sale line-item. Every line belongs to exactly one
// venta and one producto; the subcategory linkage is resolved through the
// product's current assignment at query time.
type DetalleVenta struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	VentaID        uint      `gorm:"not null;index" json:"venta_id"`
	Venta          *Venta    `gorm:"constraint:OnDelete:CASCADE;foreignKey:VentaID;references:ID" json:"venta,omitempty"`
	ProductoID     uint      `gorm:"not null;index" json:"producto_id"`
	Producto       *Producto `gorm:"constraint:OnDelete:RESTRICT;foreignKey:ProductoID;references:ID" json:"producto,omitempty"`
	Cantidad       uint      `gorm:"not null" json:"cantidad"`
	PrecioUnitario float64   `gorm:"not null;default:0" json:"precio_unitario"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null" json:"updated_at"`
}

func (DetalleVenta) TableName() string { return "detalle_venta" }
