package types

import (
	"time"
)

type Categoria struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nombre    string    `gorm:"size:100;not null" json:"nombre"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Categoria) TableName() string { return "categoria" }

type Subcategoria struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Nombre      string     `gorm:"size:100;not null" json:"nombre"`
	CategoriaID uint       `gorm:"not null;index" json:"categoria_id"`
	Categoria   *Categoria `gorm:"constraint:OnDelete:CASCADE;foreignKey:CategoriaID;references:ID" json:"categoria,omitempty"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updated_at"`
}

func (Subcategoria) TableName() string { return "subcategoria" }

type Producto struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	Nombre         string        `gorm:"size:200;not null" json:"nombre"`
	Precio         float64       `gorm:"not null" json:"precio"`
	Stock          int           `gorm:"not null;default:0" json:"stock"`
	SubcategoriaID uint          `gorm:"not null;index" json:"subcategoria_id"`
	Subcategoria   *Subcategoria `gorm:"constraint:OnDelete:RESTRICT;foreignKey:SubcategoriaID;references:ID" json:"subcategoria,omitempty"`
	CreatedAt      time.Time     `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time     `gorm:"not null" json:"updated_at"`
}

func (Producto) TableName() string { return "producto" }
