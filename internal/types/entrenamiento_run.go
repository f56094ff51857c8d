package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EntrenamientoRun is the audit row written once per training invocation.
// Resultados holds the tagged per-model outcome list as JSON.
type EntrenamientoRun struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	StartedAt  time.Time      `gorm:"not null" json:"started_at"`
	FinishedAt time.Time      `gorm:"not null" json:"finished_at"`
	Resultados datatypes.JSON `gorm:"type:jsonb" json:"resultados"`
	CreatedAt  time.Time      `gorm:"not null" json:"created_at"`
}

func (EntrenamientoRun) TableName() string { return "entrenamiento_run" }
