package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de proyecto.
const (
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"
	ProjectStatusOnHold    = "on_hold"
)

// Project es una obra a la que se asigna inventario.
// No puede eliminarse mientras tenga asignaciones (guarda referencial).
type Project struct {
	ID          int64
	Name        string
	Description string
	StartDate   *time.Time
	EndDate     *time.Time
	Status      string
	Budget      *decimal.Decimal
	CreatedAt   time.Time
}
