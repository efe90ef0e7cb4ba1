package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un material del inventario de obra.
// CurrentStock es un contador denormalizado: es siempre la suma de los deltas
// de las transacciones aplicadas (la única vía de mutación es el ledger;
// la edición administrativa vía Update es un camino aparte que lo puede
// desincronizar del histórico).
type Item struct {
	ID            int64
	ItemCode      string // código único legible (ej. CEM-001)
	Name          string
	Description   string
	CategoryID    *int64
	SupplierID    *int64
	Unit          string // unidad de medida (saco, m3, unidad...)
	CurrentStock  int64  // invariante: nunca negativo
	MinStockLevel int64
	MaxStockLevel int64
	UnitCost      decimal.Decimal
	Location      string
	Barcode       *string // único si está presente
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsLowStock indica si el material está en o por debajo de su nivel mínimo.
func (i *Item) IsLowStock() bool {
	return i.CurrentStock <= i.MinStockLevel
}
