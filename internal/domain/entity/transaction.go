package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción de stock.
const (
	TransactionTypeIn         = "in"         // entrada
	TransactionTypeOut        = "out"        // salida
	TransactionTypeTransfer   = "transfer"   // traslado (no afecta el contador de stock)
	TransactionTypeAdjustment = "adjustment" // ajuste (suma)
)

// ValidTransactionType reporta si s es uno de los cuatro tipos del ledger.
func ValidTransactionType(s string) bool {
	switch s {
	case TransactionTypeIn, TransactionTypeOut, TransactionTypeTransfer, TransactionTypeAdjustment:
		return true
	}
	return false
}

// StockDelta devuelve el delta firmado que el tipo aplica sobre current_stock.
// La cantidad siempre se guarda como magnitud; el signo lo da el tipo:
// in=+q, out=-q, adjustment=+q, transfer=0 (el traslado se registra pero no
// mueve el contador; comportamiento heredado que los tests fijan).
func StockDelta(txType string, quantity int64) int64 {
	switch txType {
	case TransactionTypeIn, TransactionTypeAdjustment:
		return quantity
	case TransactionTypeOut:
		return -quantity
	}
	return 0
}

// Transaction es un registro inmutable del ledger: cada mutación de stock
// corresponde exactamente a una transacción persistida (append-only).
type Transaction struct {
	ID              int64
	Type            string
	InventoryID     int64
	Quantity        int64 // magnitud, siempre positiva
	UnitCost        *decimal.Decimal
	TotalCost       *decimal.Decimal // quantity × unit_cost, nil si no hay costo
	ReferenceNumber string
	Notes           string
	ProjectID       *int64 // presente cuando la transacción nace de una asignación
	UserID          *int64 // identidad que originó el movimiento
	TransactionDate time.Time

	// Campos de solo lectura resueltos por JOIN en listados.
	ItemName    string
	ItemCode    string
	ProjectName string
	Username    string
}
