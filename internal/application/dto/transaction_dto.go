package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/construstock/internal/domain/entity"
)

// CreateTransactionRequest body para POST /api/transactions.
// quantity es siempre magnitud positiva; el signo lo determina type.
type CreateTransactionRequest struct {
	Type            string           `json:"type"`
	InventoryID     int64            `json:"inventory_id"`
	Quantity        int64            `json:"quantity"`
	UnitCost        *decimal.Decimal `json:"unit_cost"`
	ReferenceNumber string           `json:"reference_number"`
	Notes           string           `json:"notes"`
	ProjectID       *int64           `json:"project_id"`
}

// TransactionResponse representación de una transacción del ledger.
type TransactionResponse struct {
	ID              int64            `json:"id"`
	Type            string           `json:"type"`
	InventoryID     int64            `json:"inventory_id"`
	Quantity        int64            `json:"quantity"`
	UnitCost        *decimal.Decimal `json:"unit_cost"`
	TotalCost       *decimal.Decimal `json:"total_cost"`
	ReferenceNumber string           `json:"reference_number,omitempty"`
	Notes           string           `json:"notes,omitempty"`
	ProjectID       *int64           `json:"project_id"`
	UserID          *int64           `json:"user_id"`
	TransactionDate time.Time        `json:"transaction_date"`
	ItemName        string           `json:"item_name,omitempty"`
	ItemCode        string           `json:"item_code,omitempty"`
	ProjectName     string           `json:"project_name,omitempty"`
	Username        string           `json:"username,omitempty"`
}

// TransactionListResponse listado paginado del histórico.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   Pagination            `json:"pagination"`
}

// ToTransactionResponse mapea la entidad al DTO de respuesta.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              t.ID,
		Type:            t.Type,
		InventoryID:     t.InventoryID,
		Quantity:        t.Quantity,
		UnitCost:        t.UnitCost,
		TotalCost:       t.TotalCost,
		ReferenceNumber: t.ReferenceNumber,
		Notes:           t.Notes,
		ProjectID:       t.ProjectID,
		UserID:          t.UserID,
		TransactionDate: t.TransactionDate,
		ItemName:        t.ItemName,
		ItemCode:        t.ItemCode,
		ProjectName:     t.ProjectName,
		Username:        t.Username,
	}
}
