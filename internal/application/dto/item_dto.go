package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/construstock/internal/domain/entity"
)

// CreateItemRequest body para POST /api/inventory.
type CreateItemRequest struct {
	ItemCode      string          `json:"item_code"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	CategoryID    *int64          `json:"category_id"`
	SupplierID    *int64          `json:"supplier_id"`
	Unit          string          `json:"unit"`
	CurrentStock  int64           `json:"current_stock"`
	MinStockLevel int64           `json:"min_stock_level"`
	MaxStockLevel int64           `json:"max_stock_level"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	Location      string          `json:"location"`
	Barcode       *string         `json:"barcode"`
}

// UpdateItemRequest body para PUT /api/inventory/:id.
// CurrentStock aquí es la vía administrativa que sobreescribe el contador
// directamente, al margen del ledger.
type UpdateItemRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	CategoryID    *int64          `json:"category_id"`
	SupplierID    *int64          `json:"supplier_id"`
	Unit          string          `json:"unit"`
	CurrentStock  int64           `json:"current_stock"`
	MinStockLevel int64           `json:"min_stock_level"`
	MaxStockLevel int64           `json:"max_stock_level"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	Location      string          `json:"location"`
	Barcode       *string         `json:"barcode"`
}

// ItemResponse representación de un material en respuestas.
type ItemResponse struct {
	ID            int64           `json:"id"`
	ItemCode      string          `json:"item_code"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	CategoryID    *int64          `json:"category_id"`
	SupplierID    *int64          `json:"supplier_id"`
	Unit          string          `json:"unit"`
	CurrentStock  int64           `json:"current_stock"`
	MinStockLevel int64           `json:"min_stock_level"`
	MaxStockLevel int64           `json:"max_stock_level"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	Location      string          `json:"location"`
	Barcode       *string         `json:"barcode"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ItemListResponse listado paginado de materiales.
type ItemListResponse struct {
	Items      []ItemResponse `json:"items"`
	Pagination Pagination     `json:"pagination"`
}

// ToItemResponse mapea la entidad al DTO de respuesta.
func ToItemResponse(i *entity.Item) ItemResponse {
	return ItemResponse{
		ID:            i.ID,
		ItemCode:      i.ItemCode,
		Name:          i.Name,
		Description:   i.Description,
		CategoryID:    i.CategoryID,
		SupplierID:    i.SupplierID,
		Unit:          i.Unit,
		CurrentStock:  i.CurrentStock,
		MinStockLevel: i.MinStockLevel,
		MaxStockLevel: i.MaxStockLevel,
		UnitCost:      i.UnitCost,
		Location:      i.Location,
		Barcode:       i.Barcode,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}
