package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/construstock/internal/domain/repository"
)

// DashboardResponse tablero principal: métricas + transacciones recientes.
type DashboardResponse struct {
	Overview           DashboardOverview     `json:"overview"`
	RecentTransactions []TransactionResponse `json:"recent_transactions"`
}

// DashboardOverview métricas agregadas del tablero.
type DashboardOverview struct {
	TotalItems     int             `json:"total_items"`
	LowStockItems  int             `json:"low_stock_items"`
	TotalSuppliers int             `json:"total_suppliers"`
	ActiveProjects int             `json:"active_projects"`
	TotalValue     decimal.Decimal `json:"total_value"`
}

// InventoryValueItem una fila del reporte de valor de inventario.
type InventoryValueItem struct {
	ItemResponse
	CategoryName string          `json:"category_name,omitempty"`
	SupplierName string          `json:"supplier_name,omitempty"`
	TotalValue   decimal.Decimal `json:"total_value"`
}

// InventoryValueResponse reporte de valor de inventario.
type InventoryValueResponse struct {
	Items      []InventoryValueItem `json:"items"`
	TotalValue decimal.Decimal      `json:"total_value"`
	ItemCount  int                  `json:"item_count"`
}

// CategoryWiseRow agregado por categoría.
type CategoryWiseRow struct {
	CategoryName string          `json:"category_name"`
	ItemCount    int             `json:"item_count"`
	TotalStock   int64           `json:"total_stock"`
	TotalValue   decimal.Decimal `json:"total_value"`
	AvgUnitCost  decimal.Decimal `json:"avg_unit_cost"`
}

// SupplierPerformanceRow agregado por proveedor.
type SupplierPerformanceRow struct {
	SupplierName  string          `json:"supplier_name"`
	ContactPerson string          `json:"contact_person,omitempty"`
	Email         string          `json:"email,omitempty"`
	Phone         string          `json:"phone,omitempty"`
	ItemCount     int             `json:"item_count"`
	TotalValue    decimal.Decimal `json:"total_value"`
	AvgUnitCost   decimal.Decimal `json:"avg_unit_cost"`
}

// ProjectAllocationRow una fila del reporte de asignaciones.
type ProjectAllocationRow struct {
	ProjectName       string          `json:"project_name"`
	ProjectStatus     string          `json:"project_status"`
	AllocatedQuantity int64           `json:"allocated_quantity"`
	AllocatedDate     time.Time       `json:"allocated_date"`
	AllocationStatus  string          `json:"allocation_status"`
	ItemName          string          `json:"item_name"`
	ItemCode          string          `json:"item_code"`
	Unit              string          `json:"unit"`
	UnitCost          decimal.Decimal `json:"unit_cost"`
	AllocatedValue    decimal.Decimal `json:"allocated_value"`
}

// ProjectAllocationsResponse reporte de asignaciones con totales.
type ProjectAllocationsResponse struct {
	Allocations         []ProjectAllocationRow `json:"allocations"`
	TotalAllocatedValue decimal.Decimal        `json:"total_allocated_value"`
	AllocationCount     int                    `json:"allocation_count"`
}

// MonthlySummaryRow agregado mensual por tipo de transacción.
type MonthlySummaryRow struct {
	Month            string          `json:"month"`
	Type             string          `json:"type"`
	TransactionCount int             `json:"transaction_count"`
	TotalQuantity    int64           `json:"total_quantity"`
	TotalCost        decimal.Decimal `json:"total_cost"`
}

// TransactionSummaryResponse totales de entradas/salidas del período.
type TransactionSummaryResponse struct {
	TotalTransactions int             `json:"total_transactions"`
	TotalIn           int64           `json:"total_in"`
	TotalOut          int64           `json:"total_out"`
	TotalCostIn       decimal.Decimal `json:"total_cost_in"`
	TotalCostOut      decimal.Decimal `json:"total_cost_out"`
}

// FromTransactionSummary mapea el resultado del repositorio al DTO.
func FromTransactionSummary(s *repository.TransactionSummary) TransactionSummaryResponse {
	return TransactionSummaryResponse{
		TotalTransactions: s.TotalTransactions,
		TotalIn:           s.TotalIn,
		TotalOut:          s.TotalOut,
		TotalCostIn:       s.TotalCostIn,
		TotalCostOut:      s.TotalCostOut,
	}
}
