package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/construstock/internal/domain/entity"
)

// DashboardOverview métricas agregadas para el tablero principal.
type DashboardOverview struct {
	TotalItems     int
	LowStockItems  int
	TotalSuppliers int
	ActiveProjects int
	TotalValue     decimal.Decimal // SUM(current_stock * unit_cost)
}

// InventoryValueRow una fila del reporte de valor de inventario.
type InventoryValueRow struct {
	Item         entity.Item
	CategoryName string
	SupplierName string
	TotalValue   decimal.Decimal // current_stock * unit_cost
}

// CategoryWiseRow agregado de inventario por categoría.
type CategoryWiseRow struct {
	CategoryName string
	ItemCount    int
	TotalStock   int64
	TotalValue   decimal.Decimal
	AvgUnitCost  decimal.Decimal
}

// SupplierPerformanceRow agregado de inventario por proveedor.
type SupplierPerformanceRow struct {
	SupplierName  string
	ContactPerson string
	Email         string
	Phone         string
	ItemCount     int
	TotalValue    decimal.Decimal
	AvgUnitCost   decimal.Decimal
}

// ProjectAllocationRow una fila del reporte de asignaciones a proyecto.
type ProjectAllocationRow struct {
	ProjectName       string
	ProjectStatus     string
	AllocatedQuantity int64
	AllocatedDate     time.Time
	AllocationStatus  string
	ItemName          string
	ItemCode          string
	Unit              string
	UnitCost          decimal.Decimal
	AllocatedValue    decimal.Decimal // allocated_quantity * unit_cost
}

// MonthlySummaryRow agregado mensual de transacciones por tipo.
type MonthlySummaryRow struct {
	Month            string // "01".."12"
	Type             string
	TransactionCount int
	TotalQuantity    int64
	TotalCost        decimal.Decimal
}

// TransactionSummary totales de entradas y salidas en un rango de fechas.
type TransactionSummary struct {
	TotalTransactions int
	TotalIn           int64
	TotalOut          int64
	TotalCostIn       decimal.Decimal
	TotalCostOut      decimal.Decimal
}

// ReportRepository consultas de solo lectura para reportes y tablero.
type ReportRepository interface {
	GetDashboardOverview(ctx context.Context) (*DashboardOverview, error)
	RecentTransactions(ctx context.Context, limit int) ([]*entity.Transaction, error)
	InventoryValue(ctx context.Context, categoryID *int64) ([]InventoryValueRow, error)
	StockMovement(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)
	CategoryWise(ctx context.Context) ([]CategoryWiseRow, error)
	SupplierPerformance(ctx context.Context) ([]SupplierPerformanceRow, error)
	ProjectAllocations(ctx context.Context, projectID *int64) ([]ProjectAllocationRow, error)
	MonthlySummary(ctx context.Context, year int) ([]MonthlySummaryRow, error)
	TransactionSummary(ctx context.Context, startDate, endDate *time.Time) (*TransactionSummary, error)
}
