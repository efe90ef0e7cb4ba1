package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/construstock/internal/application/dto"
	"github.com/tu-usuario/construstock/internal/domain/repository"
)

// InventoryValuePDFGenerator puerto para exportar el reporte de valor de
// inventario como PDF (implementado en infrastructure/pdf con Maroto).
type InventoryValuePDFGenerator interface {
	GenerateInventoryValuePDF(ctx context.Context, report *dto.InventoryValueResponse) ([]byte, error)
}

// ReportUseCase reportes de solo lectura: tablero, valor de inventario,
// movimientos, agregados por categoría/proveedor y resumen mensual.
type ReportUseCase struct {
	repo repository.ReportRepository
	pdf  InventoryValuePDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.ReportRepository, pdf InventoryValuePDFGenerator) *ReportUseCase {
	return &ReportUseCase{repo: repo, pdf: pdf}
}

// Dashboard métricas del tablero + últimas 10 transacciones.
func (uc *ReportUseCase) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	overview, err := uc.repo.GetDashboardOverview(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := uc.repo.RecentTransactions(ctx, 10)
	if err != nil {
		return nil, err
	}
	txs := make([]dto.TransactionResponse, 0, len(recent))
	for _, t := range recent {
		txs = append(txs, dto.ToTransactionResponse(t))
	}
	return &dto.DashboardResponse{
		Overview: dto.DashboardOverview{
			TotalItems:     overview.TotalItems,
			LowStockItems:  overview.LowStockItems,
			TotalSuppliers: overview.TotalSuppliers,
			ActiveProjects: overview.ActiveProjects,
			TotalValue:     overview.TotalValue,
		},
		RecentTransactions: txs,
	}, nil
}

// InventoryValue valor del inventario (current_stock × unit_cost por material),
// ordenado de mayor a menor valor.
func (uc *ReportUseCase) InventoryValue(ctx context.Context, categoryID *int64) (*dto.InventoryValueResponse, error) {
	rows, err := uc.repo.InventoryValue(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryValueItem, 0, len(rows))
	total := decimal.Zero
	for _, r := range rows {
		items = append(items, dto.InventoryValueItem{
			ItemResponse: dto.ToItemResponse(&r.Item),
			CategoryName: r.CategoryName,
			SupplierName: r.SupplierName,
			TotalValue:   r.TotalValue,
		})
		total = total.Add(r.TotalValue)
	}
	return &dto.InventoryValueResponse{
		Items:      items,
		TotalValue: total,
		ItemCount:  len(items),
	}, nil
}

// InventoryValuePDF exporta el reporte de valor de inventario como PDF.
func (uc *ReportUseCase) InventoryValuePDF(ctx context.Context, categoryID *int64) ([]byte, error) {
	report, err := uc.InventoryValue(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateInventoryValuePDF(ctx, report)
}

// StockMovement histórico de movimientos con filtros de fecha y material.
func (uc *ReportUseCase) StockMovement(ctx context.Context, filter repository.TransactionFilter) ([]dto.TransactionResponse, error) {
	list, err := uc.repo.StockMovement(ctx, filter)
	if err != nil {
		return nil, err
	}
	txs := make([]dto.TransactionResponse, 0, len(list))
	for _, t := range list {
		txs = append(txs, dto.ToTransactionResponse(t))
	}
	return txs, nil
}

// CategoryWise inventario agregado por categoría.
func (uc *ReportUseCase) CategoryWise(ctx context.Context) ([]dto.CategoryWiseRow, error) {
	rows, err := uc.repo.CategoryWise(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryWiseRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.CategoryWiseRow{
			CategoryName: r.CategoryName,
			ItemCount:    r.ItemCount,
			TotalStock:   r.TotalStock,
			TotalValue:   r.TotalValue,
			AvgUnitCost:  r.AvgUnitCost,
		})
	}
	return out, nil
}

// SupplierPerformance inventario agregado por proveedor.
func (uc *ReportUseCase) SupplierPerformance(ctx context.Context) ([]dto.SupplierPerformanceRow, error) {
	rows, err := uc.repo.SupplierPerformance(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierPerformanceRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SupplierPerformanceRow{
			SupplierName:  r.SupplierName,
			ContactPerson: r.ContactPerson,
			Email:         r.Email,
			Phone:         r.Phone,
			ItemCount:     r.ItemCount,
			TotalValue:    r.TotalValue,
			AvgUnitCost:   r.AvgUnitCost,
		})
	}
	return out, nil
}

// ProjectAllocations reporte de asignaciones con valor total.
func (uc *ReportUseCase) ProjectAllocations(ctx context.Context, projectID *int64) (*dto.ProjectAllocationsResponse, error) {
	rows, err := uc.repo.ProjectAllocations(ctx, projectID)
	if err != nil {
		return nil, err
	}
	allocs := make([]dto.ProjectAllocationRow, 0, len(rows))
	total := decimal.Zero
	for _, r := range rows {
		allocs = append(allocs, dto.ProjectAllocationRow{
			ProjectName:       r.ProjectName,
			ProjectStatus:     r.ProjectStatus,
			AllocatedQuantity: r.AllocatedQuantity,
			AllocatedDate:     r.AllocatedDate,
			AllocationStatus:  r.AllocationStatus,
			ItemName:          r.ItemName,
			ItemCode:          r.ItemCode,
			Unit:              r.Unit,
			UnitCost:          r.UnitCost,
			AllocatedValue:    r.AllocatedValue,
		})
		total = total.Add(r.AllocatedValue)
	}
	return &dto.ProjectAllocationsResponse{
		Allocations:         allocs,
		TotalAllocatedValue: total,
		AllocationCount:     len(allocs),
	}, nil
}

// MonthlySummary resumen mensual de transacciones por tipo para un año.
func (uc *ReportUseCase) MonthlySummary(ctx context.Context, year int) ([]dto.MonthlySummaryRow, error) {
	rows, err := uc.repo.MonthlySummary(ctx, year)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MonthlySummaryRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.MonthlySummaryRow{
			Month:            r.Month,
			Type:             r.Type,
			TransactionCount: r.TransactionCount,
			TotalQuantity:    r.TotalQuantity,
			TotalCost:        r.TotalCost,
		})
	}
	return out, nil
}

// TransactionSummary totales de entradas/salidas en un rango de fechas.
func (uc *ReportUseCase) TransactionSummary(ctx context.Context, start, end *time.Time) (*dto.TransactionSummaryResponse, error) {
	summary, err := uc.repo.TransactionSummary(ctx, start, end)
	if err != nil {
		return nil, err
	}
	out := dto.FromTransactionSummary(summary)
	return &out, nil
}
