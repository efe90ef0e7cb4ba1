package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/construstock/internal/domain/entity"
	"github.com/tu-usuario/construstock/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para reportes y tablero sobre PostgreSQL.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes. Pasar pool (solo lectura).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// GetDashboardOverview métricas agregadas del tablero en una sola consulta.
func (r *ReportRepo) GetDashboardOverview(ctx context.Context) (*repository.DashboardOverview, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM inventory),
			(SELECT COUNT(*) FROM inventory WHERE current_stock <= min_stock_level),
			(SELECT COUNT(*) FROM suppliers),
			(SELECT COUNT(*) FROM projects WHERE status = 'active'),
			(SELECT COALESCE(SUM(current_stock * unit_cost), 0) FROM inventory)`
	var o repository.DashboardOverview
	err := r.q.QueryRow(ctx, query).Scan(
		&o.TotalItems, &o.LowStockItems, &o.TotalSuppliers, &o.ActiveProjects, &o.TotalValue,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard overview: %w", err)
	}
	return &o, nil
}

// RecentTransactions últimas transacciones del ledger, más recientes primero.
func (r *ReportRepo) RecentTransactions(ctx context.Context, limit int) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + transactionJoins + `
		ORDER BY t.transaction_date DESC, t.id DESC LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(
			&t.ID, &t.Type, &t.InventoryID, &t.Quantity, &t.UnitCost, &t.TotalCost,
			&t.ReferenceNumber, &t.Notes, &t.ProjectID, &t.UserID, &t.TransactionDate,
			&t.ItemName, &t.ItemCode, &t.ProjectName, &t.Username,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// InventoryValue valor del inventario por material (current_stock × unit_cost),
// de mayor a menor valor.
func (r *ReportRepo) InventoryValue(ctx context.Context, categoryID *int64) ([]repository.InventoryValueRow, error) {
	query := `
		SELECT i.id, i.item_code, i.name, i.description, i.category_id, i.supplier_id, i.unit,
			i.current_stock, i.min_stock_level, i.max_stock_level, i.unit_cost, i.location,
			i.barcode, i.created_at, i.updated_at,
			COALESCE(c.name, ''), COALESCE(s.name, ''),
			(i.current_stock * i.unit_cost) AS total_value
		FROM inventory i
		LEFT JOIN categories c ON c.id = i.category_id
		LEFT JOIN suppliers s ON s.id = i.supplier_id`
	args := []any{}
	if categoryID != nil {
		query += ` WHERE i.category_id = $1`
		args = append(args, *categoryID)
	}
	query += ` ORDER BY total_value DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("inventory value: %w", err)
	}
	defer rows.Close()
	var list []repository.InventoryValueRow
	for rows.Next() {
		var row repository.InventoryValueRow
		i := &row.Item
		if err := rows.Scan(
			&i.ID, &i.ItemCode, &i.Name, &i.Description, &i.CategoryID, &i.SupplierID,
			&i.Unit, &i.CurrentStock, &i.MinStockLevel, &i.MaxStockLevel, &i.UnitCost,
			&i.Location, &i.Barcode, &i.CreatedAt, &i.UpdatedAt,
			&row.CategoryName, &row.SupplierName, &row.TotalValue,
		); err != nil {
			return nil, fmt.Errorf("scan inventory value: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// StockMovement histórico de movimientos con filtros de fecha y material,
// más recientes primero.
func (r *ReportRepo) StockMovement(ctx context.Context, filter repository.TransactionFilter) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + transactionJoins + ` WHERE 1=1`
	args := []any{}
	pos := 1
	query, args, _ = appendTransactionFilter(query, args, pos, filter)
	query += ` ORDER BY t.transaction_date DESC, t.id DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("stock movement: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(
			&t.ID, &t.Type, &t.InventoryID, &t.Quantity, &t.UnitCost, &t.TotalCost,
			&t.ReferenceNumber, &t.Notes, &t.ProjectID, &t.UserID, &t.TransactionDate,
			&t.ItemName, &t.ItemCode, &t.ProjectName, &t.Username,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// CategoryWise inventario agregado por categoría, de mayor a menor valor.
func (r *ReportRepo) CategoryWise(ctx context.Context) ([]repository.CategoryWiseRow, error) {
	query := `
		SELECT COALESCE(c.name, 'Sin categoría'),
			COUNT(i.id),
			COALESCE(SUM(i.current_stock), 0),
			COALESCE(SUM(i.current_stock * i.unit_cost), 0),
			COALESCE(AVG(i.unit_cost), 0)
		FROM inventory i
		LEFT JOIN categories c ON c.id = i.category_id
		GROUP BY c.name
		ORDER BY COALESCE(SUM(i.current_stock * i.unit_cost), 0) DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("category wise: %w", err)
	}
	defer rows.Close()
	var list []repository.CategoryWiseRow
	for rows.Next() {
		var row repository.CategoryWiseRow
		if err := rows.Scan(&row.CategoryName, &row.ItemCount, &row.TotalStock,
			&row.TotalValue, &row.AvgUnitCost); err != nil {
			return nil, fmt.Errorf("scan category wise: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// SupplierPerformance inventario agregado por proveedor, de mayor a menor valor.
func (r *ReportRepo) SupplierPerformance(ctx context.Context) ([]repository.SupplierPerformanceRow, error) {
	query := `
		SELECT s.name, s.contact_person, s.email, s.phone,
			COUNT(i.id),
			COALESCE(SUM(i.current_stock * i.unit_cost), 0),
			COALESCE(AVG(i.unit_cost), 0)
		FROM suppliers s
		LEFT JOIN inventory i ON i.supplier_id = s.id
		GROUP BY s.id, s.name, s.contact_person, s.email, s.phone
		ORDER BY COALESCE(SUM(i.current_stock * i.unit_cost), 0) DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("supplier performance: %w", err)
	}
	defer rows.Close()
	var list []repository.SupplierPerformanceRow
	for rows.Next() {
		var row repository.SupplierPerformanceRow
		if err := rows.Scan(&row.SupplierName, &row.ContactPerson, &row.Email, &row.Phone,
			&row.ItemCount, &row.TotalValue, &row.AvgUnitCost); err != nil {
			return nil, fmt.Errorf("scan supplier performance: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// ProjectAllocations asignaciones con su valor (cantidad × costo unitario),
// más recientes primero.
func (r *ReportRepo) ProjectAllocations(ctx context.Context, projectID *int64) ([]repository.ProjectAllocationRow, error) {
	query := `
		SELECT p.name, p.status, a.allocated_quantity, a.allocated_date, a.status,
			i.name, i.item_code, i.unit, i.unit_cost,
			(a.allocated_quantity * i.unit_cost) AS allocated_value
		FROM project_allocations a
		JOIN projects p ON p.id = a.project_id
		JOIN inventory i ON i.id = a.inventory_id`
	args := []any{}
	if projectID != nil {
		query += ` WHERE a.project_id = $1`
		args = append(args, *projectID)
	}
	query += ` ORDER BY a.allocated_date DESC, a.id DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("project allocations: %w", err)
	}
	defer rows.Close()
	var list []repository.ProjectAllocationRow
	for rows.Next() {
		var row repository.ProjectAllocationRow
		if err := rows.Scan(&row.ProjectName, &row.ProjectStatus, &row.AllocatedQuantity,
			&row.AllocatedDate, &row.AllocationStatus, &row.ItemName, &row.ItemCode,
			&row.Unit, &row.UnitCost, &row.AllocatedValue); err != nil {
			return nil, fmt.Errorf("scan project allocation: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// MonthlySummary agregado mensual de transacciones por tipo para un año.
func (r *ReportRepo) MonthlySummary(ctx context.Context, year int) ([]repository.MonthlySummaryRow, error) {
	query := `
		SELECT to_char(transaction_date, 'MM') AS month, type,
			COUNT(*), COALESCE(SUM(quantity), 0), COALESCE(SUM(total_cost), 0)
		FROM transactions
		WHERE EXTRACT(YEAR FROM transaction_date) = $1
		GROUP BY month, type
		ORDER BY month, type`
	rows, err := r.q.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("monthly summary: %w", err)
	}
	defer rows.Close()
	var list []repository.MonthlySummaryRow
	for rows.Next() {
		var row repository.MonthlySummaryRow
		if err := rows.Scan(&row.Month, &row.Type, &row.TransactionCount,
			&row.TotalQuantity, &row.TotalCost); err != nil {
			return nil, fmt.Errorf("scan monthly summary: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// TransactionSummary totales de entradas y salidas en un rango de fechas.
func (r *ReportRepo) TransactionSummary(ctx context.Context, startDate, endDate *time.Time) (*repository.TransactionSummary, error) {
	query := `
		SELECT COUNT(*),
			COALESCE(SUM(quantity) FILTER (WHERE type = 'in'), 0),
			COALESCE(SUM(quantity) FILTER (WHERE type = 'out'), 0),
			COALESCE(SUM(total_cost) FILTER (WHERE type = 'in'), 0),
			COALESCE(SUM(total_cost) FILTER (WHERE type = 'out'), 0)
		FROM transactions WHERE 1=1`
	args := []any{}
	pos := 1
	// Comparación por día calendario: end_date incluye el día completo.
	if startDate != nil {
		query += fmt.Sprintf(" AND transaction_date::date >= $%d::date", pos)
		args = append(args, *startDate)
		pos++
	}
	if endDate != nil {
		query += fmt.Sprintf(" AND transaction_date::date <= $%d::date", pos)
		args = append(args, *endDate)
	}
	var s repository.TransactionSummary
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&s.TotalTransactions, &s.TotalIn, &s.TotalOut, &s.TotalCostIn, &s.TotalCostOut,
	)
	if err != nil {
		return nil, fmt.Errorf("transaction summary: %w", err)
	}
	return &s, nil
}
