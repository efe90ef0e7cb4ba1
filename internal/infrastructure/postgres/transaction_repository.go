package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/construstock/internal/domain/entity"
	"github.com/tu-usuario/construstock/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

const transactionColumns = `t.id, t.type, t.inventory_id, t.quantity, t.unit_cost, t.total_cost,
		t.reference_number, t.notes, t.project_id, t.user_id, t.transaction_date,
		COALESCE(i.name, ''), COALESCE(i.item_code, ''),
		COALESCE(p.name, ''), COALESCE(u.username, '')`

const transactionJoins = `
	FROM transactions t
	LEFT JOIN inventory i ON i.id = t.inventory_id
	LEFT JOIN projects p ON p.id = t.project_id
	LEFT JOIN users u ON u.id = t.user_id`

// TransactionRepo implementación del log de transacciones sobre PostgreSQL
// (usable con pool o tx). El log es append-only: solo INSERT y SELECT.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste una transacción del ledger.
func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (type, inventory_id, quantity, unit_cost, total_cost,
			reference_number, notes, project_id, user_id, transaction_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		tx.Type, tx.InventoryID, tx.Quantity, tx.UnitCost, tx.TotalCost,
		tx.ReferenceNumber, tx.Notes, tx.ProjectID, tx.UserID, tx.TransactionDate,
	).Scan(&tx.ID)
	if err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una transacción con sus campos de JOIN. Devuelve (nil, nil) si no existe.
func (r *TransactionRepo) GetByID(id int64) (*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + transactionJoins + ` WHERE t.id = $1`
	var t entity.Transaction
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Type, &t.InventoryID, &t.Quantity, &t.UnitCost, &t.TotalCost,
		&t.ReferenceNumber, &t.Notes, &t.ProjectID, &t.UserID, &t.TransactionDate,
		&t.ItemName, &t.ItemCode, &t.ProjectName, &t.Username,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &t, nil
}

// List lista transacciones filtradas, más recientes primero.
func (r *TransactionRepo) List(filter repository.TransactionFilter, limit, offset int) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + transactionJoins + ` WHERE 1=1`
	args := []any{}
	pos := 1
	query, args, pos = appendTransactionFilter(query, args, pos, filter)
	query += fmt.Sprintf(" ORDER BY t.transaction_date DESC, t.id DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
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

// Count cuenta transacciones que cumplen los filtros.
func (r *TransactionRepo) Count(filter repository.TransactionFilter) (int, error) {
	query := `SELECT COUNT(*) FROM transactions t WHERE 1=1`
	args := []any{}
	pos := 1
	query, args, _ = appendTransactionFilter(query, args, pos, filter)
	var count int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return count, nil
}

// appendTransactionFilter agrega las condiciones del filtro con args posicionales.
func appendTransactionFilter(query string, args []any, pos int, filter repository.TransactionFilter) (string, []any, int) {
	if filter.Type != "" {
		query += fmt.Sprintf(" AND t.type = $%d", pos)
		args = append(args, filter.Type)
		pos++
	}
	if filter.InventoryID != nil {
		query += fmt.Sprintf(" AND t.inventory_id = $%d", pos)
		args = append(args, *filter.InventoryID)
		pos++
	}
	if filter.ProjectID != nil {
		query += fmt.Sprintf(" AND t.project_id = $%d", pos)
		args = append(args, *filter.ProjectID)
		pos++
	}
	// Los filtros de fecha comparan por día calendario: end_date incluye
	// el día completo, no solo su medianoche.
	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND t.transaction_date::date >= $%d::date", pos)
		args = append(args, *filter.StartDate)
		pos++
	}
	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND t.transaction_date::date <= $%d::date", pos)
		args = append(args, *filter.EndDate)
		pos++
	}
	return query, args, pos
}
