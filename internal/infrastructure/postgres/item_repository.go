package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/construstock/internal/domain"
	"github.com/tu-usuario/construstock/internal/domain/entity"
	"github.com/tu-usuario/construstock/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `id, item_code, name, description, category_id, supplier_id, unit,
		current_stock, min_stock_level, max_stock_level, unit_cost, location, barcode,
		created_at, updated_at`

// ItemRepo implementación de ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de materiales. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un material nuevo. Devuelve domain.ErrDuplicate si el
// item_code o el barcode ya existen.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO inventory (item_code, name, description, category_id, supplier_id, unit,
			current_stock, min_stock_level, max_stock_level, unit_cost, location, barcode,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		item.ItemCode, item.Name, item.Description, item.CategoryID, item.SupplierID,
		item.Unit, item.CurrentStock, item.MinStockLevel, item.MaxStockLevel,
		item.UnitCost, item.Location, item.Barcode, item.CreatedAt, item.UpdatedAt,
	).Scan(&item.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

// GetByID obtiene un material por ID. Devuelve (nil, nil) si no existe.
func (r *ItemRepo) GetByID(id int64) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get item")
}

// GetByCode obtiene un material por su item_code. Devuelve (nil, nil) si no existe.
func (r *ItemRepo) GetByCode(itemCode string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory WHERE item_code = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, itemCode), "get item by code")
}

// GetForUpdate obtiene un material y bloquea la fila (SELECT FOR UPDATE).
// Devuelve (nil, nil) si no existe. Solo tiene sentido dentro de una tx.
func (r *ItemRepo) GetForUpdate(id int64) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get item for update")
}

// AdjustStock aplica un delta firmado sobre current_stock y devuelve el valor
// resultante. La condición current_stock + delta >= 0 protege el invariante de
// stock no negativo a nivel de fila incluso fuera del camino con FOR UPDATE.
func (r *ItemRepo) AdjustStock(id int64, delta int64) (int64, error) {
	query := `
		UPDATE inventory
		SET current_stock = current_stock + $2, updated_at = now()
		WHERE id = $1 AND current_stock + $2 >= 0
		RETURNING current_stock`
	var stock int64
	err := r.q.QueryRow(context.Background(), query, id, delta).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Sin fila afectada: o el material no existe o el delta dejaría
			// el contador negativo.
			exists, existsErr := r.exists(id)
			if existsErr != nil {
				return 0, existsErr
			}
			if !exists {
				return 0, domain.ErrNotFound
			}
			return 0, domain.ErrInvalidInput
		}
		return 0, fmt.Errorf("adjust stock: %w", err)
	}
	return stock, nil
}

// Update sobreescribe todos los campos editables del material.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE inventory
		SET name = $2, description = $3, category_id = $4, supplier_id = $5, unit = $6,
			current_stock = $7, min_stock_level = $8, max_stock_level = $9, unit_cost = $10,
			location = $11, barcode = $12, updated_at = $13
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Description, item.CategoryID, item.SupplierID,
		item.Unit, item.CurrentStock, item.MinStockLevel, item.MaxStockLevel,
		item.UnitCost, item.Location, item.Barcode, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un material por ID.
func (r *ItemRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM inventory WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista materiales con filtros y paginación, ordenados por nombre.
func (r *ItemRepo) List(filter repository.ItemFilter, limit, offset int) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.Search != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR item_code ILIKE $%d OR description ILIKE $%d)", pos, pos, pos)
		args = append(args, "%"+filter.Search+"%")
		pos++
	}
	if filter.CategoryID != nil {
		query += fmt.Sprintf(" AND category_id = $%d", pos)
		args = append(args, *filter.CategoryID)
		pos++
	}
	if filter.LowStock {
		query += " AND current_stock <= min_stock_level"
	}
	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	return r.scanRows(rows)
}

// Count cuenta materiales que cumplen los filtros.
func (r *ItemRepo) Count(filter repository.ItemFilter) (int, error) {
	query := `SELECT COUNT(*) FROM inventory WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.Search != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR item_code ILIKE $%d OR description ILIKE $%d)", pos, pos, pos)
		args = append(args, "%"+filter.Search+"%")
		pos++
	}
	if filter.CategoryID != nil {
		query += fmt.Sprintf(" AND category_id = $%d", pos)
		args = append(args, *filter.CategoryID)
		pos++
	}
	if filter.LowStock {
		query += " AND current_stock <= min_stock_level"
	}
	var count int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return count, nil
}

// ListLowStock lista materiales en o por debajo del nivel mínimo, los más
// críticos (mayor déficit relativo) primero.
func (r *ItemRepo) ListLowStock() ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + `
		FROM inventory
		WHERE current_stock <= min_stock_level
		ORDER BY (current_stock - min_stock_level), name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	return r.scanRows(rows)
}

// CountBySupplier cuenta materiales que referencian a un proveedor
// (guarda referencial para el borrado de proveedores).
func (r *ItemRepo) CountBySupplier(supplierID int64) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM inventory WHERE supplier_id = $1`, supplierID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count by supplier: %w", err)
	}
	return count, nil
}

func (r *ItemRepo) exists(id int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM inventory WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("item exists: %w", err)
	}
	return exists, nil
}

func (r *ItemRepo) scanOne(row pgx.Row, op string) (*entity.Item, error) {
	var i entity.Item
	err := row.Scan(
		&i.ID, &i.ItemCode, &i.Name, &i.Description, &i.CategoryID, &i.SupplierID,
		&i.Unit, &i.CurrentStock, &i.MinStockLevel, &i.MaxStockLevel, &i.UnitCost,
		&i.Location, &i.Barcode, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &i, nil
}

func (r *ItemRepo) scanRows(rows pgx.Rows) ([]*entity.Item, error) {
	var list []*entity.Item
	for rows.Next() {
		var i entity.Item
		if err := rows.Scan(
			&i.ID, &i.ItemCode, &i.Name, &i.Description, &i.CategoryID, &i.SupplierID,
			&i.Unit, &i.CurrentStock, &i.MinStockLevel, &i.MaxStockLevel, &i.UnitCost,
			&i.Location, &i.Barcode, &i.CreatedAt, &i.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}
