package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/construstock/internal/domain"
	"github.com/tu-usuario/construstock/internal/domain/entity"
	"github.com/tu-usuario/construstock/internal/domain/repository"
)

var _ repository.AllocationRepository = (*AllocationRepo)(nil)

// AllocationRepo implementación de AllocationRepository sobre PostgreSQL
// (usable con pool o tx).
type AllocationRepo struct {
	q Querier
}

// NewAllocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAllocationRepository(q Querier) *AllocationRepo {
	return &AllocationRepo{q: q}
}

// Create persiste una asignación de inventario a proyecto.
func (r *AllocationRepo) Create(alloc *entity.ProjectAllocation) error {
	query := `
		INSERT INTO project_allocations (project_id, inventory_id, allocated_quantity,
			allocated_date, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		alloc.ProjectID, alloc.InventoryID, alloc.AllocatedQuantity,
		alloc.AllocatedDate, alloc.Status, alloc.Notes,
	).Scan(&alloc.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("create allocation: %w", err)
	}
	return nil
}

// ListByProject lista las asignaciones de un proyecto, más recientes primero.
func (r *AllocationRepo) ListByProject(projectID int64) ([]*entity.ProjectAllocation, error) {
	query := `
		SELECT a.id, a.project_id, a.inventory_id, a.allocated_quantity, a.allocated_date,
			a.status, a.notes, COALESCE(i.name, ''), COALESCE(i.item_code, ''), COALESCE(i.unit, '')
		FROM project_allocations a
		LEFT JOIN inventory i ON i.id = a.inventory_id
		WHERE a.project_id = $1
		ORDER BY a.allocated_date DESC, a.id DESC`
	rows, err := r.q.Query(context.Background(), query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list allocations: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProjectAllocation
	for rows.Next() {
		var a entity.ProjectAllocation
		if err := rows.Scan(
			&a.ID, &a.ProjectID, &a.InventoryID, &a.AllocatedQuantity, &a.AllocatedDate,
			&a.Status, &a.Notes, &a.ItemName, &a.ItemCode, &a.Unit,
		); err != nil {
			return nil, fmt.Errorf("scan allocation: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// CountByProject cuenta las asignaciones de un proyecto
// (guarda referencial para el borrado de proyectos).
func (r *AllocationRepo) CountByProject(projectID int64) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM project_allocations WHERE project_id = $1`, projectID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count allocations: %w", err)
	}
	return count, nil
}
