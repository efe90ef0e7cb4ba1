package repository

import "github.com/tu-usuario/construstock/internal/domain/entity"

// AllocationRepository define el puerto de persistencia de asignaciones a proyecto.
type AllocationRepository interface {
	Create(alloc *entity.ProjectAllocation) error
	ListByProject(projectID int64) ([]*entity.ProjectAllocation, error)
	CountByProject(projectID int64) (int, error)
}
