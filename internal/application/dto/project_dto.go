package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/construstock/internal/domain/entity"
)

// CreateProjectRequest body para POST /api/projects.
type CreateProjectRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	StartDate   *time.Time       `json:"start_date"`
	EndDate     *time.Time       `json:"end_date"`
	Status      string           `json:"status"`
	Budget      *decimal.Decimal `json:"budget"`
}

// UpdateProjectRequest body para PUT /api/projects/:id.
type UpdateProjectRequest = CreateProjectRequest

// ProjectResponse representación de un proyecto en respuestas.
type ProjectResponse struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	StartDate   *time.Time       `json:"start_date"`
	EndDate     *time.Time       `json:"end_date"`
	Status      string           `json:"status"`
	Budget      *decimal.Decimal `json:"budget"`
	CreatedAt   time.Time        `json:"created_at"`
}

// ProjectListResponse listado paginado de proyectos.
type ProjectListResponse struct {
	Projects   []ProjectResponse `json:"projects"`
	Pagination Pagination        `json:"pagination"`
}

// AllocateRequest body para POST /api/projects/:id/allocate.
type AllocateRequest struct {
	InventoryID       int64  `json:"inventory_id"`
	AllocatedQuantity int64  `json:"allocated_quantity"`
	Notes             string `json:"notes"`
}

// AllocationResponse representación de una asignación en respuestas.
type AllocationResponse struct {
	ID                int64     `json:"id"`
	ProjectID         int64     `json:"project_id"`
	InventoryID       int64     `json:"inventory_id"`
	AllocatedQuantity int64     `json:"allocated_quantity"`
	AllocatedDate     time.Time `json:"allocated_date"`
	Status            string    `json:"status"`
	Notes             string    `json:"notes,omitempty"`
	ItemName          string    `json:"item_name,omitempty"`
	ItemCode          string    `json:"item_code,omitempty"`
	Unit              string    `json:"unit,omitempty"`
}

// ToProjectResponse mapea la entidad al DTO de respuesta.
func ToProjectResponse(p *entity.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Status:      p.Status,
		Budget:      p.Budget,
		CreatedAt:   p.CreatedAt,
	}
}

// ToAllocationResponse mapea la entidad al DTO de respuesta.
func ToAllocationResponse(a *entity.ProjectAllocation) AllocationResponse {
	return AllocationResponse{
		ID:                a.ID,
		ProjectID:         a.ProjectID,
		InventoryID:       a.InventoryID,
		AllocatedQuantity: a.AllocatedQuantity,
		AllocatedDate:     a.AllocatedDate,
		Status:            a.Status,
		Notes:             a.Notes,
		ItemName:          a.ItemName,
		ItemCode:          a.ItemCode,
		Unit:              a.Unit,
	}
}
