package usecase

import (
	"time"

	"github.com/tu-usuario/construstock/internal/application/dto"
	"github.com/tu-usuario/construstock/internal/domain"
	"github.com/tu-usuario/construstock/internal/domain/entity"
	"github.com/tu-usuario/construstock/internal/domain/repository"
)

// ProjectUseCase casos de uso CRUD para proyectos y lectura de sus asignaciones.
type ProjectUseCase struct {
	repo      repository.ProjectRepository
	allocRepo repository.AllocationRepository
}

// NewProjectUseCase construye el caso de uso.
func NewProjectUseCase(repo repository.ProjectRepository, allocRepo repository.AllocationRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, allocRepo: allocRepo}
}

// Create crea un proyecto. Status por defecto: active.
func (uc *ProjectUseCase) Create(in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.ProjectStatusActive
	}
	project := &entity.Project{
		Name:        in.Name,
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Status:      status,
		Budget:      in.Budget,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(project); err != nil {
		return nil, err
	}
	out := dto.ToProjectResponse(project)
	return &out, nil
}

// GetByID obtiene un proyecto por ID.
func (uc *ProjectUseCase) GetByID(id int64) (*dto.ProjectResponse, error) {
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.ToProjectResponse(project)
	return &out, nil
}

// Update actualiza un proyecto.
func (uc *ProjectUseCase) Update(id int64, in dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	project.Name = in.Name
	project.Description = in.Description
	project.StartDate = in.StartDate
	project.EndDate = in.EndDate
	if in.Status != "" {
		project.Status = in.Status
	}
	project.Budget = in.Budget
	if err := uc.repo.Update(project); err != nil {
		return nil, err
	}
	out := dto.ToProjectResponse(project)
	return &out, nil
}

// Delete elimina un proyecto. Falla con ErrHasDependents si tiene
// asignaciones de inventario (guarda referencial).
func (uc *ProjectUseCase) Delete(id int64) error {
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if project == nil {
		return domain.ErrNotFound
	}
	count, err := uc.allocRepo.CountByProject(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrHasDependents
	}
	return uc.repo.Delete(id)
}

// List lista proyectos con búsqueda, filtro de estado y paginación.
func (uc *ProjectUseCase) List(filter repository.ProjectFilter, page dto.PageQuery) (*dto.ProjectListResponse, error) {
	page.Defaults()
	list, err := uc.repo.List(filter, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(filter)
	if err != nil {
		return nil, err
	}
	projects := make([]dto.ProjectResponse, 0, len(list))
	for _, p := range list {
		projects = append(projects, dto.ToProjectResponse(p))
	}
	return &dto.ProjectListResponse{
		Projects:   projects,
		Pagination: dto.NewPagination(page.Page, page.Limit, total),
	}, nil
}

// ListAllocations lista las asignaciones de un proyecto, más recientes primero.
func (uc *ProjectUseCase) ListAllocations(projectID int64) ([]dto.AllocationResponse, error) {
	project, err := uc.repo.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.allocRepo.ListByProject(projectID)
	if err != nil {
		return nil, err
	}
	allocs := make([]dto.AllocationResponse, 0, len(list))
	for _, a := range list {
		allocs = append(allocs, dto.ToAllocationResponse(a))
	}
	return allocs, nil
}
