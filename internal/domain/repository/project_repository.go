package repository

import "github.com/tu-usuario/construstock/internal/domain/entity"

// ProjectFilter filtros para listar proyectos.
type ProjectFilter struct {
	Search string // busca en name y description
	Status string
}

// ProjectRepository define el puerto de persistencia para Project.
type ProjectRepository interface {
	Create(project *entity.Project) error
	GetByID(id int64) (*entity.Project, error)
	Update(project *entity.Project) error
	Delete(id int64) error
	List(filter ProjectFilter, limit, offset int) ([]*entity.Project, error)
	Count(filter ProjectFilter) (int, error)
}
