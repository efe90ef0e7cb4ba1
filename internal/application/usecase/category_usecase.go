package usecase

import (
	"time"

	"github.com/tu-usuario/construstock/internal/application/dto"
	"github.com/tu-usuario/construstock/internal/domain"
	"github.com/tu-usuario/construstock/internal/domain/entity"
	"github.com/tu-usuario/construstock/internal/domain/repository"
)

// CategoryUseCase casos de uso para categorías de materiales.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría. El nombre es único.
func (uc *CategoryUseCase) Create(name, description string) (*dto.CategoryResponse, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	category := &entity.Category{
		Name:        name,
		Description: description,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	out := dto.ToCategoryResponse(category)
	return &out, nil
}

// List lista todas las categorías.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	categories := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		categories = append(categories, dto.ToCategoryResponse(c))
	}
	return categories, nil
}
