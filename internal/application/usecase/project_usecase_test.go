package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/construstock/internal/application/dto"
	"github.com/tu-usuario/construstock/internal/application/usecase"
	"github.com/tu-usuario/construstock/internal/domain"
	"github.com/tu-usuario/construstock/internal/domain/entity"
)

func TestProjectDelete_ConAsignaciones(t *testing.T) {
	projectRepo := newMemProjectRepo()
	allocRepo := &memAllocRepo{}
	uc := usecase.NewProjectUseCase(projectRepo, allocRepo)

	created, err := uc.Create(dto.CreateProjectRequest{Name: "Bodega Sur"})
	require.NoError(t, err)

	require.NoError(t, allocRepo.Create(&entity.ProjectAllocation{
		ProjectID:         created.ID,
		InventoryID:       1,
		AllocatedQuantity: 10,
	}))

	err = uc.Delete(created.ID)
	assert.ErrorIs(t, err, domain.ErrHasDependents)

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bodega Sur", got.Name)
}

func TestProjectDelete_SinAsignaciones(t *testing.T) {
	uc := usecase.NewProjectUseCase(newMemProjectRepo(), &memAllocRepo{})

	created, err := uc.Create(dto.CreateProjectRequest{Name: "Puente Oriente"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))

	_, err = uc.GetByID(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProjectCreate_StatusPorDefecto(t *testing.T) {
	uc := usecase.NewProjectUseCase(newMemProjectRepo(), &memAllocRepo{})

	created, err := uc.Create(dto.CreateProjectRequest{Name: "Torre Norte"})
	require.NoError(t, err)
	assert.Equal(t, entity.ProjectStatusActive, created.Status)
}

func TestProjectListAllocations_ProyectoInexistente(t *testing.T) {
	uc := usecase.NewProjectUseCase(newMemProjectRepo(), &memAllocRepo{})
	_, err := uc.ListAllocations(999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
