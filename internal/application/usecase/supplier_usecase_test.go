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

func TestSupplierDelete_ConMaterialesAsociados(t *testing.T) {
	supplierRepo := newMemSupplierRepo()
	itemRepo := newMemItemRepo()
	uc := usecase.NewSupplierUseCase(supplierRepo, itemRepo)

	created, err := uc.Create(dto.CreateSupplierRequest{Name: "Aceros del Norte"})
	require.NoError(t, err)

	supplierID := created.ID
	require.NoError(t, itemRepo.Create(&entity.Item{
		ItemCode:   "VAR-001",
		Name:       "Varilla 3/8",
		Unit:       "unidad",
		SupplierID: &supplierID,
	}))

	err = uc.Delete(supplierID)
	assert.ErrorIs(t, err, domain.ErrHasDependents)

	// El proveedor sigue existiendo.
	got, err := uc.GetByID(supplierID)
	require.NoError(t, err)
	assert.Equal(t, "Aceros del Norte", got.Name)
}

func TestSupplierDelete_SinDependencias(t *testing.T) {
	supplierRepo := newMemSupplierRepo()
	uc := usecase.NewSupplierUseCase(supplierRepo, newMemItemRepo())

	created, err := uc.Create(dto.CreateSupplierRequest{Name: "Ferretería Central"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))

	_, err = uc.GetByID(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSupplierDelete_NoExiste(t *testing.T) {
	uc := usecase.NewSupplierUseCase(newMemSupplierRepo(), newMemItemRepo())
	assert.ErrorIs(t, uc.Delete(999), domain.ErrNotFound)
}

func TestSupplierCreate_NombreVacio(t *testing.T) {
	uc := usecase.NewSupplierUseCase(newMemSupplierRepo(), newMemItemRepo())
	_, err := uc.Create(dto.CreateSupplierRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
