package usecase

import (
	"time"

	"github.com/tu-usuario/construstock/internal/application/dto"
	"github.com/tu-usuario/construstock/internal/domain"
	"github.com/tu-usuario/construstock/internal/domain/entity"
	"github.com/tu-usuario/construstock/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	repo     repository.SupplierRepository
	itemRepo repository.ItemRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, itemRepo repository.ItemRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, itemRepo: itemRepo}
}

// Create crea un proveedor.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier := &entity.Supplier{
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		CreatedAt:     time.Now(),
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	out := dto.ToSupplierResponse(supplier)
	return &out, nil
}

// GetByID obtiene un proveedor por ID.
func (uc *SupplierUseCase) GetByID(id int64) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.ToSupplierResponse(supplier)
	return &out, nil
}

// Update actualiza un proveedor.
func (uc *SupplierUseCase) Update(id int64, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	supplier.Name = in.Name
	supplier.ContactPerson = in.ContactPerson
	supplier.Email = in.Email
	supplier.Phone = in.Phone
	supplier.Address = in.Address
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	out := dto.ToSupplierResponse(supplier)
	return &out, nil
}

// Delete elimina un proveedor. Falla con ErrHasDependents si existen
// materiales que lo referencien (guarda referencial).
func (uc *SupplierUseCase) Delete(id int64) error {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	count, err := uc.itemRepo.CountBySupplier(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrHasDependents
	}
	return uc.repo.Delete(id)
}

// List lista proveedores con búsqueda y paginación.
func (uc *SupplierUseCase) List(search string, page dto.PageQuery) (*dto.SupplierListResponse, error) {
	page.Defaults()
	list, err := uc.repo.List(search, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(search)
	if err != nil {
		return nil, err
	}
	suppliers := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		suppliers = append(suppliers, dto.ToSupplierResponse(s))
	}
	return &dto.SupplierListResponse{
		Suppliers:  suppliers,
		Pagination: dto.NewPagination(page.Page, page.Limit, total),
	}, nil
}
