package usecase

import (
	"time"

	"github.com/tu-usuario/construstock/internal/application/dto"
	"github.com/tu-usuario/construstock/internal/domain"
	"github.com/tu-usuario/construstock/internal/domain/entity"
	"github.com/tu-usuario/construstock/internal/domain/repository"
)

// ItemUseCase casos de uso CRUD para materiales del inventario.
// El stock solo debería moverse vía ledger; Update es la vía administrativa
// que puede sobreescribir current_stock directamente (menor garantía: puede
// desincronizar el contador del histórico de transacciones).
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create crea un material. item_code debe ser único.
func (uc *ItemUseCase) Create(in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.ItemCode == "" || in.Name == "" || in.Unit == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CurrentStock < 0 || in.MinStockLevel < 0 || in.UnitCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCode(in.ItemCode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	item := &entity.Item{
		ItemCode:      in.ItemCode,
		Name:          in.Name,
		Description:   in.Description,
		CategoryID:    in.CategoryID,
		SupplierID:    in.SupplierID,
		Unit:          in.Unit,
		CurrentStock:  in.CurrentStock,
		MinStockLevel: in.MinStockLevel,
		MaxStockLevel: in.MaxStockLevel,
		UnitCost:      in.UnitCost,
		Location:      in.Location,
		Barcode:       in.Barcode,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	out := dto.ToItemResponse(item)
	return &out, nil
}

// GetByID obtiene un material por ID.
func (uc *ItemUseCase) GetByID(id int64) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.ToItemResponse(item)
	return &out, nil
}

// Update sobreescribe los campos del material, incluido current_stock
// (override administrativo, fuera del ledger).
func (uc *ItemUseCase) Update(id int64, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	if in.Name == "" || in.Unit == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CurrentStock < 0 || in.MinStockLevel < 0 || in.UnitCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	item.Name = in.Name
	item.Description = in.Description
	item.CategoryID = in.CategoryID
	item.SupplierID = in.SupplierID
	item.Unit = in.Unit
	item.CurrentStock = in.CurrentStock
	item.MinStockLevel = in.MinStockLevel
	item.MaxStockLevel = in.MaxStockLevel
	item.UnitCost = in.UnitCost
	item.Location = in.Location
	item.Barcode = in.Barcode
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	out := dto.ToItemResponse(item)
	return &out, nil
}

// Delete elimina un material (borrado directo, irreversible).
func (uc *ItemUseCase) Delete(id int64) error {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List lista materiales con filtros y paginación.
func (uc *ItemUseCase) List(filter repository.ItemFilter, page dto.PageQuery) (*dto.ItemListResponse, error) {
	page.Defaults()
	list, err := uc.repo.List(filter, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, i := range list {
		items = append(items, dto.ToItemResponse(i))
	}
	return &dto.ItemListResponse{
		Items:      items,
		Pagination: dto.NewPagination(page.Page, page.Limit, total),
	}, nil
}

// LowStockAlerts lista materiales en o por debajo del nivel mínimo,
// ordenados del más crítico al menos crítico.
func (uc *ItemUseCase) LowStockAlerts() ([]dto.ItemResponse, error) {
	list, err := uc.repo.ListLowStock()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, i := range list {
		items = append(items, dto.ToItemResponse(i))
	}
	return items, nil
}
