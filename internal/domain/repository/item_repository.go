package repository

import "github.com/tu-usuario/construstock/internal/domain/entity"

// ItemFilter filtros para listar materiales.
type ItemFilter struct {
	Search     string // busca en name, item_code y description
	CategoryID *int64
	LowStock   bool // current_stock <= min_stock_level
}

// ItemRepository define el puerto de persistencia para Item (DIP).
//
// AdjustStock es el único camino de mutación de stock que usa el ledger:
// aplica un delta firmado y devuelve el valor resultante. Falla con
// domain.ErrNotFound si el material no existe y con domain.ErrInvalidInput
// si el resultado quedaría negativo. Update es la vía administrativa que
// puede sobreescribir current_stock directamente (fuera del ledger).
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id int64) (*entity.Item, error)
	GetByCode(itemCode string) (*entity.Item, error)
	GetForUpdate(id int64) (*entity.Item, error)
	AdjustStock(id int64, delta int64) (int64, error)
	Update(item *entity.Item) error
	Delete(id int64) error
	List(filter ItemFilter, limit, offset int) ([]*entity.Item, error)
	Count(filter ItemFilter) (int, error)
	ListLowStock() ([]*entity.Item, error)
	CountBySupplier(supplierID int64) (int, error)
}
