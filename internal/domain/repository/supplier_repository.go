package repository

import "github.com/tu-usuario/construstock/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id int64) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	Delete(id int64) error
	List(search string, limit, offset int) ([]*entity.Supplier, error)
	Count(search string) (int, error)
}
