package repository

import (
	"time"

	"github.com/tu-usuario/construstock/internal/domain/entity"
)

// TransactionFilter filtros combinables (semántica AND) para el histórico.
type TransactionFilter struct {
	Type        string
	InventoryID *int64
	ProjectID   *int64
	StartDate   *time.Time
	EndDate     *time.Time
}

// TransactionRepository define el puerto del log de transacciones.
// El log es append-only: Create nunca modifica ni elimina registros previos,
// y no existe operación de update ni delete.
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	GetByID(id int64) (*entity.Transaction, error)
	List(filter TransactionFilter, limit, offset int) ([]*entity.Transaction, error)
	Count(filter TransactionFilter) (int, error)
}
