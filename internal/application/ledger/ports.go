package ledger

import (
	"context"

	"github.com/tu-usuario/construstock/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción de base de datos:
// Commit si fn retorna nil, Rollback en caso contrario. Los repos que recibe
// fn están atados a la misma transacción, de modo que el ajuste de stock y
// el registro en el log son visibles juntos o no lo son en absoluto.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		txRepo repository.TransactionRepository,
		allocRepo repository.AllocationRepository,
	) error) error
}
