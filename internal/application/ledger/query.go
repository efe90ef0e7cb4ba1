package ledger

import (
	"context"

	"github.com/tu-usuario/construstock/internal/domain"
	"github.com/tu-usuario/construstock/internal/domain/entity"
	"github.com/tu-usuario/construstock/internal/domain/repository"
)

// TransactionPage resultado paginado del histórico.
type TransactionPage struct {
	Transactions []*entity.Transaction
	Page         int
	Limit        int
	Total        int
	Pages        int
}

// ListTransactions consulta el log (solo lectura), del más reciente al más
// antiguo, con filtros combinables y paginación page/limit.
func (uc *UseCase) ListTransactions(_ context.Context, filter repository.TransactionFilter, page, limit int) (*TransactionPage, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 50
	}
	offset := (page - 1) * limit

	list, err := uc.txRepo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.txRepo.Count(filter)
	if err != nil {
		return nil, err
	}
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return &TransactionPage{
		Transactions: list,
		Page:         page,
		Limit:        limit,
		Total:        total,
		Pages:        pages,
	}, nil
}

// GetTransaction obtiene una transacción por ID.
func (uc *UseCase) GetTransaction(_ context.Context, id int64) (*entity.Transaction, error) {
	tx, err := uc.txRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, domain.ErrNotFound
	}
	return tx, nil
}
