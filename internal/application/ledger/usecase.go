package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/construstock/internal/domain"
	"github.com/tu-usuario/construstock/internal/domain/entity"
	"github.com/tu-usuario/construstock/internal/domain/repository"
)

// UseCase es el núcleo del ledger de stock: registra transacciones tipadas
// (in/out/transfer/adjustment) aplicando el delta correspondiente sobre
// current_stock de forma atómica, con bloqueo de fila (SELECT FOR UPDATE)
// y Commit/Rollback vía TxRunner.
type UseCase struct {
	txRunner    TxRunner
	itemRepo    repository.ItemRepository
	txRepo      repository.TransactionRepository
	projectRepo repository.ProjectRepository
}

// NewUseCase construye el caso de uso del ledger.
func NewUseCase(
	txRunner TxRunner,
	itemRepo repository.ItemRepository,
	txRepo repository.TransactionRepository,
	projectRepo repository.ProjectRepository,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		itemRepo:    itemRepo,
		txRepo:      txRepo,
		projectRepo: projectRepo,
	}
}

// RecordTransactionInput entrada para registrar una transacción de stock.
// Quantity es siempre una magnitud positiva; la dirección la da Type.
type RecordTransactionInput struct {
	Type            string
	InventoryID     int64
	Quantity        int64
	UnitCost        *decimal.Decimal
	ReferenceNumber string
	Notes           string
	ProjectID       *int64
	UserID          *int64
}

// RecordTransaction valida la intención, y dentro de una única transacción de
// base de datos: bloquea la fila del material, verifica stock disponible para
// salidas, aplica el delta sobre current_stock y persiste el registro
// append-only. Todo o nada: un fallo en cualquier paso no deja efectos.
func (uc *UseCase) RecordTransaction(ctx context.Context, in RecordTransactionInput) (*entity.Transaction, error) {
	if !entity.ValidTransactionType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitCost != nil && in.UnitCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	// Verificación previa de existencia (sin bloqueo); la verificación de
	// stock se repite dentro de la transacción sobre la fila bloqueada.
	item, err := uc.itemRepo.GetByID(in.InventoryID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	var created *entity.Transaction
	err = uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		txRepo repository.TransactionRepository,
		_ repository.AllocationRepository,
	) error {
		tx, err := applyTransaction(itemRepo, txRepo, in, time.Now())
		if err != nil {
			return err
		}
		created = tx
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// applyTransaction ejecuta la regla del mutador sobre repos ya atados a una
// transacción SQL. Lo comparte RecordTransaction y Allocate (misma unidad
// atómica para asignación + salida de stock).
func applyTransaction(
	itemRepo repository.ItemRepository,
	txRepo repository.TransactionRepository,
	in RecordTransactionInput,
	now time.Time,
) (*entity.Transaction, error) {
	// Bloquea la fila del material para serializar lecturas-escrituras
	// concurrentes sobre el mismo contador.
	item, err := itemRepo.GetForUpdate(in.InventoryID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	if in.Type == entity.TransactionTypeOut && item.CurrentStock < in.Quantity {
		return nil, &domain.InsufficientStockError{
			Available: item.CurrentStock,
			Requested: in.Quantity,
		}
	}

	var totalCost *decimal.Decimal
	if in.UnitCost != nil {
		tc := in.UnitCost.Mul(decimal.NewFromInt(in.Quantity))
		totalCost = &tc
	}

	tx := &entity.Transaction{
		Type:            in.Type,
		InventoryID:     in.InventoryID,
		Quantity:        in.Quantity,
		UnitCost:        in.UnitCost,
		TotalCost:       totalCost,
		ReferenceNumber: in.ReferenceNumber,
		Notes:           in.Notes,
		ProjectID:       in.ProjectID,
		UserID:          in.UserID,
		TransactionDate: now,
	}
	if err := txRepo.Create(tx); err != nil {
		return nil, err
	}

	// transfer aplica delta 0: queda en el log pero no toca el contador.
	if delta := entity.StockDelta(in.Type, in.Quantity); delta != 0 {
		if _, err := itemRepo.AdjustStock(in.InventoryID, delta); err != nil {
			return nil, err
		}
	}
	return tx, nil
}
