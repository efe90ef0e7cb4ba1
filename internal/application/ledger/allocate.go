package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/construstock/internal/domain"
	"github.com/tu-usuario/construstock/internal/domain/entity"
	"github.com/tu-usuario/construstock/internal/domain/repository"
)

// AllocateInput entrada para asignar stock a un proyecto.
type AllocateInput struct {
	ProjectID         int64
	InventoryID       int64
	AllocatedQuantity int64
	Notes             string
	UserID            *int64
}

// Allocate mueve stock del pool general a un proyecto: crea la fila de
// asignación y la transacción 'out' enlazada (mismo project_id, inventory_id
// y cantidad) dentro de una única transacción de base de datos. Si la salida
// de stock falla, la asignación no queda persistida.
func (uc *UseCase) Allocate(ctx context.Context, in AllocateInput) (*entity.ProjectAllocation, error) {
	if in.AllocatedQuantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	project, err := uc.projectRepo.GetByID(in.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	item, err := uc.itemRepo.GetByID(in.InventoryID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	// Número de referencia generado para poder rastrear el par
	// asignación ↔ transacción en el histórico.
	refNumber := "ALLOC-" + uuid.New().String()

	var created *entity.ProjectAllocation
	err = uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		txRepo repository.TransactionRepository,
		allocRepo repository.AllocationRepository,
	) error {
		alloc := &entity.ProjectAllocation{
			ProjectID:         in.ProjectID,
			InventoryID:       in.InventoryID,
			AllocatedQuantity: in.AllocatedQuantity,
			AllocatedDate:     now,
			Status:            entity.AllocationStatusAllocated,
			Notes:             in.Notes,
		}
		if err := allocRepo.Create(alloc); err != nil {
			return err
		}

		projectID := in.ProjectID
		_, err := applyTransaction(itemRepo, txRepo, RecordTransactionInput{
			Type:            entity.TransactionTypeOut,
			InventoryID:     in.InventoryID,
			Quantity:        in.AllocatedQuantity,
			ReferenceNumber: refNumber,
			Notes:           "Project allocation: " + in.Notes,
			ProjectID:       &projectID,
			UserID:          in.UserID,
		}, now)
		if err != nil {
			return err
		}
		created = alloc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
