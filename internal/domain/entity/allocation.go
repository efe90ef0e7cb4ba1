package entity

import "time"

// Estado por defecto de una asignación.
const AllocationStatusAllocated = "allocated"

// ProjectAllocation compromete una cantidad de stock con un proyecto.
// Invariante: cada asignación tiene exactamente una transacción 'out' asociada
// con el mismo project_id, inventory_id y cantidad.
type ProjectAllocation struct {
	ID                int64
	ProjectID         int64
	InventoryID       int64
	AllocatedQuantity int64 // entero positivo
	AllocatedDate     time.Time
	Status            string
	Notes             string

	// Resueltos por JOIN en listados.
	ItemName string
	ItemCode string
	Unit     string
}
