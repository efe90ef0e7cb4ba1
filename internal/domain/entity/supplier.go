package entity

import "time"

// Supplier es un proveedor de materiales.
// No puede eliminarse mientras existan materiales que lo referencien.
type Supplier struct {
	ID            int64
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	CreatedAt     time.Time
}
