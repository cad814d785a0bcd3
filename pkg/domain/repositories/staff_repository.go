package repositories

import "github.com/vsinha/cafeops/pkg/domain/entities"

// StaffRepository provides access to the staff roster
type StaffRepository interface {
	GetAll() ([]*entities.Staff, error)
	GetByID(id string) (*entities.Staff, error)
	GetActive() ([]*entities.Staff, error)
	Insert(member *entities.Staff) (*entities.Staff, error)
	Update(member *entities.Staff) (*entities.Staff, error)
	Delete(id string) bool
}

// PurchaseOrderRepository provides access to supplier restocking orders
type PurchaseOrderRepository interface {
	GetAll() ([]*entities.PurchaseOrder, error)
	GetByID(id string) (*entities.PurchaseOrder, error)
	Insert(po *entities.PurchaseOrder) (*entities.PurchaseOrder, error)
	Update(po *entities.PurchaseOrder) (*entities.PurchaseOrder, error)
}
