package services

import (
	"fmt"
	"time"

	"github.com/vsinha/cafeops/pkg/domain/entities"
	"github.com/vsinha/cafeops/pkg/domain/repositories"
)

// PurchaseOrderService manages restocking orders with suppliers. Receiving a
// delivery does not adjust inventory automatically; stock arrivals are
// recorded through the inventory service's manual adjustments.
type PurchaseOrderService struct {
	purchases repositories.PurchaseOrderRepository
}

// NewPurchaseOrderService creates a purchase order service
func NewPurchaseOrderService(purchases repositories.PurchaseOrderRepository) *PurchaseOrderService {
	return &PurchaseOrderService{purchases: purchases}
}

// All returns every purchase order
func (s *PurchaseOrderService) All() ([]*entities.PurchaseOrder, error) {
	return s.purchases.GetAll()
}

// ByID returns one purchase order, or ErrNotFound
func (s *PurchaseOrderService) ByID(poID string) (*entities.PurchaseOrder, error) {
	return s.purchases.GetByID(poID)
}

// Create places a new purchase order with a computed total
func (s *PurchaseOrderService) Create(supplier string, lines []entities.PurchaseOrderLine) (*entities.PurchaseOrder, error) {
	po, err := entities.NewPurchaseOrder(supplier, lines)
	if err != nil {
		return nil, err
	}
	return s.purchases.Insert(po)
}

// UpdateStatus advances a purchase order, optionally recording the delivery
// date
func (s *PurchaseOrderService) UpdateStatus(poID string, status entities.PurchaseOrderStatus, deliveryDate *time.Time) (*entities.PurchaseOrder, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("unknown purchase order status: %s", status)
	}

	po, err := s.purchases.GetByID(poID)
	if err != nil {
		return nil, err
	}
	po.Status = status
	if deliveryDate != nil {
		po.DeliveryDate = deliveryDate
	}
	return s.purchases.Update(po)
}
