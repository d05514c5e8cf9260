package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/shashiranjanraj/kirana/app/models"
	"github.com/shashiranjanraj/kirana/app/repositories"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService is the query façade over orders and the association ledger.
// Order contents are never stored inline: membership lives in the ledger and
// every aggregate (product list, total) is derived by an explicit join.
type OrderService struct {
	orders *repositories.OrderRepository
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{orders: repositories.NewOrderRepository(db)}
}

// CreateOrderInput is the payload for POST /orders. OrderDate is optional
// and defaults to the current time.
type CreateOrderInput struct {
	UserID    uint       `json:"user_id" validate:"required"`
	OrderDate *time.Time `json:"order_date"`
}

// Create records a new order. The user id is trusted as given — an order for
// a non-existent user is storable, matching the documented orphan tolerance.
func (s *OrderService) Create(in CreateOrderInput) (models.Order, error) {
	orderDate := time.Now().UTC()
	if in.OrderDate != nil {
		orderDate = *in.OrderDate
	}

	order := models.Order{UserID: in.UserID, OrderDate: orderDate}
	if err := s.orders.Create(&order); err != nil {
		return models.Order{}, fmt.Errorf("orders: create: %w", err)
	}
	return order, nil
}

// AddProduct attaches a product to an order. Duplicate adds are a silent
// no-op so a retried request cannot double a line item.
func (s *OrderService) AddProduct(orderID, productID uint) error {
	if err := s.orders.AddProduct(orderID, productID); err != nil {
		return fmt.Errorf("orders: add product %d to %d: %w", productID, orderID, err)
	}
	return nil
}

// RemoveProduct detaches a product from an order. Removing an association
// that does not exist is ErrNotFound — removal is deliberately not
// idempotent, unlike AddProduct.
func (s *OrderService) RemoveProduct(orderID, productID uint) error {
	err := s.orders.RemoveProduct(orderID, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("orders: remove product %d from %d: %w", productID, orderID, err)
	}
	return nil
}

// ProductsInOrder resolves the order's ledger entries against the catalogue.
// Entries whose product has been deleted are silently excluded rather than
// failing the query.
func (s *OrderService) ProductsInOrder(orderID uint) ([]models.Product, error) {
	products, err := s.orders.ProductsInOrder(orderID)
	if err != nil {
		return nil, fmt.Errorf("orders: products in %d: %w", orderID, err)
	}
	return products, nil
}

// TotalCost sums the prices of exactly the products ProductsInOrder returns,
// in ascending product id order. Exact decimal arithmetic — no floats. An
// order with no resolvable products totals zero, not an error.
func (s *OrderService) TotalCost(orderID uint) (decimal.Decimal, error) {
	products, err := s.ProductsInOrder(orderID)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Price)
	}
	return total, nil
}

// ForUser returns every order owned by the user (possibly none).
func (s *OrderService) ForUser(userID uint) ([]models.Order, error) {
	orders, err := s.orders.ForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("orders: for user %d: %w", userID, err)
	}
	return orders, nil
}

// LatestForUser returns the user's most recent order by order_date, breaking
// timestamp ties towards the higher order id. ErrNotFound when the user has
// no orders.
func (s *OrderService) LatestForUser(userID uint) (models.Order, error) {
	order, err := s.orders.LatestForUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, ErrNotFound
		}
		return models.Order{}, fmt.Errorf("orders: latest for user %d: %w", userID, err)
	}
	return order, nil
}
