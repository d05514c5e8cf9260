package repositories

import (
	"github.com/shashiranjanraj/kirana/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderRepository owns orders and the order↔product association ledger.
//
// The ledger deliberately does not validate that an order or product id
// references an existing row; dangling associations are tolerated in storage
// and filtered out by the aggregation queries.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create persists a new order.
func (r *OrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

// FindByID looks up an order by primary key.
func (r *OrderRepository) FindByID(id uint) (models.Order, error) {
	var order models.Order
	err := r.db.First(&order, id).Error
	return order, err
}

// ForUser returns all orders owned by a user, oldest first.
func (r *OrderRepository) ForUser(userID uint) ([]models.Order, error) {
	orders := []models.Order{}
	err := r.db.Where("user_id = ?", userID).Order("id asc").Find(&orders).Error
	return orders, err
}

// LatestForUser returns the user's order with the maximum order_date.
// Equal timestamps resolve to the highest order id, so the result is
// deterministic. Returns gorm.ErrRecordNotFound when the user has no orders.
func (r *OrderRepository) LatestForUser(userID uint) (models.Order, error) {
	var order models.Order
	err := r.db.Where("user_id = ?", userID).
		Order("order_date DESC, id DESC").
		First(&order).Error
	return order, err
}

// AddProduct records an (order, product) association. Adding a pair that is
// already present succeeds silently — retried requests must not create
// duplicate line items or fail. The insert is a single atomic statement.
func (r *OrderRepository) AddProduct(orderID, productID uint) error {
	link := models.OrderProduct{OrderID: orderID, ProductID: productID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error
}

// RemoveProduct deletes an (order, product) association. Unlike AddProduct it
// is not idempotent: removing an absent pair returns gorm.ErrRecordNotFound.
func (r *OrderRepository) RemoveProduct(orderID, productID uint) error {
	res := r.db.Where("order_id = ? AND product_id = ?", orderID, productID).
		Delete(&models.OrderProduct{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ProductIDsForOrder returns the unordered set of product ids associated
// with an order, including ids that no longer resolve in the catalogue.
func (r *OrderRepository) ProductIDsForOrder(orderID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.OrderProduct{}).
		Where("order_id = ?", orderID).
		Pluck("product_id", &ids).Error
	return ids, err
}

// ProductsInOrder joins the ledger against the catalogue. Associations whose
// product id no longer resolves are silently excluded. Results come back in
// ascending product id so downstream sums are deterministic.
func (r *OrderRepository) ProductsInOrder(orderID uint) ([]models.Product, error) {
	products := []models.Product{}
	err := r.db.Model(&models.Product{}).
		Joins("JOIN order_products ON order_products.product_id = products.id").
		Where("order_products.order_id = ?", orderID).
		Order("products.id asc").
		Find(&products).Error
	return products, err
}
