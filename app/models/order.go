package models

import "time"

// Order carries its creation timestamp and owning user. Its contents are not
// stored inline — they live in the order_products join table and are derived
// on demand. UserID is recorded as given and not re-validated afterwards, so
// an order can outlive its user.
type Order struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderDate time.Time `gorm:"not null;index" json:"order_date"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
}

// OrderProduct is one order↔product association. The composite primary key
// guarantees at most one row per (order, product) pair.
type OrderProduct struct {
	OrderID   uint `gorm:"primaryKey;autoIncrement:false" json:"order_id"`
	ProductID uint `gorm:"primaryKey;autoIncrement:false" json:"product_id"`
}
