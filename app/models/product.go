package models

import "github.com/shopspring/decimal"

// Product is a catalogue entry. Price is a fixed-point decimal; order totals
// must sum exactly.
type Product struct {
	ID    uint            `gorm:"primaryKey" json:"id"`
	Name  string          `gorm:"column:product_name;size:100;not null" json:"product_name"`
	Price decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
}
