package seeders

import (
	"github.com/shashiranjanraj/kirana/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func init() {
	Register("catalog", SeedCatalog)
}

// SeedCatalog inserts a small demo catalogue. Safe to rerun: it skips
// seeding when any product already exists.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []models.Product{
		{Name: "Basmati Rice 5kg", Price: decimal.NewFromFloat(12.50)},
		{Name: "Toor Dal 1kg", Price: decimal.NewFromFloat(3.20)},
		{Name: "Sunflower Oil 1L", Price: decimal.NewFromFloat(4.75)},
		{Name: "Assam Tea 250g", Price: decimal.NewFromFloat(5.10)},
	}
	return db.Create(&products).Error
}
