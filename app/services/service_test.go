package services_test

import (
	"testing"
	"time"

	"github.com/shashiranjanraj/kirana/app/models"
	"github.com/shashiranjanraj/kirana/pkg/testkit"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDB(t *testing.T) *gorm.DB {
	t.Helper()
	return testkit.DB(t,
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderProduct{},
	)
}

func seedProduct(t *testing.T, db *gorm.DB, name, price string) models.Product {
	t.Helper()
	p := models.Product{Name: name, Price: decimal.RequireFromString(price)}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func seedOrder(t *testing.T, db *gorm.DB, userID uint, at time.Time) models.Order {
	t.Helper()
	o := models.Order{UserID: userID, OrderDate: at}
	require.NoError(t, db.Create(&o).Error)
	return o
}

func ledgerCount(t *testing.T, db *gorm.DB, orderID uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.OrderProduct{}).
		Where("order_id = ?", orderID).Count(&n).Error)
	return n
}
