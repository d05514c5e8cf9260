package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shashiranjanraj/kirana/app/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderDefaultsDate(t *testing.T) {
	db := newDB(t)
	svc := services.NewOrderService(db)

	before := time.Now().UTC().Add(-time.Second)
	order, err := svc.Create(services.CreateOrderInput{UserID: 1})
	require.NoError(t, err)

	assert.NotZero(t, order.ID)
	assert.Equal(t, uint(1), order.UserID)
	assert.True(t, order.OrderDate.After(before), "order_date should default to now")
}

func TestCreateOrderExplicitDate(t *testing.T) {
	db := newDB(t)
	svc := services.NewOrderService(db)

	at := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
	order, err := svc.Create(services.CreateOrderInput{UserID: 2, OrderDate: &at})
	require.NoError(t, err)
	assert.True(t, at.Equal(order.OrderDate))
}

func TestAddProductIsIdempotent(t *testing.T) {
	db := newDB(t)
	svc := services.NewOrderService(db)

	p := seedProduct(t, db, "Basmati Rice 5kg", "12.50")
	o := seedOrder(t, db, 1, time.Now().UTC())

	require.NoError(t, svc.AddProduct(o.ID, p.ID))
	require.NoError(t, svc.AddProduct(o.ID, p.ID), "second add must not error")

	assert.Equal(t, int64(1), ledgerCount(t, db, o.ID), "duplicate add must leave one row")

	total, err := svc.TotalCost(o.ID)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("12.50")),
		"double add must not double the total, got %s", total)
}

func TestRemoveProductMissingAssociation(t *testing.T) {
	db := newDB(t)
	svc := services.NewOrderService(db)

	o := seedOrder(t, db, 1, time.Now().UTC())

	err := svc.RemoveProduct(o.ID, 999)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestRemoveProductOnceOnly(t *testing.T) {
	db := newDB(t)
	svc := services.NewOrderService(db)

	p := seedProduct(t, db, "Toor Dal 1kg", "3.20")
	o := seedOrder(t, db, 1, time.Now().UTC())

	require.NoError(t, svc.AddProduct(o.ID, p.ID))
	require.NoError(t, svc.RemoveProduct(o.ID, p.ID))

	// The association is gone, so a second removal reports not found.
	err := svc.RemoveProduct(o.ID, p.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.Equal(t, int64(0), ledgerCount(t, db, o.ID))
}

func TestProductsInOrderSortedByID(t *testing.T) {
	db := newDB(t)
	svc := services.NewOrderService(db)

	p1 := seedProduct(t, db, "Sunflower Oil 1L", "4.75")
	p2 := seedProduct(t, db, "Assam Tea 250g", "5.10")
	p3 := seedProduct(t, db, "Jaggery 500g", "2.00")
	o := seedOrder(t, db, 1, time.Now().UTC())

	// Attach out of id order; the listing is still ascending by product id.
	require.NoError(t, svc.AddProduct(o.ID, p3.ID))
	require.NoError(t, svc.AddProduct(o.ID, p1.ID))
	require.NoError(t, svc.AddProduct(o.ID, p2.ID))

	products, err := svc.ProductsInOrder(o.ID)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, p1.ID, products[0].ID)
	assert.Equal(t, p2.ID, products[1].ID)
	assert.Equal(t, p3.ID, products[2].ID)
}

func TestProductsInOrderEmpty(t *testing.T) {
	db := newDB(t)
	svc := services.NewOrderService(db)

	o := seedOrder(t, db, 1, time.Now().UTC())

	products, err := svc.ProductsInOrder(o.ID)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestTotalCostExactDecimal(t *testing.T) {
	db := newDB(t)
	svc := services.NewOrderService(db)

	// 0.10 + 0.20 trips float arithmetic; decimals must sum to exactly 0.30.
	p1 := seedProduct(t, db, "Sample A", "0.10")
	p2 := seedProduct(t, db, "Sample B", "0.20")
	o := seedOrder(t, db, 1, time.Now().UTC())

	require.NoError(t, svc.AddProduct(o.ID, p1.ID))
	require.NoError(t, svc.AddProduct(o.ID, p2.ID))

	total, err := svc.TotalCost(o.ID)
	require.NoError(t, err)
	assert.Equal(t, "0.3", total.String())
}

func TestTotalCostEmptyOrderIsZero(t *testing.T) {
	db := newDB(t)
	svc := services.NewOrderService(db)

	o := seedOrder(t, db, 1, time.Now().UTC())

	total, err := svc.TotalCost(o.ID)
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}

func TestTotalCostSkipsDeletedProducts(t *testing.T) {
	db := newDB(t)
	orders := services.NewOrderService(db)
	products := services.NewProductService(db, nil)

	kept := seedProduct(t, db, "Kept", "10.00")
	doomed := seedProduct(t, db, "Doomed", "99.99")
	o := seedOrder(t, db, 1, time.Now().UTC())

	require.NoError(t, orders.AddProduct(o.ID, kept.ID))
	require.NoError(t, orders.AddProduct(o.ID, doomed.ID))

	require.NoError(t, products.Delete(context.Background(), doomed.ID))

	// The stale ledger row stays but resolves to nothing.
	assert.Equal(t, int64(2), ledgerCount(t, db, o.ID))

	listed, err := orders.ProductsInOrder(o.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, kept.ID, listed[0].ID)

	total, err := orders.TotalCost(o.ID)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("10.00")))
}

func TestForUser(t *testing.T) {
	db := newDB(t)
	svc := services.NewOrderService(db)

	now := time.Now().UTC()
	o1 := seedOrder(t, db, 7, now.Add(-time.Hour))
	o2 := seedOrder(t, db, 7, now)
	seedOrder(t, db, 8, now) // someone else's

	orders, err := svc.ForUser(7)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, o1.ID, orders[0].ID)
	assert.Equal(t, o2.ID, orders[1].ID)
}

func TestForUserNoOrders(t *testing.T) {
	db := newDB(t)
	svc := services.NewOrderService(db)

	orders, err := svc.ForUser(42)
	require.NoError(t, err)
	assert.Empty(t, orders, "a user with no orders is an empty list, not an error")
}

func TestLatestForUser(t *testing.T) {
	db := newDB(t)
	svc := services.NewOrderService(db)

	now := time.Now().UTC()
	seedOrder(t, db, 7, now.Add(-48*time.Hour))
	latest := seedOrder(t, db, 7, now)
	seedOrder(t, db, 7, now.Add(-time.Hour))

	got, err := svc.LatestForUser(7)
	require.NoError(t, err)
	assert.Equal(t, latest.ID, got.ID)
}

func TestLatestForUserTieBreaksOnID(t *testing.T) {
	db := newDB(t)
	svc := services.NewOrderService(db)

	at := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	seedOrder(t, db, 7, at)
	second := seedOrder(t, db, 7, at)

	got, err := svc.LatestForUser(7)
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID, "equal timestamps resolve to the later insert")
}

func TestLatestForUserNone(t *testing.T) {
	db := newDB(t)
	svc := services.NewOrderService(db)

	_, err := svc.LatestForUser(42)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestOrderLifecycle(t *testing.T) {
	db := newDB(t)
	svc := services.NewOrderService(db)

	rice := seedProduct(t, db, "Basmati Rice 5kg", "10.00")
	tea := seedProduct(t, db, "Assam Tea 250g", "5.50")

	order, err := svc.Create(services.CreateOrderInput{UserID: 1})
	require.NoError(t, err)

	require.NoError(t, svc.AddProduct(order.ID, rice.ID))
	require.NoError(t, svc.AddProduct(order.ID, tea.ID))

	total, err := svc.TotalCost(order.ID)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("15.50")), "got %s", total)

	require.NoError(t, svc.RemoveProduct(order.ID, rice.ID))

	total, err = svc.TotalCost(order.ID)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("5.50")), "got %s", total)

	latest, err := svc.LatestForUser(1)
	require.NoError(t, err)
	assert.Equal(t, order.ID, latest.ID)
}
