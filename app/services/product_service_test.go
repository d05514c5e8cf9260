package services_test

import (
	"context"
	"testing"

	"github.com/shashiranjanraj/kirana/app/services"
	"github.com/shashiranjanraj/kirana/pkg/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductCRUD(t *testing.T) {
	db := newDB(t)
	svc := services.NewProductService(db, nil)
	ctx := context.Background()

	created, err := svc.Create(services.ProductInput{
		Name:  "Basmati Rice 5kg",
		Price: decimal.RequireFromString("12.50"),
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Basmati Rice 5kg", got.Name)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("12.50")))

	updated, err := svc.Update(ctx, created.ID, services.ProductInput{
		Name:  "Basmati Rice 10kg",
		Price: decimal.RequireFromString("22.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Basmati Rice 10kg", updated.Name)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestProductGetMissing(t *testing.T) {
	db := newDB(t)
	svc := services.NewProductService(db, nil)

	_, err := svc.Get(context.Background(), 999)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestProductUpdateMissing(t *testing.T) {
	db := newDB(t)
	svc := services.NewProductService(db, nil)

	_, err := svc.Update(context.Background(), 999, services.ProductInput{
		Name:  "Ghost",
		Price: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, services.ErrNotFound)

	err = svc.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestProductInputRejectsNegativePrice(t *testing.T) {
	in := services.ProductInput{
		Name:  "Broken",
		Price: decimal.RequireFromString("-1.00"),
	}
	errs := in.Validate()
	assert.Contains(t, errs, "price")

	in.Price = decimal.Zero
	assert.Nil(t, in.Validate(), "zero price is allowed")
}

func TestProductListPagination(t *testing.T) {
	db := newDB(t)
	svc := services.NewProductService(db, nil)

	for i := 0; i < 25; i++ {
		seedProduct(t, db, "Item", "1.00")
	}

	items, meta, err := svc.List(pagination.Sanitize(3, 10))
	require.NoError(t, err)
	assert.Len(t, items, 5, "last page holds the remainder")
	assert.Equal(t, int64(25), meta.Total)
	assert.Equal(t, 3, meta.Pages)
	assert.Equal(t, 3, meta.CurrentPage)

	// Pages past the end are legal: empty slice, same totals.
	items, meta, err = svc.List(pagination.Sanitize(100, 10))
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, int64(25), meta.Total)
	assert.Equal(t, 3, meta.Pages)
}
