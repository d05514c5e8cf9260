package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shashiranjanraj/kirana/app/models"
	"github.com/shashiranjanraj/kirana/app/repositories"
	"github.com/shashiranjanraj/kirana/pkg/cache"
	"github.com/shashiranjanraj/kirana/pkg/metrics"
	"github.com/shashiranjanraj/kirana/pkg/pagination"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const productCacheTTL = 5 * time.Minute

// ProductService covers catalogue CRUD. Single-product reads go through a
// best-effort Redis cache; every write invalidates the cached entry so a
// read after update or delete never sees the stale product.
type ProductService struct {
	products *repositories.ProductRepository
	cache    *cache.Cache
}

func NewProductService(db *gorm.DB, c *cache.Cache) *ProductService {
	return &ProductService{
		products: repositories.NewProductRepository(db),
		cache:    c,
	}
}

// ProductInput is the payload for creating or updating a product.
type ProductInput struct {
	Name  string          `json:"product_name" validate:"required,min=1,max=100"`
	Price decimal.Decimal `json:"price"`
}

// Validate enforces the constraints the struct tags cannot express.
func (in ProductInput) Validate() map[string]string {
	if in.Price.IsNegative() {
		return map[string]string{"price": "The price field must not be negative."}
	}
	return nil
}

func productCacheKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}

// List returns one page of products with the pagination metadata.
func (s *ProductService) List(p pagination.Params) ([]models.Product, pagination.Meta, error) {
	products, total, err := s.products.List(p)
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("products: list: %w", err)
	}
	return products, p.MetaFor(total), nil
}

// Get returns a single product or ErrNotFound, consulting the cache first.
func (s *ProductService) Get(ctx context.Context, id uint) (models.Product, error) {
	key := productCacheKey(id)

	var cached models.Product
	if s.cache.Get(ctx, key, &cached) {
		metrics.CacheHits.WithLabelValues("product").Inc()
		return cached, nil
	}
	metrics.CacheMisses.WithLabelValues("product").Inc()

	product, err := s.products.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Product{}, ErrNotFound
		}
		return models.Product{}, fmt.Errorf("products: find %d: %w", id, err)
	}

	_ = s.cache.Set(ctx, key, product, productCacheTTL)
	return product, nil
}

// Create persists a new catalogue entry.
func (s *ProductService) Create(in ProductInput) (models.Product, error) {
	product := models.Product{Name: in.Name, Price: in.Price}
	if err := s.products.Create(&product); err != nil {
		return models.Product{}, fmt.Errorf("products: create: %w", err)
	}
	return product, nil
}

// Update replaces the product's fields and drops the cached copy.
func (s *ProductService) Update(ctx context.Context, id uint, in ProductInput) (models.Product, error) {
	product, err := s.products.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Product{}, ErrNotFound
		}
		return models.Product{}, fmt.Errorf("products: find %d: %w", id, err)
	}

	product.Name = in.Name
	product.Price = in.Price

	if err := s.products.Update(&product); err != nil {
		return models.Product{}, fmt.Errorf("products: update %d: %w", id, err)
	}

	_ = s.cache.Forget(ctx, productCacheKey(id))
	return product, nil
}

// Delete removes the product and drops the cached copy. Order associations
// pointing at it remain in the ledger; aggregation treats them as orphans.
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	product, err := s.products.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("products: find %d: %w", id, err)
	}

	if err := s.products.Delete(&product); err != nil {
		return fmt.Errorf("products: delete %d: %w", id, err)
	}

	_ = s.cache.Forget(ctx, productCacheKey(id))
	return nil
}
