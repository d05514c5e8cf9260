package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/kirana/app/services"
	"github.com/shashiranjanraj/kirana/pkg/bind"
	"github.com/shashiranjanraj/kirana/pkg/cache"
	"github.com/shashiranjanraj/kirana/pkg/pagination"
	"github.com/shashiranjanraj/kirana/pkg/response"
	"gorm.io/gorm"
)

type ProductController struct {
	service *services.ProductService
}

func NewProductController(db *gorm.DB, c *cache.Cache) *ProductController {
	return &ProductController{service: services.NewProductService(db, c)}
}

// Index handles GET /products with the page/per_page contract.
func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	p := pagination.FromRequest(r)

	products, meta, err := c.service.List(p)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	response.Paginated(w, products, meta)
}

// Show handles GET /products/{id}.
func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(w, r, "id")
	if !ok {
		return
	}

	product, err := c.service.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	response.Success(w, product)
}

// bindProductInput binds and fully validates a product payload, writing the
// error response itself on failure.
func bindProductInput(w http.ResponseWriter, r *http.Request) (services.ProductInput, bool) {
	var in services.ProductInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return in, false
	}
	if errs == nil {
		errs = in.Validate()
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return in, false
	}
	return in, true
}

// Store handles POST /products.
func (c *ProductController) Store(w http.ResponseWriter, r *http.Request) {
	in, ok := bindProductInput(w, r)
	if !ok {
		return
	}

	product, err := c.service.Create(in)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	response.Created(w, product)
}

// Update handles PUT /products/{id}.
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(w, r, "id")
	if !ok {
		return
	}

	in, ok := bindProductInput(w, r)
	if !ok {
		return
	}

	product, err := c.service.Update(r.Context(), id, in)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	response.Success(w, product)
}

// Destroy handles DELETE /products/{id}. Ledger rows referencing the product
// stay behind; aggregation filters them out.
func (c *ProductController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(w, r, "id")
	if !ok {
		return
	}

	if err := c.service.Delete(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}

	response.NoContent(w)
}
