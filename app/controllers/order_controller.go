package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/kirana/app/services"
	"github.com/shashiranjanraj/kirana/pkg/bind"
	"github.com/shashiranjanraj/kirana/pkg/logger"
	"github.com/shashiranjanraj/kirana/pkg/response"
	"gorm.io/gorm"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{service: services.NewOrderService(db)}
}

// Store handles POST /orders. order_date defaults to now when omitted.
func (c *OrderController) Store(w http.ResponseWriter, r *http.Request) {
	var in services.CreateOrderInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	order, err := c.service.Create(in)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info("order created", "order_id", order.ID, "user_id", order.UserID)
	response.Created(w, order)
}

// AddProduct handles PUT /orders/{orderId}/add_product/{productId}.
// Re-adding an existing pair answers 204 exactly like the first add.
func (c *OrderController) AddProduct(w http.ResponseWriter, r *http.Request) {
	orderID, ok := uintParam(w, r, "orderId")
	if !ok {
		return
	}
	productID, ok := uintParam(w, r, "productId")
	if !ok {
		return
	}

	if err := c.service.AddProduct(orderID, productID); err != nil {
		respondServiceError(w, r, err)
		return
	}

	response.NoContent(w)
}

// RemoveProduct handles DELETE /orders/{orderId}/remove_product/{productId}.
// A pair that is not present answers 404.
func (c *OrderController) RemoveProduct(w http.ResponseWriter, r *http.Request) {
	orderID, ok := uintParam(w, r, "orderId")
	if !ok {
		return
	}
	productID, ok := uintParam(w, r, "productId")
	if !ok {
		return
	}

	if err := c.service.RemoveProduct(orderID, productID); err != nil {
		respondServiceError(w, r, err)
		return
	}

	response.NoContent(w)
}

// ByUser handles GET /orders/user/{userId}. An unknown user simply has no
// orders — the result is an empty list, not a 404.
func (c *OrderController) ByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := uintParam(w, r, "userId")
	if !ok {
		return
	}

	orders, err := c.service.ForUser(userID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	response.Success(w, orders)
}

// Products handles GET /orders/{orderId}/products.
func (c *OrderController) Products(w http.ResponseWriter, r *http.Request) {
	orderID, ok := uintParam(w, r, "orderId")
	if !ok {
		return
	}

	products, err := c.service.ProductsInOrder(orderID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	response.Success(w, products)
}

// Total handles GET /orders/{orderId}/total.
func (c *OrderController) Total(w http.ResponseWriter, r *http.Request) {
	orderID, ok := uintParam(w, r, "orderId")
	if !ok {
		return
	}

	total, err := c.service.TotalCost(orderID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"order_id":   orderID,
		"total_cost": total,
	})
}

// Latest handles GET /orders/user/{userId}/latest.
func (c *OrderController) Latest(w http.ResponseWriter, r *http.Request) {
	userID, ok := uintParam(w, r, "userId")
	if !ok {
		return
	}

	order, err := c.service.LatestForUser(userID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	response.Success(w, order)
}
