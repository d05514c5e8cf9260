// Package routes wires the public API surface onto the router.
package routes

import (
	"net/http"

	"github.com/shashiranjanraj/kirana/app/controllers"
	"github.com/shashiranjanraj/kirana/pkg/cache"
	"github.com/shashiranjanraj/kirana/pkg/metrics"
	"github.com/shashiranjanraj/kirana/pkg/middleware"
	"github.com/shashiranjanraj/kirana/pkg/router"
	"gorm.io/gorm"
)

// RegisterAPI mounts every endpoint. Only /users (register), /login,
// /healthz and /metrics are public; everything else sits behind the bearer
// token guard.
func RegisterAPI(r *router.Router, db *gorm.DB, store *cache.Cache) {
	authController := controllers.NewAuthController(db)
	userController := controllers.NewUserController(db)
	productController := controllers.NewProductController(db, store)
	orderController := controllers.NewOrderController(db)

	r.Get("/healthz", "healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok")) //nolint:errcheck
	})
	r.Get("/metrics", "metrics", metrics.Handler())

	r.Post("/users", "users.store", authController.Register)
	r.Post("/login", "auth.login", authController.Login)

	protected := r.Group("", middleware.Auth)

	protected.Get("/users", "users.index", userController.Index)
	protected.Get("/users/{id}", "users.show", userController.Show)
	protected.Put("/users/{id}", "users.update", userController.Update)
	protected.Delete("/users/{id}", "users.destroy", userController.Destroy)

	protected.Get("/products", "products.index", productController.Index)
	protected.Get("/products/{id}", "products.show", productController.Show)
	protected.Post("/products", "products.store", productController.Store)
	protected.Put("/products/{id}", "products.update", productController.Update)
	protected.Delete("/products/{id}", "products.destroy", productController.Destroy)

	protected.Post("/orders", "orders.store", orderController.Store)
	protected.Put("/orders/{orderId}/add_product/{productId}", "orders.add_product", orderController.AddProduct)
	protected.Delete("/orders/{orderId}/remove_product/{productId}", "orders.remove_product", orderController.RemoveProduct)
	protected.Get("/orders/user/{userId}", "orders.by_user", orderController.ByUser)
	protected.Get("/orders/user/{userId}/latest", "orders.latest", orderController.Latest)
	protected.Get("/orders/{orderId}/products", "orders.products", orderController.Products)
	protected.Get("/orders/{orderId}/total", "orders.total", orderController.Total)
}
