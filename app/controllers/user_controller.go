package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/kirana/app/services"
	"github.com/shashiranjanraj/kirana/pkg/bind"
	"github.com/shashiranjanraj/kirana/pkg/pagination"
	"github.com/shashiranjanraj/kirana/pkg/response"
	"gorm.io/gorm"
)

type UserController struct {
	service *services.UserService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{service: services.NewUserService(db)}
}

// Index handles GET /users with the page/per_page contract.
func (c *UserController) Index(w http.ResponseWriter, r *http.Request) {
	p := pagination.FromRequest(r)

	users, meta, err := c.service.List(p)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	response.Paginated(w, users, meta)
}

// Show handles GET /users/{id}.
func (c *UserController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(w, r, "id")
	if !ok {
		return
	}

	user, err := c.service.Get(id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	response.Success(w, user)
}

// Update handles PUT /users/{id}.
func (c *UserController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(w, r, "id")
	if !ok {
		return
	}

	var in services.UpdateUserInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, err := c.service.Update(id, in)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	response.Success(w, user)
}

// Destroy handles DELETE /users/{id}.
func (c *UserController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(w, r, "id")
	if !ok {
		return
	}

	if err := c.service.Delete(id); err != nil {
		respondServiceError(w, r, err)
		return
	}

	response.NoContent(w)
}
