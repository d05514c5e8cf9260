package services

import (
	"errors"
	"fmt"

	"github.com/shashiranjanraj/kirana/app/models"
	"github.com/shashiranjanraj/kirana/app/repositories"
	"github.com/shashiranjanraj/kirana/pkg/pagination"
	"gorm.io/gorm"
)

// UserService covers the self-service account operations.
type UserService struct {
	users *repositories.UserRepository
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{users: repositories.NewUserRepository(db)}
}

// UpdateUserInput is the payload for PUT /users/{id}.
type UpdateUserInput struct {
	Name    string `json:"name"    validate:"required,min=2,max=100"`
	Address string `json:"address" validate:"nullable,max=200"`
	Email   string `json:"email"   validate:"required,email,max=100"`
}

// List returns one page of users with the pagination metadata.
func (s *UserService) List(p pagination.Params) ([]models.User, pagination.Meta, error) {
	users, total, err := s.users.List(p)
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("users: list: %w", err)
	}
	return users, p.MetaFor(total), nil
}

// Get returns a single user or ErrNotFound.
func (s *UserService) Get(id uint) (models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, fmt.Errorf("users: find %d: %w", id, err)
	}
	return user, nil
}

// Update replaces the user's mutable fields. Changing the email to one held
// by another account fails with ErrEmailTaken.
func (s *UserService) Update(id uint, in UpdateUserInput) (models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return models.User{}, err
	}

	if in.Email != user.Email {
		taken, err := s.users.EmailTaken(in.Email)
		if err != nil {
			return models.User{}, fmt.Errorf("users: check email: %w", err)
		}
		if taken {
			return models.User{}, ErrEmailTaken
		}
	}

	user.Name = in.Name
	user.Address = in.Address
	user.Email = in.Email

	if err := s.users.Update(&user); err != nil {
		return models.User{}, fmt.Errorf("users: update %d: %w", id, err)
	}
	return user, nil
}

// Delete removes the account. The user's orders survive as orphans — the
// aggregation queries tolerate them and nothing cleans them up automatically.
func (s *UserService) Delete(id uint) error {
	user, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.users.Delete(&user); err != nil {
		return fmt.Errorf("users: delete %d: %w", id, err)
	}
	return nil
}
