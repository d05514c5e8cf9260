package services

import (
	"errors"
	"fmt"

	"github.com/shashiranjanraj/kirana/app/models"
	"github.com/shashiranjanraj/kirana/app/repositories"
	"github.com/shashiranjanraj/kirana/pkg/auth"
	"gorm.io/gorm"
)

// AuthService handles registration and credential verification.
type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{users: repositories.NewUserRepository(db)}
}

// RegisterInput is the payload for account creation.
type RegisterInput struct {
	Name     string `json:"name"     validate:"required,min=2,max=100"`
	Address  string `json:"address"  validate:"nullable,max=200"`
	Email    string `json:"email"    validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=8"`
}

// Register hashes the password and creates the account. The plaintext is
// never stored and the returned record never exposes the hash.
func (s *AuthService) Register(in RegisterInput) (models.User, error) {
	taken, err := s.users.EmailTaken(in.Email)
	if err != nil {
		return models.User{}, fmt.Errorf("auth: check email: %w", err)
	}
	if taken {
		return models.User{}, ErrEmailTaken
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("auth: hash password: %w", err)
	}

	user := models.User{
		Name:     in.Name,
		Address:  in.Address,
		Email:    in.Email,
		Password: hash,
	}
	if err := s.users.Create(&user); err != nil {
		return models.User{}, fmt.Errorf("auth: create user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and issues an access token. Unknown email
// and wrong password both yield ErrInvalidCredentials.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("auth: find user: %w", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return "", ErrInvalidCredentials
	}

	return auth.GenerateToken(user.ID)
}
