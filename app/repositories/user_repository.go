package repositories

import (
	"github.com/shashiranjanraj/kirana/app/models"
	"github.com/shashiranjanraj/kirana/pkg/pagination"
	"gorm.io/gorm"
)

// UserRepository handles database operations for User. The gorm handle is
// injected so tests can point it at an in-memory database.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByEmail looks up a user by their email address. The lookup is
// case-sensitive, matching the uniqueness constraint.
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	return user, err
}

// FindByID looks up a user by primary key.
func (r *UserRepository) FindByID(id uint) (models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	return user, err
}

// EmailTaken reports whether any user already holds the given email.
func (r *UserRepository) EmailTaken(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// Create persists a new user record.
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// Update persists changes to an existing user.
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// Delete removes a user. Orders owned by the user are intentionally left in
// place — orphaned orders are permitted.
func (r *UserRepository) Delete(user *models.User) error {
	return r.db.Delete(user).Error
}

// List returns one page of users plus the total count.
func (r *UserRepository) List(p pagination.Params) ([]models.User, int64, error) {
	var total int64
	if err := r.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	users := []models.User{}
	err := r.db.Order("id asc").Scopes(p.Scope()).Find(&users).Error
	return users, total, err
}
