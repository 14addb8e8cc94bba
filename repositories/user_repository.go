package repositories

import (
	"errors"
	"worker-management/models"

	"gorm.io/gorm"
)

type IUserRepository interface {
	FindAll() (*[]models.User, error)
	FindById(userID int) (*models.User, error)
	Create(newUser models.User) (*models.User, error)
	Update(userID int, updates map[string]interface{}) (*models.User, error)
	Delete(userID int) error
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) IUserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindAll() (*[]models.User, error) {
	users := make([]models.User, 0)
	result := r.db.Preload("Role").Order("id").Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return &users, nil
}

func (r *UserRepository) FindById(userID int) (*models.User, error) {
	var user models.User
	result := r.db.Preload("Role").First(&user, "id = ?", userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

func (r *UserRepository) Create(newUser models.User) (*models.User, error) {
	// ロールはroleIdで紐付けるだけで、関連レコードは保存しない
	newUser.Role = nil
	result := r.db.Omit("Role").Create(&newUser)
	if result.Error != nil {
		return nil, translateWriteError(result.Error)
	}
	return r.FindById(newUser.ID)
}

func (r *UserRepository) Update(userID int, updates map[string]interface{}) (*models.User, error) {
	if len(updates) == 0 {
		return r.FindById(userID)
	}

	result := r.db.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(updates)

	if result.Error != nil {
		return nil, translateWriteError(result.Error)
	}

	if result.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}

	return r.FindById(userID)
}

func (r *UserRepository) Delete(userID int) error {
	result := r.db.Delete(&models.User{}, "id = ?", userID)
	if result.Error != nil {
		return translateWriteError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
