package repositories

import (
	"errors"
	"worker-management/constants"
	"worker-management/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IRoleRepository interface {
	FindAll() (*[]models.Role, error)
	FindById(roleID int) (*models.Role, error)
	SeedDefaults() error
}

type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) IRoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) FindAll() (*[]models.Role, error) {
	roles := make([]models.Role, 0)
	result := r.db.Order("id").Find(&roles)
	if result.Error != nil {
		return nil, result.Error
	}
	return &roles, nil
}

func (r *RoleRepository) FindById(roleID int) (*models.Role, error) {
	var role models.Role
	result := r.db.First(&role, "id = ?", roleID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, result.Error
	}
	return &role, nil
}

// SeedDefaults ADMIN/USERを作成する。既に存在するロールはスキップする
func (r *RoleRepository) SeedDefaults() error {
	roles := make([]models.Role, 0, len(constants.DefaultRoles))
	for _, name := range constants.DefaultRoles {
		roles = append(roles, models.Role{Name: name})
	}
	result := r.db.
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&roles)
	return result.Error
}
