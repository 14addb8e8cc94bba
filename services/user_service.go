package services

import (
	"errors"
	"worker-management/dto"
	"worker-management/models"
	"worker-management/repositories"

	"go.uber.org/zap"
)

type IUserService interface {
	FindAll() (*[]models.User, error)
	FindById(userID int) (*models.User, error)
	Create(createUserInput dto.CreateUserInput) (*models.User, error)
	Update(userID int, updateUserInput dto.UpdateUserInput) (*models.User, error)
	Delete(userID int) error
}

type UserService struct {
	repository          repositories.IUserRepository
	roleRepository      repositories.IRoleRepository
	reseedOnMissingRole bool
	logger              *zap.Logger
}

func NewUserService(
	repository repositories.IUserRepository,
	roleRepository repositories.IRoleRepository,
	reseedOnMissingRole bool,
	logger *zap.Logger,
) IUserService {
	return &UserService{
		repository:          repository,
		roleRepository:      roleRepository,
		reseedOnMissingRole: reseedOnMissingRole,
		logger:              logger,
	}
}

func (s *UserService) FindAll() (*[]models.User, error) {
	return s.repository.FindAll()
}

func (s *UserService) FindById(userID int) (*models.User, error) {
	return s.repository.FindById(userID)
}

func (s *UserService) Create(createUserInput dto.CreateUserInput) (*models.User, error) {
	if err := s.ensureRole(createUserInput.RoleID); err != nil {
		return nil, err
	}

	newUser := models.User{
		Email:  createUserInput.Email,
		Name:   createUserInput.Name,
		RoleID: createUserInput.RoleID,
	}
	return s.repository.Create(newUser)
}

func (s *UserService) Update(userID int, updateUserInput dto.UpdateUserInput) (*models.User, error) {
	if _, err := s.FindById(userID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if updateUserInput.Name != nil {
		updates["name"] = *updateUserInput.Name
	}
	if updateUserInput.RoleID != nil {
		if _, err := s.roleRepository.FindById(*updateUserInput.RoleID); err != nil {
			return nil, err
		}
		updates["role_id"] = *updateUserInput.RoleID
	}
	return s.repository.Update(userID, updates)
}

func (s *UserService) Delete(userID int) error {
	return s.repository.Delete(userID)
}

// ensureRole ロールが存在しない場合、設定が有効ならデフォルトロールを再シードする
// 再シード後に指定のroleIdが存在するかは確認しない。存在しなければ外部キー制約で失敗する
func (s *UserService) ensureRole(roleID int) error {
	_, err := s.roleRepository.FindById(roleID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repositories.ErrRoleNotFound) || !s.reseedOnMissingRole {
		return err
	}

	s.logger.Warn("Role not found, reseeding default roles", zap.Int("role_id", roleID))
	return s.roleRepository.SeedDefaults()
}
