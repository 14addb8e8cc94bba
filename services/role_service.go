package services

import (
	"worker-management/models"
	"worker-management/repositories"
)

type IRoleService interface {
	FindAll() (*[]models.Role, error)
}

type RoleService struct {
	repository repositories.IRoleRepository
}

func NewRoleService(repository repositories.IRoleRepository) IRoleService {
	return &RoleService{repository: repository}
}

func (s *RoleService) FindAll() (*[]models.Role, error) {
	return s.repository.FindAll()
}
