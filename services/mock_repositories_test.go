package services

import (
	"worker-management/models"
	"worker-management/repositories"
)

// mockUserRepository IUserRepositoryのモック
type mockUserRepository struct {
	users     map[int]models.User
	createErr error
	updateErr error

	created *models.User
	updates map[string]interface{}
	deleted []int
}

func newMockUserRepository(users ...models.User) *mockUserRepository {
	m := &mockUserRepository{users: map[int]models.User{}}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *mockUserRepository) FindAll() (*[]models.User, error) {
	users := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, u)
	}
	return &users, nil
}

func (m *mockUserRepository) FindById(userID int) (*models.User, error) {
	u, ok := m.users[userID]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return &u, nil
}

func (m *mockUserRepository) Create(newUser models.User) (*models.User, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	newUser.ID = len(m.users) + 1
	m.users[newUser.ID] = newUser
	m.created = &newUser
	return &newUser, nil
}

func (m *mockUserRepository) Update(userID int, updates map[string]interface{}) (*models.User, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	m.updates = updates
	u, ok := m.users[userID]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	if name, ok := updates["name"].(string); ok {
		u.Name = &name
	}
	if roleID, ok := updates["role_id"].(int); ok {
		u.RoleID = roleID
	}
	m.users[userID] = u
	return &u, nil
}

func (m *mockUserRepository) Delete(userID int) error {
	if _, ok := m.users[userID]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(m.users, userID)
	m.deleted = append(m.deleted, userID)
	return nil
}

// mockRoleRepository IRoleRepositoryのモック
type mockRoleRepository struct {
	roles   []models.Role
	findErr error
	seedErr error
	seeded  int
}

func (m *mockRoleRepository) FindAll() (*[]models.Role, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	roles := append([]models.Role{}, m.roles...)
	return &roles, nil
}

func (m *mockRoleRepository) FindById(roleID int) (*models.Role, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	for _, r := range m.roles {
		if r.ID == roleID {
			return &r, nil
		}
	}
	return nil, repositories.ErrRoleNotFound
}

func (m *mockRoleRepository) SeedDefaults() error {
	m.seeded++
	return m.seedErr
}
