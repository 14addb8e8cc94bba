package dto

type CreateUserInput struct {
	Email  string  `json:"email"`
	Name   *string `json:"name"`
	RoleID int     `json:"roleId"`
}

// UpdateUserInput nilのフィールドは更新しない
type UpdateUserInput struct {
	Name   *string `json:"name"`
	RoleID *int    `json:"roleId"`
}

type SessionResponse struct {
	Role          string `json:"role"`
	Authenticated bool   `json:"authenticated"`
	CanManage     bool   `json:"canManage"`
}
