package constants

// ロール
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// 起動時にこの順番でシードされる
var DefaultRoles = []string{RoleAdmin, RoleUser}

// エラーメッセージ
const (
	ErrUnexpected           = "Something went wrong"
	ErrInvalidID            = "Invalid user ID"
	ErrInvalidInput         = "Invalid input"
	ErrUserNotFound         = "User not found"
	ErrEmailAndRoleRequired = "Email and role are required"
	ErrEmailExists          = "Email already exists"
	ErrForbidden            = "Forbidden: Admins only"
	ErrInvalidToken         = "Invalid or expired token"
)

const UsersPath = "/api/users"
