package models

// User Roleはプリロードした場合のみ設定される
type User struct {
	ID     int     `gorm:"primaryKey" json:"id"`
	Name   *string `json:"name"`
	Email  string  `gorm:"not null;uniqueIndex" json:"email"`
	RoleID int     `gorm:"not null;index" json:"roleId"`
	Role   *Role   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"role,omitempty"`
}
