package adminauth

import "time"

const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

type Admin struct {
	ID           string     `gorm:"primaryKey;type:char(36)"`
	Username     string     `gorm:"type:varchar(64);not null;uniqueIndex:ux_admins_username"`
	Email        string     `gorm:"type:varchar(255);not null"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	FullName     *string    `gorm:"type:varchar(255)"`
	Role         string     `gorm:"type:varchar(16);not null;default:admin"`
	LastLoginAt  *time.Time `gorm:"type:datetime(3)"`
	CreatedAt    time.Time  `gorm:"type:datetime(3);not null"`
	UpdatedAt    time.Time  `gorm:"type:datetime(3);not null"`
}

func (Admin) TableName() string { return "admins" }

// Identity is what a verified session token resolves to.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
	Role     string `json:"role"`
}
