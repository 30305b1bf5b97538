package users

import "time"

type User struct {
	ID           string  `gorm:"primaryKey;type:char(36)"`
	Email        string  `gorm:"type:varchar(255);not null;uniqueIndex:ux_users_email"`
	PasswordHash string  `gorm:"type:varchar(255);not null"`
	FullName     string  `gorm:"type:varchar(255)"`
	Phone        *string `gorm:"type:varchar(32)"`
	Address      *string `gorm:"type:text"`
	Role         string  `gorm:"type:varchar(16);not null;default:customer"`

	// Moderation state, written only by the admin procedures.
	IsBanned       bool       `gorm:"not null;default:false"`
	BanReason      *string    `gorm:"type:varchar(255)"`
	IsSuspended    bool       `gorm:"not null;default:false"`
	SuspendedUntil *time.Time `gorm:"type:datetime(3)"`

	CreatedAt time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt time.Time `gorm:"type:datetime(3);not null"`
}

func (User) TableName() string { return "users" }

// Suspended reports whether the user is currently under an active suspension.
func (u User) Suspended(now time.Time) bool {
	return u.IsSuspended && (u.SuspendedUntil == nil || u.SuspendedUntil.After(now))
}
