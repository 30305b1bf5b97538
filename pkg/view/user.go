package view

import (
	"time"

	"github.com/zone3577/Test-Web/internal/modules/users"
)

// User never exposes the password hash.
type User struct {
	ID             string     `json:"id"`
	Email          string     `json:"email"`
	FullName       string     `json:"full_name"`
	Phone          string     `json:"phone,omitempty"`
	Address        string     `json:"address,omitempty"`
	Role           string     `json:"role"`
	IsBanned       bool       `json:"is_banned"`
	BanReason      string     `json:"ban_reason,omitempty"`
	IsSuspended    bool       `json:"is_suspended"`
	SuspendedUntil *time.Time `json:"suspended_until,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func UserFrom(u users.User) User {
	out := User{
		ID:             u.ID,
		Email:          u.Email,
		FullName:       u.FullName,
		Role:           u.Role,
		IsBanned:       u.IsBanned,
		IsSuspended:    u.IsSuspended,
		SuspendedUntil: u.SuspendedUntil,
		CreatedAt:      u.CreatedAt,
	}
	if u.Phone != nil {
		out.Phone = *u.Phone
	}
	if u.Address != nil {
		out.Address = *u.Address
	}
	if u.BanReason != nil {
		out.BanReason = *u.BanReason
	}
	return out
}

func UsersFrom(list []users.User) []User {
	out := make([]User, 0, len(list))
	for _, u := range list {
		out = append(out, UserFrom(u))
	}
	return out
}

type UserListPage struct {
	Items    []User `json:"items"`
	Total    int64  `json:"total"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}
