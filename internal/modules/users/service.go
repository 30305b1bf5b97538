package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/zone3577/Test-Web/internal/modules/notifications"
	"github.com/zone3577/Test-Web/internal/shared/apperr"
)

// Notifier is the slice of the notification service this module needs.
type Notifier interface {
	Notify(ctx context.Context, in notifications.New) (notifications.Notification, error)
}

type Service struct {
	db       *gorm.DB
	repo     *Repo
	notifier Notifier
}

func NewService(db *gorm.DB, notifier Notifier) *Service {
	return &Service{db: db, repo: NewRepo(db), notifier: notifier}
}

type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Phone    string
	Address  string
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, apperr.Wrap(err)
	}

	u := User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(in.FullName),
		Role:         "customer",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if p := strings.TrimSpace(in.Phone); p != "" {
		u.Phone = &p
	}
	if a := strings.TrimSpace(in.Address); a != "" {
		u.Address = &a
	}

	if err := s.repo.Create(ctx, &u); err != nil {
		if IsDuplicateKey(err) {
			return User{}, apperr.ConflictErr("An account with this email already exists.")
		}
		return User{}, apperr.Wrap(err)
	}

	// Best effort; registration already succeeded.
	_, _ = s.notifier.Notify(ctx, notifications.New{
		Type:    notifications.TypeUserRegistered,
		Title:   "New customer",
		Message: fmt.Sprintf("%s (%s) created an account", u.FullName, u.Email),
		UserID:  &u.ID,
	})

	return u, nil
}

// Authenticate verifies credentials and moderation state. Banned and
// actively suspended accounts cannot sign in.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return User{}, apperr.UnauthorizedErr("Email or password is incorrect.")
		}
		return User{}, apperr.Wrap(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return User{}, apperr.UnauthorizedErr("Email or password is incorrect.")
	}

	if u.IsBanned {
		return User{}, apperr.ForbiddenErr("This account has been banned.")
	}
	if u.Suspended(time.Now()) {
		return User{}, apperr.ForbiddenErr("This account is suspended.")
	}

	return u, nil
}

// Ban marks the account banned and records the reason. Runs in a
// transaction so the moderation flag and the audit notification land
// together.
func (s *Service) Ban(ctx context.Context, userID, reason string) error {
	return s.moderate(ctx, userID, map[string]any{
		"is_banned":  true,
		"ban_reason": strings.TrimSpace(reason),
		"updated_at": time.Now(),
	}, "Account banned", fmt.Sprintf("reason: %s", strings.TrimSpace(reason)))
}

func (s *Service) Suspend(ctx context.Context, userID string, until time.Time, reason string) error {
	if !until.After(time.Now()) {
		return apperr.InvalidErr("Suspension end must be in the future.", nil)
	}
	return s.moderate(ctx, userID, map[string]any{
		"is_suspended":    true,
		"suspended_until": until,
		"ban_reason":      strings.TrimSpace(reason),
		"updated_at":      time.Now(),
	}, "Account suspended", fmt.Sprintf("until %s: %s", until.Format(time.RFC3339), strings.TrimSpace(reason)))
}

func (s *Service) Unban(ctx context.Context, userID string) error {
	return s.moderate(ctx, userID, map[string]any{
		"is_banned":       false,
		"is_suspended":    false,
		"ban_reason":      nil,
		"suspended_until": nil,
		"updated_at":      time.Now(),
	}, "Account restored", "moderation flags cleared")
}

func (s *Service) moderate(ctx context.Context, userID string, updates map[string]any, title, detail string) error {
	var u User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&u, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFoundErr("User not found.")
			}
			return err
		}
		return tx.Model(&User{}).Where("id = ?", userID).Updates(updates).Error
	})
	if err != nil {
		if _, ok := apperr.As(err); ok {
			return err
		}
		return apperr.Wrap(err)
	}

	_, _ = s.notifier.Notify(ctx, notifications.New{
		Type:    notifications.TypeSystem,
		Title:   title,
		Message: fmt.Sprintf("%s (%s): %s", u.FullName, u.Email, detail),
		UserID:  &u.ID,
	})
	return nil
}

func (s *Service) AdminList(ctx context.Context, in AdminListParams) (AdminListResult, error) {
	return s.repo.AdminList(ctx, in)
}
