package orders

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/zone3577/Test-Web/internal/shared/apperr"
)

type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService { return &AdminService{db: db} }

type TransitionInput struct {
	OrderID string
	ActorID string // admin id from the token
	To      string
	Note    string
}

// Transition moves an order to the selected status. The row is locked for
// the duration and the UPDATE carries the old status as a predicate, so a
// concurrent transition loses instead of silently overwriting.
func (s *AdminService) Transition(ctx context.Context, in TransitionInput) error {
	if in.OrderID == "" || in.ActorID == "" {
		return apperr.InvalidErr("Order and actor are required.", nil)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var o Order
		if err := tx.WithContext(ctx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&o, "id = ?", in.OrderID).Error; err != nil {
			return err
		}

		from := o.Status
		if err := ValidateTransition(from, in.To); err != nil {
			return err
		}

		now := time.Now()
		res := tx.WithContext(ctx).
			Model(&Order{}).
			Where("id = ? AND status = ?", o.ID, from). // optimistic guard
			Updates(map[string]any{
				"status":     in.To,
				"updated_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return ErrInvalidTransition
		}

		var notePtr *string
		if n := strings.TrimSpace(in.Note); n != "" {
			notePtr = &n
		}

		ev := Event{
			ID:         uuid.NewString(),
			OrderID:    o.ID,
			ActorID:    in.ActorID,
			FromStatus: from,
			ToStatus:   in.To,
			Note:       notePtr,
			CreatedAt:  now,
		}
		return tx.WithContext(ctx).Create(&ev).Error
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.NotFoundErr("Order not found.")
	case errors.Is(err, ErrUnknownStatus):
		return apperr.InvalidErr("Unknown order status.", nil)
	case errors.Is(err, ErrInvalidTransition):
		return apperr.ConflictErr("Order status can no longer be changed.")
	default:
		return apperr.Wrap(err)
	}
}

// SetPaymentStatus updates the payment flag; "paid" stamps paid_at once.
func (s *AdminService) SetPaymentStatus(ctx context.Context, orderID, status string) error {
	switch status {
	case PaymentPending, PaymentPaid, PaymentRefunded:
	default:
		return apperr.InvalidErr("Unknown payment status.", nil)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var o Order
		if err := tx.WithContext(ctx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&o, "id = ?", orderID).Error; err != nil {
			return err
		}

		now := time.Now()
		updates := map[string]any{
			"payment_status": status,
			"updated_at":     now,
		}
		if status == PaymentPaid && o.PaidAt == nil {
			updates["paid_at"] = now
		}
		return tx.WithContext(ctx).
			Model(&Order{}).
			Where("id = ?", o.ID).
			Updates(updates).Error
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.NotFoundErr("Order not found.")
	default:
		return apperr.Wrap(err)
	}
}
