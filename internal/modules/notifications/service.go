package notifications

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/zone3577/Test-Web/internal/shared/apperr"
)

type Service struct {
	store  Store
	pub    *Publisher
	logger *slog.Logger
}

func NewService(store Store, pub *Publisher, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, pub: pub, logger: logger}
}

// Notify persists a notification and fans it out to subscribed admin
// clients. Publish failures are logged, not returned: the row is already
// durable and the bell falls back to polling.
func (s *Service) Notify(ctx context.Context, in New) (Notification, error) {
	n := Notification{
		ID:        uuid.NewString(),
		Type:      in.Type,
		Title:     in.Title,
		Message:   in.Message,
		OrderID:   in.OrderID,
		UserID:    in.UserID,
		ProductID: in.ProductID,
		CreatedAt: time.Now(),
	}
	if err := s.store.Insert(ctx, n); err != nil {
		return Notification{}, err
	}
	if s.pub != nil {
		if err := s.pub.Publish(ctx, n); err != nil {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "notification_publish_failed",
				slog.String("notification_id", n.ID),
				slog.Any("err", err),
			)
		}
	}
	return n, nil
}

func (s *Service) List(ctx context.Context, limit int) ([]Notification, error) {
	return s.store.List(ctx, limit)
}

// MarkRead flips the read flag for exactly one entry.
func (s *Service) MarkRead(ctx context.Context, id string) error {
	affected, err := s.store.MarkRead(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFoundErr("Notification not found or already read.")
	}
	return nil
}

// MarkAllRead flips every currently unread entry.
func (s *Service) MarkAllRead(ctx context.Context) error {
	return s.store.MarkAllRead(ctx)
}

func (s *Service) UnreadCount(ctx context.Context) (int64, error) {
	return s.store.CountUnread(ctx)
}
