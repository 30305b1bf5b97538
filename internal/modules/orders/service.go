package orders

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zone3577/Test-Web/internal/mailer"
	"github.com/zone3577/Test-Web/internal/modules/cart"
	"github.com/zone3577/Test-Web/internal/modules/checkout"
	"github.com/zone3577/Test-Web/internal/modules/notifications"
	"github.com/zone3577/Test-Web/internal/shared/apperr"
)

// Notifier is the slice of the notification service order creation needs.
type Notifier interface {
	Notify(ctx context.Context, in notifications.New) (notifications.Notification, error)
}

type Service struct {
	db       *gorm.DB
	cartRepo *cart.Repo
	notifier Notifier
	mail     mailer.Service
	fromAddr string
	fromName string
	logger   *slog.Logger
}

func NewService(db *gorm.DB, cartRepo *cart.Repo, notifier Notifier, mail mailer.Service, fromAddr, fromName string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		db:       db,
		cartRepo: cartRepo,
		notifier: notifier,
		mail:     mail,
		fromAddr: fromAddr,
		fromName: fromName,
		logger:   logger,
	}
}

func formatAmount(cents int, currency string) string {
	return fmt.Sprintf("%.2f %s", float64(cents)/100, currency)
}

// Customer identifies the buyer; name and email are denormalized onto the
// order row.
type Customer struct {
	ID    string
	Name  string
	Email string
}

type CreateInput struct {
	ShippingAddress string
	Phone           string
	Notes           string
}

// TotalCents sums the line subtotals.
func TotalCents(items []Item) int {
	total := 0
	for _, it := range items {
		total += it.SubtotalCents
	}
	return total
}

// LinesFromCart converts cart lines to order lines, computing each
// subtotal. All lines must share one currency.
func LinesFromCart(cartItems []cart.Item) ([]Item, string, error) {
	if len(cartItems) == 0 {
		return nil, "", ErrCartEmpty
	}
	currency := ""
	items := make([]Item, 0, len(cartItems))
	for _, ci := range cartItems {
		if ci.Quantity <= 0 {
			continue
		}
		if currency == "" {
			currency = ci.Currency
		} else if !strings.EqualFold(ci.Currency, currency) {
			return nil, "", ErrCurrencyMismatch
		}
		items = append(items, Item{
			ID:            uuid.NewString(),
			ProductID:     ci.ProductID,
			ProductName:   ci.ProductName,
			PriceCents:    ci.PriceCents,
			Quantity:      ci.Quantity,
			SubtotalCents: ci.PriceCents * ci.Quantity,
			CreatedAt:     time.Now(),
		})
	}
	if len(items) == 0 {
		return nil, "", ErrCartEmpty
	}
	return items, currency, nil
}

// CreateFromCart turns the customer's open cart into an order in one
// transaction: stock is deducted under row locks, the order and its lines
// are written, and the cart is cleared. The new-order notification and the
// confirmation email follow after commit, best effort.
func (s *Service) CreateFromCart(ctx context.Context, cu Customer, in CreateInput) (Order, error) {
	c, err := s.cartRepo.GetOrCreateOpenCart(ctx, cu.ID)
	if err != nil {
		return Order{}, apperr.Wrap(err)
	}
	cartItems, err := s.cartRepo.ListItems(ctx, c.ID)
	if err != nil {
		return Order{}, apperr.Wrap(err)
	}

	items, currency, err := LinesFromCart(cartItems)
	if err != nil {
		switch err {
		case ErrCartEmpty:
			return Order{}, apperr.InvalidErr("Cart is empty.", nil)
		case ErrCurrencyMismatch:
			return Order{}, apperr.ConflictErr("Cart mixes currencies.")
		default:
			return Order{}, apperr.Wrap(err)
		}
	}

	o := Order{
		ID:            uuid.NewString(),
		UserID:        cu.ID,
		CustomerName:  cu.Name,
		CustomerEmail: cu.Email,
		TotalCents:    TotalCents(items),
		Currency:      currency,
		Status:        StatusPending,
		PaymentStatus: PaymentPending,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if v := strings.TrimSpace(in.ShippingAddress); v != "" {
		o.ShippingAddress = &v
	}
	if v := strings.TrimSpace(in.Phone); v != "" {
		o.Phone = &v
	}
	if v := strings.TrimSpace(in.Notes); v != "" {
		o.Notes = &v
	}

	stock := make([]checkout.StockLine, 0, len(items))
	for _, it := range items {
		stock = append(stock, checkout.StockLine{ProductID: it.ProductID, Qty: it.Quantity})
	}

	err = checkout.WithTxRetry(ctx, s.db, 3, func(tx *gorm.DB) error {
		if err := checkout.DeductStockInTx(ctx, tx, stock); err != nil {
			return err
		}
		if err := tx.Create(&o).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = o.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		return tx.Where("cart_id = ?", c.ID).Delete(&cart.Item{}).Error
	})
	if err != nil {
		if oos, ok := err.(*checkout.OutOfStockError); ok {
			return Order{}, apperr.ConflictErr(oos.Error())
		}
		return Order{}, apperr.Wrap(err)
	}
	o.Items = items

	_, _ = s.notifier.Notify(ctx, notifications.New{
		Type:    notifications.TypeNewOrder,
		Title:   "New order",
		Message: fmt.Sprintf("New order from %s (%s), total %s", cu.Name, cu.Email, formatAmount(o.TotalCents, o.Currency)),
		OrderID: &o.ID,
		UserID:  &cu.ID,
	})

	s.sendConfirmation(ctx, o)

	return o, nil
}

func (s *Service) sendConfirmation(ctx context.Context, o Order) {
	if s.mail == nil || o.CustomerEmail == "" {
		return
	}
	body := fmt.Sprintf("Thanks for your order!\n\nOrder %s\nTotal: %s\nStatus: %s\n",
		o.ID, formatAmount(o.TotalCents, o.Currency), o.Status)
	err := s.mail.Send(ctx, mailer.Email{
		FromName: s.fromName,
		From:     s.fromAddr,
		To:       []string{o.CustomerEmail},
		Subject:  fmt.Sprintf("Order confirmation %s", o.ID),
		TextBody: body,
	})
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "order_confirmation_mail_failed",
			slog.String("order_id", o.ID),
			slog.Any("err", err),
		)
	}
}
