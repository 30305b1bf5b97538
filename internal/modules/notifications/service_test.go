package notifications

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zone3577/Test-Web/internal/shared/apperr"
)

// memStore is an in-memory Store for exercising the service logic.
type memStore struct {
	rows []Notification
}

func (m *memStore) Insert(_ context.Context, n Notification) error {
	m.rows = append(m.rows, n)
	return nil
}

func (m *memStore) List(_ context.Context, limit int) ([]Notification, error) {
	if limit < 1 || limit > len(m.rows) {
		limit = len(m.rows)
	}
	out := make([]Notification, limit)
	copy(out, m.rows[:limit])
	return out, nil
}

func (m *memStore) MarkRead(_ context.Context, id string) (int64, error) {
	for i := range m.rows {
		if m.rows[i].ID == id && !m.rows[i].IsRead {
			m.rows[i].IsRead = true
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memStore) MarkAllRead(_ context.Context) error {
	for i := range m.rows {
		m.rows[i].IsRead = true
	}
	return nil
}

func (m *memStore) CountUnread(_ context.Context) (int64, error) {
	var n int64
	for _, r := range m.rows {
		if !r.IsRead {
			n++
		}
	}
	return n, nil
}

func TestNotifyPersists(t *testing.T) {
	store := &memStore{}
	svc := NewService(store, nil, nil)

	orderID := "order-1"
	n, err := svc.Notify(context.Background(), New{
		Type:    TypeNewOrder,
		Title:   "New order",
		Message: "New order from Somchai",
		OrderID: &orderID,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, n.ID)
	assert.False(t, n.IsRead)
	assert.Equal(t, TypeNewOrder, n.Type)

	unread, err := svc.UnreadCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)
}

func TestMarkReadFlipsExactlyOne(t *testing.T) {
	store := &memStore{}
	svc := NewService(store, nil, nil)

	a, _ := svc.Notify(context.Background(), New{Type: TypeSystem, Title: "a", Message: "a"})
	b, _ := svc.Notify(context.Background(), New{Type: TypeSystem, Title: "b", Message: "b"})

	require.NoError(t, svc.MarkRead(context.Background(), a.ID))

	unread, err := svc.UnreadCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)

	// A second mark of the same row is not found: it is already read.
	err = svc.MarkRead(context.Background(), a.ID)
	require.Error(t, err)
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.NotFound, ae.Kind)

	require.NoError(t, svc.MarkRead(context.Background(), b.ID))
	unread, _ = svc.UnreadCount(context.Background())
	assert.Zero(t, unread)
}

func TestMarkReadUnknownID(t *testing.T) {
	svc := NewService(&memStore{}, nil, nil)
	err := svc.MarkRead(context.Background(), "missing")
	require.Error(t, err)
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.NotFound, ae.Kind)
}

func TestMarkAllRead(t *testing.T) {
	store := &memStore{}
	svc := NewService(store, nil, nil)

	for i := 0; i < 3; i++ {
		_, err := svc.Notify(context.Background(), New{Type: TypeLowStock, Title: "low", Message: "low"})
		require.NoError(t, err)
	}

	require.NoError(t, svc.MarkAllRead(context.Background()))
	unread, err := svc.UnreadCount(context.Background())
	require.NoError(t, err)
	assert.Zero(t, unread)
}
