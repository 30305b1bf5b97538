package notifications

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// Channel carries freshly created notifications to connected admin clients.
const Channel = "admin_notifications"

// Publisher fans out new notifications over Redis pub/sub. It replaces the
// table-keyed change subscription the old frontend got from its backend
// service.
type Publisher struct {
	rdb *redis.Client
}

func NewPublisher(rdb *redis.Client) *Publisher { return &Publisher{rdb: rdb} }

func (p *Publisher) Publish(ctx context.Context, n Notification) error {
	if p == nil || p.rdb == nil {
		return nil
	}
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}
	return p.rdb.Publish(ctx, Channel, payload).Err()
}

// Subscribe opens a pub/sub subscription for the notification channel.
// The caller owns the returned subscription and must Close it.
func (p *Publisher) Subscribe(ctx context.Context) *redis.PubSub {
	return p.rdb.Subscribe(ctx, Channel)
}
