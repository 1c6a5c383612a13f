package background

import (
	"context"
	"errors"
)

var errNotDelivered = errors.New("sms not delivered")

type Sender interface {
	Send(ctx context.Context, phone, text string) bool
}

// Notifier sends SMS messages through the pool so callers never wait on the provider.
type Notifier struct {
	pool   *Pool
	sender Sender
}

func NewNotifier(pool *Pool, sender Sender) *Notifier {
	return &Notifier{pool: pool, sender: sender}
}

func (n *Notifier) Notify(phone, text string) {
	if phone == "" {
		return
	}
	n.pool.Go("sms", func(ctx context.Context) error {
		if !n.sender.Send(ctx, phone, text) {
			return errNotDelivered
		}
		return nil
	})
}
