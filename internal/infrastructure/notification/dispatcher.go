package notification

import "context"

// Dispatcher sends a text alert to a phone number. Delivery is best-effort:
// one attempt, no confirmation tracking, no retry or backoff.
type Dispatcher interface {
	Send(ctx context.Context, toNumber, body string) error
}
