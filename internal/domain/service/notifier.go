package service

import "context"

// Notifier delivers outbound mail. It is fire-and-forget from the core's
// perspective: a delivery failure is reported to the caller but never rolls
// back state that was already persisted.
type Notifier interface {
	SendPasswordResetEmail(ctx context.Context, to string, resetLink string) error
}
