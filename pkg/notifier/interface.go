// Package notifier defines how operator-facing messages leave the service.
package notifier

import "context"

//go:generate mockgen -package mocknotifier -source=interface.go -destination=mock/mocknotifier.go *
type Notifier interface {
	// Notify delivers a plain-text message to the operators channel.
	Notify(ctx context.Context, text string) error
}
