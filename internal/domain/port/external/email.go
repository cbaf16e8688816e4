package external

import "context"

// SendResult reports whether the provider accepted a message
type SendResult struct {
	Success   bool
	MessageID string
}

// EmailSender delivers rendered HTML email through a transactional provider
type EmailSender interface {
	Send(ctx context.Context, to, subject, html string) (SendResult, error)
}
