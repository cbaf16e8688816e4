package email

import (
	"context"

	coreport "github.com/vyronamart/group-ledger/internal/domain/port/core"
	"github.com/vyronamart/group-ledger/internal/domain/port/external"
)

// DisabledSender drops every message. It is used when email is turned off in config.
type DisabledSender struct {
	logger coreport.Logger
}

// NewDisabledSender creates a sender that never delivers
func NewDisabledSender(logger coreport.Logger) *DisabledSender {
	return &DisabledSender{logger: logger}
}

// Send logs the message and reports it as not delivered
func (s *DisabledSender) Send(_ context.Context, to, subject, _ string) (external.SendResult, error) {
	s.logger.Debug("Email disabled, message dropped", map[string]any{
		"to":      to,
		"subject": subject,
	})
	return external.SendResult{Success: false}, nil
}
