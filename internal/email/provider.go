package email

import "placement_backend/internal/logger"

// Provider sends email notifications. Notification failures are logged, never
// surfaced to API callers.
type Provider interface {
	Send(email *Email) error
}

// NoopProvider is used in development and tests: it logs instead of sending.
type NoopProvider struct{}

func (p *NoopProvider) Send(email *Email) error {
	logger.Info("email sending disabled, dropping message",
		"to", email.To, "subject", email.Subject)
	return nil
}
