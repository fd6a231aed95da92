package service

import (
	"context"
	"fmt"

	"wedconnect/internal/models"
	"wedconnect/pkg/config"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// EmailService sends transactional mail through Resend. With no API key
// configured it degrades to logging, so local development works offline.
type EmailService struct {
	client *resend.Client
	from   string
	logger *zap.Logger
}

func NewEmailService(cfg *config.ResendConfig, logger *zap.Logger) *EmailService {
	var client *resend.Client
	if cfg.APIKey != "" {
		client = resend.NewClient(cfg.APIKey)
	} else {
		logger.Warn("RESEND_API_KEY not set, emails will be logged instead of sent")
	}

	return &EmailService{
		client: client,
		from:   cfg.FromAddress,
		logger: logger,
	}
}

func (s *EmailService) send(ctx context.Context, to, subject, html string) error {
	if s.client == nil {
		s.logger.Info("Email suppressed (no API key)",
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *EmailService) SendVerificationCode(ctx context.Context, to, code string, expiryMinutes int) error {
	html := fmt.Sprintf(
		`<h2>Verify your WedConnect account</h2>
<p>Your verification code is:</p>
<h1 style="letter-spacing:4px">%s</h1>
<p>The code expires in %d minutes.</p>`,
		code, expiryMinutes,
	)
	return s.send(ctx, to, "WedConnect | Email Verification Code", html)
}

func (s *EmailService) SendPasswordReset(ctx context.Context, to, token string) error {
	html := fmt.Sprintf(
		`<h2>Reset your WedConnect password</h2>
<p>Use the token below to reset your password. If you did not request this, ignore this email.</p>
<p><code>%s</code></p>`,
		token,
	)
	return s.send(ctx, to, "WedConnect | Password Reset", html)
}

func (s *EmailService) SendVendorVerified(ctx context.Context, to, businessName string) error {
	html := fmt.Sprintf(
		`<h2>Congratulations!</h2>
<p>Your vendor profile <strong>%s</strong> has been verified. Your listings are now visible to customers.</p>`,
		businessName,
	)
	return s.send(ctx, to, "WedConnect | Vendor Profile Verified", html)
}

func (s *EmailService) SendBookingRequested(ctx context.Context, b *models.Booking) error {
	html := fmt.Sprintf(
		`<h2>New booking request</h2>
<p>%s has requested <strong>%s</strong> on %s for PKR %.0f.</p>
<p>Log in to confirm or decline the request.</p>`,
		b.CustomerName, b.ServiceTitle, b.Date.Format("January 2, 2006"), b.Amount,
	)
	return s.send(ctx, b.VendorEmail, "WedConnect | New Booking Request", html)
}

func (s *EmailService) SendBookingStatusChanged(ctx context.Context, b *models.Booking) error {
	html := fmt.Sprintf(
		`<h2>Booking update</h2>
<p>Your booking for <strong>%s</strong> on %s is now <strong>%s</strong>.</p>`,
		b.ServiceTitle, b.Date.Format("January 2, 2006"), b.Status,
	)
	return s.send(ctx, b.CustomerEmail, "WedConnect | Booking "+string(b.Status), html)
}
