// Package email sends transactional mail over SMTP.
package email

import (
	"context"
	"fmt"
	"html"
	"strings"

	"gopkg.in/gomail.v2"

	"paybridge/internal/application/payment/usecases"
	"paybridge/internal/domain/order"
	"paybridge/internal/shared/config"
)

// SMTPConfirmationSender sends order confirmation emails. It is invoked
// after a callback commits, so delivery failures must never propagate back
// into the callback result.
type SMTPConfirmationSender struct {
	config config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPConfirmationSender(cfg config.EmailConfig) *SMTPConfirmationSender {
	return &SMTPConfirmationSender{
		config: cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
	}
}

var _ usecases.ConfirmationSender = (*SMTPConfirmationSender)(nil)

func (s *SMTPConfirmationSender) SendOrderConfirmation(_ context.Context, o *order.Order) error {
	if o.CustomerEmail() == "" {
		return fmt.Errorf("order %s has no customer email", o.IncrementID())
	}

	subject := fmt.Sprintf("Order Confirmation #%s", o.IncrementID())

	var comments []string
	for _, entry := range o.StatusHistory() {
		comments = append(comments, entry.Comment)
	}

	htmlComments := make([]string, 0, len(comments))
	for _, c := range comments {
		htmlComments = append(htmlComments, "<li>"+html.EscapeString(c)+"</li>")
	}

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Thank you for your order!</h2>
			<p>Your payment for order <strong>#%s</strong> has been received.</p>
			<p>Order total: %s</p>
			<ul>%s</ul>
		</body>
		</html>
	`, html.EscapeString(o.IncrementID()), html.EscapeString(o.TotalDue().String()), strings.Join(htmlComments, "\n"))

	plainBody := fmt.Sprintf(`
Thank you for your order!

Your payment for order #%s has been received.
Order total: %s

%s
	`, o.IncrementID(), o.TotalDue().String(), strings.Join(comments, "\n"))

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", o.CustomerEmail())
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
