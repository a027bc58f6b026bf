package notifications

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/smtp"
	"strconv"
	"strings"
	"sync"
	"time"

	"standplanner/internal/shared/config"
	"standplanner/pkg/logger"

	"github.com/google/uuid"
)

// Mailer delivers one email notification.
type Mailer interface {
	Send(ctx context.Context, notification *EmailNotification) error
}

// SMTPConfig holds SMTP configuration
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	UseTLS    bool
}

func NewSMTPConfig(cfg config.EmailConfig) *SMTPConfig {
	return &SMTPConfig{
		Host:      cfg.SMTPHost,
		Port:      cfg.SMTPPort,
		Username:  cfg.SMTPUsername,
		Password:  cfg.SMTPPassword,
		FromEmail: cfg.FromEmail,
		FromName:  cfg.FromName,
		UseTLS:    true,
	}
}

func validateSMTPConfig(config *SMTPConfig) error {
	if config == nil {
		return fmt.Errorf("SMTP config is nil")
	}
	if config.Host == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if config.Port <= 0 || config.Port > 65535 {
		return fmt.Errorf("SMTP port must be between 1 and 65535")
	}
	if config.FromEmail == "" {
		return fmt.Errorf("from email is required")
	}
	return nil
}

// SMTPMailer sends mail through an SMTP relay using STARTTLS.
type SMTPMailer struct {
	config *SMTPConfig
}

func NewSMTPMailer(config *SMTPConfig) (*SMTPMailer, error) {
	if err := validateSMTPConfig(config); err != nil {
		return nil, fmt.Errorf("invalid SMTP configuration: %w", err)
	}
	return &SMTPMailer{config: config}, nil
}

func (s *SMTPMailer) Send(ctx context.Context, notification *EmailNotification) error {
	message := s.buildMessage(notification.RecipientEmail, notification.Subject, notification.HTMLBody, notification.TextBody)

	var auth smtp.Auth
	if s.config.Username != "" {
		auth = smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	}
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	var err error
	if s.config.UseTLS {
		err = s.sendWithSTARTTLS(addr, auth, notification.RecipientEmail, message)
	} else {
		err = smtp.SendMail(addr, auth, s.config.FromEmail, []string{notification.RecipientEmail}, message)
	}
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	logger.GetDefault().InfoContext(ctx, "Email sent",
		slog.String("to", notification.RecipientEmail),
		slog.String("type", string(notification.EventType)),
	)
	return nil
}

func (s *SMTPMailer) sendWithSTARTTLS(addr string, auth smtp.Auth, to string, message []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer client.Quit()

	if err = client.StartTLS(&tls.Config{ServerName: s.config.Host}); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}
	if auth != nil {
		if err = client.Auth(auth); err != nil {
			return fmt.Errorf("failed to authenticate: %w", err)
		}
	}
	if err = client.Mail(s.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err = client.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err = w.Write(message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	return w.Close()
}

// buildMessage renders a multipart/alternative message with fixed header order.
func (s *SMTPMailer) buildMessage(to, subject, htmlBody, textBody string) []byte {
	boundary := "boundary_" + strconv.FormatInt(time.Now().UnixNano(), 10)

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\r\n", s.config.FromName, s.config.FromEmail)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%s\r\n\r\n", boundary)

	if textBody != "" {
		fmt.Fprintf(&b, "--%s\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s\r\n", boundary, textBody)
	}
	if htmlBody != "" {
		fmt.Fprintf(&b, "--%s\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s\r\n", boundary, htmlBody)
	}
	fmt.Fprintf(&b, "--%s--\r\n", boundary)

	return []byte(b.String())
}

// MockMailer logs instead of sending and keeps what it was given.
type MockMailer struct {
	mu   sync.Mutex
	sent []*EmailNotification
}

func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

func (m *MockMailer) Send(ctx context.Context, notification *EmailNotification) error {
	logger.GetDefault().InfoContext(ctx, "[MOCK] Email not sent",
		slog.String("to", notification.RecipientEmail),
		slog.String("subject", notification.Subject),
	)
	m.mu.Lock()
	m.sent = append(m.sent, notification)
	m.mu.Unlock()
	return nil
}

func (m *MockMailer) Sent() []*EmailNotification {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*EmailNotification(nil), m.sent...)
}

// BuildStandAssignedEmail renders the exhibitor's placement confirmation.
// It returns nil when the event has no recipient address.
func BuildStandAssignedEmail(event *PlanEvent, fromName string) *EmailNotification {
	if event.Type != EventTypeStandAssigned || event.Email == "" {
		return nil
	}

	name := event.ContactPerson
	if name == "" {
		name = event.BrandName
	}
	zone := event.ZoneName
	if zone == "" {
		zone = "the floor plan"
	}

	subject := fmt.Sprintf("Your stand for %s is placed", event.EventID)
	textBody := fmt.Sprintf(
		"Hi %s,\n\n%s has been placed on a size %s stand in %s (row %d, column %d).\n\nBest regards,\n%s",
		name, event.BrandName, event.StandSize, zone, event.StandY+1, event.StandX+1, fromName,
	)
	htmlBody := fmt.Sprintf(`
		<h2>Your stand is placed</h2>
		<p>Hi %s,</p>
		<p><strong>%s</strong> has been placed on a size <strong>%s</strong> stand in <strong>%s</strong> (row %d, column %d).</p>
		<p>Best regards,<br>%s</p>
	`, name, event.BrandName, event.StandSize, zone, event.StandY+1, event.StandX+1, fromName)

	return &EmailNotification{
		ID:             uuid.New(),
		EventType:      event.Type,
		RecipientEmail: event.Email,
		RecipientName:  name,
		Subject:        subject,
		TextBody:       textBody,
		HTMLBody:       htmlBody,
		Status:         NotificationStatusPending,
		CreatedAt:      time.Now(),
	}
}
