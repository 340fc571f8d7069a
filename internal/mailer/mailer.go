// Package mailer sends the transactional mails of the service.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"time"

	"github.com/SscSPs/ark_management_app/internal/platform/config"
	"github.com/wneessen/go-mail"
)

// ErrDisabled is returned by the disabled mailer for every send.
var ErrDisabled = errors.New("mail delivery is not configured")

// Message is a single outbound mail with an HTML body and a plain text fallback.
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Mailer delivers messages.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SenderName is the display name of every outbound mail.
const SenderName = "Sistemas ARK"

// SMTPMailer delivers mail through an SMTP relay with STARTTLS when offered.
type SMTPMailer struct {
	cfg    config.EmailConfig
	logger *slog.Logger
}

// New returns an SMTP mailer, or a disabled one when no host is configured.
func New(cfg config.EmailConfig, logger *slog.Logger) Mailer {
	if logger == nil {
		logger = slog.Default()
	}
	if !cfg.Enabled() {
		return disabledMailer{logger: logger}
	}
	return &SMTPMailer{cfg: cfg, logger: logger}
}

func (m *SMTPMailer) client() (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(15 * time.Second),
	}
	if m.cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.cfg.User),
			mail.WithPassword(m.cfg.Password),
		)
	}
	return mail.NewClient(m.cfg.Host, opts...)
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	out := mail.NewMsg()
	if err := out.FromFormat(SenderName, m.cfg.From); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := out.To(msg.To); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	out.Subject(msg.Subject)
	if msg.Text != "" {
		out.SetBodyString(mail.TypeTextPlain, msg.Text)
		out.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	} else {
		out.SetBodyString(mail.TypeTextHTML, msg.HTML)
	}

	c, err := m.client()
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}
	if err := c.DialAndSendWithContext(ctx, out); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	m.logger.InfoContext(ctx, "Mail sent", slog.String("subject", msg.Subject))
	return nil
}

type disabledMailer struct {
	logger *slog.Logger
}

func (d disabledMailer) Send(ctx context.Context, msg Message) error {
	d.logger.WarnContext(ctx, "Mail not sent, EMAIL_HOST is not configured", slog.String("subject", msg.Subject))
	return ErrDisabled
}

// PasswordResetMessage builds the mail carrying the password reset link.
func PasswordResetMessage(to, link string, ttl time.Duration) Message {
	expiry := humanizeTTL(ttl)
	escaped := html.EscapeString(link)
	return Message{
		To:      to,
		Subject: "Redefinição de Senha - Sistemas ARK",
		HTML: fmt.Sprintf(`<h1>Você solicitou uma redefinição de senha</h1>`+
			`<p>Por favor, clique neste <a href="%s">link</a> para definir uma nova senha.</p>`+
			`<p>Este link expirará em %s.</p>`, escaped, expiry),
		Text: fmt.Sprintf("Você solicitou uma redefinição de senha.\n\nAcesse %s para definir uma nova senha.\nEste link expirará em %s.\n", link, expiry),
	}
}

func humanizeTTL(ttl time.Duration) string {
	hours := int(ttl.Hours())
	switch {
	case hours == 1:
		return "1 hora"
	case hours > 1:
		return fmt.Sprintf("%d horas", hours)
	default:
		return fmt.Sprintf("%d minutos", int(ttl.Minutes()))
	}
}
