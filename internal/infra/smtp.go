package infra

import (
	"fmt"
	"net/smtp"

	"github.com/webplotcentersj-hash/stock2/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer wraps SMTP configuration for the compras notification emails.
// Sends go through the shared circuit breaker so a dead relay never stalls
// the worker pool.
type Mailer struct {
	host     string
	user     string
	password string
	addr     string
	cb       *CircuitBreaker
}

func NewMailer(cfg *config.Config, cb *CircuitBreaker) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		cb:       cb,
	}
}

// SendNotificacion sends a plain-text email, optionally attaching the
// purchase-order PDF when pdfPath is non-empty.
func (m *Mailer) SendNotificacion(to, subject, body, pdfPath string) error {
	e := email.NewEmail()
	e.From = m.user
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	if pdfPath != "" {
		if _, err := e.AttachFile(pdfPath); err != nil {
			return fmt.Errorf("mailer: attach PDF: %w", err)
		}
	}

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return m.cb.Execute(func() error {
		return e.Send(m.addr, auth)
	})
}

// CircuitState exposes the breaker state for the health endpoint.
func (m *Mailer) CircuitState() CBState { return m.cb.State() }
