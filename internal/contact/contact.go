// Package contact delivers the portfolio contact form by SMTP.
package contact

import (
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"net/smtp"
	"strings"

	"github.com/Zachkp/folio/internal/config"
)

// ErrNotConfigured is returned when SMTP credentials are missing.
var ErrNotConfigured = errors.New("SMTP credentials not configured")

// Message is a contact form submission.
type Message struct {
	Name  string
	Email string
	Body  string
}

// FieldError names the form field that failed validation.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return e.Field + " " + e.Reason
}

const maxBodyLen = 5000

// Validate trims the fields and checks them.
func (m *Message) Validate() error {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Body = strings.TrimSpace(m.Body)

	switch {
	case m.Name == "":
		return &FieldError{Field: "fullName", Reason: "is required"}
	case strings.ContainsAny(m.Name, "\r\n"):
		return &FieldError{Field: "fullName", Reason: "must be a single line"}
	case m.Email == "":
		return &FieldError{Field: "email", Reason: "is required"}
	case m.Body == "":
		return &FieldError{Field: "message", Reason: "is required"}
	case len(m.Body) > maxBodyLen:
		return &FieldError{Field: "message", Reason: fmt.Sprintf("is longer than %d characters", maxBodyLen)}
	}
	addr, err := mail.ParseAddress(m.Email)
	if err != nil {
		return &FieldError{Field: "email", Reason: "is not a valid address"}
	}
	m.Email = addr.Address
	return nil
}

// SendFunc has the signature of smtp.SendMail.
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type Mailer struct {
	cfg  config.SMTPConfig
	send SendFunc
	log  *slog.Logger
}

// NewMailer sends through smtp.SendMail when send is nil.
func NewMailer(cfg config.SMTPConfig, send SendFunc, log *slog.Logger) *Mailer {
	if send == nil {
		send = smtp.SendMail
	}
	if log == nil {
		log = slog.Default()
	}
	return &Mailer{cfg: cfg, send: send, log: log}
}

// Send validates m and mails it to the configured inbox.
func (mr *Mailer) Send(m Message) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if !mr.cfg.Configured() {
		return ErrNotConfigured
	}
	to := mr.cfg.To
	if to == "" {
		to = mr.cfg.User
	}

	auth := smtp.PlainAuth("", mr.cfg.User, mr.cfg.Password, mr.cfg.Host)
	if err := mr.send(mr.cfg.Host+":"+mr.cfg.Port, auth, mr.cfg.User, []string{to}, compose(mr.cfg.User, to, m)); err != nil {
		mr.log.Error("send contact email", "err", err)
		return fmt.Errorf("send mail: %w", err)
	}
	mr.log.Info("contact email sent", "name", m.Name)
	return nil
}

func compose(from, to string, m Message) []byte {
	var b strings.Builder
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: Portfolio Contact: " + m.Name + "\r\n")
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("Reply-To: " + m.Email + "\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "New contact form submission from your portfolio:\r\n\r\nName: %s\r\nEmail: %s\r\nMessage:\r\n%s\r\n\r\n---\r\nSent from your portfolio contact form\r\n",
		m.Name, m.Email, m.Body)
	return []byte(b.String())
}
