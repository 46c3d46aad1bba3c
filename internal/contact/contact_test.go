package contact

import (
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"github.com/Zachkp/folio/internal/config"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		msg   Message
		field string
	}{
		{"ok", Message{Name: " Ada ", Email: "Ada <ada@example.com>", Body: "hi"}, ""},
		{"no name", Message{Email: "a@example.com", Body: "hi"}, "fullName"},
		{"header injection", Message{Name: "Ada\r\nBcc: x@example.com", Email: "a@example.com", Body: "hi"}, "fullName"},
		{"bad email", Message{Name: "Ada", Email: "not-an-address", Body: "hi"}, "email"},
		{"empty body", Message{Name: "Ada", Email: "a@example.com", Body: "   "}, "message"},
		{"long body", Message{Name: "Ada", Email: "a@example.com", Body: strings.Repeat("x", maxBodyLen+1)}, "message"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.Validate()
			if tt.field == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			var fe *FieldError
			if !errors.As(err, &fe) || fe.Field != tt.field {
				t.Errorf("Validate() error = %v, want field %s", err, tt.field)
			}
		})
	}
}

func TestSendNotConfigured(t *testing.T) {
	m := NewMailer(config.SMTPConfig{Host: "smtp.example.com", Port: "587"}, func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("send called without credentials")
		return nil
	}, nil)
	err := m.Send(Message{Name: "Ada", Email: "ada@example.com", Body: "hi"})
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Send() error = %v, want ErrNotConfigured", err)
	}
}

func TestSendComposesMessage(t *testing.T) {
	var (
		gotAddr string
		gotTo   []string
		gotMsg  string
	)
	cfg := config.SMTPConfig{Host: "smtp.example.com", Port: "587", User: "me@example.com", Password: "pw", To: "inbox@example.com"}
	m := NewMailer(cfg, func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotTo, gotMsg = addr, to, string(msg)
		return nil
	}, nil)

	if err := m.Send(Message{Name: "Ada", Email: "Ada <ada@example.com>", Body: "Hello there"}); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if gotAddr != "smtp.example.com:587" {
		t.Errorf("addr = %q", gotAddr)
	}
	if len(gotTo) != 1 || gotTo[0] != "inbox@example.com" {
		t.Errorf("to = %v", gotTo)
	}
	for _, want := range []string{"Subject: Portfolio Contact: Ada\r\n", "Reply-To: ada@example.com\r\n", "Hello there"} {
		if !strings.Contains(gotMsg, want) {
			t.Errorf("message missing %q:\n%s", want, gotMsg)
		}
	}
}

func TestSendWrapsTransportError(t *testing.T) {
	boom := errors.New("connection refused")
	cfg := config.SMTPConfig{Host: "h", Port: "25", User: "u@example.com", Password: "p"}
	m := NewMailer(cfg, func(string, smtp.Auth, string, []string, []byte) error { return boom }, nil)
	if err := m.Send(Message{Name: "Ada", Email: "ada@example.com", Body: "hi"}); !errors.Is(err, boom) {
		t.Errorf("Send() error = %v, want %v", err, boom)
	}
}
