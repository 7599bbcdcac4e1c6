// internal/mailer/mailer.go
package mailer

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"os"
	"strings"
	"time"

	"github.com/pr-poehali-dev/furniture-modern-site/internal/model"
)

// Mailer sends the operational order notification. Implementations are
// best-effort: a returned error is logged by the caller, never retried.
type Mailer interface {
	SendOrderNotification(o *model.Order) error
}

const dialTimeout = 10 * time.Second

// SMTPMailer talks to a plain SMTP relay configured from the environment.
type SMTPMailer struct {
	Host     string
	Port     string
	User     string
	Password string
	To       string // fixed operational mailbox, never user-supplied
}

func NewFromEnv() *SMTPMailer {
	return &SMTPMailer{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     os.Getenv("SMTP_PORT"),
		User:     os.Getenv("SMTP_USER"),
		Password: os.Getenv("SMTP_PASSWORD"),
		To:       os.Getenv("NOTIFY_EMAIL"),
	}
}

func (m *SMTPMailer) SendOrderNotification(o *model.Order) error {
	if m.Host == "" || m.To == "" {
		return fmt.Errorf("smtp relay not configured")
	}
	port := m.Port
	if port == "" {
		port = "587"
	}

	conn, err := net.DialTimeout("tcp", net.JoinHostPort(m.Host, port), dialTimeout)
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	c, err := smtp.NewClient(conn, m.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: m.Host}); err != nil {
			return fmt.Errorf("smtp starttls: %w", err)
		}
	}
	if m.User != "" {
		auth := smtp.PlainAuth("", m.User, m.Password, m.Host)
		if err := c.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	from := m.User
	if from == "" {
		from = "noreply@" + m.Host
	}
	if err := c.Mail(from); err != nil {
		return err
	}
	if err := c.Rcpt(m.To); err != nil {
		return err
	}
	wc, err := c.Data()
	if err != nil {
		return err
	}
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: New order #%d\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s",
		from, m.To, o.ID, RenderOrderMessage(o))
	if _, err := wc.Write([]byte(msg)); err != nil {
		wc.Close()
		return err
	}
	if err := wc.Close(); err != nil {
		return err
	}
	return c.Quit()
}

// RenderOrderMessage builds the plain-text order summary for the
// notification mail.
func RenderOrderMessage(o *model.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order #%d (%s)\n\n", o.ID, o.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "Customer: %s %s %s\n", o.LastName, o.FirstName, o.MiddleName)
	fmt.Fprintf(&b, "Phone: %s\n", o.Phone)
	fmt.Fprintf(&b, "City: %s\n", o.City)
	fmt.Fprintf(&b, "Address: %s\n\n", o.Address)

	fmt.Fprintf(&b, "Items:\n")
	for _, item := range o.Items {
		fmt.Fprintf(&b, "  - %s x%d @ %.2f\n", item.Name, item.Quantity, item.Price)
	}
	fmt.Fprintf(&b, "\nTotal: %s\n", o.Total.StringFixed(2))
	return b.String()
}

var _ Mailer = (*SMTPMailer)(nil)
