package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

// Client sends mail through an authenticated SMTP server over implicit TLS.
type Client struct {
	smtp *mail.Client
	from string
}

// Config holds SMTP connection details. Username doubles as the sender address.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
}

// NewClient validates cfg and prepares an SMTP client. No connection is opened
// until Send is called.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Username == "" || cfg.Password == "" {
		return nil, fmt.Errorf("smtp username and password are required")
	}

	smtp, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSSL(),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to configure smtp client: %w", err)
	}

	return &Client{
		smtp: smtp,
		from: cfg.Username,
	}, nil
}

// From returns the sender address used for outgoing messages.
func (c *Client) From() string {
	return c.from
}

// Send dials the server, delivers every message and closes the connection.
func (c *Client) Send(ctx context.Context, messages ...*mail.Msg) error {
	if err := c.smtp.DialAndSendWithContext(ctx, messages...); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}

// NewHTMLMessage builds a message with an HTML body. Every address is parsed, so a
// malformed recipient fails here rather than at the server.
func NewHTMLMessage(from string, to []string, subject, body string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("invalid sender: %w", err)
	}
	if err := msg.To(to...); err != nil {
		return nil, fmt.Errorf("invalid recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, body)
	return msg, nil
}
