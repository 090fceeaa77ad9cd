package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/wneessen/go-mail"

	"inventory/internal/metrics"
	"inventory/internal/models"
	"inventory/internal/repositories"
	"inventory/pkg/mailer"
)

var supplierEmailTemplate = template.Must(template.New("supplier_email").Parse(`
<h5>{{.BusinessName}}</h5>
<br>
<p>{{.Subject}}</p>
<p>{{.Message}}</p>
<h5>Best Regards</h5>
<h6>{{.Signature}}</h6>
`))

// MailSender delivers prepared messages.
type MailSender interface {
	Send(ctx context.Context, messages ...*mail.Msg) error
}

// NotificationConfig holds the sender address and the names printed in the email.
type NotificationConfig struct {
	From         string
	BusinessName string
	Signature    string
}

// NotificationService emails the supplier of a product.
type NotificationService struct {
	products repositories.ProductRepository
	sender   MailSender
	cfg      NotificationConfig
	metrics  *metrics.Metrics
}

// NewNotificationService creates a new NotificationService. m may be nil.
func NewNotificationService(products repositories.ProductRepository, sender MailSender, cfg NotificationConfig, m *metrics.Metrics) *NotificationService {
	return &NotificationService{
		products: products,
		sender:   sender,
		cfg:      cfg,
		metrics:  m,
	}
}

// SendSupplierEmail resolves the supplier through the product and sends it one HTML message.
func (s *NotificationService) SendSupplierEmail(ctx context.Context, productID uint, content models.EmailContent) error {
	err := s.send(ctx, productID, content)
	s.metrics.ObserveEmail(err)
	return err
}

func (s *NotificationService) send(ctx context.Context, productID uint, content models.EmailContent) error {
	product, err := s.products.GetWithSupplier(ctx, productID)
	if err != nil {
		return err
	}

	body, err := s.render(content)
	if err != nil {
		return err
	}

	msg, err := mailer.NewHTMLMessage(s.cfg.From, []string{product.SuppliedBy.Email}, content.Subject, body)
	if err != nil {
		return err
	}
	return s.sender.Send(ctx, msg)
}

func (s *NotificationService) render(content models.EmailContent) (string, error) {
	var buf bytes.Buffer
	data := struct {
		BusinessName string
		Subject      string
		Message      string
		Signature    string
	}{
		BusinessName: s.cfg.BusinessName,
		Subject:      content.Subject,
		Message:      content.Message,
		Signature:    s.cfg.Signature,
	}
	if err := supplierEmailTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render supplier email: %w", err)
	}
	return buf.String(), nil
}
