package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// EmailService sends transactional notifications through Resend.
type EmailService struct {
	client    *resend.Client
	logger    *zap.Logger
	fromEmail string
	fromName  string
}

// NewEmailService creates a new email service
func NewEmailService(apiKey string, fromEmail string, fromName string, logger *zap.Logger) *EmailService {
	client := resend.NewClient(apiKey)

	return &EmailService{
		client:    client,
		logger:    logger,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

// TradeEmailData contains the data for the trade-submitted template
type TradeEmailData struct {
	Reference               string
	BuyerName               string
	ItemCount               int
	GrossMarginGBP          string
	CommissionableMarginGBP string
	XeroInvoiceNumber       string
}

const tradeSubmittedTemplate = `
<h2>Trade {{.Reference}} submitted</h2>
<p>A trade for {{.BuyerName}} ({{.ItemCount}} item(s)) has been submitted and invoiced.</p>
<ul>
  <li>Gross margin: {{.GrossMarginGBP}}</li>
  <li>Commissionable margin: {{.CommissionableMarginGBP}}</li>
  <li>Invoice: {{.XeroInvoiceNumber}}</li>
</ul>
<p>Margin figures include estimated import/export taxes; they are indicative, not an authoritative tax computation.</p>
`

// SendTradeSubmittedEmail notifies a recipient that a trade went through
func (s *EmailService) SendTradeSubmittedEmail(ctx context.Context, toEmail string, data TradeEmailData) error {
	tmpl, err := template.New("trade_submitted").Parse(tradeSubmittedTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{toEmail},
		Subject: fmt.Sprintf("Trade %s submitted", data.Reference),
		Html:    body.String(),
		Tags: []resend.Tag{
			{Name: "category", Value: "trade_submitted"},
		},
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		s.logger.Error("failed to send trade submitted email",
			zap.Error(err),
			zap.String("reference", data.Reference),
			zap.String("to", toEmail))
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("Sent trade submitted email",
		zap.String("reference", data.Reference),
		zap.String("email_id", sent.Id))
	return nil
}
