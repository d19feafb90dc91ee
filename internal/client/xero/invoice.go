package xero

import (
	"context"
	"fmt"
	"net/http"
)

type invoicesEnvelope struct {
	Invoices []invoicePayload `json:"Invoices"`
}

// invoicePayload is the wire shape Xero expects for invoice writes and
// returns on reads. Kept separate from the public Invoice type so callers
// never deal with contact nesting.
type invoicePayload struct {
	Type            string            `json:"Type,omitempty"`
	Contact         *Contact          `json:"Contact,omitempty"`
	Reference       string            `json:"Reference,omitempty"`
	CurrencyCode    string            `json:"CurrencyCode,omitempty"`
	LineAmountTypes string            `json:"LineAmountTypes,omitempty"`
	LineItems       []InvoiceLineItem `json:"LineItems,omitempty"`
	Status          string            `json:"Status,omitempty"`
	InvoiceID       string            `json:"InvoiceID,omitempty"`
	InvoiceNumber   string            `json:"InvoiceNumber,omitempty"`
	AmountDue       float64           `json:"AmountDue,omitempty"`
	AmountPaid      float64           `json:"AmountPaid,omitempty"`
}

// CreateInvoice raises an accounts-receivable invoice in Xero.
func (c *XeroClient) CreateInvoice(ctx context.Context, params InvoiceParams) (Invoice, error) {
	payload := invoicesEnvelope{Invoices: []invoicePayload{{
		Type:            "ACCREC",
		Contact:         &Contact{ID: params.ContactID},
		Reference:       params.Reference,
		CurrencyCode:    params.CurrencyCode,
		LineAmountTypes: params.LineAmountTypes,
		LineItems:       params.LineItems,
		Status:          "AUTHORISED",
	}}}

	var envelope invoicesEnvelope
	if err := c.apiCall(ctx, http.MethodPost, "/Invoices", payload, &envelope); err != nil {
		return Invoice{}, err
	}

	if len(envelope.Invoices) == 0 {
		return Invoice{}, fmt.Errorf("xero returned no invoice after create")
	}
	return toInvoice(envelope.Invoices[0]), nil
}

// GetInvoice fetches an invoice, including its payment status.
func (c *XeroClient) GetInvoice(ctx context.Context, invoiceID string) (Invoice, error) {
	var envelope invoicesEnvelope
	if err := c.apiCall(ctx, http.MethodGet, "/Invoices/"+invoiceID, nil, &envelope); err != nil {
		return Invoice{}, err
	}

	if len(envelope.Invoices) == 0 {
		return Invoice{}, fmt.Errorf("invoice %s not found", invoiceID)
	}
	return toInvoice(envelope.Invoices[0]), nil
}

func toInvoice(p invoicePayload) Invoice {
	return Invoice{
		ID:            p.InvoiceID,
		InvoiceNumber: p.InvoiceNumber,
		Status:        p.Status,
		AmountDue:     p.AmountDue,
		AmountPaid:    p.AmountPaid,
		CurrencyCode:  p.CurrencyCode,
	}
}
