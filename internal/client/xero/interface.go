package xero

import "context"

// InvoicingService abstracts the external accounting provider so handlers
// and services can be tested without hitting the Xero API.
type InvoicingService interface {
	// GetServiceName returns the provider name, e.g. "xero".
	GetServiceName() string

	// CheckConnection verifies the stored connection is usable.
	CheckConnection(ctx context.Context) error

	// FindContactByName looks up a contact by exact name. Returns nil
	// (and no error) when the contact does not exist.
	FindContactByName(ctx context.Context, name string) (*Contact, error)

	// CreateContact creates a contact and returns it with its provider ID.
	CreateContact(ctx context.Context, contact Contact) (Contact, error)

	// CreateInvoice raises an accounts-receivable invoice.
	CreateInvoice(ctx context.Context, params InvoiceParams) (Invoice, error)

	// GetInvoice fetches an invoice, including its payment status.
	GetInvoice(ctx context.Context, invoiceID string) (Invoice, error)
}

// Contact is the provider-side representation of a buyer.
type Contact struct {
	ID    string `json:"ContactID,omitempty"`
	Name  string `json:"Name"`
	Email string `json:"EmailAddress,omitempty"`
}

// InvoiceLineItem is one line of an invoice as the provider expects it.
type InvoiceLineItem struct {
	Description string  `json:"Description"`
	Quantity    float64 `json:"Quantity"`
	UnitAmount  float64 `json:"UnitAmount"`
	AccountCode string  `json:"AccountCode,omitempty"`
	TaxType     string  `json:"TaxType,omitempty"`
}

// InvoiceParams carries everything needed to raise an invoice.
type InvoiceParams struct {
	ContactID       string
	Reference       string
	CurrencyCode    string
	LineAmountTypes string
	LineItems       []InvoiceLineItem
}

// Invoice is the provider-side invoice, as returned after creation or fetch.
type Invoice struct {
	ID            string  `json:"InvoiceID"`
	InvoiceNumber string  `json:"InvoiceNumber"`
	Status        string  `json:"Status"`
	AmountDue     float64 `json:"AmountDue"`
	AmountPaid    float64 `json:"AmountPaid"`
	CurrencyCode  string  `json:"CurrencyCode"`
}
