package xero

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

type contactsEnvelope struct {
	Contacts []Contact `json:"Contacts"`
}

// FindContactByName looks up a contact by exact name. Returns nil when no
// contact matches.
func (c *XeroClient) FindContactByName(ctx context.Context, name string) (*Contact, error) {
	where := url.QueryEscape(fmt.Sprintf(`Name=="%s"`, name))

	var envelope contactsEnvelope
	if err := c.apiCall(ctx, http.MethodGet, "/Contacts?where="+where, nil, &envelope); err != nil {
		return nil, err
	}

	if len(envelope.Contacts) == 0 {
		return nil, nil
	}
	return &envelope.Contacts[0], nil
}

// CreateContact creates a contact and returns it with its Xero ID.
func (c *XeroClient) CreateContact(ctx context.Context, contact Contact) (Contact, error) {
	payload := contactsEnvelope{Contacts: []Contact{contact}}

	var envelope contactsEnvelope
	if err := c.apiCall(ctx, http.MethodPost, "/Contacts", payload, &envelope); err != nil {
		return Contact{}, err
	}

	if len(envelope.Contacts) == 0 {
		return Contact{}, fmt.Errorf("xero returned no contact after create")
	}
	return envelope.Contacts[0], nil
}
