package fincode

import (
	"context"
	"net/http"
)

var (
	cardCreate   = endpoint{http.MethodPost, "/v1/customers/%s/cards"}
	cardList     = endpoint{http.MethodGet, "/v1/customers/%s/cards"}
	cardRetrieve = endpoint{http.MethodGet, "/v1/customers/%s/cards/%s"}
	cardUpdate   = endpoint{http.MethodPut, "/v1/customers/%s/cards/%s"}
	cardDelete   = endpoint{http.MethodDelete, "/v1/customers/%s/cards/%s"}
)

// Card is a card saved on a customer.
type Card struct {
	ID          string `json:"id"`
	CustomerID  string `json:"customer_id"`
	DefaultFlag string `json:"default_flag"`
	CardNo      string `json:"card_no"`
	Expire      string `json:"expire"`
	HolderName  string `json:"holder_name,omitempty"`
	Type        string `json:"type,omitempty"`
	Brand       string `json:"brand,omitempty"`
	Created     string `json:"created,omitempty"`
	Updated     string `json:"updated,omitempty"`
}

// CreateCardRequest saves a tokenized card.
type CreateCardRequest struct {
	DefaultFlag string `json:"default_flag"`
	Token       string `json:"token"`
}

// UpdateCardRequest changes a saved card.
type UpdateCardRequest struct {
	DefaultFlag string `json:"default_flag,omitempty"`
	Token       string `json:"token,omitempty"`
}

// CardService accesses /v1/customers/{customer_id}/cards.
type CardService struct {
	client *Client
}

// Create saves a card on the customer.
func (s *CardService) Create(ctx context.Context, customerID string, req CreateCardRequest, opts *RequestOptions) (*Card, error) {
	return do[Card](ctx, s.client, cardCreate.at(customerID), call{body: req, opts: opts})
}

// List returns the cards of the customer.
func (s *CardService) List(ctx context.Context, customerID string, opts *RequestOptions) (*List[Card], error) {
	return do[List[Card]](ctx, s.client, cardList.at(customerID), call{opts: opts})
}

// Retrieve returns one card.
func (s *CardService) Retrieve(ctx context.Context, customerID, cardID string, opts *RequestOptions) (*Card, error) {
	return do[Card](ctx, s.client, cardRetrieve.at(customerID, cardID), call{opts: opts})
}

// Update changes a card.
func (s *CardService) Update(ctx context.Context, customerID, cardID string, req UpdateCardRequest, opts *RequestOptions) (*Card, error) {
	return do[Card](ctx, s.client, cardUpdate.at(customerID, cardID), call{body: req, opts: opts})
}

// Delete removes a card.
func (s *CardService) Delete(ctx context.Context, customerID, cardID string, opts *RequestOptions) (*DeleteResponse, error) {
	return do[DeleteResponse](ctx, s.client, cardDelete.at(customerID, cardID), call{opts: opts})
}
