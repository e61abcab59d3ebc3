package fincode

import (
	"context"
	"net/http"
)

var (
	sessionCreatePayment          = endpoint{http.MethodPost, "/v1/sessions"}
	sessionCreateCardRegistration = endpoint{http.MethodPost, "/v1/card_sessions"}
)

// Session is a hosted payment page or card registration page.
type Session struct {
	ID           string `json:"id"`
	LinkURL      string `json:"link_url"`
	SuccessURL   string `json:"success_url,omitempty"`
	CancelURL    string `json:"cancel_url,omitempty"`
	Expire       string `json:"expire,omitempty"`
	ReceiverMail string `json:"receiver_mail,omitempty"`
	Created      string `json:"created,omitempty"`
}

// SessionTransaction describes the payment taken on a payment session page.
type SessionTransaction struct {
	PayType      []PayType `json:"pay_type"`
	OrderID      string    `json:"order_id,omitempty"`
	Amount       string    `json:"amount"`
	Tax          string    `json:"tax,omitempty"`
	ClientField1 string    `json:"client_field_1,omitempty"`
	ClientField2 string    `json:"client_field_2,omitempty"`
	ClientField3 string    `json:"client_field_3,omitempty"`
}

// CreatePaymentSessionRequest creates a hosted payment page.
type CreatePaymentSessionRequest struct {
	SuccessURL       string             `json:"success_url,omitempty"`
	CancelURL        string             `json:"cancel_url,omitempty"`
	Expire           string             `json:"expire,omitempty"`
	ReceiverMail     string             `json:"receiver_mail,omitempty"`
	MailCustomerName string             `json:"mail_customer_name,omitempty"`
	Transaction      SessionTransaction `json:"transaction"`
	// Card and the other pay type blocks are passed through unchanged.
	Card map[string]any `json:"card,omitempty"`
}

// CreateCardRegistrationSessionRequest creates a hosted card registration page.
type CreateCardRegistrationSessionRequest struct {
	SuccessURL   string `json:"success_url,omitempty"`
	CancelURL    string `json:"cancel_url,omitempty"`
	Expire       string `json:"expire,omitempty"`
	ReceiverMail string `json:"receiver_mail,omitempty"`
	CustomerID   string `json:"customer_id"`
	CustomerName string `json:"customer_name,omitempty"`
}

// SessionService creates hosted payment and card registration pages.
type SessionService struct {
	client *Client
}

// CreatePayment creates a hosted payment page.
func (s *SessionService) CreatePayment(ctx context.Context, req CreatePaymentSessionRequest, opts *RequestOptions) (*Session, error) {
	return do[Session](ctx, s.client, sessionCreatePayment, call{body: req, opts: opts})
}

// CreateCardRegistration creates a hosted card registration page.
func (s *SessionService) CreateCardRegistration(ctx context.Context, req CreateCardRegistrationSessionRequest, opts *RequestOptions) (*Session, error) {
	return do[Session](ctx, s.client, sessionCreateCardRegistration, call{body: req, opts: opts})
}
