package fincode

import (
	"context"
	"net/http"
)

var (
	paymentMethodCreate   = endpoint{http.MethodPost, "/v1/customers/%s/payment_methods"}
	paymentMethodList     = endpoint{http.MethodGet, "/v1/customers/%s/payment_methods"}
	paymentMethodRetrieve = endpoint{http.MethodGet, "/v1/customers/%s/payment_methods/%s"}
	paymentMethodDelete   = endpoint{http.MethodDelete, "/v1/customers/%s/payment_methods/%s"}
)

// PaymentMethod is a saved payment method (card or direct debit account).
type PaymentMethod struct {
	ID          string  `json:"id"`
	CustomerID  string  `json:"customer_id"`
	PayType     PayType `json:"pay_type"`
	Status      string  `json:"status"`
	DefaultFlag string  `json:"default_flag"`
	RedirectURL string  `json:"redirect_url,omitempty"`
	Created     string  `json:"created,omitempty"`
	Updated     string  `json:"updated,omitempty"`
}

// CreatePaymentMethodRequest registers a payment method. ReturnURL is used by
// pay types that redirect the customer to complete registration.
type CreatePaymentMethodRequest struct {
	PayType     PayType `json:"pay_type"`
	DefaultFlag string  `json:"default_flag,omitempty"`
	Token       string  `json:"token,omitempty"`
	ReturnURL   string  `json:"return_url,omitempty"`
}

// PaymentMethodService accesses /v1/customers/{customer_id}/payment_methods.
type PaymentMethodService struct {
	client *Client
}

func (s *PaymentMethodService) Create(ctx context.Context, customerID string, req CreatePaymentMethodRequest, opts *RequestOptions) (*PaymentMethod, error) {
	return do[PaymentMethod](ctx, s.client, paymentMethodCreate.at(customerID), call{body: req, opts: opts})
}

func (s *PaymentMethodService) List(ctx context.Context, customerID string, payType PayType, opts *RequestOptions) (*List[PaymentMethod], error) {
	q := Params{}.Add("pay_type", string(payType))
	return do[List[PaymentMethod]](ctx, s.client, paymentMethodList.at(customerID), call{query: q, opts: opts})
}

func (s *PaymentMethodService) Retrieve(ctx context.Context, customerID, id string, payType PayType, opts *RequestOptions) (*PaymentMethod, error) {
	q := Params{}.Add("pay_type", string(payType))
	return do[PaymentMethod](ctx, s.client, paymentMethodRetrieve.at(customerID, id), call{query: q, opts: opts})
}

func (s *PaymentMethodService) Delete(ctx context.Context, customerID, id string, payType PayType, opts *RequestOptions) (*DeleteResponse, error) {
	q := Params{}.Add("pay_type", string(payType))
	return do[DeleteResponse](ctx, s.client, paymentMethodDelete.at(customerID, id), call{query: q, opts: opts})
}
