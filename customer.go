package fincode

import (
	"context"
	"net/http"
)

var (
	customerCreate   = endpoint{http.MethodPost, "/v1/customers"}
	customerList     = endpoint{http.MethodGet, "/v1/customers"}
	customerRetrieve = endpoint{http.MethodGet, "/v1/customers/%s"}
	customerUpdate   = endpoint{http.MethodPut, "/v1/customers/%s"}
	customerDelete   = endpoint{http.MethodDelete, "/v1/customers/%s"}
)

// Customer is a customer registered on the shop.
type Customer struct {
	ID             string `json:"id"`
	Name           string `json:"name,omitempty"`
	Email          string `json:"email,omitempty"`
	PhoneCc        string `json:"phone_cc,omitempty"`
	PhoneNo        string `json:"phone_no,omitempty"`
	AddrCountry    string `json:"addr_country,omitempty"`
	AddrState      string `json:"addr_state,omitempty"`
	AddrCity       string `json:"addr_city,omitempty"`
	AddrLine1      string `json:"addr_line_1,omitempty"`
	AddrLine2      string `json:"addr_line_2,omitempty"`
	AddrPostCode   string `json:"addr_post_code,omitempty"`
	CardRegistered string `json:"card_registration,omitempty"`
	Created        string `json:"created,omitempty"`
	Updated        string `json:"updated,omitempty"`
}

// CustomerRequest is the body of Customers.Create and Customers.Update.
// ID may be set on create to choose the customer ID.
type CustomerRequest struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name,omitempty"`
	Email        string `json:"email,omitempty"`
	PhoneCc      string `json:"phone_cc,omitempty"`
	PhoneNo      string `json:"phone_no,omitempty"`
	AddrCountry  string `json:"addr_country,omitempty"`
	AddrState    string `json:"addr_state,omitempty"`
	AddrCity     string `json:"addr_city,omitempty"`
	AddrLine1    string `json:"addr_line_1,omitempty"`
	AddrLine2    string `json:"addr_line_2,omitempty"`
	AddrPostCode string `json:"addr_post_code,omitempty"`
}

// ListCustomersParams filters Customers.List.
type ListCustomersParams struct {
	ListParams
	Name        string `url:"name,omitempty"`
	Email       string `url:"email,omitempty"`
	CreatedFrom string `url:"created_from,omitempty"`
	CreatedTo   string `url:"created_to,omitempty"`
}

// CustomerService accesses /v1/customers.
type CustomerService struct {
	client *Client
}

// Create registers a customer.
func (s *CustomerService) Create(ctx context.Context, req CustomerRequest, opts *RequestOptions) (*Customer, error) {
	return do[Customer](ctx, s.client, customerCreate, call{body: req, opts: opts})
}

// List returns customers matching the filter.
func (s *CustomerService) List(ctx context.Context, params ListCustomersParams, opts *RequestOptions) (*List[Customer], error) {
	return do[List[Customer]](ctx, s.client, customerList, call{query: params, opts: opts})
}

// Retrieve returns one customer.
func (s *CustomerService) Retrieve(ctx context.Context, id string, opts *RequestOptions) (*Customer, error) {
	return do[Customer](ctx, s.client, customerRetrieve.at(id), call{opts: opts})
}

// Update changes a customer.
func (s *CustomerService) Update(ctx context.Context, id string, req CustomerRequest, opts *RequestOptions) (*Customer, error) {
	return do[Customer](ctx, s.client, customerUpdate.at(id), call{body: req, opts: opts})
}

// Delete removes a customer together with its cards.
func (s *CustomerService) Delete(ctx context.Context, id string, opts *RequestOptions) (*DeleteResponse, error) {
	return do[DeleteResponse](ctx, s.client, customerDelete.at(id), call{opts: opts})
}
