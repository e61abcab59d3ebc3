package fincode

import (
	"context"
	"net/http"
)

var (
	subscriptionCreate   = endpoint{http.MethodPost, "/v1/subscriptions"}
	subscriptionList     = endpoint{http.MethodGet, "/v1/subscriptions"}
	subscriptionRetrieve = endpoint{http.MethodGet, "/v1/subscriptions/%s"}
	subscriptionUpdate   = endpoint{http.MethodPut, "/v1/subscriptions/%s"}
	subscriptionDelete   = endpoint{http.MethodDelete, "/v1/subscriptions/%s"}
	subscriptionResults  = endpoint{http.MethodGet, "/v1/subscriptions/%s/result"}
)

// Subscription is a recurring billing contract between a customer and a plan.
type Subscription struct {
	ID              string  `json:"id"`
	ShopID          string  `json:"shop_id"`
	PayType         PayType `json:"pay_type"`
	PlanID          string  `json:"plan_id"`
	PlanName        string  `json:"plan_name,omitempty"`
	CustomerID      string  `json:"customer_id"`
	CardID          string  `json:"card_id,omitempty"`
	PaymentMethodID string  `json:"payment_method_id,omitempty"`
	Amount          int     `json:"amount"`
	Tax             int     `json:"tax"`
	TotalAmount     int     `json:"total_amount"`
	StartDate       string  `json:"start_date"`
	StopDate        string  `json:"stop_date,omitempty"`
	NextChargeDate  string  `json:"next_charge_date,omitempty"`
	EndMonthFlag    string  `json:"end_month_flag,omitempty"`
	Status          string  `json:"status"`
	Remarks         string  `json:"remarks,omitempty"`
	Created         string  `json:"created,omitempty"`
	Updated         string  `json:"updated,omitempty"`
}

// CreateSubscriptionRequest starts a subscription.
type CreateSubscriptionRequest struct {
	PayType         PayType `json:"pay_type"`
	PlanID          string  `json:"plan_id"`
	CustomerID      string  `json:"customer_id"`
	CardID          string  `json:"card_id,omitempty"`
	PaymentMethodID string  `json:"payment_method_id,omitempty"`
	StartDate       string  `json:"start_date"`
	StopDate        string  `json:"stop_date,omitempty"`
	EndMonthFlag    string  `json:"end_month_flag,omitempty"`
	Remarks         string  `json:"remarks,omitempty"`
}

// UpdateSubscriptionRequest changes a subscription.
type UpdateSubscriptionRequest struct {
	PayType      PayType `json:"pay_type"`
	PlanID       string  `json:"plan_id,omitempty"`
	CardID       string  `json:"card_id,omitempty"`
	StopDate     string  `json:"stop_date,omitempty"`
	EndMonthFlag string  `json:"end_month_flag,omitempty"`
	Remarks      string  `json:"remarks,omitempty"`
}

// SubscriptionResult is one charge made by a subscription.
type SubscriptionResult struct {
	ID             string `json:"id"`
	SubscriptionID string `json:"subscription_id"`
	ProcessDate    string `json:"process_date"`
	OrderID        string `json:"order_id,omitempty"`
	Status         string `json:"status"`
	ErrorCode      string `json:"error_code,omitempty"`
	TotalAmount    int    `json:"total_amount"`
}

// ListSubscriptionsParams filters Subscriptions.List.
type ListSubscriptionsParams struct {
	ListParams
	PayType    PayType  `url:"pay_type"`
	PlanID     string   `url:"plan_id,omitempty"`
	CustomerID string   `url:"customer_id,omitempty"`
	Status     []string `url:"status,omitempty"`
}

// SubscriptionService accesses /v1/subscriptions.
type SubscriptionService struct {
	client *Client
}

func (s *SubscriptionService) Create(ctx context.Context, req CreateSubscriptionRequest, opts *RequestOptions) (*Subscription, error) {
	return do[Subscription](ctx, s.client, subscriptionCreate, call{body: req, opts: opts})
}

func (s *SubscriptionService) List(ctx context.Context, params ListSubscriptionsParams, opts *RequestOptions) (*List[Subscription], error) {
	return do[List[Subscription]](ctx, s.client, subscriptionList, call{query: params, opts: opts})
}

func (s *SubscriptionService) Retrieve(ctx context.Context, id string, payType PayType, opts *RequestOptions) (*Subscription, error) {
	q := Params{}.Add("pay_type", string(payType))
	return do[Subscription](ctx, s.client, subscriptionRetrieve.at(id), call{query: q, opts: opts})
}

func (s *SubscriptionService) Update(ctx context.Context, id string, req UpdateSubscriptionRequest, opts *RequestOptions) (*Subscription, error) {
	return do[Subscription](ctx, s.client, subscriptionUpdate.at(id), call{body: req, opts: opts})
}

// Delete cancels a subscription.
func (s *SubscriptionService) Delete(ctx context.Context, id string, payType PayType, opts *RequestOptions) (*DeleteResponse, error) {
	q := Params{}.Add("pay_type", string(payType))
	return do[DeleteResponse](ctx, s.client, subscriptionDelete.at(id), call{query: q, opts: opts})
}

// ListResults returns the charges made by a subscription.
func (s *SubscriptionService) ListResults(ctx context.Context, id string, payType PayType, params ListParams, opts *RequestOptions) (*List[SubscriptionResult], error) {
	q := Params{}.Add("pay_type", string(payType)).Add("paging", params)
	return do[List[SubscriptionResult]](ctx, s.client, subscriptionResults.at(id), call{query: q, opts: opts})
}
