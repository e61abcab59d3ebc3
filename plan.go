package fincode

import (
	"context"
	"net/http"
)

var (
	planCreate   = endpoint{http.MethodPost, "/v1/plans"}
	planList     = endpoint{http.MethodGet, "/v1/plans"}
	planRetrieve = endpoint{http.MethodGet, "/v1/plans/%s"}
	planUpdate   = endpoint{http.MethodPut, "/v1/plans/%s"}
	planDelete   = endpoint{http.MethodDelete, "/v1/plans/%s"}
)

// Plan is a subscription plan.
type Plan struct {
	ID              string `json:"id"`
	PlanName        string `json:"plan_name"`
	Description     string `json:"description,omitempty"`
	ShopID          string `json:"shop_id"`
	Amount          int    `json:"amount"`
	Tax             int    `json:"tax"`
	TotalAmount     int    `json:"total_amount"`
	IntervalPattern string `json:"interval_pattern"`
	IntervalCount   int    `json:"interval_count"`
	UsedFlag        string `json:"used_flag,omitempty"`
	DeleteFlag      string `json:"delete_flag,omitempty"`
	Created         string `json:"created,omitempty"`
	Updated         string `json:"updated,omitempty"`
}

// PlanRequest is the body of Plans.Create and Plans.Update.
type PlanRequest struct {
	PlanName        string `json:"plan_name,omitempty"`
	Description     string `json:"description,omitempty"`
	Amount          string `json:"amount,omitempty"`
	Tax             string `json:"tax,omitempty"`
	IntervalPattern string `json:"interval_pattern,omitempty"`
	IntervalCount   string `json:"interval_count,omitempty"`
}

// ListPlansParams filters Plans.List.
type ListPlansParams struct {
	ListParams
	PlanName        string `url:"plan_name,omitempty"`
	IntervalPattern string `url:"interval_pattern,omitempty"`
	DeleteFlag      string `url:"delete_flag,omitempty"`
}

// PlanService accesses /v1/plans.
type PlanService struct {
	client *Client
}

func (s *PlanService) Create(ctx context.Context, req PlanRequest, opts *RequestOptions) (*Plan, error) {
	return do[Plan](ctx, s.client, planCreate, call{body: req, opts: opts})
}

func (s *PlanService) List(ctx context.Context, params ListPlansParams, opts *RequestOptions) (*List[Plan], error) {
	return do[List[Plan]](ctx, s.client, planList, call{query: params, opts: opts})
}

func (s *PlanService) Retrieve(ctx context.Context, id string, opts *RequestOptions) (*Plan, error) {
	return do[Plan](ctx, s.client, planRetrieve.at(id), call{opts: opts})
}

func (s *PlanService) Update(ctx context.Context, id string, req PlanRequest, opts *RequestOptions) (*Plan, error) {
	return do[Plan](ctx, s.client, planUpdate.at(id), call{body: req, opts: opts})
}

// Delete removes a plan. Plans used by a subscription cannot be deleted.
func (s *PlanService) Delete(ctx context.Context, id string, opts *RequestOptions) (*DeleteResponse, error) {
	return do[DeleteResponse](ctx, s.client, planDelete.at(id), call{opts: opts})
}
