package fincode

import (
	"context"
	"net/http"
)

var (
	accountList        = endpoint{http.MethodGet, "/v1/accounts"}
	accountRetrieve    = endpoint{http.MethodGet, "/v1/accounts/%s"}
	accountListDetails = endpoint{http.MethodGet, "/v1/accounts/%s/detail"}
)

// Account is a deposit (settlement) statement of the shop.
type Account struct {
	ID                 string `json:"id"`
	ShopID             string `json:"shop_id"`
	Status             string `json:"status"`
	AggregateTermStart string `json:"aggregate_term_start"`
	AggregateTermEnd   string `json:"aggregate_term_end"`
	DepositDate        string `json:"deposit_date"`
	TotalSalesAmount   int    `json:"total_sales_amount"`
	TotalFeeAmount     int    `json:"total_fee_amount"`
	TotalDepositAmount int    `json:"total_deposit_amount"`
	Created            string `json:"created,omitempty"`
	Updated            string `json:"updated,omitempty"`
}

// AccountDetail is one payment included in an Account.
type AccountDetail struct {
	AccountID   string  `json:"account_id"`
	OrderID     string  `json:"order_id"`
	PayType     PayType `json:"pay_type"`
	ProcessDate string  `json:"process_date"`
	SalesAmount int     `json:"sales_amount"`
	FeeAmount   int     `json:"fee_amount"`
}

// ListAccountsParams filters Accounts.List.
type ListAccountsParams struct {
	ListParams
	DepositDateFrom string `url:"deposit_date_from,omitempty"`
	DepositDateTo   string `url:"deposit_date_to,omitempty"`
	Status          string `url:"status,omitempty"`
}

// AccountService accesses /v1/accounts.
type AccountService struct {
	client *Client
}

func (s *AccountService) List(ctx context.Context, params ListAccountsParams, opts *RequestOptions) (*List[Account], error) {
	return do[List[Account]](ctx, s.client, accountList, call{query: params, opts: opts})
}

func (s *AccountService) Retrieve(ctx context.Context, id string, opts *RequestOptions) (*Account, error) {
	return do[Account](ctx, s.client, accountRetrieve.at(id), call{opts: opts})
}

// ListDetails returns the payments settled by an account.
func (s *AccountService) ListDetails(ctx context.Context, id string, params ListParams, opts *RequestOptions) (*List[AccountDetail], error) {
	return do[List[AccountDetail]](ctx, s.client, accountListDetails.at(id), call{query: params, opts: opts})
}
