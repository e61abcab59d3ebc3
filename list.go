package fincode

import (
	"github.com/joshuawatkins04/fincode-go/internal/query"
)

// Params is an ordered set of query parameters for list calls.
type Params = query.Params

// Sort is a sort specification sent as "field order".
type Sort = query.Sort

// Sort orders.
const (
	OrderAsc  = query.OrderAsc
	OrderDesc = query.OrderDesc
)

// List is the envelope of every list endpoint.
type List[T any] struct {
	TotalCount   int    `json:"total_count"`
	LastPage     int    `json:"last_page"`
	CurrentPage  int    `json:"current_page"`
	Limit        int    `json:"limit"`
	LinkNext     string `json:"link_next"`
	LinkPrevious string `json:"link_previous"`
	List         []T    `json:"list"`
}

// HasNext reports whether another page follows this one.
func (l *List[T]) HasNext() bool {
	return l.LinkNext != "" || l.CurrentPage < l.LastPage
}

// ListParams are the paging and sorting parameters shared by list endpoints.
// Embed it in resource filters.
type ListParams struct {
	Limit     int    `url:"limit,omitempty"`
	Page      int    `url:"page,omitempty"`
	CountOnly bool   `url:"count_only,omitempty"`
	Sort      []Sort `url:"sort,omitempty"`
}

// DeleteResponse is returned by delete endpoints.
type DeleteResponse struct {
	ID         string `json:"id"`
	DeleteFlag string `json:"delete_flag"`
}

// PayType is a payment method family.
type PayType string

// Pay types.
const (
	PayTypeCard           PayType = "Card"
	PayTypeApplepay       PayType = "Applepay"
	PayTypeKonbini        PayType = "Konbini"
	PayTypePaypay         PayType = "Paypay"
	PayTypeDirectdebit    PayType = "Directdebit"
	PayTypeVirtualaccount PayType = "Virtualaccount"
)
