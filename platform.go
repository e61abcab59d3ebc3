package fincode

import (
	"context"
	"net/http"
)

var (
	platformList     = endpoint{http.MethodGet, "/v1/platforms"}
	platformRetrieve = endpoint{http.MethodGet, "/v1/platforms/%s"}
	platformUpdate   = endpoint{http.MethodPut, "/v1/platforms/%s"}
)

// Platform is a platform shop and its fee settings.
type Platform struct {
	ID               string         `json:"id"`
	ShopName         string         `json:"shop_name"`
	ShopType         string         `json:"shop_type"`
	PlatformRateList []PlatformRate `json:"platform_rate_list,omitempty"`
	SendMailAddress  string         `json:"send_mail_address,omitempty"`
	Created          string         `json:"created,omitempty"`
	Updated          string         `json:"updated,omitempty"`
}

// PlatformRate is the fee rate applied to one pay type.
type PlatformRate struct {
	ID      string  `json:"id"`
	PayType PayType `json:"pay_type"`
	Rate    string  `json:"rate"`
	Fee     string  `json:"fee,omitempty"`
}

// UpdatePlatformRequest changes platform settings.
type UpdatePlatformRequest struct {
	SendMailAddress  string         `json:"send_mail_address,omitempty"`
	PlatformRateList []PlatformRate `json:"platform_rate_list,omitempty"`
}

// PlatformService accesses /v1/platforms.
type PlatformService struct {
	client *Client
}

func (s *PlatformService) List(ctx context.Context, params ListParams, opts *RequestOptions) (*List[Platform], error) {
	return do[List[Platform]](ctx, s.client, platformList, call{query: params, opts: opts})
}

func (s *PlatformService) Retrieve(ctx context.Context, id string, opts *RequestOptions) (*Platform, error) {
	return do[Platform](ctx, s.client, platformRetrieve.at(id), call{opts: opts})
}

func (s *PlatformService) Update(ctx context.Context, id string, req UpdatePlatformRequest, opts *RequestOptions) (*Platform, error) {
	return do[Platform](ctx, s.client, platformUpdate.at(id), call{body: req, opts: opts})
}
