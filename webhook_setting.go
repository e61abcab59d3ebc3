package fincode

import (
	"context"
	"net/http"
)

var (
	webhookSettingCreate   = endpoint{http.MethodPost, "/v1/webhook_settings"}
	webhookSettingList     = endpoint{http.MethodGet, "/v1/webhook_settings"}
	webhookSettingRetrieve = endpoint{http.MethodGet, "/v1/webhook_settings/%s"}
	webhookSettingUpdate   = endpoint{http.MethodPut, "/v1/webhook_settings/%s"}
	webhookSettingDelete   = endpoint{http.MethodDelete, "/v1/webhook_settings/%s"}
)

// WebhookSetting registers a URL that receives events of one type.
type WebhookSetting struct {
	ID        string `json:"id"`
	ShopID    string `json:"shop_id"`
	URL       string `json:"url"`
	Event     string `json:"event"`
	Signature string `json:"signature"`
	Created   string `json:"created,omitempty"`
	Updated   string `json:"updated,omitempty"`
}

// WebhookSettingRequest is the body of WebhookSettings.Create and Update.
type WebhookSettingRequest struct {
	URL       string `json:"url,omitempty"`
	Event     string `json:"event,omitempty"`
	Signature string `json:"signature,omitempty"`
}

// WebhookSettingService accesses /v1/webhook_settings.
type WebhookSettingService struct {
	client *Client
}

func (s *WebhookSettingService) Create(ctx context.Context, req WebhookSettingRequest, opts *RequestOptions) (*WebhookSetting, error) {
	return do[WebhookSetting](ctx, s.client, webhookSettingCreate, call{body: req, opts: opts})
}

// List returns every webhook setting. The endpoint does not page.
func (s *WebhookSettingService) List(ctx context.Context, opts *RequestOptions) (*List[WebhookSetting], error) {
	return do[List[WebhookSetting]](ctx, s.client, webhookSettingList, call{opts: opts})
}

func (s *WebhookSettingService) Retrieve(ctx context.Context, id string, opts *RequestOptions) (*WebhookSetting, error) {
	return do[WebhookSetting](ctx, s.client, webhookSettingRetrieve.at(id), call{opts: opts})
}

func (s *WebhookSettingService) Update(ctx context.Context, id string, req WebhookSettingRequest, opts *RequestOptions) (*WebhookSetting, error) {
	return do[WebhookSetting](ctx, s.client, webhookSettingUpdate.at(id), call{body: req, opts: opts})
}

func (s *WebhookSettingService) Delete(ctx context.Context, id string, opts *RequestOptions) (*DeleteResponse, error) {
	return do[DeleteResponse](ctx, s.client, webhookSettingDelete.at(id), call{opts: opts})
}
