package fincode

import (
	"context"
	"net/http"
)

var (
	paymentCreate         = endpoint{http.MethodPost, "/v1/payments"}
	paymentList           = endpoint{http.MethodGet, "/v1/payments"}
	paymentRetrieve       = endpoint{http.MethodGet, "/v1/payments/%s"}
	paymentExecute        = endpoint{http.MethodPut, "/v1/payments/%s"}
	paymentCapture        = endpoint{http.MethodPut, "/v1/payments/%s/capture"}
	paymentCancel         = endpoint{http.MethodPut, "/v1/payments/%s/cancel"}
	paymentReauthorize    = endpoint{http.MethodPut, "/v1/payments/%s/auth"}
	paymentChangeAmount   = endpoint{http.MethodPut, "/v1/payments/%s/change"}
	paymentExecute3DS     = endpoint{http.MethodPut, "/v1/payments/%s/secure"}
	paymentRetrieve3DS    = endpoint{http.MethodGet, "/v1/secure2/%s"}
	paymentAuthenticate3D = endpoint{http.MethodPut, "/v1/secure2/%s"}
	paymentBarcode        = endpoint{http.MethodPut, "/v1/payments/%s/barcode"}
)

// Payment is a payment (order) as returned by the API.
type Payment struct {
	ID           string  `json:"id"`
	ShopID       string  `json:"shop_id"`
	AccessID     string  `json:"access_id"`
	PayType      PayType `json:"pay_type"`
	JobCode      string  `json:"job_code,omitempty"`
	Status       string  `json:"status"`
	Amount       int     `json:"amount"`
	Tax          int     `json:"tax"`
	TotalAmount  int     `json:"total_amount"`
	CustomerID   string  `json:"customer_id,omitempty"`
	CardID       string  `json:"card_id,omitempty"`
	CardNo       string  `json:"card_no,omitempty"`
	Expire       string  `json:"expire,omitempty"`
	Brand        string  `json:"brand,omitempty"`
	Method       string  `json:"method,omitempty"`
	PayTimes     string  `json:"pay_times,omitempty"`
	TdsType      string  `json:"tds_type,omitempty"`
	AcsURL       string  `json:"acs_url,omitempty"`
	RedirectURL  string  `json:"redirect_url,omitempty"`
	ClientField1 string  `json:"client_field_1,omitempty"`
	ClientField2 string  `json:"client_field_2,omitempty"`
	ClientField3 string  `json:"client_field_3,omitempty"`
	ProcessDate  string  `json:"process_date,omitempty"`
	ErrorCode    string  `json:"error_code,omitempty"`
	Created      string  `json:"created"`
	Updated      string  `json:"updated"`

	// Konbini payments only.
	PaymentTermDay string `json:"payment_term_day,omitempty"`
	PaymentTerm    string `json:"payment_term,omitempty"`
	Barcode        string `json:"barcode,omitempty"`
}

// CreatePaymentRequest registers a payment. Amounts are decimal strings.
type CreatePaymentRequest struct {
	PayType      PayType `json:"pay_type"`
	JobCode      string  `json:"job_code,omitempty"`
	Amount       string  `json:"amount,omitempty"`
	Tax          string  `json:"tax,omitempty"`
	ID           string  `json:"id,omitempty"`
	TdsType      string  `json:"tds_type,omitempty"`
	Tds2Type     string  `json:"tds2_type,omitempty"`
	ClientField1 string  `json:"client_field_1,omitempty"`
	ClientField2 string  `json:"client_field_2,omitempty"`
	ClientField3 string  `json:"client_field_3,omitempty"`
}

// ExecutePaymentRequest executes a registered payment with a card token or a
// saved card.
type ExecutePaymentRequest struct {
	PayType    PayType `json:"pay_type"`
	AccessID   string  `json:"access_id"`
	Token      string  `json:"token,omitempty"`
	CustomerID string  `json:"customer_id,omitempty"`
	CardID     string  `json:"card_id,omitempty"`
	Method     string  `json:"method,omitempty"`
	PayTimes   string  `json:"pay_times,omitempty"`
	ClientIP   string  `json:"client_ip,omitempty"`
}

// CapturePaymentRequest captures an authorized payment.
type CapturePaymentRequest struct {
	PayType  PayType `json:"pay_type"`
	AccessID string  `json:"access_id"`
	Method   string  `json:"method,omitempty"`
	PayTimes string  `json:"pay_times,omitempty"`
}

// CancelPaymentRequest cancels a payment.
type CancelPaymentRequest struct {
	PayType  PayType `json:"pay_type"`
	AccessID string  `json:"access_id"`
}

// ReauthorizePaymentRequest authorizes a cancelled payment again.
type ReauthorizePaymentRequest struct {
	PayType  PayType `json:"pay_type"`
	AccessID string  `json:"access_id"`
	Method   string  `json:"method,omitempty"`
	PayTimes string  `json:"pay_times,omitempty"`
}

// ChangeAmountRequest changes the amount of an authorized payment.
type ChangeAmountRequest struct {
	PayType  PayType `json:"pay_type"`
	AccessID string  `json:"access_id"`
	JobCode  string  `json:"job_code"`
	Amount   string  `json:"amount"`
	Tax      string  `json:"tax,omitempty"`
}

// Execute3DSecureRequest completes a payment after 3-D Secure authentication.
type Execute3DSecureRequest struct {
	PayType  PayType `json:"pay_type"`
	AccessID string  `json:"access_id"`
	Param    string  `json:"param,omitempty"`
}

// Authenticate3DSecureRequest posts the browser data of a 3-D Secure 2.0
// authentication.
type Authenticate3DSecureRequest struct {
	Param string `json:"param"`
}

// SecureResult is the result of a 3-D Secure 2.0 authentication.
type SecureResult struct {
	TdsTransResult       string `json:"tds2_trans_result"`
	TdsTransResultReason string `json:"tds2_trans_result_reason,omitempty"`
	ChallengeURL         string `json:"challenge_url,omitempty"`
}

// GenerateBarcodeRequest issues the barcode of a Konbini payment.
type GenerateBarcodeRequest struct {
	PayType     PayType `json:"pay_type"`
	AccessID    string  `json:"access_id"`
	DeviceName  string  `json:"device_name,omitempty"`
	WinWidth    string  `json:"win_width,omitempty"`
	WinHeight   string  `json:"win_height,omitempty"`
	PixelRatio  string  `json:"pixel_ratio,omitempty"`
	WinSizeType string  `json:"win_size_type,omitempty"`
}

// ListPaymentsParams filters Payments.List. PayType is required by the API.
type ListPaymentsParams struct {
	ListParams
	PayType         PayType  `url:"pay_type"`
	CustomerID      string   `url:"customer_id,omitempty"`
	Status          []string `url:"status,omitempty"`
	ProcessDateFrom string   `url:"process_date_from,omitempty"`
	ProcessDateTo   string   `url:"process_date_to,omitempty"`
}

// PaymentService accesses /v1/payments.
type PaymentService struct {
	client *Client
}

// Create registers a payment.
func (s *PaymentService) Create(ctx context.Context, req CreatePaymentRequest, opts *RequestOptions) (*Payment, error) {
	return do[Payment](ctx, s.client, paymentCreate, call{body: req, opts: opts})
}

// List returns payments matching the filter.
func (s *PaymentService) List(ctx context.Context, params ListPaymentsParams, opts *RequestOptions) (*List[Payment], error) {
	return do[List[Payment]](ctx, s.client, paymentList, call{query: params, opts: opts})
}

// Retrieve returns one payment.
func (s *PaymentService) Retrieve(ctx context.Context, id string, payType PayType, opts *RequestOptions) (*Payment, error) {
	q := Params{}.Add("pay_type", string(payType))
	return do[Payment](ctx, s.client, paymentRetrieve.at(id), call{query: q, opts: opts})
}

// Execute executes a registered payment.
func (s *PaymentService) Execute(ctx context.Context, id string, req ExecutePaymentRequest, opts *RequestOptions) (*Payment, error) {
	return do[Payment](ctx, s.client, paymentExecute.at(id), call{body: req, opts: opts})
}

// Capture captures an authorized payment.
func (s *PaymentService) Capture(ctx context.Context, id string, req CapturePaymentRequest, opts *RequestOptions) (*Payment, error) {
	return do[Payment](ctx, s.client, paymentCapture.at(id), call{body: req, opts: opts})
}

// Cancel cancels a payment.
func (s *PaymentService) Cancel(ctx context.Context, id string, req CancelPaymentRequest, opts *RequestOptions) (*Payment, error) {
	return do[Payment](ctx, s.client, paymentCancel.at(id), call{body: req, opts: opts})
}

// Reauthorize authorizes a cancelled payment again.
func (s *PaymentService) Reauthorize(ctx context.Context, id string, req ReauthorizePaymentRequest, opts *RequestOptions) (*Payment, error) {
	return do[Payment](ctx, s.client, paymentReauthorize.at(id), call{body: req, opts: opts})
}

// ChangeAmount changes the amount of an authorized payment.
func (s *PaymentService) ChangeAmount(ctx context.Context, id string, req ChangeAmountRequest, opts *RequestOptions) (*Payment, error) {
	return do[Payment](ctx, s.client, paymentChangeAmount.at(id), call{body: req, opts: opts})
}

// Execute3DSecure completes a payment after 3-D Secure authentication.
func (s *PaymentService) Execute3DSecure(ctx context.Context, id string, req Execute3DSecureRequest, opts *RequestOptions) (*Payment, error) {
	return do[Payment](ctx, s.client, paymentExecute3DS.at(id), call{body: req, opts: opts})
}

// Retrieve3DSecure returns the 3-D Secure 2.0 result for an access ID.
func (s *PaymentService) Retrieve3DSecure(ctx context.Context, accessID string, opts *RequestOptions) (*SecureResult, error) {
	return do[SecureResult](ctx, s.client, paymentRetrieve3DS.at(accessID), call{opts: opts})
}

// Authenticate3DSecure runs 3-D Secure 2.0 authentication for an access ID.
func (s *PaymentService) Authenticate3DSecure(ctx context.Context, accessID string, req Authenticate3DSecureRequest, opts *RequestOptions) (*SecureResult, error) {
	return do[SecureResult](ctx, s.client, paymentAuthenticate3D.at(accessID), call{body: req, opts: opts})
}

// GenerateBarcode issues the barcode of a Konbini payment.
func (s *PaymentService) GenerateBarcode(ctx context.Context, id string, req GenerateBarcodeRequest, opts *RequestOptions) (*Payment, error) {
	return do[Payment](ctx, s.client, paymentBarcode.at(id), call{body: req, opts: opts})
}
