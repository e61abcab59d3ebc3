package fincode

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
)

var (
	paymentBulkCreate   = endpoint{http.MethodPost, "/v1/payments/bulk"}
	paymentBulkList     = endpoint{http.MethodGet, "/v1/payments/bulk"}
	paymentBulkRetrieve = endpoint{http.MethodGet, "/v1/payments/bulk/%s"}
	paymentBulkDetails  = endpoint{http.MethodGet, "/v1/payments/bulk/%s/detail"}
	paymentBulkDelete   = endpoint{http.MethodDelete, "/v1/payments/bulk/%s"}
)

// PaymentBulk is an uploaded bulk payment file.
type PaymentBulk struct {
	ID              string  `json:"id"`
	ShopID          string  `json:"shop_id"`
	PayType         PayType `json:"pay_type"`
	Status          string  `json:"status"`
	FileName        string  `json:"file_name"`
	TotalCount      int     `json:"total_count"`
	ProcessPlanDate string  `json:"process_plan_date"`
	ProcessedDate   string  `json:"processed_date,omitempty"`
	ErrorCode       string  `json:"error_code,omitempty"`
	Created         string  `json:"created"`
	Updated         string  `json:"updated"`
}

// PaymentBulkDetail is one line of a bulk payment file. Errors lists the
// problems of lines that failed while the rest of the file succeeded.
type PaymentBulkDetail struct {
	ID         string           `json:"id"`
	BulkID     string           `json:"payment_bulk_id"`
	OrderID    string           `json:"order_id,omitempty"`
	CustomerID string           `json:"customer_id,omitempty"`
	CardID     string           `json:"card_id,omitempty"`
	Amount     int              `json:"amount"`
	Status     string           `json:"status"`
	Errors     []APIErrorObject `json:"error_info,omitempty"`
}

// CreatePaymentBulkRequest uploads a bulk payment file.
type CreatePaymentBulkRequest struct {
	PayType PayType
	// ProcessPlanDate is the day the file is processed, formatted yyyy/MM/dd.
	ProcessPlanDate string
	FileName        string
	File            io.Reader
}

// ListPaymentBulksParams filters PaymentBulks.List.
type ListPaymentBulksParams struct {
	ListParams
	PayType             PayType `url:"pay_type,omitempty"`
	Status              string  `url:"status,omitempty"`
	ProcessPlanDateFrom string  `url:"process_plan_date_from,omitempty"`
	ProcessPlanDateTo   string  `url:"process_plan_date_to,omitempty"`
}

// PaymentBulkService accesses /v1/payments/bulk.
type PaymentBulkService struct {
	client *Client
}

// Create uploads a bulk payment file as multipart/form-data.
func (s *PaymentBulkService) Create(ctx context.Context, req CreatePaymentBulkRequest, opts *RequestOptions) (*PaymentBulk, error) {
	if req.File == nil {
		return nil, &ConfigurationError{Message: "bulk payment file is required"}
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	name := req.FileName
	if name == "" {
		name = "payments.csv"
	}
	part, err := w.CreateFormFile("file", name)
	if err != nil {
		return nil, &ConfigurationError{Message: "encode bulk payment file", Err: err}
	}
	if _, err := io.Copy(part, req.File); err != nil {
		return nil, &ConfigurationError{Message: "encode bulk payment file", Err: err}
	}
	if err := w.Close(); err != nil {
		return nil, &ConfigurationError{Message: "encode bulk payment file", Err: err}
	}

	q := Params{}.
		Add("pay_type", string(req.PayType)).
		Add("process_plan_date", req.ProcessPlanDate)

	return do[PaymentBulk](ctx, s.client, paymentBulkCreate, call{
		query:       q,
		body:        buf.Bytes(),
		opts:        opts,
		contentType: w.FormDataContentType(),
	})
}

// List returns uploaded bulk payment files.
func (s *PaymentBulkService) List(ctx context.Context, params ListPaymentBulksParams, opts *RequestOptions) (*List[PaymentBulk], error) {
	return do[List[PaymentBulk]](ctx, s.client, paymentBulkList, call{query: params, opts: opts})
}

// Retrieve returns one bulk payment file.
func (s *PaymentBulkService) Retrieve(ctx context.Context, id string, opts *RequestOptions) (*PaymentBulk, error) {
	return do[PaymentBulk](ctx, s.client, paymentBulkRetrieve.at(id), call{opts: opts})
}

// ListDetails returns the lines of a bulk payment file.
func (s *PaymentBulkService) ListDetails(ctx context.Context, id string, params ListParams, opts *RequestOptions) (*List[PaymentBulkDetail], error) {
	return do[List[PaymentBulkDetail]](ctx, s.client, paymentBulkDetails.at(id), call{query: params, opts: opts})
}

// Delete deletes a bulk payment file that has not been processed yet.
func (s *PaymentBulkService) Delete(ctx context.Context, id string, opts *RequestOptions) (*DeleteResponse, error) {
	return do[DeleteResponse](ctx, s.client, paymentBulkDelete.at(id), call{opts: opts})
}

// FailedLines returns the lines of a detail page that carry errors.
func FailedLines(page *List[PaymentBulkDetail]) []PaymentBulkDetail {
	if page == nil {
		return nil
	}
	var failed []PaymentBulkDetail
	for _, d := range page.List {
		if len(d.Errors) > 0 {
			failed = append(failed, d)
		}
	}
	return failed
}
