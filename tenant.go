package fincode

import (
	"context"
	"net/http"
)

var (
	tenantCreateWithNewUser      = endpoint{http.MethodPost, "/v1/tenants/with_new_user"}
	tenantCreateWithExistingUser = endpoint{http.MethodPost, "/v1/tenants/with_existing_user"}
	tenantList                   = endpoint{http.MethodGet, "/v1/tenants"}
	tenantRetrieve               = endpoint{http.MethodGet, "/v1/tenants/%s"}
	tenantUpdate                 = endpoint{http.MethodPut, "/v1/tenants/%s"}
	tenantContract               = endpoint{http.MethodGet, "/v1/contracts"}
	tenantExamination            = endpoint{http.MethodGet, "/v1/contracts/examinations"}
	tenantExaminationUpdate      = endpoint{http.MethodPut, "/v1/contracts/examinations"}
)

// Tenant is a child shop under a platform.
type Tenant struct {
	ID                 string `json:"id"`
	ShopName           string `json:"shop_name"`
	ShopNameFurigana   string `json:"shop_name_furigana,omitempty"`
	ShopType           string `json:"shop_type"`
	PlatformID         string `json:"platform_id"`
	PlatformName       string `json:"platform_name,omitempty"`
	SharedCustomerFlag string `json:"shared_customer_flag,omitempty"`
	SendMailAddress    string `json:"send_mail_address,omitempty"`
	Created            string `json:"created,omitempty"`
	Updated            string `json:"updated,omitempty"`
}

// TenantUser is the login user created with a tenant.
type TenantUser struct {
	ID       string `json:"id"`
	LoginID  string `json:"login_id"`
	RoleCode string `json:"role_code,omitempty"`
}

// CreateTenantResponse is returned by the tenant creation endpoints.
type CreateTenantResponse struct {
	Tenant Tenant     `json:"tenant"`
	User   TenantUser `json:"user"`
}

// CreateTenantWithNewUserRequest creates a tenant and a new login user.
type CreateTenantWithNewUserRequest struct {
	TenantName string `json:"tenant_name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
}

// CreateTenantWithExistingUserRequest creates a tenant owned by an existing
// login user.
type CreateTenantWithExistingUserRequest struct {
	TenantName string `json:"tenant_name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
}

// UpdateTenantRequest changes a tenant.
type UpdateTenantRequest struct {
	ShopName         string `json:"shop_name,omitempty"`
	ShopNameFurigana string `json:"shop_name_furigana,omitempty"`
	SendMailAddress  string `json:"send_mail_address,omitempty"`
}

// Contract is the contract state of a tenant shop.
type Contract struct {
	ShopID       string `json:"shop_id"`
	Status       string `json:"status"`
	StatusCode   string `json:"status_code,omitempty"`
	ContractDate string `json:"contract_date,omitempty"`
}

// Examination is the merchant review application of a tenant shop. Its
// contents are passed through unchanged.
type Examination struct {
	TenantID   string         `json:"tenant_id"`
	Status     string         `json:"status"`
	StatusCode string         `json:"status_code,omitempty"`
	Info       map[string]any `json:"info,omitempty"`
	Updated    string         `json:"updated,omitempty"`
}

// UpdateExaminationRequest submits review information for a tenant shop.
type UpdateExaminationRequest struct {
	Info map[string]any `json:"info"`
}

// TenantService accesses /v1/tenants and the tenant scoped contract
// endpoints.
type TenantService struct {
	client *Client
}

func (s *TenantService) CreateWithNewUser(ctx context.Context, req CreateTenantWithNewUserRequest, opts *RequestOptions) (*CreateTenantResponse, error) {
	return do[CreateTenantResponse](ctx, s.client, tenantCreateWithNewUser, call{body: req, opts: opts})
}

func (s *TenantService) CreateWithExistingUser(ctx context.Context, req CreateTenantWithExistingUserRequest, opts *RequestOptions) (*CreateTenantResponse, error) {
	return do[CreateTenantResponse](ctx, s.client, tenantCreateWithExistingUser, call{body: req, opts: opts})
}

func (s *TenantService) List(ctx context.Context, params ListParams, opts *RequestOptions) (*List[Tenant], error) {
	return do[List[Tenant]](ctx, s.client, tenantList, call{query: params, opts: opts})
}

func (s *TenantService) Retrieve(ctx context.Context, id string, opts *RequestOptions) (*Tenant, error) {
	return do[Tenant](ctx, s.client, tenantRetrieve.at(id), call{opts: opts})
}

func (s *TenantService) Update(ctx context.Context, id string, req UpdateTenantRequest, opts *RequestOptions) (*Tenant, error) {
	return do[Tenant](ctx, s.client, tenantUpdate.at(id), call{body: req, opts: opts})
}

// RetrieveContract returns the contract of the tenant shop.
func (s *TenantService) RetrieveContract(ctx context.Context, tenantShopID string) (*Contract, error) {
	return do[Contract](ctx, s.client, tenantContract, call{opts: tenantScope(tenantShopID, nil)})
}

// RetrieveExamination returns the review application of the tenant shop.
func (s *TenantService) RetrieveExamination(ctx context.Context, tenantShopID string) (*Examination, error) {
	return do[Examination](ctx, s.client, tenantExamination, call{opts: tenantScope(tenantShopID, nil)})
}

// UpdateExamination submits review information for the tenant shop.
func (s *TenantService) UpdateExamination(ctx context.Context, tenantShopID string, req UpdateExaminationRequest, opts *RequestOptions) (*Examination, error) {
	return do[Examination](ctx, s.client, tenantExaminationUpdate, call{body: req, opts: tenantScope(tenantShopID, opts)})
}

// tenantScope returns a copy of opts with TenantShopID set.
func tenantScope(tenantShopID string, opts *RequestOptions) *RequestOptions {
	scoped := RequestOptions{}
	if opts != nil {
		scoped = *opts
	}
	scoped.TenantShopID = tenantShopID
	return &scoped
}
