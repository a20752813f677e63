package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	billingapp "github.com/propertym/backend/internal/application/billing"
	lettingapp "github.com/propertym/backend/internal/application/letting"
	"github.com/propertym/backend/internal/domain/letting"
	"github.com/propertym/backend/internal/domain/shared/valueobject"
	"github.com/propertym/backend/internal/interfaces/http/dto"
)

// TenantHandler handles tenant API endpoints
type TenantHandler struct {
	BaseHandler
	tenantService  *lettingapp.TenantService
	arrearsService *billingapp.ArrearsService
	invoiceService *billingapp.InvoiceService
}

// NewTenantHandler creates a new TenantHandler
func NewTenantHandler(
	tenantService *lettingapp.TenantService,
	arrearsService *billingapp.ArrearsService,
	invoiceService *billingapp.InvoiceService,
) *TenantHandler {
	return &TenantHandler{
		tenantService:  tenantService,
		arrearsService: arrearsService,
		invoiceService: invoiceService,
	}
}

// RegisterRoutes registers tenant routes
func (h *TenantHandler) RegisterRoutes(rg *gin.RouterGroup) {
	tenants := rg.Group("/tenants")
	{
		tenants.POST("", h.Create)
		tenants.GET("", h.List)
		tenants.GET("/:id", h.GetByID)
		tenants.PUT("/:id", h.Update)
		tenants.DELETE("/:id", h.Delete)
		tenants.GET("/:id/balance", h.Balance)
		tenants.GET("/:id/invoices", h.ListInvoices)
	}
}

// CreateTenantRequest is the request body for registering a tenant
type CreateTenantRequest struct {
	FirstName      string  `json:"first_name" binding:"required,min=1,max=100"`
	LastName       string  `json:"last_name" binding:"required,min=1,max=100"`
	Phone          string  `json:"phone" binding:"required,min=10,max=20"`
	Email          string  `json:"email" binding:"omitempty,email,max=200"`
	NationalID     string  `json:"national_id" binding:"max=20"`
	OpeningBalance float64 `json:"opening_balance" binding:"min=0"`
}

// UpdateTenantRequest is the request body for updating tenant contact details
type UpdateTenantRequest struct {
	FirstName  string `json:"first_name" binding:"required,min=1,max=100"`
	LastName   string `json:"last_name" binding:"required,min=1,max=100"`
	Phone      string `json:"phone" binding:"required,min=10,max=20"`
	Email      string `json:"email" binding:"omitempty,email,max=200"`
	NationalID string `json:"national_id" binding:"max=20"`
}

// TenantResponse is the API representation of a tenant
type TenantResponse struct {
	ID             uuid.UUID         `json:"id"`
	FirstName      string            `json:"first_name"`
	LastName       string            `json:"last_name"`
	Phone          string            `json:"phone"`
	Email          string            `json:"email"`
	NationalID     string            `json:"national_id"`
	OpeningBalance valueobject.Money `json:"opening_balance"`
	timestamps
}

func toTenantResponse(t *letting.Tenant) TenantResponse {
	return TenantResponse{
		ID:             t.GetID(),
		FirstName:      t.FirstName,
		LastName:       t.LastName,
		Phone:          t.Phone,
		Email:          t.Email,
		NationalID:     t.NationalID,
		OpeningBalance: t.OpeningBalance,
		timestamps:     timestamps{CreatedAt: t.CreatedAt, UpdatedAt: t.UpdatedAt},
	}
}

// Create registers a new tenant
func (h *TenantHandler) Create(c *gin.Context) {
	var req CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	t, err := h.tenantService.CreateTenant(c.Request.Context(), lettingapp.CreateTenantRequest{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Phone:          req.Phone,
		Email:          req.Email,
		NationalID:     req.NationalID,
		OpeningBalance: money(req.OpeningBalance),
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, toTenantResponse(t))
}

// GetByID returns one tenant
func (h *TenantHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	t, err := h.tenantService.GetTenant(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, toTenantResponse(t))
}

// List returns a page of tenants
func (h *TenantHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.tenantService.ListTenants(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	items := make([]TenantResponse, len(page.Items))
	for i, t := range page.Items {
		items[i] = toTenantResponse(t)
	}
	h.SuccessWithMeta(c, items, page.Total, page.Page, page.PageSize)
}

// Update modifies a tenant's contact details
func (h *TenantHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	t, err := h.tenantService.UpdateTenant(c.Request.Context(), id, lettingapp.UpdateTenantRequest{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		Email:      req.Email,
		NationalID: req.NationalID,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, toTenantResponse(t))
}

// Delete removes a tenant without an active tenancy
func (h *TenantHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	if err := h.tenantService.DeleteTenant(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// Balance returns the tenant's financial position
func (h *TenantHandler) Balance(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	balance, err := h.arrearsService.TenantBalance(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, balance)
}

// ListInvoices returns every invoice raised against the tenant's tenancies
func (h *TenantHandler) ListInvoices(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	invoices, err := h.invoiceService.ListTenantInvoices(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	items := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		items[i] = toInvoiceResponse(inv)
	}
	h.Success(c, items)
}
