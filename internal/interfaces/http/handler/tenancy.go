package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	billingapp "github.com/propertym/backend/internal/application/billing"
	lettingapp "github.com/propertym/backend/internal/application/letting"
	"github.com/propertym/backend/internal/domain/letting"
	"github.com/propertym/backend/internal/domain/shared/valueobject"
	"github.com/propertym/backend/internal/interfaces/http/dto"
)

// TenancyHandler handles tenancy lifecycle API endpoints
type TenancyHandler struct {
	BaseHandler
	lifecycleService *lettingapp.LifecycleService
	invoiceService   *billingapp.InvoiceService
}

// NewTenancyHandler creates a new TenancyHandler
func NewTenancyHandler(lifecycleService *lettingapp.LifecycleService, invoiceService *billingapp.InvoiceService) *TenancyHandler {
	return &TenancyHandler{
		lifecycleService: lifecycleService,
		invoiceService:   invoiceService,
	}
}

// RegisterRoutes registers tenancy routes
func (h *TenancyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	tenancies := rg.Group("/tenancies")
	{
		tenancies.POST("/move-in", h.MoveIn)
		tenancies.POST("/:id/move-out", h.MoveOut)
		tenancies.GET("", h.List)
		tenancies.GET("/:id", h.GetByID)
		tenancies.GET("/:id/invoices", h.ListInvoices)
	}
}

// MoveInRequest is the request body for starting a tenancy. deposit_paid_date
// defaults to the move-in date when a deposit was paid.
type MoveInRequest struct {
	TenantID        string  `json:"tenant_id" binding:"required,uuid"`
	UnitID          string  `json:"unit_id" binding:"required,uuid"`
	MoveInDate      string  `json:"move_in_date" binding:"required"`
	DepositPaid     float64 `json:"deposit_paid" binding:"min=0"`
	DepositPaidDate string  `json:"deposit_paid_date"`
	Notes           string  `json:"notes"`
}

// MoveOutRequest is the request body for ending a tenancy. deposit_status may
// be omitted to derive it from the refund amount.
type MoveOutRequest struct {
	MoveOutDate       string  `json:"move_out_date" binding:"required"`
	DepositRefund     float64 `json:"deposit_refund" binding:"min=0"`
	DepositRefundDate string  `json:"deposit_refund_date"`
	DepositStatus     string  `json:"deposit_status" binding:"omitempty,oneof=REFUNDED FORFEITED"`
	Notes             string  `json:"notes"`
}

// TenancyResponse is the API representation of a tenancy
type TenancyResponse struct {
	ID                uuid.UUID         `json:"id"`
	UnitID            uuid.UUID         `json:"unit_id"`
	TenantID          uuid.UUID         `json:"tenant_id"`
	StartDate         time.Time         `json:"start_date"`
	EndDate           *time.Time        `json:"end_date,omitempty"`
	RentAmount        valueobject.Money `json:"rent_amount"`
	DepositPaid       valueobject.Money `json:"deposit_paid"`
	DepositPaidDate   *time.Time        `json:"deposit_paid_date,omitempty"`
	DepositRefund     valueobject.Money `json:"deposit_refund"`
	DepositRefundDate *time.Time        `json:"deposit_refund_date,omitempty"`
	DepositStatus     string            `json:"deposit_status"`
	Status            string            `json:"status"`
	Notes             string            `json:"notes"`
	timestamps
}

func toTenancyResponse(t *letting.Tenancy) TenancyResponse {
	return TenancyResponse{
		ID:                t.GetID(),
		UnitID:            t.UnitID,
		TenantID:          t.TenantID,
		StartDate:         t.StartDate,
		EndDate:           t.EndDate,
		RentAmount:        t.RentAmount,
		DepositPaid:       t.DepositPaid,
		DepositPaidDate:   t.DepositPaidDate,
		DepositRefund:     t.DepositRefund,
		DepositRefundDate: t.DepositRefundDate,
		DepositStatus:     string(t.DepositStatus),
		Status:            string(t.Status),
		Notes:             t.Notes,
		timestamps:        timestamps{CreatedAt: t.CreatedAt, UpdatedAt: t.UpdatedAt},
	}
}

// MoveIn starts a tenancy for a tenant in a unit
func (h *TenancyHandler) MoveIn(c *gin.Context) {
	var req MoveInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	tenantID, err := uuid.Parse(req.TenantID)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}
	unitID, err := uuid.Parse(req.UnitID)
	if err != nil {
		h.BadRequest(c, "Invalid unit ID")
		return
	}
	moveInDate, ok := parseDate(req.MoveInDate)
	if !ok {
		h.BadRequest(c, "Invalid move-in date, expected YYYY-MM-DD")
		return
	}
	depositPaidDate, ok := parseOptionalDate(req.DepositPaidDate)
	if !ok {
		h.BadRequest(c, "Invalid deposit paid date, expected YYYY-MM-DD")
		return
	}

	tenancy, err := h.lifecycleService.MoveIn(c.Request.Context(), lettingapp.MoveInRequest{
		TenantID:        tenantID,
		UnitID:          unitID,
		MoveInDate:      moveInDate,
		DepositPaid:     money(req.DepositPaid),
		DepositPaidDate: depositPaidDate,
		Notes:           req.Notes,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, toTenancyResponse(tenancy))
}

// MoveOut ends a tenancy and vacates its unit
func (h *TenancyHandler) MoveOut(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid tenancy ID")
		return
	}

	var req MoveOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	moveOutDate, dateOK := parseDate(req.MoveOutDate)
	if !dateOK {
		h.BadRequest(c, "Invalid move-out date, expected YYYY-MM-DD")
		return
	}
	refundDate, dateOK := parseOptionalDate(req.DepositRefundDate)
	if !dateOK {
		h.BadRequest(c, "Invalid deposit refund date, expected YYYY-MM-DD")
		return
	}

	tenancy, err := h.lifecycleService.MoveOut(c.Request.Context(), lettingapp.MoveOutRequest{
		TenancyID:         id,
		MoveOutDate:       moveOutDate,
		DepositRefund:     money(req.DepositRefund),
		DepositRefundDate: refundDate,
		DepositStatus:     letting.DepositStatus(req.DepositStatus),
		Notes:             req.Notes,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, toTenancyResponse(tenancy))
}

// GetByID returns one tenancy
func (h *TenancyHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid tenancy ID")
		return
	}

	tenancy, err := h.lifecycleService.GetTenancy(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, toTenancyResponse(tenancy))
}

// List returns a page of tenancies
func (h *TenancyHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.lifecycleService.ListTenancies(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	items := make([]TenancyResponse, len(page.Items))
	for i, t := range page.Items {
		items[i] = toTenancyResponse(t)
	}
	h.SuccessWithMeta(c, items, page.Total, page.Page, page.PageSize)
}

// ListInvoices returns every invoice raised against one tenancy
func (h *TenancyHandler) ListInvoices(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid tenancy ID")
		return
	}

	invoices, err := h.invoiceService.ListTenancyInvoices(c.Request.Context(), id)
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
