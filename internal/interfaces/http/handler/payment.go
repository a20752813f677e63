package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	billingapp "github.com/propertym/backend/internal/application/billing"
	"github.com/propertym/backend/internal/domain/billing"
	"github.com/propertym/backend/internal/domain/shared/valueobject"
	"github.com/propertym/backend/internal/interfaces/http/dto"
)

// PaymentHandler handles payment API endpoints
type PaymentHandler struct {
	BaseHandler
	paymentService *billingapp.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService *billingapp.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// RegisterRoutes registers payment routes
func (h *PaymentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	payments := rg.Group("/payments")
	{
		payments.POST("", h.Record)
		payments.GET("", h.List)
		payments.GET("/:id", h.GetByID)
		payments.DELETE("/:id", h.Delete)
	}
}

// RecordPaymentRequest is the request body for recording a payment.
// invoice_id is omitted for a general payment not allocated to an invoice.
type RecordPaymentRequest struct {
	TenantID  string  `json:"tenant_id" binding:"required,uuid"`
	UnitID    string  `json:"unit_id" binding:"required,uuid"`
	InvoiceID string  `json:"invoice_id" binding:"omitempty,uuid"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Method    string  `json:"method" binding:"required,oneof=MPESA BANK_TRANSFER CASH AIRTEL_MONEY OTHER"`
	PaidAt    string  `json:"paid_at"`
	Reference string  `json:"reference" binding:"max=100"`
	Notes     string  `json:"notes"`
}

// PaymentResponse is the API representation of a payment
type PaymentResponse struct {
	ID        uuid.UUID         `json:"id"`
	TenantID  uuid.UUID         `json:"tenant_id"`
	UnitID    uuid.UUID         `json:"unit_id"`
	InvoiceID *uuid.UUID        `json:"invoice_id,omitempty"`
	Amount    valueobject.Money `json:"amount"`
	Method    string            `json:"method"`
	PaidAt    time.Time         `json:"paid_at"`
	Reference string            `json:"reference"`
	Notes     string            `json:"notes"`
	timestamps
}

func toPaymentResponse(p *billing.Payment) PaymentResponse {
	return PaymentResponse{
		ID:         p.GetID(),
		TenantID:   p.TenantID,
		UnitID:     p.UnitID,
		InvoiceID:  p.InvoiceID,
		Amount:     p.Amount,
		Method:     string(p.Method),
		PaidAt:     p.PaidAt,
		Reference:  p.Reference,
		Notes:      p.Notes,
		timestamps: timestamps{CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt},
	}
}

// Record records a payment, optionally allocated to an invoice
func (h *PaymentHandler) Record(c *gin.Context) {
	var req RecordPaymentRequest
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
	var invoiceID *uuid.UUID
	if req.InvoiceID != "" {
		id, err := uuid.Parse(req.InvoiceID)
		if err != nil {
			h.BadRequest(c, "Invalid invoice ID")
			return
		}
		invoiceID = &id
	}
	paidAt, ok := parseOptionalDate(req.PaidAt)
	if !ok {
		h.BadRequest(c, "Invalid payment date, expected YYYY-MM-DD")
		return
	}

	payment, err := h.paymentService.RecordPayment(c.Request.Context(), billingapp.RecordPaymentRequest{
		TenantID:  tenantID,
		UnitID:    unitID,
		InvoiceID: invoiceID,
		Amount:    money(req.Amount),
		Method:    billing.PaymentMethod(req.Method),
		PaidAt:    paidAt,
		Reference: req.Reference,
		Notes:     req.Notes,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, toPaymentResponse(payment))
}

// GetByID returns one payment
func (h *PaymentHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid payment ID")
		return
	}

	payment, err := h.paymentService.GetPayment(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, toPaymentResponse(payment))
}

// List returns a page of payments
func (h *PaymentHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.paymentService.ListPayments(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	items := make([]PaymentResponse, len(page.Items))
	for i, p := range page.Items {
		items[i] = toPaymentResponse(p)
	}
	h.SuccessWithMeta(c, items, page.Total, page.Page, page.PageSize)
}

// Delete removes a payment and rolls its amount back off the invoice
func (h *PaymentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid payment ID")
		return
	}

	if err := h.paymentService.DeletePayment(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
