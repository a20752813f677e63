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

// InvoiceHandler handles invoice API endpoints
type InvoiceHandler struct {
	BaseHandler
	invoiceService *billingapp.InvoiceService
	paymentService *billingapp.PaymentService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(invoiceService *billingapp.InvoiceService, paymentService *billingapp.PaymentService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		paymentService: paymentService,
	}
}

// RegisterRoutes registers invoice routes
func (h *InvoiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.Create)
		invoices.POST("/generate", h.Generate)
		invoices.GET("", h.List)
		invoices.GET("/:id", h.GetByID)
		invoices.GET("/:id/payments", h.ListPayments)
	}
}

// CreateInvoiceRequest is the request body for creating one invoice
type CreateInvoiceRequest struct {
	TenancyID         string  `json:"tenancy_id" binding:"required,uuid"`
	Period            string  `json:"period" binding:"required,period"`
	DueDate           string  `json:"due_date" binding:"required"`
	RentAmount        float64 `json:"rent_amount" binding:"required,gt=0"`
	AdditionalCharges float64 `json:"additional_charges" binding:"min=0"`
	Description       string  `json:"description"`
}

// GenerateInvoicesRequest is the request body for bulk monthly generation
type GenerateInvoicesRequest struct {
	Period            string  `json:"period" binding:"required,period"`
	DueDate           string  `json:"due_date" binding:"required"`
	AdditionalCharges float64 `json:"additional_charges" binding:"min=0"`
}

// InvoiceResponse is the API representation of an invoice
type InvoiceResponse struct {
	ID          uuid.UUID         `json:"id"`
	TenancyID   uuid.UUID         `json:"tenancy_id"`
	Period      string            `json:"period"`
	DueDate     time.Time         `json:"due_date"`
	TotalAmount valueobject.Money `json:"total_amount"`
	PaidAmount  valueobject.Money `json:"paid_amount"`
	Outstanding valueobject.Money `json:"outstanding"`
	Status      string            `json:"status"`
	Description string            `json:"description"`
	timestamps
}

func toInvoiceResponse(inv *billing.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:          inv.GetID(),
		TenancyID:   inv.TenancyID,
		Period:      inv.Period.String(),
		DueDate:     inv.DueDate,
		TotalAmount: inv.TotalAmount,
		PaidAmount:  inv.PaidAmount,
		Outstanding: inv.Outstanding(),
		Status:      string(inv.Status),
		Description: inv.Description,
		timestamps:  timestamps{CreatedAt: inv.CreatedAt, UpdatedAt: inv.UpdatedAt},
	}
}

// Create raises one invoice for an active tenancy
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	tenancyID, err := uuid.Parse(req.TenancyID)
	if err != nil {
		h.BadRequest(c, "Invalid tenancy ID")
		return
	}
	dueDate, ok := parseDate(req.DueDate)
	if !ok {
		h.BadRequest(c, "Invalid due date, expected YYYY-MM-DD")
		return
	}

	inv, err := h.invoiceService.CreateInvoice(c.Request.Context(), billingapp.CreateInvoiceRequest{
		TenancyID:         tenancyID,
		Period:            req.Period,
		DueDate:           dueDate,
		RentAmount:        money(req.RentAmount),
		AdditionalCharges: money(req.AdditionalCharges),
		Description:       req.Description,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, toInvoiceResponse(inv))
}

// Generate bills every active tenancy for a period. Rerunning only creates
// invoices that are still missing.
func (h *InvoiceHandler) Generate(c *gin.Context) {
	var req GenerateInvoicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	dueDate, ok := parseDate(req.DueDate)
	if !ok {
		h.BadRequest(c, "Invalid due date, expected YYYY-MM-DD")
		return
	}

	result, err := h.invoiceService.GenerateInvoices(c.Request.Context(), billingapp.GenerateInvoicesRequest{
		Period:            req.Period,
		DueDate:           dueDate,
		AdditionalCharges: money(req.AdditionalCharges),
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, result)
}

// GetByID returns one invoice
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	inv, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, toInvoiceResponse(inv))
}

// List returns a page of invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.invoiceService.ListInvoices(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	items := make([]InvoiceResponse, len(page.Items))
	for i, inv := range page.Items {
		items[i] = toInvoiceResponse(inv)
	}
	h.SuccessWithMeta(c, items, page.Total, page.Page, page.PageSize)
}

// ListPayments returns the payments recorded against one invoice
func (h *InvoiceHandler) ListPayments(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	payments, err := h.paymentService.ListInvoicePayments(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	items := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		items[i] = toPaymentResponse(p)
	}
	h.Success(c, items)
}
