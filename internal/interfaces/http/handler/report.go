package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	billingapp "github.com/propertym/backend/internal/application/billing"
	reportapp "github.com/propertym/backend/internal/application/report"
	"github.com/propertym/backend/internal/domain/shared/valueobject"
)

// ReportHandler handles dashboard and reporting endpoints
type ReportHandler struct {
	BaseHandler
	dashboardService *reportapp.DashboardService
	arrearsService   *billingapp.ArrearsService
	paymentService   *billingapp.PaymentService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(
	dashboardService *reportapp.DashboardService,
	arrearsService *billingapp.ArrearsService,
	paymentService *billingapp.PaymentService,
) *ReportHandler {
	return &ReportHandler{
		dashboardService: dashboardService,
		arrearsService:   arrearsService,
		paymentService:   paymentService,
	}
}

// RegisterRoutes registers report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/dashboard", h.Dashboard)
		reports.GET("/arrears", h.Arrears)
		reports.GET("/payments", h.Payments)
	}
	// Alias kept for dashboard clients
	rg.GET("/dashboard/metrics", h.Dashboard)
}

// Dashboard returns the portfolio snapshot for the current month
func (h *ReportHandler) Dashboard(c *gin.Context) {
	metrics, err := h.dashboardService.Snapshot(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, metrics)
}

// ArrearsQuery narrows the arrears report
type ArrearsQuery struct {
	MinDays    int    `form:"min_days" binding:"min=0"`
	PropertyID string `form:"property_id" binding:"omitempty,uuid"`
}

// Arrears returns tenants with outstanding overdue invoices, worst first
func (h *ReportHandler) Arrears(c *gin.Context) {
	var req ArrearsQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := billingapp.ArrearsFilter{MinDays: req.MinDays}
	if req.PropertyID != "" {
		id, err := uuid.Parse(req.PropertyID)
		if err != nil {
			h.BadRequest(c, "Invalid property ID")
			return
		}
		filter.PropertyID = id
	}

	arrears, err := h.arrearsService.TenantsInArrears(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, arrears)
}

// PaymentsQuery bounds the payments report by payment date
type PaymentsQuery struct {
	From string `form:"from"`
	To   string `form:"to"`
}

// PaymentsReportResponse is the API representation of a payments report
type PaymentsReportResponse struct {
	From        *time.Time        `json:"from,omitempty"`
	To          *time.Time        `json:"to,omitempty"`
	Count       int               `json:"count"`
	TotalAmount valueobject.Money `json:"total_amount"`
	Payments    []PaymentResponse `json:"payments"`
}

// Payments returns payments received over a date range with their total.
// Both bounds are optional; an open bound leaves that side unbounded.
func (h *ReportHandler) Payments(c *gin.Context) {
	var req PaymentsQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	from, ok := parseOptionalDate(req.From)
	if !ok {
		h.BadRequest(c, "Invalid from date, expected YYYY-MM-DD")
		return
	}
	to, ok := parseOptionalDate(req.To)
	if !ok {
		h.BadRequest(c, "Invalid to date, expected YYYY-MM-DD")
		return
	}
	// The upper bound is exclusive in the query, so include the whole "to" day
	if !to.IsZero() {
		to = to.AddDate(0, 0, 1)
	}

	report, err := h.paymentService.PaymentsBetween(c.Request.Context(), from, to)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	items := make([]PaymentResponse, len(report.Payments))
	for i, p := range report.Payments {
		items[i] = toPaymentResponse(p)
	}
	resp := PaymentsReportResponse{
		Count:       len(items),
		TotalAmount: report.TotalAmount,
		Payments:    items,
	}
	if !report.From.IsZero() {
		resp.From = &report.From
	}
	if !report.To.IsZero() {
		resp.To = &report.To
	}
	h.Success(c, resp)
}
