package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	propertyapp "github.com/propertym/backend/internal/application/property"
	"github.com/propertym/backend/internal/domain/property"
	"github.com/propertym/backend/internal/domain/shared/valueobject"
	"github.com/propertym/backend/internal/interfaces/http/dto"
)

// UnitHandler handles unit API endpoints
type UnitHandler struct {
	BaseHandler
	unitService *propertyapp.UnitService
}

// NewUnitHandler creates a new UnitHandler
func NewUnitHandler(unitService *propertyapp.UnitService) *UnitHandler {
	return &UnitHandler{unitService: unitService}
}

// RegisterRoutes registers unit routes
func (h *UnitHandler) RegisterRoutes(rg *gin.RouterGroup) {
	units := rg.Group("/units")
	{
		units.POST("", h.Create)
		units.GET("", h.List)
		units.GET("/:id", h.GetByID)
		units.PUT("/:id", h.Update)
		units.DELETE("/:id", h.Delete)
	}
}

// CreateUnitRequest is the request body for creating a unit
type CreateUnitRequest struct {
	PropertyID    string  `json:"property_id" binding:"required,uuid"`
	UnitNumber    string  `json:"unit_number" binding:"required,min=1,max=50"`
	Bedrooms      int     `json:"bedrooms" binding:"min=0"`
	Bathrooms     int     `json:"bathrooms" binding:"min=0"`
	SquareFeet    int     `json:"square_feet" binding:"min=0"`
	RentAmount    float64 `json:"rent_amount" binding:"required,gt=0"`
	DepositAmount float64 `json:"deposit_amount" binding:"min=0"`
}

// UpdateUnitRequest is the request body for updating a unit
type UpdateUnitRequest struct {
	Bedrooms      int     `json:"bedrooms" binding:"min=0"`
	Bathrooms     int     `json:"bathrooms" binding:"min=0"`
	SquareFeet    int     `json:"square_feet" binding:"min=0"`
	RentAmount    float64 `json:"rent_amount" binding:"required,gt=0"`
	DepositAmount float64 `json:"deposit_amount" binding:"min=0"`
}

// UnitResponse is the API representation of a unit
type UnitResponse struct {
	ID            uuid.UUID         `json:"id"`
	PropertyID    uuid.UUID         `json:"property_id"`
	UnitNumber    string            `json:"unit_number"`
	Bedrooms      int               `json:"bedrooms"`
	Bathrooms     int               `json:"bathrooms"`
	SquareFeet    int               `json:"square_feet"`
	RentAmount    valueobject.Money `json:"rent_amount"`
	DepositAmount valueobject.Money `json:"deposit_amount"`
	Status        string            `json:"status"`
	timestamps
}

func toUnitResponse(u *property.Unit) UnitResponse {
	return UnitResponse{
		ID:            u.GetID(),
		PropertyID:    u.PropertyID,
		UnitNumber:    u.UnitNumber,
		Bedrooms:      u.Bedrooms,
		Bathrooms:     u.Bathrooms,
		SquareFeet:    u.SquareFeet,
		RentAmount:    u.RentAmount,
		DepositAmount: u.DepositAmount,
		Status:        string(u.Status),
		timestamps:    timestamps{CreatedAt: u.CreatedAt, UpdatedAt: u.UpdatedAt},
	}
}

// Create adds a unit to a property
func (h *UnitHandler) Create(c *gin.Context) {
	var req CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	propertyID, err := uuid.Parse(req.PropertyID)
	if err != nil {
		h.BadRequest(c, "Invalid property ID")
		return
	}

	u, err := h.unitService.CreateUnit(c.Request.Context(), propertyapp.CreateUnitRequest{
		PropertyID:    propertyID,
		UnitNumber:    req.UnitNumber,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		SquareFeet:    req.SquareFeet,
		RentAmount:    money(req.RentAmount),
		DepositAmount: money(req.DepositAmount),
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, toUnitResponse(u))
}

// GetByID returns one unit
func (h *UnitHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid unit ID")
		return
	}

	u, err := h.unitService.GetUnit(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, toUnitResponse(u))
}

// List returns a page of units
func (h *UnitHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.unitService.ListUnits(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	items := make([]UnitResponse, len(page.Items))
	for i, u := range page.Items {
		items[i] = toUnitResponse(u)
	}
	h.SuccessWithMeta(c, items, page.Total, page.Page, page.PageSize)
}

// Update modifies a unit's details. Rent changes only affect invoices
// generated afterwards.
func (h *UnitHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid unit ID")
		return
	}

	var req UpdateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	u, err := h.unitService.UpdateUnit(c.Request.Context(), id, propertyapp.UpdateUnitRequest{
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		SquareFeet:    req.SquareFeet,
		RentAmount:    money(req.RentAmount),
		DepositAmount: money(req.DepositAmount),
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, toUnitResponse(u))
}

// Delete removes an unoccupied unit
func (h *UnitHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid unit ID")
		return
	}

	if err := h.unitService.DeleteUnit(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
