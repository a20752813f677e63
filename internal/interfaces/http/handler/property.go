package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	propertyapp "github.com/propertym/backend/internal/application/property"
	"github.com/propertym/backend/internal/domain/property"
	"github.com/propertym/backend/internal/interfaces/http/dto"
)

// PropertyHandler handles property API endpoints
type PropertyHandler struct {
	BaseHandler
	propertyService *propertyapp.PropertyService
	unitService     *propertyapp.UnitService
}

// NewPropertyHandler creates a new PropertyHandler
func NewPropertyHandler(propertyService *propertyapp.PropertyService, unitService *propertyapp.UnitService) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
		unitService:     unitService,
	}
}

// RegisterRoutes registers property routes
func (h *PropertyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	properties := rg.Group("/properties")
	{
		properties.POST("", h.Create)
		properties.GET("", h.List)
		properties.GET("/:id", h.GetByID)
		properties.PUT("/:id", h.Update)
		properties.DELETE("/:id", h.Delete)
		properties.POST("/:id/deactivate", h.Deactivate)
		properties.POST("/:id/activate", h.Activate)
		properties.GET("/:id/units", h.ListUnits)
	}
}

// CreatePropertyRequest is the request body for creating a property
type CreatePropertyRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=200"`
	Address      string `json:"address" binding:"required,min=1,max=300"`
	City         string `json:"city" binding:"required,min=1,max=100"`
	County       string `json:"county" binding:"max=100"`
	PropertyType string `json:"property_type" binding:"required,oneof=APARTMENT BUNGALOW MAISONETTE COMMERCIAL MIXED_USE"`
	Notes        string `json:"notes"`
}

// PropertyResponse is the API representation of a property
type PropertyResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	County       string    `json:"county"`
	PropertyType string    `json:"property_type"`
	TotalUnits   int       `json:"total_units"`
	IsActive     bool      `json:"is_active"`
	Notes        string    `json:"notes"`
	timestamps
}

func toPropertyResponse(p *property.Property) PropertyResponse {
	return PropertyResponse{
		ID:           p.GetID(),
		Name:         p.Name,
		Address:      p.Address,
		City:         p.City,
		County:       p.County,
		PropertyType: string(p.PropertyType),
		TotalUnits:   p.TotalUnits,
		IsActive:     p.IsActive,
		Notes:        p.Notes,
		timestamps:   timestamps{CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt},
	}
}

// Create registers a new property
func (h *PropertyHandler) Create(c *gin.Context) {
	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	p, err := h.propertyService.CreateProperty(c.Request.Context(), propertyapp.CreatePropertyRequest{
		Name:         req.Name,
		Address:      req.Address,
		City:         req.City,
		County:       req.County,
		PropertyType: property.Type(req.PropertyType),
		Notes:        req.Notes,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, toPropertyResponse(p))
}

// GetByID returns one property
func (h *PropertyHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid property ID")
		return
	}

	p, err := h.propertyService.GetProperty(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, toPropertyResponse(p))
}

// List returns a page of properties
func (h *PropertyHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.propertyService.ListProperties(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	items := make([]PropertyResponse, len(page.Items))
	for i, p := range page.Items {
		items[i] = toPropertyResponse(p)
	}
	h.SuccessWithMeta(c, items, page.Total, page.Page, page.PageSize)
}

// Update modifies a property
func (h *PropertyHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid property ID")
		return
	}

	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	p, err := h.propertyService.UpdateProperty(c.Request.Context(), id, propertyapp.CreatePropertyRequest{
		Name:         req.Name,
		Address:      req.Address,
		City:         req.City,
		County:       req.County,
		PropertyType: property.Type(req.PropertyType),
		Notes:        req.Notes,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, toPropertyResponse(p))
}

// Delete removes a property without units
func (h *PropertyHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid property ID")
		return
	}

	if err := h.propertyService.DeleteProperty(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// Deactivate retires a property from the active portfolio
func (h *PropertyHandler) Deactivate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid property ID")
		return
	}

	p, err := h.propertyService.DeactivateProperty(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, toPropertyResponse(p))
}

// Activate returns a retired property to the active portfolio
func (h *PropertyHandler) Activate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid property ID")
		return
	}

	p, err := h.propertyService.ActivateProperty(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, toPropertyResponse(p))
}

// ListUnits returns a page of the property's units
func (h *PropertyHandler) ListUnits(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid property ID")
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.unitService.ListPropertyUnits(c.Request.Context(), id, req.ToFilter())
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
