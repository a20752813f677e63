package shared

// DomainError represents a domain-level error with a stable machine-readable code
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Error codes shared across the letting and billing contexts.
// Precondition violations are reported before any write; DATABASE_ERROR is
// reserved for store failures surfaced from a race lost after a proactive check.
const (
	CodeValidation            = "VALIDATION_ERROR"
	CodeNotFound              = "NOT_FOUND"
	CodeDuplicateInvoice      = "DUPLICATE_INVOICE"
	CodeDuplicateTenant       = "DUPLICATE_TENANT"
	CodeDuplicateUnit         = "DUPLICATE_UNIT"
	CodeTenancyInactive       = "TENANCY_INACTIVE"
	CodeTenantAlreadyAssigned = "TENANT_ALREADY_ASSIGNED"
	CodeUnitNotAvailable      = "UNIT_NOT_AVAILABLE"
	CodeUnitAlreadyOccupied   = "UNIT_ALREADY_OCCUPIED"
	CodeNoActiveTenancies     = "NO_ACTIVE_TENANCIES"
	CodeAllInvoicesExist      = "ALL_INVOICES_EXIST"
	CodeConcurrencyConflict   = "CONCURRENCY_CONFLICT"
	CodeDatabaseError         = "DATABASE_ERROR"
)

// Common domain errors
var (
	ErrNotFound            = NewDomainError(CodeNotFound, "Resource not found")
	ErrInvalidInput        = NewDomainError(CodeValidation, "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError(CodeConcurrencyConflict, "Resource was modified by another process")
)
