package dto

import (
	"net/http"

	"github.com/propertym/backend/internal/domain/shared"
)

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Validation and state preconditions map to 400, missing resources to 404,
// conflicts with existing data to 409, store failures to 500.
var ErrorCodeHTTPStatus = map[string]int{
	shared.CodeValidation:      http.StatusBadRequest,
	shared.CodeTenancyInactive: http.StatusBadRequest,

	shared.CodeNotFound:          http.StatusNotFound,
	shared.CodeNoActiveTenancies: http.StatusNotFound,

	shared.CodeDuplicateInvoice:      http.StatusConflict,
	shared.CodeDuplicateTenant:       http.StatusConflict,
	shared.CodeDuplicateUnit:         http.StatusConflict,
	shared.CodeTenantAlreadyAssigned: http.StatusConflict,
	shared.CodeUnitNotAvailable:      http.StatusConflict,
	shared.CodeUnitAlreadyOccupied:   http.StatusConflict,
	shared.CodeAllInvoicesExist:      http.StatusConflict,
	shared.CodeConcurrencyConflict:   http.StatusConflict,

	shared.CodeDatabaseError: http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for a domain error code.
// Unknown codes map to 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
