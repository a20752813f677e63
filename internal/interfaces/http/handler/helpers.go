package handler

import (
	"time"

	"github.com/propertym/backend/internal/domain/shared/valueobject"
)

const dateLayout = "2006-01-02"

// parseDate parses a calendar date in YYYY-MM-DD form
func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// parseOptionalDate parses a date when present; an empty string yields the
// zero time
func parseOptionalDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, true
	}
	return parseDate(s)
}

// money converts a request amount to a money value
func money(amount float64) valueobject.Money {
	return valueobject.NewMoneyFromFloat(amount)
}

// timestamps is embedded in response DTOs
type timestamps struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
