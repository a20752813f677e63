package letting

import (
	"regexp"
	"strings"

	"github.com/propertym/backend/internal/domain/shared"
	"github.com/propertym/backend/internal/domain/shared/valueobject"
)

// kenyanPhone matches local and international Kenyan mobile numbers:
// 07XXXXXXXX, 01XXXXXXXX, 2547XXXXXXXX, 2541XXXXXXXX, with optional +.
var kenyanPhone = regexp.MustCompile(`^(?:\+?254|0)(7|1)\d{8}$`)

// NormalizePhone validates a Kenyan mobile number and returns it in
// canonical +254 form. Spaces and dashes are stripped before matching.
func NormalizePhone(phone string) (string, error) {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(phone))
	if !kenyanPhone.MatchString(cleaned) {
		return "", shared.NewDomainError(shared.CodeValidation, "Invalid Kenyan phone number: "+phone)
	}

	switch {
	case strings.HasPrefix(cleaned, "+254"):
		return cleaned, nil
	case strings.HasPrefix(cleaned, "254"):
		return "+" + cleaned, nil
	default: // 07… or 01…
		return "+254" + cleaned[1:], nil
	}
}

// Tenant is a person the business lets units to. Phone is the unique
// business identifier; OpeningBalance carries debt brought in from before
// the system was adopted and is converted to an invoice at move-in.
type Tenant struct {
	shared.BaseAggregateRoot
	FirstName      string `gorm:"not null"`
	LastName       string `gorm:"not null"`
	Phone          string `gorm:"not null;uniqueIndex"`
	Email          string
	NationalID     string
	OpeningBalance valueobject.Money `gorm:"type:decimal(12,2);not null;default:0"`
}

// NewTenant creates a new tenant with a normalized phone number
func NewTenant(firstName, lastName, phone, email, nationalID string, openingBalance valueobject.Money) (*Tenant, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil, shared.NewDomainError(shared.CodeValidation, "Tenant first and last name are required")
	}
	normalized, err := NormalizePhone(phone)
	if err != nil {
		return nil, err
	}
	if openingBalance.IsNegative() {
		return nil, shared.NewDomainError(shared.CodeValidation, "Opening balance cannot be negative")
	}

	return &Tenant{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		FirstName:         firstName,
		LastName:          lastName,
		Phone:             normalized,
		Email:             strings.TrimSpace(email),
		NationalID:        strings.TrimSpace(nationalID),
		OpeningBalance:    openingBalance,
	}, nil
}

// FullName returns the tenant's display name
func (t *Tenant) FullName() string {
	return t.FirstName + " " + t.LastName
}

// ClearOpeningBalance zeroes the balance once it has been converted to an
// opening invoice
func (t *Tenant) ClearOpeningBalance() {
	t.OpeningBalance = valueobject.Zero()
	t.MarkUpdated()
}

// UpdateContact modifies the tenant's contact details
func (t *Tenant) UpdateContact(firstName, lastName, phone, email, nationalID string) error {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return shared.NewDomainError(shared.CodeValidation, "Tenant first and last name are required")
	}
	normalized, err := NormalizePhone(phone)
	if err != nil {
		return err
	}

	t.FirstName = firstName
	t.LastName = lastName
	t.Phone = normalized
	t.Email = strings.TrimSpace(email)
	t.NationalID = strings.TrimSpace(nationalID)
	t.MarkUpdated()
	return nil
}
