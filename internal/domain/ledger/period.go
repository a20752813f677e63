package ledger

import (
	"fmt"
	"regexp"
	"time"

	"github.com/propertym/backend/internal/domain/shared"
)

// Period identifies the calendar month an invoice bills, formatted "YYYY-MM".
// Opening-balance invoices carry an "OPENING-" prefixed period so they can
// never collide with a generated monthly invoice.
type Period string

// OpeningPrefix marks periods of invoices that carry a tenant's pre-existing
// balance brought in at move-in.
const OpeningPrefix = "OPENING-"

var periodPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// PeriodOf returns the billing period containing t.
func PeriodOf(t time.Time) Period {
	return Period(t.Format("2006-01"))
}

// ParsePeriod validates and returns a monthly billing period.
func ParsePeriod(s string) (Period, error) {
	if !periodPattern.MatchString(s) {
		return "", shared.NewDomainError(shared.CodeValidation,
			fmt.Sprintf("Invalid billing period %q, expected YYYY-MM", s))
	}
	return Period(s), nil
}

// OpeningPeriodOf returns the opening-balance period for a move-in at t,
// labelled with the month before the move-in month.
func OpeningPeriodOf(t time.Time) Period {
	prev := t.AddDate(0, -1, 0)
	return Period(OpeningPrefix + prev.Format("2006-01"))
}

// IsOpening reports whether the period belongs to an opening-balance invoice.
func (p Period) IsOpening() bool {
	return len(p) > len(OpeningPrefix) && p[:len(OpeningPrefix)] == OpeningPrefix
}

// Time returns the first day of the period's month, UTC midnight.
// Opening periods resolve to the month embedded after the prefix.
func (p Period) Time() (time.Time, error) {
	s := string(p)
	if p.IsOpening() {
		s = s[len(OpeningPrefix):]
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return time.Time{}, shared.NewDomainError(shared.CodeValidation,
			fmt.Sprintf("Invalid billing period %q", p))
	}
	return t, nil
}

// String returns the period label.
func (p Period) String() string {
	return string(p)
}

// DayFloor truncates t to midnight in its own location. Due-date comparisons
// work at day granularity so an invoice due today is not overdue.
func DayFloor(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// IsOverdue reports whether a due date has passed as of today, comparing
// whole days.
func IsOverdue(dueDate, today time.Time) bool {
	return DayFloor(dueDate).Before(DayFloor(today))
}

// DaysOverdue returns the whole days elapsed since dueDate, or 0 when the
// due date has not passed.
func DaysOverdue(dueDate, today time.Time) int {
	d := int(DayFloor(today).Sub(DayFloor(dueDate)).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}
