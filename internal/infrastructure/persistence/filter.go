package persistence

import (
	"strings"

	"github.com/propertym/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// applyFilter applies pagination and ordering from a shared filter.
// orderColumns whitelists the columns callers may sort by; anything else
// falls back to created_at so user input never reaches the ORDER BY clause.
func applyFilter(query *gorm.DB, filter shared.Filter, orderColumns map[string]bool) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	column := "created_at"
	if filter.OrderBy != "" && orderColumns[filter.OrderBy] {
		column = filter.OrderBy
	}
	direction := "DESC"
	if strings.EqualFold(filter.OrderDir, "asc") {
		direction = "ASC"
	}
	return query.Order(column + " " + direction)
}
