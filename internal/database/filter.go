package database

import (
	"strings"

	"realestate/server/internal/models"
)

// predicate is one parameterized WHERE clause. Clauses are combined with AND.
type predicate struct {
	sql  string
	args []interface{}
}

// compileFilter turns the criteria that are set into independent predicates.
// The search term is a single predicate whose field checks are OR'ed.
func compileFilter(f models.PropertyFilter) []predicate {
	var preds []predicate

	if f.MinPrice != nil {
		preds = append(preds, predicate{"price >= ?", []interface{}{*f.MinPrice}})
	}
	if f.MaxPrice != nil {
		preds = append(preds, predicate{"price <= ?", []interface{}{*f.MaxPrice}})
	}
	if f.City != "" {
		preds = append(preds, containsPredicate("city", f.City))
	}
	if f.State != "" {
		preds = append(preds, containsPredicate("state", f.State))
	}
	if f.Bedrooms != nil {
		preds = append(preds, predicate{"bedrooms >= ?", []interface{}{*f.Bedrooms}})
	}
	if f.PropertyType != "" {
		// Exact match: an unknown label simply matches nothing.
		preds = append(preds, predicate{"property_type = ?", []interface{}{f.PropertyType}})
	}
	if f.Search != "" {
		pattern := likePattern(f.Search)
		columns := []string{"title", "description", "address", "city"}
		clauses := make([]string, len(columns))
		args := make([]interface{}, len(columns))
		for i, col := range columns {
			clauses[i] = likeClause(col)
			args[i] = pattern
		}
		preds = append(preds, predicate{"(" + strings.Join(clauses, " OR ") + ")", args})
	}

	return preds
}

func containsPredicate(column, value string) predicate {
	return predicate{likeClause(column), []interface{}{likePattern(value)}}
}

// likeClause compares the Unicode case-folded column, see the fold function
// registered in database.go.
func likeClause(column string) string {
	return "fold(" + column + `) LIKE ? ESCAPE '\'`
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern builds a case-folded substring pattern with LIKE wildcards in
// the input matched literally.
func likePattern(value string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(value)) + "%"
}
