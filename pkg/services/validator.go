package services

import (
	"strings"
)

// Aggregation tokens that mark a query as a temporal aggregation.
var aggregationTokens = []string{"COUNT", "SUM", "AVG", "MIN", "MAX"}

// Time-unit tokens accepted in temporal windows.
var timeUnitTokens = []string{"days", "hours", "months", "years"}

// ValidatePQL performs schema-independent syntactic validation of a PQL
// query. It is pure and stateless; rules apply in order and the first
// failure terminates with its message. It deliberately does not check
// that referenced table or column names exist in any schema.
func ValidatePQL(query string) (bool, string) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return false, "query is empty"
	}

	upper := strings.ToUpper(trimmed)
	if !strings.HasPrefix(upper, "PREDICT") {
		return false, "query must start with PREDICT"
	}

	if !strings.Contains(upper, " FOR ") {
		return false, "query must contain a FOR entity clause"
	}

	if strings.Count(trimmed, "(") != strings.Count(trimmed, ")") {
		return false, "unbalanced parentheses"
	}

	hasAggregation := false
	for _, token := range aggregationTokens {
		if strings.Contains(upper, token) {
			hasAggregation = true
			break
		}
	}
	if hasAggregation && !strings.Contains(upper, "LIST_DISTINCT") {
		hasTimeUnit := false
		lower := strings.ToLower(trimmed)
		for _, unit := range timeUnitTokens {
			if strings.Contains(lower, unit) {
				hasTimeUnit = true
				break
			}
		}
		if !hasTimeUnit {
			return false, "temporal aggregation requires a time unit (days, hours, months, years)"
		}
	}

	return true, "query appears valid"
}
