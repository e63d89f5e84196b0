package anchor

import (
	"math"
	"regexp"
)

var (
	// No leading zeros, optional minus sign.
	intRegex = regexp.MustCompile(`^-?(?:0|[1-9][0-9]*)$`)

	// "1", "1.", "1.5", ".5" and "-0.25" are decimals; "." and "01" are not.
	decimalRegex = regexp.MustCompile(`^-?(?:(?:0|[1-9][0-9]*)(?:\.[0-9]*)?|\.[0-9]+)$`)
)

func numericRules() []Rule {
	return []Rule{
		{Name: RuleInt, Check: unary(matches(intRegex))},
		{Name: RuleInteger, Check: unary(matches(intRegex))},
		{Name: RuleNumber, Check: unary(isNumberKind)},
		{Name: RuleFinite, Check: unary(isFinite)},
		{Name: RuleDecimal, Check: unary(matches(decimalRegex))},
		{Name: RuleFloat, Check: unary(matches(decimalRegex))},
	}
}

func isFinite(value any) bool {
	f, ok := toFloat(value)
	return ok && !math.IsInf(f, 0) && !math.IsNaN(f)
}
