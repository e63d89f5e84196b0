package anchor

import (
	"reflect"
	"time"
)

func typeRules() []Rule {
	return []Rule{
		{Name: RuleFalsey, Check: unary(isFalsey)},
		{Name: RuleTruthy, Check: unary(func(value any) bool { return !isFalsey(value) })},
		{Name: RuleNull, Check: unary(isNilValue)},
		{Name: RuleBoolean, Check: unary(isBoolean)},
		{Name: RuleArray, Check: unary(isList)},
		{Name: RuleDate, Check: unary(isDate)},
	}
}

func isBoolean(value any) bool {
	return value != nil && reflect.TypeOf(value).Kind() == reflect.Bool
}

// isDate checks the type only. Strings that look like dates are not dates.
func isDate(value any) bool {
	switch v := value.(type) {
	case time.Time:
		return true
	case *time.Time:
		return v != nil
	default:
		return false
	}
}
