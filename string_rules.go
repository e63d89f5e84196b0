package anchor

import (
	"reflect"
	"regexp"
)

var (
	alphaRegex        = regexp.MustCompile(`^[a-zA-Z]+$`)
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

	// Optional sign, digits only. Leading zeros are allowed.
	numericRegex = regexp.MustCompile(`^-?[0-9]+$`)
)

func stringRules() []Rule {
	return []Rule{
		{Name: RuleEmpty, Check: unary(isEmptyString)},
		{Name: RuleUndefined, Check: unary(isUndefined)},
		{Name: RuleString, Check: unary(isString)},
		{Name: RuleAlpha, Check: unary(matches(alphaRegex))},
		{Name: RuleNumeric, Check: unary(matches(numericRegex))},
		{Name: RuleAlphanumeric, Check: unary(matches(alphanumericRegex))},
	}
}

// isEmptyString only accepts the empty string itself; nil, 0 and false are
// not empty.
func isEmptyString(value any) bool {
	if value == nil {
		return false
	}
	rv := reflect.ValueOf(value)
	return rv.Kind() == reflect.String && rv.Len() == 0
}

func isUndefined(value any) bool {
	return value == nil
}

func isString(value any) bool {
	return value != nil && reflect.TypeOf(value).Kind() == reflect.String
}

// matches returns a check that runs re against the datum's string form.
func matches(re *regexp.Regexp) func(any) bool {
	return func(value any) bool {
		return re.MatchString(stringify(value))
	}
}
