package anchor

import "time"

// Built-in rule names.
const (
	RuleEmpty     = "empty"
	RuleUndefined = "undefined"

	RuleString       = "string"
	RuleAlpha        = "alpha"
	RuleNumeric      = "numeric"
	RuleAlphanumeric = "alphanumeric"
	RuleEmail        = "email"
	RuleURL          = "url"
	RuleURLish       = "urlish"
	RuleIP           = "ip"
	RuleCreditCard   = "creditcard"
	RuleUUID         = "uuid"

	RuleInt     = "int"
	RuleInteger = "integer"
	RuleNumber  = "number"
	RuleFinite  = "finite"

	RuleDecimal = "decimal"
	RuleFloat   = "float"

	RuleFalsey = "falsey"
	RuleTruthy = "truthy"
	RuleNull   = "null"

	RuleBoolean = "boolean"
	RuleArray   = "array"

	RuleDate   = "date"
	RuleAfter  = "after"
	RuleBefore = "before"
)

// Parameter values accepted by the uuid rule besides a version number.
const (
	UUIDVersionAll = "all"
)

// constants for the rule reference grammar, e.g. after:'2020-01-01'
const (
	RuleRefKeyValueDelimiter = ":"
	RuleRefScopeDelimiter    = byte('\'')
	RuleRefEscape            = byte('\\')
)

// maxURLLength is the longest URL the url rule accepts.
const maxURLLength = 2083

// maxIndirections bounds how many pointers stringify follows.
const maxIndirections = 32

// timeLayouts are tried in order when a date is given as a string.
var timeLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}
