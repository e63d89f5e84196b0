package anchor

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

func uuidRules() []Rule {
	return []Rule{
		{Name: RuleUUID, Check: isUUID, TakesParam: true},
	}
}

// isUUID validates the canonical 36 character UUID form. The param selects a
// version: nil, "" or "all" accept any version, otherwise the parsed UUID
// must carry that version. Versions 4 and above also require the RFC 4122
// variant.
func isUUID(value any, param any) (bool, error) {
	version, err := uuidVersionParam(param)
	if err != nil {
		return false, err
	}

	s := stringify(value)

	// Fast rejection before parsing. uuid.Parse also accepts the urn and
	// braced forms, which this rule does not.
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false, nil
	}

	parsed, err := uuid.Parse(s)
	if err != nil {
		return false, nil
	}

	if version == 0 {
		return true, nil
	}
	if parsed.Version() != version {
		return false, nil
	}
	if version >= 4 && parsed.Variant() != uuid.RFC4122 {
		return false, nil
	}

	return true, nil
}

// uuidVersionParam returns 0 for "any version".
func uuidVersionParam(param any) (uuid.Version, error) {
	if param == nil {
		return 0, nil
	}

	var n int64
	switch p := param.(type) {
	case string:
		p = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(p)), "v")
		if p == "" || p == UUIDVersionAll {
			return 0, nil
		}
		parsed, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid uuid version %q", param)
		}
		n = parsed
	case uuid.Version:
		n = int64(p)
	default:
		rv := reflect.ValueOf(param)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			n = rv.Int()
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			n = int64(rv.Uint())
		default:
			return 0, fmt.Errorf("invalid uuid version type %T", param)
		}
	}

	if n < 1 || n > 8 {
		return 0, fmt.Errorf("uuid version %d out of range 1-8", n)
	}
	return uuid.Version(n), nil
}
