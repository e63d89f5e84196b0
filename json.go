package anchor

import (
	"strconv"

	"github.com/tidwall/gjson"
)

// jsonRootPath selects the whole document.
const jsonRootPath = "@this"

// FromJSON wraps the value found at path in a JSON document using the
// default dispatcher. See Dispatcher.FromJSON.
func FromJSON(json, path string) (*Anchor, error) {
	return _gDispatcher.FromJSON(json, path)
}

// FromJSONBytes is like FromJSON for a byte slice.
func FromJSONBytes(json []byte, path string) (*Anchor, error) {
	return _gDispatcher.FromJSONBytes(json, path)
}

// FromJSON wraps the value found at path, a gjson path, in a JSON document.
// An empty path selects the whole document.
//
// JSON values map to data as follows:
//   - missing path and null: nil
//   - string: string
//   - number: int64 when the literal is an integer that fits, else float64
//   - true / false: bool
//   - object: map[string]any
//   - array: rejected with ErrUnsupportedEntity, like any sequence
func (d *Dispatcher) FromJSON(json, path string) (*Anchor, error) {
	if !gjson.Valid(json) {
		return nil, ErrInvalidJSON
	}
	if path == "" {
		path = jsonRootPath
	}
	return d.New(jsonValue(gjson.Get(json, path)))
}

func (d *Dispatcher) FromJSONBytes(json []byte, path string) (*Anchor, error) {
	if !gjson.ValidBytes(json) {
		return nil, ErrInvalidJSON
	}
	if path == "" {
		path = jsonRootPath
	}
	return d.New(jsonValue(gjson.GetBytes(json, path)))
}

// jsonValue converts a gjson result into a datum.
func jsonValue(result gjson.Result) any {
	if !result.Exists() {
		return nil
	}

	switch result.Type {
	case gjson.Null:
		return nil
	case gjson.False:
		return false
	case gjson.True:
		return true
	case gjson.String:
		return result.Str
	case gjson.Number:
		if n, err := strconv.ParseInt(result.Raw, 10, 64); err == nil {
			return n
		}
		return result.Num
	case gjson.JSON:
		if result.IsArray() {
			// Keep it a sequence so New rejects it.
			return result.Array()
		}
		return result.Value()
	default:
		return result.Value()
	}
}
