package jsonval

import (
	"encoding/json"
	"fmt"

	"github.com/vparva/outcome/pkg/outcome"
)

// Parse decodes a JSON document into a Value tree. Malformed input,
// including trailing data after the top-level value, is an expected data
// error.
func Parse(data []byte) (Value, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return fromGo(raw)
}

// ParseOutcome is Parse lifted to the outcome boundary: malformed input
// comes back as an Err variant instead of an error return.
func ParseOutcome(data []byte) outcome.Outcome[Value] {
	return outcome.Capture(Parse(data))
}

func fromGo(raw any) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return Null{}, nil
	case bool:
		return Bool(v), nil
	case float64:
		return Number(v), nil
	case string:
		return String(v), nil
	case []any:
		arr := make(Array, 0, len(v))
		for i, elem := range v {
			converted, err := fromGo(elem)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			arr = append(arr, converted)
		}
		return arr, nil
	case map[string]any:
		obj := make(Object, len(v))
		for k, elem := range v {
			converted, err := fromGo(elem)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			obj[k] = converted
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("unsupported decoded type %T", raw)
	}
}
