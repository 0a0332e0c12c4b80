package collect

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/goliatone/go-themegen/pkg/config"
)

// ErrMalformedJSON is returned when the input is not a JSON object of scalar
// values.
var ErrMalformedJSON = errors.New("collect: malformed JSON")

// FromJSON decodes a single JSON object. Strings are kept verbatim, null
// leaves the key absent, numbers and booleans keep their literal text.
func FromJSON(r io.Reader) (config.Values, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: no input", ErrMalformedJSON)
	}

	dec := json.NewDecoder(r)
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrMalformedJSON)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after top-level object", ErrMalformedJSON)
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top-level value must be an object", ErrMalformedJSON)
	}
	values, err := fromMap(obj)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	return values, nil
}

func fromMap(obj map[string]any) (config.Values, error) {
	values := make(config.Values, len(obj))
	for key, raw := range obj {
		value, present, err := scalar(raw)
		if err != nil {
			return nil, fmt.Errorf("key %q: %v", key, err)
		}
		if present {
			values[key] = value
		}
	}
	return values, nil
}

func scalar(raw any) (string, bool, error) {
	switch v := raw.(type) {
	case nil:
		return "", false, nil
	case string:
		return v, true, nil
	case bool:
		return strconv.FormatBool(v), true, nil
	case json.Number:
		return v.String(), true, nil
	case int:
		return strconv.Itoa(v), true, nil
	case int64:
		return strconv.FormatInt(v, 10), true, nil
	case uint64:
		return strconv.FormatUint(v, 10), true, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true, nil
	case map[string]any, []any:
		return "", false, errors.New("nested values are not supported")
	default:
		return "", false, fmt.Errorf("unsupported value of type %T", raw)
	}
}
