package config

import (
	"bytes"
	"encoding/json"
)

// Values is a raw configuration keyed by field. A missing key is absent; an
// empty string is an explicit choice and is never replaced by a default.
type Values map[string]string

// Clone returns a shallow copy of v.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for key, value := range v {
		out[key] = value
	}
	return out
}

// Merge returns a copy of v with every key of overlay applied on top.
func (v Values) Merge(overlay Values) Values {
	out := v.Clone()
	for key, value := range overlay {
		out[key] = value
	}
	return out
}

// Config is a finished configuration. It is immutable: accessors return
// copies and the key order follows the registry it was assembled against.
type Config struct {
	keys   []string
	values map[string]string
}

func newConfig(keys []string, values map[string]string) Config {
	return Config{keys: keys, values: values}
}

// Get returns the value for key and whether it is set.
func (c Config) Get(key string) (string, bool) {
	value, ok := c.values[key]
	return value, ok
}

// Value returns the value for key or an empty string.
func (c Config) Value(key string) string {
	return c.values[key]
}

// Keys returns the populated keys in registry order.
func (c Config) Keys() []string {
	return append([]string(nil), c.keys...)
}

// Values returns a copy of the configuration as raw values.
func (c Config) Values() Values {
	out := make(Values, len(c.values))
	for key, value := range c.values {
		out[key] = value
	}
	return out
}

// Len reports how many keys are populated.
func (c Config) Len() int {
	return len(c.keys)
}

// MarshalJSON renders the configuration as an object in registry order.
func (c Config) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range c.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(c.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
