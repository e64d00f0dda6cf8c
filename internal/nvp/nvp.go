package nvp

import (
	"fmt"
	"net/url"
	"strings"
)

// Values is an ordered name-value pair list used for PayPal NVP request
// bodies. Unlike url.Values it remembers insertion order, so payloads go
// out on the wire in the order they were staged.
type Values struct {
	keys   []string
	values map[string]string
}

func New() *Values {
	return &Values{
		values: map[string]string{},
	}
}

// Set stores value under key. A repeated key keeps its original position.
func (v *Values) Set(key, value string) {
	if _, ok := v.values[key]; !ok {
		v.keys = append(v.keys, key)
	}
	v.values[key] = value
}

// Get returns the value for key and whether it is present.
func (v *Values) Get(key string) (string, bool) {
	val, ok := v.values[key]
	return val, ok
}

func (v *Values) Len() int {
	return len(v.keys)
}

// Keys returns the keys in insertion order.
func (v *Values) Keys() []string {
	out := make([]string, len(v.keys))
	copy(out, v.keys)
	return out
}

// Encode serializes the pairs as application/x-www-form-urlencoded text,
// preserving insertion order.
func (v *Values) Encode() string {
	var b strings.Builder
	for i, k := range v.keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(v.values[k]))
	}
	return b.String()
}

// Parse decodes URL-encoded name-value text into a flat map. Duplicate
// keys resolve to the last value seen.
func Parse(raw string) (map[string]string, error) {
	parsed, err := url.ParseQuery(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing nvp response: %w", err)
	}

	out := make(map[string]string, len(parsed))
	for k, vals := range parsed {
		if len(vals) == 0 {
			out[k] = ""
			continue
		}
		out[k] = vals[len(vals)-1]
	}

	return out, nil
}
