package paypal

import (
	"sort"

	"github.com/alovak/paypal-gateway/internal/nvp"
)

// RequestPayload is the staged body of the next outbound API call. It
// keeps fields in insertion order so they reach the wire in a stable,
// predictable sequence.
type RequestPayload struct {
	*nvp.Values
}

func newRequestPayload(data map[string]string) *RequestPayload {
	p := &RequestPayload{nvp.New()}

	// Map iteration order is random; sort so repeated calls stage
	// identical payloads.
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		p.Set(k, data[k])
	}

	return p
}
