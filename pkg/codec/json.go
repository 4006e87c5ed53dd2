// Package codec wraps JSON encoding for wire payloads (API client,
// websocket frames). Sonic is used instead of encoding/json for its
// decode speed on catalog payloads.
package codec

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// Marshal encodes v to JSON, failing fast on nil input.
func Marshal(v any) ([]byte, error) {
	if v == nil {
		return nil, fmt.Errorf("codec: cannot encode nil value")
	}
	data, err := sonic.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("codec: encode: %w", err)
	}
	return data, nil
}

// Unmarshal decodes JSON into v, failing fast on empty input.
func Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return fmt.Errorf("codec: cannot decode empty data")
	}
	if v == nil {
		return fmt.Errorf("codec: cannot decode into nil value")
	}
	if err := sonic.Unmarshal(data, v); err != nil {
		return fmt.Errorf("codec: decode: %w", err)
	}
	return nil
}
