package domain

import (
	"bytes"

	"github.com/bytedance/sonic"
)

var null = []byte("null")

// FreeText holds a free-text answer exactly as the API sent it. The API
// documents these fields as strings but older records carry other JSON
// values, so the raw value is kept and re-emitted verbatim.
type FreeText struct {
	raw []byte
}

func NewFreeText(s string) FreeText {
	b, _ := sonic.Marshal(s)
	return FreeText{raw: b}
}

func (t *FreeText) UnmarshalJSON(b []byte) error {
	t.raw = append(t.raw[:0], b...)
	return nil
}

func (t FreeText) MarshalJSON() ([]byte, error) {
	if len(t.raw) == 0 {
		return null, nil
	}

	return t.raw, nil
}

// Value returns the text as a string, or nil when the field was absent,
// null or not a JSON string.
func (t FreeText) Value() any {
	raw := bytes.TrimSpace(t.raw)
	if len(raw) == 0 || raw[0] != '"' {
		return nil
	}

	var s string
	if err := sonic.Unmarshal(raw, &s); err != nil {
		return nil
	}

	return s
}
