package domain

import (
	"bytes"

	"github.com/bytedance/sonic"
)

// OptionalString tells a missing key (Set false) apart from an explicit null
// (Set true, Value nil). Non-string values decode as null.
type OptionalString struct {
	Set   bool
	Value *string
}

func NewOptionalString(s string) OptionalString {
	return OptionalString{Set: true, Value: &s}
}

func (o *OptionalString) UnmarshalJSON(b []byte) error {
	o.Set = true
	o.Value = nil

	if bytes.Equal(bytes.TrimSpace(b), null) {
		return nil
	}

	var s string
	if err := sonic.Unmarshal(b, &s); err != nil {
		return nil
	}
	o.Value = &s

	return nil
}

func (o OptionalString) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return null, nil
	}

	return sonic.Marshal(*o.Value)
}

// OrDefault returns def for a missing key and Value otherwise.
func (o OptionalString) OrDefault(def string) *string {
	if !o.Set {
		return &def
	}

	return o.Value
}
