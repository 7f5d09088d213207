package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/bytedance/sonic"
)

// api sorts map keys so encoded datasets are reproducible byte for byte.
var api = sonic.ConfigStd

func Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

// MarshalIndent encodes v the way every dataset file is written: two-space
// indentation and a trailing newline.
func MarshalIndent(v any) ([]byte, error) {
	b, err := api.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(b, '\n'), nil
}

func Unmarshal(data []byte, v any) error {
	return api.Unmarshal(data, v)
}

func Decode(r io.Reader, v any) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("io.ReadAll: %w", err)
	}

	return Unmarshal(data, v)
}

func Encode(w io.Writer, v any) error {
	b, err := MarshalIndent(v)
	if err != nil {
		return err
	}

	_, err = io.Copy(w, bytes.NewReader(b))
	return err
}
