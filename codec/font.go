package codec

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
)

// DecodeFont parses TTF/OTF font bytes.
// The returned *font.Font is read-only and safe for concurrent use.
func DecodeFont(data []byte) (*font.Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("codec: parse font: %w", err)
	}
	return face.Font, nil
}
