package apidefs

import (
	"encoding/json"
	"fmt"
	"io"
)

// DecodePayload reads the entire input stream and unmarshals it as one
// Payload document. The full read happens before any parsing so that
// processing never starts on a truncated stream.
func DecodePayload(r io.Reader) (Payload, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Payload{}, fmt.Errorf("reading input payload: %w", err)
	}

	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return Payload{}, fmt.Errorf("parsing input payload: %w", err)
	}

	return p, nil
}
