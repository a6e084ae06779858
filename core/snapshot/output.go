package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
)

// Encode serializes the output table as indented JSON followed by a newline.
// encoding/json emits map keys in ascending byte-wise order, which is the
// ordering contract downstream history diffing relies on: identical symbol
// sets must serialize to byte-identical text.
func Encode(w io.Writer, out Output) error {
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing output table: %w", err)
	}

	if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
		return fmt.Errorf("writing output table: %w", err)
	}

	return nil
}
