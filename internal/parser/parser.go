// Package parser extracts field mappings from delimited credential lines.
//
// The expected format is "email:password | Key = Value | Key = Value".
// The server treats the resulting mapping opaquely; parsing normally
// happens upstream in the UI, and this package serves as the fallback for
// entries submitted with a raw line only.
package parser

import (
	"fmt"
	"strings"
)

// ParseLine splits a delimited credential line into a field mapping.
//
// The first pipe-separated segment is interpreted as "email:password";
// every following segment as "Key = Value". A segment without an equals
// sign is kept under a positional "Field_N" key so no input is silently
// dropped. Returns nil for unparsable (empty) input.
func ParseLine(line string) map[string]string {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	parts := strings.Split(line, "|")
	data := make(map[string]string, len(parts)+1)

	first := strings.TrimSpace(parts[0])
	if email, password, ok := strings.Cut(first, ":"); ok {
		data["email"] = strings.TrimSpace(email)
		data["password"] = strings.TrimSpace(password)
	} else {
		data["rawFirst"] = first
	}

	for i, part := range parts[1:] {
		part = strings.TrimSpace(part)

		if key, value, ok := strings.Cut(part, "="); ok {
			data[strings.TrimSpace(key)] = strings.TrimSpace(value)
		} else {
			data[fmt.Sprintf("Field_%d", i+1)] = part
		}
	}

	return data
}
