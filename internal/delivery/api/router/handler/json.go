package handler

import "encoding/json"

// rawJSON embeds already-encoded JSON as is. Empty input encodes as null.
func rawJSON(b []byte) json.RawMessage {
	if len(b) == 0 {
		return nil
	}

	return json.RawMessage(b)
}
