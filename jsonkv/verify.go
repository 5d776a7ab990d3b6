package jsonkv

import (
	"bytes"

	j "github.com/goccy/go-json"

	flatwire "github.com/tksm/flatwire"
	"github.com/tksm/flatwire/i18n"
)

// Decode runs the payload through a full JSON decoder and returns the object
// as a map, numbers preserved as json.Number. It exists as a cross-check:
// extraction never needs it, but callers handing payloads to standard JSON
// consumers can assert here that the flat text is also valid general JSON.
func Decode(doc flatwire.String) (map[string]any, error) {
	dec := j.NewDecoder(bytes.NewReader(doc.Bytes()))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, flatwire.Issues{{
			Path:    "/",
			Code:    flatwire.CodeParseError,
			Message: i18n.T(flatwire.CodeParseError, nil),
			Cause:   err,
		}}
	}
	return m, nil
}

// Verify reports whether the payload parses as a JSON object.
func Verify(doc flatwire.String) error {
	_, err := Decode(doc)
	return err
}
