package jsonkv

import (
	flatwire "github.com/tksm/flatwire"
	"github.com/tksm/flatwire/i18n"
)

// Field returns the named field's scalar value, or the empty string when the
// field is absent or the surrounding text is not in the expected shape. Every
// lookup step is a Find whose zero sentinel aborts the extraction; nothing
// here can fail with an error.
//
// Quoted values are returned without their quotes; bare numeric values run to
// the next comma, or to the closing brace when they are the last field.
func Field(doc flatwire.String, name string) string {
	key := flatwire.Find(doc, `"`+name+`"`)
	if key == 0 {
		return ""
	}
	tail := flatwire.Mid(doc, key+len(name)+2, flatwire.Length(doc))
	colon := flatwire.Find(tail, ":")
	if colon == 0 {
		return ""
	}
	after := flatwire.Mid(tail, colon+1, flatwire.Length(tail))

	if flatwire.Left(after, 1).String() == `"` {
		// quoted: the value sits strictly between the next two quotes
		open := flatwire.Find(after, `"`)
		rest := flatwire.Mid(after, open+1, flatwire.Length(after))
		closing := flatwire.Find(rest, `"`)
		if closing == 0 {
			return ""
		}
		return flatwire.Left(rest, closing-1).String()
	}

	// bare: the value runs to the field separator or the end of the object
	end := flatwire.Find(after, ",")
	if end == 0 {
		end = flatwire.Find(after, "}")
	}
	if end == 0 {
		return after.String()
	}
	return flatwire.Left(after, end-1).String()
}

// Array returns the elements of the named flat array field, in order. An
// absent field (or one without an array value) yields a nil slice and no
// error. A nested bracket inside the array body or a missing closing bracket
// is the one shape this splitter cannot handle and is reported as an
// unsupported_input issue instead of being parsed into garbage.
func Array(doc flatwire.String, name string) ([]string, error) {
	key := flatwire.Find(doc, `"`+name+`"`)
	if key == 0 {
		return nil, nil
	}
	tail := flatwire.Mid(doc, key+len(name)+2, flatwire.Length(doc))
	open := flatwire.Find(tail, "[")
	if open == 0 {
		return nil, nil
	}
	rest := flatwire.Mid(tail, open+1, flatwire.Length(tail))
	closing := flatwire.Find(rest, "]")
	if closing == 0 {
		return nil, unsupported(name, "unterminated array")
	}
	body := flatwire.Left(rest, closing-1)
	if flatwire.Find(body, "[") != 0 {
		return nil, unsupported(name, "nested array")
	}
	if body.IsEmpty() {
		return []string{}, nil
	}

	// split on commas: take the left part, discard the consumed prefix, repeat
	var items []string
	for {
		comma := flatwire.Find(body, ",")
		if comma == 0 {
			items = append(items, unquote(body.String()))
			return items, nil
		}
		items = append(items, unquote(flatwire.Left(body, comma-1).String()))
		body = flatwire.Mid(body, comma+1, flatwire.Length(body))
	}
}

// Bool maps the exact values "ON" and "TRUE" to true and everything else to
// false, matching the coercion the peer controllers apply.
func Bool(v string) bool { return v == "ON" || v == "TRUE" }

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

func unsupported(field, hint string) error {
	return flatwire.Issues{{
		Path:    "/" + field,
		Code:    flatwire.CodeUnsupportedInput,
		Message: i18n.T(flatwire.CodeUnsupportedInput, nil),
		Hint:    hint,
	}}
}
