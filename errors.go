package flatwire

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeTruncated         = "truncated"
	CodeKeySpaceExhausted = "key_space_exhausted"
	CodeUnsupportedInput  = "unsupported_input"
	CodeParseError        = "parse_error"
	CodeInvalidFormat     = "invalid_format"
	CodeDomainRange       = "domain_range"
)

// Issue represents a single reported condition. The primitives themselves
// never produce Issues; only the codecs built on top of them do, and only for
// the conditions the wire format cannot absorb as a sentinel (exhausted key
// space, nested input handed to the flat array splitter, clamped output).
type Issue struct {
	Path    string // field or position context (for example: /values).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"index":"26", "cap":"64"})
	// for i18n and observability.
	Params map[string]string
}

// Issues is a collection of reported conditions that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. key_space_exhausted at /values
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
