// Package jsonkv assembles and picks apart flat JSON key/value payloads using
// only the bounded-string primitives of the root package.
//
// The codec is deliberately narrow: one object of scalar fields, at most one
// flat array of scalars, no nesting, no escaping, no whitespace. That is the
// exact wire shape the peer controllers emit and accept, and the extraction
// algorithms below are only correct for it. Input outside that shape is
// reported as an unsupported_input issue, never parsed by guesswork.
package jsonkv

import (
	"strconv"

	"github.com/iancoleman/strcase"

	flatwire "github.com/tksm/flatwire"
	"github.com/tksm/flatwire/i18n"
)

// Pair is one entry of a flat object, in emission order.
type Pair struct {
	// Key names the field. When empty, a fallback key is derived from the
	// pair's index: A for the first pair, B for the second, and so on.
	Key string
	// Value is the scalar payload. A pair whose Value is empty (and whose
	// Items is nil) is skipped entirely, key included, so sparse inputs never
	// produce stray commas.
	Value string
	// Numeric emits Value without quotes when it is a plain numeric literal.
	Numeric bool
	// Items, when non-nil, makes the field a flat array of scalars. Numeric
	// items are emitted bare, everything else quoted.
	Items []string
}

// fallbackKeys bounds fallback key derivation explicitly: one key per letter,
// nothing past Z.
const fallbackKeys = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// KeyCase selects an optional normalization applied to explicit keys.
type KeyCase int

const (
	KeyAsIs KeyCase = iota
	KeySnake
	KeyCamel
	KeyLowerCamel
)

// DefaultCapacity is the output capacity used when WithCapacity is not given.
// Payloads near this size should size explicitly; overflow is clamped, not
// grown.
const DefaultCapacity = 256

type config struct {
	capacity int
	keyCase  KeyCase
}

// Option adjusts how Build assembles its output.
type Option func(*config)

// WithCapacity fixes the output's capacity in bytes.
func WithCapacity(n int) Option { return func(c *config) { c.capacity = n } }

// WithKeyCase normalizes explicit keys (fallback keys are never touched).
func WithKeyCase(kc KeyCase) Option { return func(c *config) { c.keyCase = kc } }

// Build assembles a flat JSON object from pairs, in order. Pairs with an
// empty scalar value are omitted. The result is clamped at the configured
// capacity; when that happens the clamped payload is still returned together
// with a truncated issue so callers can decide whether a short payload is
// acceptable.
//
// A pair with no explicit key beyond the 26 fallback letters aborts with a
// key_space_exhausted issue and an empty result.
func Build(pairs []Pair, opts ...Option) (flatwire.String, error) {
	cfg := config{capacity: DefaultCapacity}
	for _, o := range opts {
		o(&cfg)
	}

	out := flatwire.New(cfg.capacity)
	out = flatwire.Insert(out, "{", 1)
	requested := 1

	emitted := 0
	for i, p := range pairs {
		if p.Items == nil && p.Value == "" {
			continue
		}
		key, err := deriveKey(p, i, cfg.keyCase)
		if err != nil {
			return flatwire.New(cfg.capacity), err
		}

		frag := ""
		if emitted > 0 {
			frag = ","
		}
		frag += `"` + key + `":`
		switch {
		case p.Items != nil:
			frag += arrayLiteral(p.Items)
		case p.Numeric && numericLiteral(p.Value):
			frag += p.Value
		default:
			frag += `"` + p.Value + `"`
		}

		out = flatwire.Insert(out, frag, flatwire.Length(out)+1)
		requested += len(frag)
		emitted++
	}

	out = flatwire.Insert(out, "}", flatwire.Length(out)+1)
	requested++

	if flatwire.Length(out) < requested {
		return out, flatwire.Issues{{
			Path:    "/",
			Code:    flatwire.CodeTruncated,
			Message: i18n.T(flatwire.CodeTruncated, nil),
			Hint:    "raise WithCapacity or drop fields",
			Params: map[string]string{
				"requested": strconv.Itoa(requested),
				"written":   strconv.Itoa(flatwire.Length(out)),
			},
		}}
	}
	return out, nil
}

// BuildArray assembles the flat [v1,v2,...] fragment used as a single field's
// value. Numeric literals are emitted bare, everything else quoted.
func BuildArray(items []string, opts ...Option) flatwire.String {
	cfg := config{capacity: DefaultCapacity}
	for _, o := range opts {
		o(&cfg)
	}
	lit := arrayLiteral(items)
	out := flatwire.New(cfg.capacity)
	return flatwire.Insert(out, lit, 1)
}

func deriveKey(p Pair, index int, kc KeyCase) (string, error) {
	if p.Key == "" {
		if index < 0 || index >= len(fallbackKeys) {
			return "", flatwire.Issues{{
				Path:    "/",
				Code:    flatwire.CodeKeySpaceExhausted,
				Message: i18n.T(flatwire.CodeKeySpaceExhausted, nil),
				Hint:    "name pairs past the 26th explicitly",
				Params:  map[string]string{"index": strconv.Itoa(index)},
			}}
		}
		return string(fallbackKeys[index]), nil
	}
	switch kc {
	case KeySnake:
		return strcase.ToSnake(p.Key), nil
	case KeyCamel:
		return strcase.ToCamel(p.Key), nil
	case KeyLowerCamel:
		return strcase.ToLowerCamel(p.Key), nil
	default:
		return p.Key, nil
	}
}

func arrayLiteral(items []string) string {
	lit := "["
	for i, it := range items {
		if i > 0 {
			lit += ","
		}
		if numericLiteral(it) {
			lit += it
		} else {
			lit += `"` + it + `"`
		}
	}
	return lit + "]"
}

// numericLiteral reports whether s is a bare JSON number: optional minus,
// digits, optional fraction, optional exponent.
func numericLiteral(s string) bool {
	i, n := 0, len(s)
	if n == 0 {
		return false
	}
	if s[i] == '-' {
		i++
	}
	start := i
	for i < n && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return false
	}
	if i < n && s[i] == '.' {
		i++
		start = i
		for i < n && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == start {
			return false
		}
	}
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < n && (s[i] == '+' || s[i] == '-') {
			i++
		}
		start = i
		for i < n && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == start {
			return false
		}
	}
	return i == n
}
