// Package codec converts between domain values and their fixed-width wire
// strings.
package codec

import (
	"strconv"

	flatwire "github.com/tksm/flatwire"
	"github.com/tksm/flatwire/i18n"
)

// Codec performs bidirectional transformation between the wire representation
// A and the domain representation B.
type Codec[A, B any] interface {
	Decode(a A) (B, error) // wire -> domain
	Encode(b B) (A, error) // domain -> wire
}

// Clock carries calendar and time-of-day components handed over by an
// external time source. The codec never reads a clock itself.
type Clock struct {
	Year   int // full year on encode; 0-99 on decode (no century guess)
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// StampWidth is the fixed width of the wire timestamp YYMMDDSSSSS: two-digit
// year, month and day, then five digits of seconds since midnight.
const StampWidth = 11

// Stamp returns a Codec between Clock components and the fixed 11-byte
// YYMMDDSSSSS wire string.
func Stamp() Codec[flatwire.String, Clock] { return stampCodec{} }

type stampCodec struct{}

// Encode formats the components as YYMMDDSSSSS. The year is taken modulo 100;
// the remaining components must sit in their calendar ranges or a
// domain_range issue is returned.
func (stampCodec) Encode(c Clock) (flatwire.String, error) {
	if err := c.check(); err != nil {
		return flatwire.New(StampWidth), err
	}
	secs := c.Hour*3600 + c.Minute*60 + c.Second

	out := flatwire.New(StampWidth)
	out = flatwire.Insert(out, padField(c.Year%100, 2), flatwire.Length(out)+1)
	out = flatwire.Insert(out, padField(c.Month, 2), flatwire.Length(out)+1)
	out = flatwire.Insert(out, padField(c.Day, 2), flatwire.Length(out)+1)
	out = flatwire.Insert(out, padField(secs, 5), flatwire.Length(out)+1)
	return out, nil
}

// Decode parses a YYMMDDSSSSS string back into components. The two-digit year
// is returned as is (0-99). Anything that is not 11 digits, or whose
// seconds-since-midnight field exceeds 86399, is an invalid_format issue.
func (stampCodec) Decode(s flatwire.String) (Clock, error) {
	if flatwire.Length(s) != StampWidth || !allDigits(s.String()) {
		return Clock{}, stampIssue(flatwire.CodeInvalidFormat, "want 11 digits YYMMDDSSSSS")
	}
	yy := atoi(flatwire.Left(s, 2).String())
	mm := atoi(flatwire.Mid(s, 3, 2).String())
	dd := atoi(flatwire.Mid(s, 5, 2).String())
	secs := atoi(flatwire.Right(s, 5).String())

	if mm < 1 || mm > 12 || dd < 1 || dd > 31 || secs > 86399 {
		return Clock{}, stampIssue(flatwire.CodeInvalidFormat, "component out of range")
	}
	return Clock{
		Year:   yy,
		Month:  mm,
		Day:    dd,
		Hour:   secs / 3600,
		Minute: secs % 3600 / 60,
		Second: secs % 60,
	}, nil
}

func (c Clock) check() error {
	switch {
	case c.Year < 0,
		c.Month < 1 || c.Month > 12,
		c.Day < 1 || c.Day > 31,
		c.Hour < 0 || c.Hour > 23,
		c.Minute < 0 || c.Minute > 59,
		c.Second < 0 || c.Second > 59:
		return stampIssue(flatwire.CodeDomainRange, "calendar component out of range")
	}
	return nil
}

// padField renders v in decimal and left-pads it with zeros, one Insert at
// position 1 per missing digit, until the field reaches its width.
func padField(v, width int) string {
	f := flatwire.Make(width, strconv.Itoa(v))
	for flatwire.Length(f) < width {
		f = flatwire.Insert(f, "0", 1)
	}
	return f.String()
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

// atoi is only called on digit-checked input.
func atoi(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

func stampIssue(code, hint string) error {
	return flatwire.Issues{{
		Path:    "/",
		Code:    code,
		Message: i18n.T(code, nil),
		Hint:    hint,
	}}
}
