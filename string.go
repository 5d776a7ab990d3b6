package flatwire

// String is a string value with a fixed maximum capacity. Only the first
// Len() bytes of the backing buffer are significant; writes past the capacity
// are clamped, never rejected. The zero value is an empty string with
// capacity 0.
//
// String is a value: the primitives in this package never mutate their
// arguments and always return a fresh value, so callers may freely reassign
// and share Strings without aliasing concerns.
type String struct {
	buf []byte // len(buf) == capacity
	n   int    // 0 <= n <= len(buf)
}

// New returns an empty String with the given capacity. Negative capacities
// are treated as zero.
func New(capacity int) String {
	if capacity < 0 {
		capacity = 0
	}
	return String{buf: make([]byte, capacity)}
}

// Make returns a String with the given capacity holding s as initial content.
// Content beyond the capacity is clamped.
func Make(capacity int, s string) String {
	v := New(capacity)
	v.n = copy(v.buf, s)
	return v
}

// Of returns a String whose capacity equals len(s). It is the usual way to
// lift a Go literal into a bounded value.
func Of(s string) String { return Make(len(s), s) }

// Cap reports the fixed capacity.
func (s String) Cap() int { return len(s.buf) }

// Len reports the number of significant bytes.
func (s String) Len() int { return s.n }

// Free reports the capacity still available for writes. Comparing Free before
// and after a write is how callers detect clamped (silently truncated) output.
func (s String) Free() int { return len(s.buf) - s.n }

// String returns the significant bytes as a Go string.
func (s String) String() string { return string(s.buf[:s.n]) }

// Bytes returns a copy of the significant bytes.
func (s String) Bytes() []byte {
	b := make([]byte, s.n)
	copy(b, s.buf[:s.n])
	return b
}

// IsEmpty reports whether the String holds no significant bytes.
func (s String) IsEmpty() bool { return s.n == 0 }

// clone returns a String with the same capacity and content backed by a
// fresh buffer. Every writing primitive goes through clone so results never
// share storage with their inputs.
func (s String) clone() String {
	b := make([]byte, len(s.buf))
	copy(b, s.buf[:s.n])
	return String{buf: b, n: s.n}
}
