package flatwire

import "strings"

// The primitives below are total: every input, including degenerate ones
// (empty strings, zero or negative counts, out-of-range positions), produces
// a defined result. Absence and invalidity are sentinels (0 from Find, an
// empty String elsewhere), never errors. Positions are 1-based; Copy's
// offsets are the exception and are 0-based, matching the block-move
// contracts of the controllers this format is exchanged with.

// Length reports the number of significant bytes in s.
func Length(s String) int { return s.n }

// Copy copies count bytes from src starting at the 0-based srcOff into dst
// starting at the 0-based dstOff and returns the updated dst. The request is
// clipped silently to what src holds and dst has room for. When swapBytes is
// set, each full pair of bytes is written in reversed order (a trailing odd
// byte is copied straight), for interop with opposite-endianness peers.
// dst's length grows to cover the highest offset written.
func Copy(src String, srcOff int, dst String, dstOff int, count int, swapBytes bool) String {
	if srcOff < 0 {
		srcOff = 0
	}
	if dstOff < 0 {
		dstOff = 0
	}
	count = clipCount(count, src.n-srcOff, dst.Cap()-dstOff)
	if count <= 0 {
		return dst
	}
	out := dst.clone()
	writePairs(out.buf[dstOff:dstOff+count], src.buf[srcOff:srcOff+count], swapBytes)
	if dstOff+count > out.n {
		out.n = dstOff + count
	}
	return out
}

// CopyBytes is Copy into a raw byte buffer: each source character lands as
// its ordinal value at the 0-based dstOff. It returns the number of bytes
// written after clipping.
func CopyBytes(src String, srcOff int, dst []byte, dstOff int, count int, swapBytes bool) int {
	if srcOff < 0 {
		srcOff = 0
	}
	if dstOff < 0 {
		dstOff = 0
	}
	count = clipCount(count, src.n-srcOff, len(dst)-dstOff)
	if count <= 0 {
		return 0
	}
	writePairs(dst[dstOff:dstOff+count], src.buf[srcOff:srcOff+count], swapBytes)
	return count
}

// Insert returns base with fragment spliced in ahead of the 1-based position
// pos. pos <= 0 yields an empty result (invalid position policy: empty
// output, not a partial one). pos past the end appends. The result carries
// base's capacity; bytes past it are clamped from the tail.
func Insert(base String, fragment string, pos int) String {
	if pos <= 0 {
		return New(base.Cap())
	}
	if pos > base.n+1 {
		pos = base.n + 1
	}
	out := New(base.Cap())
	w := copy(out.buf, base.buf[:pos-1])
	w += copy(out.buf[w:], fragment)
	w += copy(out.buf[w:], base.buf[pos-1:base.n])
	out.n = w
	return out
}

// Find returns the 1-based position of the first occurrence of needle in
// haystack, or 0 when needle is absent or empty.
func Find(haystack String, needle string) int {
	if len(needle) == 0 {
		return 0
	}
	i := strings.Index(haystack.String(), needle)
	return i + 1 // strings.Index yields -1 on absence
}

// Left returns the first n bytes of s; n past the end yields all of s and
// n <= 0 yields an empty result.
func Left(s String, n int) String {
	if n < 0 {
		n = 0
	}
	if n > s.n {
		n = s.n
	}
	return Make(s.Cap(), string(s.buf[:n]))
}

// Right returns the last n bytes of s, with the same clamping as Left.
func Right(s String, n int) String {
	if n < 0 {
		n = 0
	}
	if n > s.n {
		n = s.n
	}
	return Make(s.Cap(), string(s.buf[s.n-n:s.n]))
}

// Mid returns count bytes of s beginning at the 1-based position start. A
// start outside 1..Length(s) yields an empty result; count is clamped to the
// remaining length.
func Mid(s String, start, count int) String {
	if start <= 0 || start > s.n || count <= 0 {
		return New(s.Cap())
	}
	if count > s.n-(start-1) {
		count = s.n - (start - 1)
	}
	return Make(s.Cap(), string(s.buf[start-1:start-1+count]))
}

func clipCount(count, srcAvail, dstAvail int) int {
	if count > srcAvail {
		count = srcAvail
	}
	if count > dstAvail {
		count = dstAvail
	}
	return count
}

func writePairs(dst, src []byte, swap bool) {
	if !swap {
		copy(dst, src)
		return
	}
	n := len(src)
	for i := 0; i+1 < n; i += 2 {
		dst[i], dst[i+1] = src[i+1], src[i]
	}
	if n%2 == 1 {
		dst[n-1] = src[n-1]
	}
}
