package flatwire

// Package flatwire provides:
//
// - A fixed-capacity string value type (String) with clamp-on-write semantics
// - Total, 1-based positional primitives (Length/Copy/Insert/Find/Left/Right/Mid)
// - A stable error model via Issues (path, code, message) for the few reported conditions
//
// Design policy:
// - Keep only public APIs in the root package; the primitives stay pure and total.
// - Place the flat JSON key/value codec under jsonkv/, timestamp codecs under
//   codec/, and the CLI under cmd/flatwire.
// - Degenerate inputs produce sentinel results (0 from Find, empty String from
//   Insert/Mid), never errors; Issues appear only where the wire format itself
//   is malformed or a bounded resource is exhausted.
//
// Typical usage:
//
//	out := flatwire.New(128)
//	out = flatwire.Insert(out, "{", flatwire.Length(out)+1)
//	pos := flatwire.Find(doc, ":")
//	val := flatwire.Mid(doc, pos+1, 4)
//
// The primitives operate on bytes, not runes; the intended payloads are ASCII
// wire text exchanged with industrial controllers.
