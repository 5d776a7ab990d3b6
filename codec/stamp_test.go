package codec

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	flatwire "github.com/tksm/flatwire"
)

func TestStamp_Encode_Basic(t *testing.T) {
	c := Stamp()

	got, err := c.Encode(Clock{Year: 2024, Month: 3, Day: 7, Hour: 1, Minute: 2, Second: 3})
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	// seconds since midnight = 3723, zero-padded to five digits
	if got.String() != "24030703723" {
		t.Fatalf("stamp = %q, want 24030703723", got.String())
	}
	if got.Len() != StampWidth {
		t.Fatalf("stamp width = %d, want %d", got.Len(), StampWidth)
	}
}

func TestStamp_Encode_PaddingEdges(t *testing.T) {
	c := Stamp()
	cases := []struct {
		name string
		in   Clock
		want string
	}{
		{"midnight new year", Clock{Year: 2000, Month: 1, Day: 1}, "00010100000"},
		{"last second of day", Clock{Year: 1999, Month: 12, Day: 31, Hour: 23, Minute: 59, Second: 59}, "99123186399"},
		{"single digit year mod", Clock{Year: 2107, Month: 10, Day: 20, Hour: 10}, "07102036000"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := c.Encode(tc.in)
			if err != nil {
				t.Fatalf("encode err: %v", err)
			}
			if got.String() != tc.want {
				t.Fatalf("stamp = %q, want %q", got.String(), tc.want)
			}
		})
	}
}

func TestStamp_Encode_RejectsOutOfRange(t *testing.T) {
	c := Stamp()
	cases := []Clock{
		{Year: 2024, Month: 0, Day: 1},
		{Year: 2024, Month: 13, Day: 1},
		{Year: 2024, Month: 1, Day: 0},
		{Year: 2024, Month: 1, Day: 32},
		{Year: 2024, Month: 1, Day: 1, Hour: 24},
		{Year: 2024, Month: 1, Day: 1, Minute: 60},
		{Year: 2024, Month: 1, Day: 1, Second: -1},
		{Year: -5, Month: 1, Day: 1},
	}
	for _, in := range cases {
		if _, err := c.Encode(in); err == nil {
			t.Fatalf("expected domain_range issue for %+v", in)
		} else if iss, ok := flatwire.AsIssues(err); !ok || iss[0].Code != flatwire.CodeDomainRange {
			t.Fatalf("unexpected error for %+v: %v", in, err)
		}
	}
}

func TestStamp_Roundtrip(t *testing.T) {
	c := Stamp()
	in := Clock{Year: 2024, Month: 3, Day: 7, Hour: 1, Minute: 2, Second: 3}

	wire, err := c.Encode(in)
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	got, err := c.Decode(wire)
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	want := in
	want.Year = 24 // decode keeps the two-digit year
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("roundtrip mismatch (-want +got):\n%s", diff)
	}
}

func TestStamp_Decode_RejectsMalformed(t *testing.T) {
	c := Stamp()
	for _, in := range []string{
		"",
		"2403070372",   // too short
		"240307037230", // too long
		"2403070372x",  // non-digit
		"24030786400",  // seconds past the day
		"24130703723",  // month 13
		"24033203723",  // day 32
	} {
		if _, err := c.Decode(flatwire.Of(in)); err == nil {
			t.Fatalf("expected invalid_format issue for %q", in)
		} else if iss, ok := flatwire.AsIssues(err); !ok || iss[0].Code != flatwire.CodeInvalidFormat {
			t.Fatalf("unexpected error for %q: %v", in, err)
		}
	}
}
