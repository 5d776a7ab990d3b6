package flatwire_test

import (
	"testing"

	flatwire "github.com/tksm/flatwire"
)

func TestMake_ClampsInitialContent(t *testing.T) {
	s := flatwire.Make(4, "TEMPERATURE")
	if s.String() != "TEMP" {
		t.Fatalf("unexpected content: %q", s.String())
	}
	if s.Len() != 4 || s.Cap() != 4 || s.Free() != 0 {
		t.Fatalf("unexpected geometry: len=%d cap=%d free=%d", s.Len(), s.Cap(), s.Free())
	}
}

func TestNew_NegativeCapacityIsZero(t *testing.T) {
	s := flatwire.New(-3)
	if s.Cap() != 0 || s.Len() != 0 || !s.IsEmpty() {
		t.Fatalf("expected empty zero-capacity string, got cap=%d len=%d", s.Cap(), s.Len())
	}
}

func TestOf_CapacityEqualsLength(t *testing.T) {
	s := flatwire.Of("PUMP1")
	if s.Cap() != 5 || s.String() != "PUMP1" {
		t.Fatalf("unexpected value: cap=%d content=%q", s.Cap(), s.String())
	}
}

func TestBytes_ReturnsCopy(t *testing.T) {
	s := flatwire.Of("AB")
	b := s.Bytes()
	b[0] = 'X'
	if s.String() != "AB" {
		t.Fatalf("Bytes must not alias the value, got %q", s.String())
	}
}
