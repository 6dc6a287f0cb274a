package vecscan

import (
	"errors"
	"testing"
)

func TestNewRejectsEmpty(t *testing.T) {
	if _, err := New(nil, nil); !errors.Is(err, ErrEmptyPattern) {
		t.Fatalf("New(nil, nil) error = %v, want ErrEmptyPattern", err)
	}
}

func TestNewRejectsLengthMismatch(t *testing.T) {
	_, err := New([]byte{0xFF, 0xFF}, []byte{0x01})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("error = %v, want ErrLengthMismatch", err)
	}
}

func TestNewRejectsNonSubsetMatch(t *testing.T) {
	// match bit set where mask bit is clear.
	_, err := New([]byte{0x0F}, []byte{0xF0})
	if !errors.Is(err, ErrNonSubsetMatch) {
		t.Fatalf("error = %v, want ErrNonSubsetMatch", err)
	}
}

func TestNewRejectsLeadingWildcard(t *testing.T) {
	_, err := New([]byte{0x00, 0xFF}, []byte{0x00, 0x01})
	if !errors.Is(err, ErrLeadingWildcard) {
		t.Fatalf("error = %v, want ErrLeadingWildcard", err)
	}
}

func TestNewRejectsTrailingWildcard(t *testing.T) {
	_, err := New([]byte{0xFF, 0x00}, []byte{0x01, 0x00})
	if !errors.Is(err, ErrTrailingWildcard) {
		t.Fatalf("error = %v, want ErrTrailingWildcard", err)
	}
}

func TestNewAccepts(t *testing.T) {
	p, err := New([]byte{0xFF, 0x00, 0xFF}, []byte{0xE8, 0x00, 0x10})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if p.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", p.Len())
	}
	if string(p.Mask()) != string([]byte{0xFF, 0x00, 0xFF}) {
		t.Fatalf("Mask() = %v", p.Mask())
	}
	if string(p.Match()) != string([]byte{0xE8, 0x00, 0x10}) {
		t.Fatalf("Match() = %v", p.Match())
	}
}

func TestLenUint16(t *testing.T) {
	p := mustPattern(t, []byte{0xFF, 0xFF, 0xFF}, []byte{1, 2, 3})
	if got := p.LenUint16(); got != 3 {
		t.Fatalf("LenUint16() = %d, want 3", got)
	}
}

func TestExtLenUint32(t *testing.T) {
	p := mustPattern(t, []byte{0xFF, 0xFF, 0xFF}, []byte{1, 2, 3})
	if got := p.ExtLenUint32(); got != uint32(len(p.extMask)) {
		t.Fatalf("ExtLenUint32() = %d, want %d", got, len(p.extMask))
	}
}

func TestPatternErrorUnwrap(t *testing.T) {
	_, err := New(nil, nil)
	var pe *PatternError
	if !errors.As(err, &pe) {
		t.Fatalf("error is not *PatternError: %v", err)
	}
	if !errors.Is(pe, ErrEmptyPattern) {
		t.Fatalf("Unwrap chain broken: %v", pe)
	}
}
