package vecscan

import (
	"errors"
	"testing"
)

func TestParseIDABasic(t *testing.T) {
	p, err := ParseIDA("E8 ? ? ? ? 48 8B")
	if err != nil {
		t.Fatalf("ParseIDA() error = %v", err)
	}
	wantMask := []byte{0xFF, 0x00, 0x00, 0x00, 0x00, 0xFF, 0xFF}
	wantMatch := []byte{0xE8, 0x00, 0x00, 0x00, 0x00, 0x48, 0x8B}
	if string(p.Mask()) != string(wantMask) || string(p.Match()) != string(wantMatch) {
		t.Fatalf("ParseIDA() mask/match = %v/%v, want %v/%v", p.Mask(), p.Match(), wantMask, wantMatch)
	}
}

func TestParseIDADoubleQuestionMark(t *testing.T) {
	p, err := ParseIDA("48 ?? 8B")
	if err != nil {
		t.Fatalf("ParseIDA() error = %v", err)
	}
	if p.Mask()[1] != 0x00 {
		t.Fatalf("ParseIDA(): ?? did not produce a wildcard")
	}
}

func TestParseIDAEmpty(t *testing.T) {
	if _, err := ParseIDA(""); !errors.Is(err, ErrEmptyPattern) {
		t.Fatalf("ParseIDA(\"\") error = %v, want ErrEmptyPattern", err)
	}
	if _, err := ParseIDA("   "); !errors.Is(err, ErrEmptyPattern) {
		t.Fatalf("ParseIDA(whitespace) error = %v, want ErrEmptyPattern", err)
	}
}

func TestParseIDAMalformedToken(t *testing.T) {
	if _, err := ParseIDA("E8 ZZ 90"); !errors.Is(err, ErrMalformedText) {
		t.Fatalf("ParseIDA() error = %v, want ErrMalformedText", err)
	}
	if _, err := ParseIDA("E8 123 90"); !errors.Is(err, ErrMalformedText) {
		t.Fatalf("ParseIDA() error = %v, want ErrMalformedText", err)
	}
}

func TestParseIDALeadingWildcardRejected(t *testing.T) {
	if _, err := ParseIDA("? E8 90"); !errors.Is(err, ErrLeadingWildcard) {
		t.Fatalf("ParseIDA() error = %v, want ErrLeadingWildcard", err)
	}
}

func TestParseIDAScanRoundTrip(t *testing.T) {
	p, err := ParseIDA("48 8B ? ? C3")
	if err != nil {
		t.Fatalf("ParseIDA() error = %v", err)
	}
	buf := []byte{0x00, 0x48, 0x8B, 0x11, 0x22, 0xC3, 0x00}
	off, ok := p.Scan(buf)
	if !ok || off != 1 {
		t.Fatalf("Scan() = (%d, %v), want (1, true)", off, ok)
	}
}
