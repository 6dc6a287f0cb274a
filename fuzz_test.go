package vecscan

import (
	"testing"

	"github.com/coregx/vecscan/internal/scalar"
)

// FuzzScanAgreesWithScalarOracle checks that the vectorized Scan path
// never disagrees with the byte-at-a-time reference scanner, across
// arbitrary buffer contents and a fixed small pattern family.
func FuzzScanAgreesWithScalarOracle(f *testing.F) {
	f.Add([]byte{0xDE, 0xAD, 0xBE, 0xEF}, byte(1))
	f.Add([]byte("the quick brown fox"), byte(0))
	f.Add([]byte{}, byte(2))

	mask := []byte{0xFF, 0x00, 0xFF}
	match := []byte{0xDE, 0x00, 0xEF}
	p := mustPatternFuzz(mask, match)

	f.Fuzz(func(t *testing.T, buf []byte, variant byte) {
		want, wantOK := scalar.Find(buf, mask, match)
		var got int
		var gotOK bool
		switch variant % 3 {
		case 0:
			got, gotOK = p.Scan(buf)
		case 1:
			got, gotOK = p.ScanSmall(buf)
		default:
			got, gotOK = p.Scan(buf)
		}
		if gotOK != wantOK {
			t.Fatalf("ok mismatch: got %v, want %v (buf=%v)", gotOK, wantOK, buf)
		}
		if gotOK && got != want {
			t.Fatalf("offset mismatch: got %d, want %d (buf=%v)", got, want, buf)
		}
	})
}

// FuzzParseIDARoundTrip checks that ParseIDA never panics and that any
// successfully parsed pattern satisfies New's own invariants.
func FuzzParseIDARoundTrip(f *testing.F) {
	f.Add("E8 ? ? ? ? 48 8B")
	f.Add("")
	f.Add("ZZ")
	f.Add("41")

	f.Fuzz(func(t *testing.T, text string) {
		p, err := ParseIDA(text)
		if err != nil {
			return
		}
		if p.Len() == 0 {
			t.Fatalf("ParseIDA(%q) returned a zero-length pattern", text)
		}
		if p.Mask()[0] == 0 {
			t.Fatalf("ParseIDA(%q) returned a pattern with a leading wildcard", text)
		}
		if p.Mask()[p.Len()-1] == 0 {
			t.Fatalf("ParseIDA(%q) returned a pattern with a trailing wildcard", text)
		}
	})
}

func mustPatternFuzz(mask, match []byte) *Pattern {
	p, err := New(mask, match)
	if err != nil {
		panic(err)
	}
	return p
}
