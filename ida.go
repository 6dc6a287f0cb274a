package vecscan

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseIDA compiles an IDA-style textual pattern (e.g. "E8 ? ? ? ? 48 8B")
// into a Pattern. Tokens are separated by runs of spaces or tabs. Each
// token is either one or two hex digits (parsed as a fixed byte, mask
// 0xFF) or "?"/"??" (a wildcard, mask 0x00).
//
// Construction fails if the text is empty, contains a non-hex/non-"?"
// token, a token of the wrong width, or if the first or last token is a
// wildcard (the same leading/trailing-wildcard rule New enforces).
func ParseIDA(text string) (*Pattern, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil, &PatternError{Reason: ErrEmptyPattern}
	}

	mask := make([]byte, len(fields))
	match := make([]byte, len(fields))
	for i, tok := range fields {
		if tok == "?" || tok == "??" {
			continue // mask[i], match[i] stay zero: wildcard
		}
		if len(tok) == 0 || len(tok) > 2 {
			return nil, &PatternError{
				Reason: ErrMalformedText,
				Detail: fmt.Sprintf("token %d (%q): hex tokens must be 1 or 2 digits", i, tok),
			}
		}
		v, err := strconv.ParseUint(tok, 16, 8)
		if err != nil {
			return nil, &PatternError{
				Reason: ErrMalformedText,
				Detail: fmt.Sprintf("token %d (%q): not a hex byte", i, tok),
			}
		}
		mask[i] = 0xFF
		match[i] = byte(v)
	}
	return New(mask, match)
}
