package vecscan

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseMaskMatchText compiles two space-separated hex-byte sequences of
// identical token count into a Pattern: matchText supplies the match
// bytes, maskText the mask bytes. Each position must satisfy
// mask & match == match, enforced by New.
func ParseMaskMatchText(matchText, maskText string) (*Pattern, error) {
	matchToks := strings.Fields(matchText)
	maskToks := strings.Fields(maskText)
	if len(matchToks) == 0 || len(maskToks) == 0 {
		return nil, &PatternError{Reason: ErrEmptyPattern}
	}
	if len(matchToks) != len(maskToks) {
		return nil, &PatternError{
			Reason: ErrLengthMismatch,
			Detail: fmt.Sprintf("match has %d tokens, mask has %d", len(matchToks), len(maskToks)),
		}
	}

	mask := make([]byte, len(maskToks))
	match := make([]byte, len(matchToks))
	for i := range maskToks {
		mv, err := parseHexByte(maskToks[i])
		if err != nil {
			return nil, &PatternError{
				Reason: ErrMalformedText,
				Detail: fmt.Sprintf("mask token %d (%q): %v", i, maskToks[i], err),
			}
		}
		xv, err := parseHexByte(matchToks[i])
		if err != nil {
			return nil, &PatternError{
				Reason: ErrMalformedText,
				Detail: fmt.Sprintf("match token %d (%q): %v", i, matchToks[i], err),
			}
		}
		mask[i] = mv
		match[i] = xv
	}
	return New(mask, match)
}

func parseHexByte(tok string) (byte, error) {
	if len(tok) == 0 || len(tok) > 2 {
		return 0, fmt.Errorf("hex tokens must be 1 or 2 digits")
	}
	v, err := strconv.ParseUint(tok, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("not a hex byte: %w", err)
	}
	return byte(v), nil
}
