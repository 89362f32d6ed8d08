package sanitize

import (
	"strings"
	"unicode/utf8"
)

// Byte sequences that appear when UTF-8 text is decoded as Latin-1.
// Counting them gives a cheap garble signal; genuine French text does
// not produce them in any density.
var garbleMarkers = []string{
	"Ã", // UTF-8 lead bytes 0xC3.. shown as Latin-1
	"Â", // stray 0xC2 prefix (NBSP, degree sign, …)
	"â€", // punctuation range 0xE2 0x80 ..
	"ï¿½", // replacement character re-encoded
}

// Runes the Windows-1252 code page places in 0x80–0x9F. A misread of
// UTF-8 text almost always goes through cp1252 rather than pure
// Latin-1, so these must map back to their original bytes.
var cp1252 = map[rune]byte{
	'€': 0x80, '‚': 0x82, 'ƒ': 0x83, '„': 0x84, '…': 0x85,
	'†': 0x86, '‡': 0x87, 'ˆ': 0x88, '‰': 0x89, 'Š': 0x8A,
	'‹': 0x8B, 'Œ': 0x8C, 'Ž': 0x8E, '‘': 0x91, '’': 0x92,
	'“': 0x93, '”': 0x94, '•': 0x95, '–': 0x96, '—': 0x97,
	'˜': 0x98, '™': 0x99, 'š': 0x9A, '›': 0x9B, 'œ': 0x9C,
	'ž': 0x9E, 'Ÿ': 0x9F,
}

func garbleScore(s string) int {
	n := 0
	for _, m := range garbleMarkers {
		n += strings.Count(s, m)
	}
	return n
}

// RepairMojibake undoes a single UTF-8-read-as-Latin-1 round trip, but
// only when the repaired string scores strictly fewer garble markers
// than the original. Ambiguous input is returned untouched; guessing
// wrong on valid accented text would be worse than leaving garble.
func RepairMojibake(s string) string {
	before := garbleScore(s)
	if before == 0 {
		return s
	}
	b := make([]byte, 0, len(s))
	for _, r := range s {
		switch {
		case r <= 0xFF:
			b = append(b, byte(r))
		default:
			c, ok := cp1252[r]
			if !ok {
				// Not representable in the misread code page, so s
				// cannot be the product of such a round trip.
				return s
			}
			b = append(b, c)
		}
	}
	if !utf8.Valid(b) {
		return s
	}
	repaired := string(b)
	if garbleScore(repaired) < before {
		return repaired
	}
	return s
}
