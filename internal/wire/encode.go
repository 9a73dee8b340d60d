package wire

import "strings"

const upperhex = "0123456789ABCDEF"

// whitelistRestorations maps the uppercase percent-encoding of each
// character the query grammar treats as a structural literal back to
// the character itself. No entry's hex code is a substring of another's,
// so restoration order does not matter.
var whitelistRestorations = []struct {
	encoded string
	literal string
}{
	{"%2A", "*"}, // wildcard marker
	{"%28", "("}, // group open
	{"%29", ")"}, // group close
	{"%2C", ","}, // list separator
	{"%3A", ":"}, // alias separator
	{"%21", "!"}, // negation punctuation
}

// PercentEncode escapes text for the query string, keeping the
// characters the API's grammar depends on literal.
//
// Two passes: first every byte outside the safe set becomes an
// uppercase %XX escape, then the fixed whitelist * ( ) , : ! is
// restored from its encoded form. The whitelist characters must not be
// escaped (the API reads them as wildcards, grouping, and separators),
// while everything else follows standard encoding rules.
//
// The safe set includes the structural bytes & = ? / because the input
// is the already-joined query string, and % so that applying the
// function to its own output changes nothing.
func PercentEncode(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if isSafeByte(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xF])
	}
	encoded := b.String()
	for _, w := range whitelistRestorations {
		encoded = strings.ReplaceAll(encoded, w.encoded, w.literal)
	}
	return encoded
}

func isSafeByte(c byte) bool {
	if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' {
		return true
	}
	switch c {
	case '-', '_', '.', '~', '&', '=', '?', '/', '%':
		return true
	}
	return false
}
