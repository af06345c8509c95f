// Package querystring parses URL querystrings the way browsers'
// URLSearchParams does: leniently, never failing on malformed input.
package querystring

import (
	"net/url"
	"strings"
)

// Parse turns a raw querystring into a key/value view. A single leading
// "?" is ignored, "+" decodes to a space and malformed percent-escapes are
// kept as written. Repeated keys keep every value in order.
func Parse(qs string) url.Values {
	values := make(url.Values)
	qs = strings.TrimPrefix(qs, "?")

	for pair := range strings.SplitSeq(qs, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		k := decode(key)
		values[k] = append(values[k], decode(value))
	}
	return values
}

func decode(s string) string {
	s = strings.ReplaceAll(s, "+", " ")
	if !strings.Contains(s, "%") {
		return s
	}

	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			buf = append(buf, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2
			continue
		}
		buf = append(buf, s[i])
	}
	return strings.ToValidUTF8(string(buf), "\uFFFD")
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
