package transform

import (
	"html"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kinds accepted by [Clean].
const (
	KindString  = "string"
	KindInt     = "int"
	KindInteger = "integer"
	KindNumber  = "number"
	KindEmail   = "email"
)

// tagRegexp matches a markup tag, or an unterminated one up to the end.
var tagRegexp = regexp.MustCompile(`<[^>]*>?`)

// Clean sanitizes value for kind, matched case-insensitively. Unknown
// kinds, including "", are treated as [KindString].
func Clean(value, kind string) string {
	switch strings.ToLower(kind) {
	case KindInt, KindInteger, KindNumber:
		return Int(value)
	case KindEmail:
		return Email(value)
	default:
		return String(value)
	}
}

// String removes markup tags and non-printable characters, then encodes
// the characters that are special in HTML. Tabs and line breaks are kept
// and nothing is trimmed.
func String(value string) string {
	value = tagRegexp.ReplaceAllString(value, "")
	value = strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			return r
		case r == utf8.RuneError || !unicode.IsGraphic(r):
			return -1
		}
		return r
	}, value)
	return html.EscapeString(value)
}

// Int keeps digits and sign characters only. Decimal points are removed.
func Int(value string) string {
	return strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '+' || r == '-' {
			return r
		}
		return -1
	}, value)
}

const emailSpecials = "!#$%&'*+-/=?^_`.{|}~@[]"

// Email keeps the characters allowed in an email address: ASCII letters,
// digits and !#$%&'*+-/=?^_`.{|}~@[]. It does not check the address.
func Email(value string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r < utf8.RuneSelf && strings.ContainsRune(emailSpecials, r):
			return r
		}
		return -1
	}, value)
}
