package transform_test

import (
	"testing"

	"github.com/Gobd/formvalidate/transform"
	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "Hello, World", want: "Hello, World"},
		{name: "tags", in: "<p>Hello <b>you</b></p>", want: "Hello you"},
		{name: "unterminated tag", in: "a <script src=x", want: "a "},
		{name: "quotes and ampersand", in: `"a" & 'b'`, want: "&#34;a&#34; &amp; &#39;b&#39;"},
		{name: "lone closing bracket", in: "a > b", want: "a &gt; b"},
		{name: "control characters", in: "a\x00b\x07c\x1bd", want: "abcd"},
		{name: "line breaks kept", in: "a\tb\r\nc", want: "a\tb\r\nc"},
		{name: "accents kept", in: "Jérôme Müller", want: "Jérôme Müller"},
		{name: "no trimming", in: "  x  ", want: "  x  "},
		{name: "invalid utf8", in: "a\xffb", want: "ab"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, transform.String(tt.in))
		})
	}
}

func TestInt(t *testing.T) {
	assert.Equal(t, "57", transform.Int("5a 7"))
	assert.Equal(t, "+4912", transform.Int("+49 (1) 2"))
	assert.Equal(t, "-105", transform.Int("-10.5"))
	assert.Equal(t, "", transform.Int("abc"))
}

func TestEmail(t *testing.T) {
	assert.Equal(t, "john.doe@example.com", transform.Email(" john.doe@example.com\n"))
	assert.Equal(t, "jrg@mller.de", transform.Email("jörg@müller.de"))
	assert.Equal(t, "!#$%&'*+-/=?^_`.{|}~@[]", transform.Email("!#$%&'*+-/=?^_`.{|}~@[]<>(),;:\""))
}

func TestClean(t *testing.T) {
	tests := []struct {
		kind string
		want string
	}{
		{kind: "string", want: "a1 @"},
		{kind: "", want: "a1 @"},
		{kind: "bogus", want: "a1 @"},
		{kind: "int", want: "1"},
		{kind: "INTEGER", want: "1"},
		{kind: "Number", want: "1"},
		{kind: "email", want: "a1b@"},
		{kind: "EMAIL", want: "a1b@"},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			assert.Equal(t, tt.want, transform.Clean("a1 <b>@", tt.kind))
		})
	}
}
