package font

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
)

// Charset splits a byte string into characters and keys multi-byte glyphs.
//
// A drawing surface picks one Charset when it is created; it never changes per call.
type Charset interface {
	// Next returns the byte length of the character starting at s[0].
	// n is 0 when s[0] cannot start a character and must be skipped.
	// ok is false when s ends before the character does.
	Next(s string) (n int, ok bool)
	// Key returns the bytes encoding r in this charset.
	Key(r rune) (string, bool)
	// Encode converts UTF-8 text to this charset. Unsupported runes are replaced.
	Encode(s string) string
	String() string
}

var (
	// UTF8 uses the leading-byte tag of UTF-8 to size 1 to 4 byte sequences.
	UTF8 Charset = utf8Charset{}
	// GB2312 takes 1 byte when the high bit is clear and 2 bytes otherwise.
	GB2312 Charset = gb2312Charset{}
)

type utf8Charset struct{}

func (utf8Charset) Next(s string) (int, bool) {
	var n int
	switch c := s[0]; {
	case c&0x80 == 0x00: // 0xxxxxxx
		n = 1
	case c&0xE0 == 0xC0: // 110xxxxx
		n = 2
	case c&0xF0 == 0xE0: // 1110xxxx
		n = 3
	case c&0xF8 == 0xF0: // 11110xxx
		n = 4
	default:
		return 0, true
	}
	return n, len(s) >= n
}

func (utf8Charset) Key(r rune) (string, bool) {
	return string(r), true
}

func (utf8Charset) Encode(s string) string {
	return s
}

func (utf8Charset) String() string {
	return "UTF-8"
}

type gb2312Charset struct{}

func (gb2312Charset) Next(s string) (int, bool) {
	if s[0]&0x80 == 0 {
		return 1, true
	}
	return 2, len(s) >= 2
}

// Key uses the GBK encoder: GBK is a superset of GB2312 with the same double-byte codes.
func (gb2312Charset) Key(r rune) (string, bool) {
	k, err := simplifiedchinese.GBK.NewEncoder().String(string(r))
	if err != nil || len(k) != 2 {
		return "", false
	}
	return k, true
}

func (gb2312Charset) Encode(s string) string {
	out, err := encoding.ReplaceUnsupported(simplifiedchinese.GBK.NewEncoder()).String(s)
	if err != nil {
		return s
	}
	return out
}

func (gb2312Charset) String() string {
	return "GB2312"
}
