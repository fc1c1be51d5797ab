package calc

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// cursor is the scanning position within one expression. A cursor is owned by
// a single call to Eval and only ever moves forward.
type cursor struct {
	src string
	// off is the byte offset of the next unread rune.
	off int
	// col is the number of runes consumed so far.
	col int
	// depth is the number of signs and open parentheses enclosing the
	// production being parsed.
	depth int
}

// MaxDepth is the deepest that sign operators and parentheses may nest. It
// bounds recursion even when MaxLen disables the length limit.
const MaxDepth = 1 << 14

func scan(src string) *cursor {
	return &cursor{src: src}
}

// eof reports whether the cursor has consumed the entire input.
func (c *cursor) eof() bool {
	return c.off >= len(c.src)
}

// peek returns the next rune without consuming it. At the end of input the
// result is utf8.RuneError with size 0.
func (c *cursor) peek() (rune, int) {
	if c.eof() {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(c.src[c.off:])
}

// advance consumes one rune of sz bytes.
func (c *cursor) advance(sz int) {
	c.off += sz
	c.col++
}

// skipSpace consumes whitespace up to the next token. The byte order mark
// counts as whitespace so that text pasted from files with one evaluates.
func (c *cursor) skipSpace() {
	for {
		r, sz := c.peek()
		if sz == 0 || !(unicode.IsSpace(r) || r == '\uFEFF') {
			return
		}
		c.advance(sz)
	}
}

// nest enters one level of sign or parenthesis nesting at col. The caller
// leaves it by decrementing depth.
func (c *cursor) nest(col int, r rune) error {
	c.depth++
	if c.depth > MaxDepth {
		return &Error{Kind: TooLong, Col: col, Text: string(r), Limit: MaxDepth}
	}
	return nil
}

// next skips whitespace and returns the next rune along with its column, but
// does not consume it.
func (c *cursor) next() (r rune, sz, col int) {
	c.skipSpace()
	r, sz = c.peek()
	return r, sz, c.col + 1
}

// accept consumes the next token if it is one of the runes in set. The result
// is the accepted rune, or 0 if none matched.
func (c *cursor) accept(set string) rune {
	r, sz, _ := c.next()
	if sz == 0 || !strings.ContainsRune(set, r) {
		return 0
	}
	c.advance(sz)
	return r
}

// scanNum scans a number literal starting exactly at the cursor. The literal
// is digit+ ('.' digit+)?. On failure, the cursor is left at the rune that
// made the literal invalid.
func (c *cursor) scanNum() (string, error) {
	start, col := c.off, c.col+1
	if c.digits() == 0 {
		r, sz := c.peek()
		switch {
		case sz == 0, r == '.':
			return "", c.error(ExpectedNumber, col, c.src[start:c.off+sz])
		default:
			return "", c.error(UnexpectedToken, col, string(r))
		}
	}
	if r, sz := c.peek(); sz != 0 && r == '.' {
		c.advance(sz)
		if c.digits() == 0 {
			return "", c.error(ExpectedNumber, col, c.src[start:c.off])
		}
	}
	return c.src[start:c.off], nil
}

// digits consumes a run of ASCII decimal digits and returns its length.
func (c *cursor) digits() int {
	n := 0
	for !c.eof() {
		b := c.src[c.off]
		if b < '0' || '9' < b {
			break
		}
		c.advance(1)
		n++
	}
	return n
}

func (c *cursor) error(kind ErrorKind, col int, text string) error {
	return &Error{Kind: kind, Col: col, Text: text}
}
