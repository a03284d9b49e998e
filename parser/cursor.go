package parser

// Span is a half-open [Start, End) byte range into the original input.
// CST nodes carry spans so the builder and the fallback layer can point
// back at the exact input bytes a rule matched.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// The grammar engine works on an immutable cursor: the input string
// plus an integer byte offset. Productions receive a position and
// return the next position on success; a failed alternative simply
// returns ok=false and the caller continues from the position it
// already holds. Nothing is mutated on a failed branch, which is what
// makes the ordered-choice backtracking safe.

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isWordChar(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= 0x80
}

// ws returns the position after any run of whitespace at pos.
func (p *parser) ws(pos int) int {
	for pos < len(p.input) && isSpace(p.input[pos]) {
		pos++
	}
	return pos
}

// at reports whether byte c is at pos.
func (p *parser) at(pos int, c byte) bool {
	return pos < len(p.input) && p.input[pos] == c
}

// matchWordCI matches word case-insensitively at pos, requiring a
// non-word character (or end of input) right after, so "and" does not
// match inside "android".
func (p *parser) matchWordCI(pos int, word string) (int, bool) {
	end := pos + len(word)
	if end > len(p.input) {
		return pos, false
	}
	for i := 0; i < len(word); i++ {
		c := p.input[pos+i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != word[i] {
			return pos, false
		}
	}
	if end < len(p.input) && isWordChar(p.input[end]) {
		return pos, false
	}
	return end, true
}

// scanPlainRun returns the end of the run of terminal-token characters
// starting at pos: everything except whitespace, colon and parentheses.
func (p *parser) scanPlainRun(pos int) int {
	for pos < len(p.input) {
		c := p.input[pos]
		if isSpace(c) || c == ':' || c == '(' || c == ')' {
			break
		}
		pos++
	}
	return pos
}

// scanColonRun is scanPlainRun with colons allowed inside the token,
// for texkey-style values such as Allison:1980vw.
func (p *parser) scanColonRun(pos int) int {
	for pos < len(p.input) {
		c := p.input[pos]
		if isSpace(c) || c == '(' || c == ')' {
			break
		}
		pos++
	}
	return pos
}

// scanWordRun returns the end of the run of field-alias characters
// starting at pos: word characters plus hyphen (author-count).
func (p *parser) scanWordRun(pos int) int {
	for pos < len(p.input) {
		c := p.input[pos]
		if !isWordChar(c) && c != '-' {
			break
		}
		pos++
	}
	return pos
}

// reach records the furthest offset any rule attempted, for the
// structured failure diagnostics the driver logs on fallback.
func (p *parser) reach(pos int) {
	if pos > p.furthest {
		p.furthest = pos
	}
}
