package parser

import (
	"regexp"
	"strings"

	"github.com/inspirehep/inspire-query-parser/keyword"
)

// parser holds one parse attempt over an immutable input. Productions
// are methods taking a byte offset and returning (node, next offset,
// ok); a failed alternative returns ok=false without consuming, so
// ordered choice backtracks for free.
type parser struct {
	input    string
	reg      *keyword.Registry
	furthest int
}

func newParser(input string, reg *keyword.Registry) *parser {
	return &parser{input: input, reg: reg}
}

// dslKeywords are the boolean operator spellings. A terminal token
// equal to one of these is not a value (outside parenthesized token
// groups, where + & | are legitimate physics notation, e.g. e(+)).
var dslKeywords = map[string]bool{
	"and": true, "or": true, "not": true,
	"+": true, "&": true, "|": true, "-": true,
}

var (
	reFindPrefix = regexp.MustCompile(`^(?i:find|fin|fi|f)\s`)

	// Delimited values: /regex/, 'partial match', "exact match".
	reComplexValue = regexp.MustCompile(`^(/.+?/|'.*?'|".*?")`)

	// Relative date specifiers shared by both dialects.
	reDateSpecifier = regexp.MustCompile(`^(?i)(today|yesterday|this\s+month|last\s+month)`)
	reSpecOffset    = regexp.MustCompile(`^\s*-\s*\d+`)

	// Textual month dates: "jun 2020", "15 June 2020", "Jun 15, 2020".
	reMonthDate = regexp.MustCompile(`^(?i)(\d{1,2}\s+)?(jan(uary)?|feb(ruary)?|mar(ch)?|apr(il)?|may|jun(e)?|jul(y)?|aug(ust)?|sep(tember)?|oct(ober)?|nov(ember)?|dec(ember)?)(\s+\d{1,2},?)?\s+\d{4}`)

	// Range bounds: hyphens allowed inside a bound but never directly
	// before '>', so "2015" stops cleanly in "2015->2017".
	reSimpleRangeValue = regexp.MustCompile(`^([^\s)(-]|-+[^\s)(>])+`)

	// Numbers for the 100+ / 100- one-sided range forms, admitting
	// date-ish shapes such as 10-2000 or 2000/10.
	reNumber = regexp.MustCompile(`^\d+([/-]\d+)*`)
)

// parseQuery is the grammar entry point. It cannot fail: input that
// matches no statement degrades to malformed words, and blank input
// matches the empty query.
func (p *parser) parseQuery() cstNode {
	start := p.ws(0)
	if start >= len(p.input) {
		return &cstEmpty{Span{0, len(p.input)}}
	}

	pos := start
	// The SPIRES find prefix is ignored; it only exists for backward
	// compatibility with fin/f-style queries.
	if m := reFindPrefix.FindString(p.input[pos:]); m != "" {
		pos = p.ws(pos + len(m))
	}

	if stmt, next, ok := p.parseStatement(pos); ok {
		rest := p.ws(next)
		if rest >= len(p.input) {
			return &cstQuery{Span: Span{start, next}, Stmt: stmt}
		}
		return &cstQuery{Span: Span{start, len(p.input)}, Stmt: stmt, Malformed: p.malformedWords(rest)}
	}

	return p.malformedWords(start)
}

func (p *parser) malformedWords(pos int) *cstMalformedWords {
	return &cstMalformedWords{
		Span:  Span{pos, len(p.input)},
		Words: strings.Fields(p.input[pos:]),
	}
}

// Statement := Expression ((And|Or|implicit-AND) Statement)?
//
// A dangling explicit operator ("boson and") keeps the left operand;
// the query rule hands the leftover to the fallback layer.
func (p *parser) parseStatement(pos int) (cstNode, int, bool) {
	p.reach(pos)
	left, p1, ok := p.parseExpression(pos)
	if !ok {
		return nil, pos, false
	}

	p2 := p.ws(p1)
	if op, p3, opOk := p.parseBoolOperator(p2); opOk {
		p4 := p.ws(p3)
		if right, p5, rOk := p.parseStatement(p4); rOk {
			return &cstBoolean{Span: Span{pos, p5}, Op: op, Left: left, Right: right}, p5, true
		}
		return left, p1, true
	}

	// Implicit AND: two statements adjacent with only whitespace (or an
	// opening parenthesis) between them.
	if p2 > p1 || p.at(p2, '(') {
		if right, p5, rOk := p.parseStatement(p2); rOk {
			return &cstBoolean{Span: Span{pos, p5}, Op: boolAnd, Implicit: true, Left: left, Right: right}, p5, true
		}
	}

	return left, p1, true
}

func (p *parser) parseBoolOperator(pos int) (boolOp, int, bool) {
	if next, ok := p.matchWordCI(pos, "and"); ok {
		return boolAnd, next, true
	}
	if p.at(pos, '+') || p.at(pos, '&') {
		return boolAnd, pos + 1, true
	}
	if next, ok := p.matchWordCI(pos, "or"); ok {
		return boolOr, next, true
	}
	if p.at(pos, '|') {
		return boolOr, pos + 1, true
	}
	return boolAnd, pos, false
}

func (p *parser) matchNot(pos int) (int, bool) {
	if next, ok := p.matchWordCI(pos, "not"); ok {
		return next, true
	}
	if p.at(pos, '-') {
		return pos + 1, true
	}
	return pos, false
}

// Expression := NotQuery | NestedKeywordQuery | ParenthesizedQuery | SimpleQuery
func (p *parser) parseExpression(pos int) (cstNode, int, bool) {
	p.reach(pos)
	if n, next, ok := p.parseNotQuery(pos); ok {
		return n, next, true
	}
	if n, next, ok := p.parseNestedKeywordQuery(pos); ok {
		return n, next, true
	}
	if n, next, ok := p.parseParenthesizedQuery(pos); ok {
		return n, next, true
	}
	return p.parseSimpleQuery(pos)
}

func (p *parser) parseNotQuery(pos int) (cstNode, int, bool) {
	next, ok := p.matchNot(pos)
	if !ok {
		return nil, pos, false
	}
	child, p2, ok := p.parseExpression(p.ws(next))
	if !ok {
		return nil, pos, false
	}
	return &cstNot{Span: Span{pos, p2}, Child: child}, p2, true
}

func (p *parser) parseParenthesizedQuery(pos int) (cstNode, int, bool) {
	if !p.at(pos, '(') {
		return nil, pos, false
	}
	child, p1, ok := p.parseStatement(p.ws(pos + 1))
	if !ok {
		return nil, pos, false
	}
	p2 := p.ws(p1)
	if !p.at(p2, ')') {
		return nil, pos, false
	}
	return &cstParenthesized{Span: Span{pos, p2 + 1}, Child: child}, p2 + 1, true
}

// NestedKeywordQuery := (citedby|refersto|...) ":"? Expression
func (p *parser) parseNestedKeywordQuery(pos int) (cstNode, int, bool) {
	end := p.scanWordRun(pos)
	if end == pos {
		return nil, pos, false
	}
	alias := p.input[pos:end]
	kw, ok := p.reg.Resolve(alias)
	if !ok || !kw.Nested {
		return nil, pos, false
	}
	p2 := end
	if p.at(p2, ':') {
		p2++
	}
	child, p3, ok := p.parseExpression(p.ws(p2))
	if !ok {
		return nil, pos, false
	}
	return &cstNestedKeyword{Span: Span{pos, p3}, Alias: alias, Kw: kw, Child: child}, p3, true
}

// SimpleQuery := InvenioKeywordQuery | SpiresDateKeywordQuery |
// SpiresKeywordQuery | Value | DateValue
func (p *parser) parseSimpleQuery(pos int) (cstNode, int, bool) {
	if n, next, ok := p.parseInvenioKeywordQuery(pos); ok {
		return n, next, true
	}
	if n, next, ok := p.parseSpiresKeywordQuery(pos, true); ok {
		return n, next, true
	}
	if n, next, ok := p.parseSpiresKeywordQuery(pos, false); ok {
		return n, next, true
	}
	if n, next, ok := p.parseValue(pos); ok {
		return n, next, true
	}
	return p.parseDateValue(pos)
}

// InvenioKeywordQuery := RegistryKeyword ":" Value
//
// Only registry keywords qualify: "foo:bar" with an unknown field name
// falls through to the colon-token rule and stays one free-text term.
func (p *parser) parseInvenioKeywordQuery(pos int) (cstNode, int, bool) {
	end := p.scanWordRun(pos)
	if end == pos {
		return nil, pos, false
	}
	alias := p.input[pos:end]
	kw, ok := p.reg.Resolve(alias)
	if !ok || kw.Nested {
		return nil, pos, false
	}
	p2 := p.ws(end)
	if !p.at(p2, ':') {
		return nil, pos, false
	}
	value, p3, ok := p.parseValue(p.ws(p2 + 1))
	if !ok {
		return nil, pos, false
	}
	return &cstKeywordQuery{
		Span:  Span{pos, p3},
		Alias: alias,
		Kw:    kw,
		Colon: true,
		Value: value,
	}, p3, true
}

// SpiresKeywordQuery := RegistryKeyword Value (dateKw selects the date
// keyword table and routes the value through the date grammar).
func (p *parser) parseSpiresKeywordQuery(pos int, dateKw bool) (cstNode, int, bool) {
	end := p.scanWordRun(pos)
	if end == pos {
		return nil, pos, false
	}
	alias := p.input[pos:end]
	kw, ok := p.reg.Resolve(alias)
	if !ok || kw.Nested || kw.Date != dateKw {
		return nil, pos, false
	}
	// A trailing comma or period signifies a name ("Ellis, J."), not a
	// field qualifier; a colon is the Invenio form, tried earlier.
	if end < len(p.input) && (p.input[end] == ',' || p.input[end] == '.' || p.input[end] == ':') {
		return nil, pos, false
	}

	var value cstNode
	var p3 int
	if dateKw {
		value, p3, ok = p.parseDateValue(p.ws(end))
	} else {
		value, p3, ok = p.parseValue(p.ws(end))
	}
	if !ok {
		return nil, pos, false
	}
	return &cstKeywordQuery{
		Span:  Span{pos, p3},
		Alias: alias,
		Kw:    kw,
		Value: value,
	}, p3, true
}

// Value := "="? RangeOp | >= | <= | > | < | "="? (ComplexValue |
// ParenthesizedSimpleValues | SimpleValueBooleanQuery | SimpleValue)
func (p *parser) parseValue(pos int) (cstNode, int, bool) {
	return p.parseValueChoice(pos, false)
}

// DateValue is Value with date-shaped terminals and without
// parenthesized simple values, mirroring the original rule split.
func (p *parser) parseDateValue(pos int) (cstNode, int, bool) {
	return p.parseValueChoice(pos, true)
}

func (p *parser) parseValueChoice(pos int, date bool) (cstNode, int, bool) {
	p.reach(pos)
	eq := pos
	if p.at(pos, '=') {
		eq = pos + 1
	}

	if n, next, ok := p.parseRangeOp(eq); ok {
		return n, next, true
	}
	if n, next, ok := p.parseGreaterEqual(pos); ok {
		return n, next, true
	}
	if n, next, ok := p.parseLessEqual(pos); ok {
		return n, next, true
	}
	if n, next, ok := p.parseGreaterThan(pos); ok {
		return n, next, true
	}
	if n, next, ok := p.parseLessThan(pos); ok {
		return n, next, true
	}
	if n, next, ok := p.parseComplexValue(eq); ok {
		return n, next, true
	}
	if date {
		// Date values skip the terminal boolean rule so multi-word
		// specifiers ("this month") are not split into tokens.
		return p.parseSimpleDateValue(eq)
	}
	if n, next, ok := p.parseParenthesizedSimpleValues(eq); ok {
		return n, next, true
	}
	if n, next, ok := p.parseSimpleBoolean(eq); ok {
		return n, next, true
	}
	return p.parseSimpleValue(eq)
}

// RangeOp := (ComplexValue|SimpleRangeValue) "->" (ComplexValue|SimpleRangeValue)
func (p *parser) parseRangeOp(pos int) (cstNode, int, bool) {
	lower, p1, ok := p.parseRangeBound(pos)
	if !ok {
		return nil, pos, false
	}
	p2 := p.ws(p1)
	if !strings.HasPrefix(p.input[p2:], "->") {
		return nil, pos, false
	}
	upper, p3, ok := p.parseRangeBound(p.ws(p2 + 2))
	if !ok {
		return nil, pos, false
	}
	return &cstRange{Span: Span{pos, p3}, Lower: lower, Upper: upper}, p3, true
}

func (p *parser) parseRangeBound(pos int) (cstNode, int, bool) {
	if n, next, ok := p.parseComplexValue(pos); ok {
		return n, next, true
	}
	m := reSimpleRangeValue.FindString(p.input[pos:])
	if m == "" {
		return nil, pos, false
	}
	end := pos + len(m)
	return &cstSimpleValue{Span: Span{pos, end}, Text: m}, end, true
}

// GreaterThanOp supports "after 2000" and "> 2000".
func (p *parser) parseGreaterThan(pos int) (cstNode, int, bool) {
	p2 := pos
	if next, ok := p.matchWordCI(pos, "after"); ok {
		p2 = next
	} else if p.at(pos, '>') && !p.at(pos+1, '=') {
		p2 = pos + 1
	} else {
		return nil, pos, false
	}
	value, p3, ok := p.parseOneSidedOperand(p.ws(p2))
	if !ok {
		return nil, pos, false
	}
	return &cstGreater{Span: Span{pos, p3}, Value: value}, p3, true
}

// GreaterEqualOp supports ">= 2000" and the SPIRES "100+" shorthand.
func (p *parser) parseGreaterEqual(pos int) (cstNode, int, bool) {
	if strings.HasPrefix(p.input[pos:], ">=") {
		value, p3, ok := p.parseOneSidedOperand(p.ws(pos + 2))
		if !ok {
			return nil, pos, false
		}
		return &cstGreater{Span: Span{pos, p3}, Equal: true, Value: value}, p3, true
	}
	if m := reNumber.FindString(p.input[pos:]); m != "" {
		e := pos + len(m)
		if p.at(e, '+') && p.atTokenEnd(e+1) {
			return &cstGreater{
				Span:  Span{pos, e + 1},
				Equal: true,
				Value: &cstSimpleValue{Span: Span{pos, e}, Text: m},
			}, e + 1, true
		}
	}
	return nil, pos, false
}

// LessThanOp supports "before 1984" and "< 1984".
func (p *parser) parseLessThan(pos int) (cstNode, int, bool) {
	p2 := pos
	if next, ok := p.matchWordCI(pos, "before"); ok {
		p2 = next
	} else if p.at(pos, '<') && !p.at(pos+1, '=') {
		p2 = pos + 1
	} else {
		return nil, pos, false
	}
	value, p3, ok := p.parseOneSidedOperand(p.ws(p2))
	if !ok {
		return nil, pos, false
	}
	return &cstLess{Span: Span{pos, p3}, Value: value}, p3, true
}

// LessEqualOp supports "<= 2000" and the SPIRES "100-" shorthand.
func (p *parser) parseLessEqual(pos int) (cstNode, int, bool) {
	if strings.HasPrefix(p.input[pos:], "<=") {
		value, p3, ok := p.parseOneSidedOperand(p.ws(pos + 2))
		if !ok {
			return nil, pos, false
		}
		return &cstLess{Span: Span{pos, p3}, Equal: true, Value: value}, p3, true
	}
	if m := reNumber.FindString(p.input[pos:]); m != "" {
		e := pos + len(m)
		if p.at(e, '-') && p.atTokenEnd(e+1) {
			return &cstLess{
				Span:  Span{pos, e + 1},
				Equal: true,
				Value: &cstSimpleValue{Span: Span{pos, e}, Text: m},
			}, e + 1, true
		}
	}
	return nil, pos, false
}

// atTokenEnd reports whether pos sits at a value boundary: end of
// input, whitespace or a closing parenthesis. Keeps "1-e" from being
// read as the one-sided range "1-".
func (p *parser) atTokenEnd(pos int) bool {
	return pos >= len(p.input) || isSpace(p.input[pos]) || p.input[pos] == ')'
}

func (p *parser) parseOneSidedOperand(pos int) (cstNode, int, bool) {
	if n, next, ok := p.parseSimpleDateValue(pos); ok {
		return n, next, true
	}
	return p.parseSimpleValue(pos)
}

func (p *parser) parseComplexValue(pos int) (cstNode, int, bool) {
	m := reComplexValue.FindString(p.input[pos:])
	if m == "" {
		return nil, pos, false
	}
	end := pos + len(m)
	return &cstComplex{Span: Span{pos, end}, Raw: m}, end, true
}

// ParenthesizedSimpleValues := "(" (SimpleValueBooleanQuery |
// SimpleValueNegation | SimpleValue) ")". The parentheses are
// transparent: the inner node is returned as the value.
func (p *parser) parseParenthesizedSimpleValues(pos int) (cstNode, int, bool) {
	if !p.at(pos, '(') {
		return nil, pos, false
	}
	p1 := p.ws(pos + 1)
	inner, p2, ok := p.parseSimpleBoolean(p1)
	if !ok {
		inner, p2, ok = p.parseSimpleNegation(p1)
	}
	if !ok {
		inner, p2, ok = p.parseSimpleValue(p1)
	}
	if !ok {
		return nil, pos, false
	}
	p3 := p.ws(p2)
	if !p.at(p3, ')') {
		return nil, pos, false
	}
	return inner, p3 + 1, true
}

// SimpleValueBooleanQuery recognizes boolean chains among terminal
// values ("ellis or smith and not vanderhaeghen") so a governing
// keyword can distribute over them. The negative lookahead keeps it
// from swallowing the start of a following keyword query, range or
// quoted value.
func (p *parser) parseSimpleBoolean(pos int) (cstNode, int, bool) {
	left, p1, ok := p.parseSimpleOperand(pos)
	if !ok {
		return nil, pos, false
	}

	p2 := p.ws(p1)
	op, p3, opOk := p.parseBoolOperator(p2)
	implicit := !opOk
	if implicit {
		op, p3 = boolAnd, p2
	}
	p4 := p.ws(p3)

	if p.simpleBooleanGuard(p4) {
		return nil, pos, false
	}

	right, p5, ok := p.parseSimpleBoolean(p4)
	if !ok {
		right, p5, ok = p.parseSimpleOperand(p4)
	}
	if !ok {
		return nil, pos, false
	}
	return &cstSimpleBoolean{Span: Span{pos, p5}, Op: op, Implicit: implicit, Left: left, Right: right}, p5, true
}

// simpleBooleanGuard reports whether the text at pos starts something
// more specific than a simple value: a keyword query (optionally
// negated), a range, or a complex value. Matching any of those stops
// the terminal-level boolean rule.
func (p *parser) simpleBooleanGuard(pos int) bool {
	q := pos
	if next, ok := p.matchNot(q); ok {
		q = p.ws(next)
	}
	if _, _, ok := p.parseSpiresKeywordQuery(q, true); ok {
		return true
	}
	if _, _, ok := p.parseInvenioKeywordQuery(q); ok {
		return true
	}
	if _, _, ok := p.parseSpiresKeywordQuery(q, false); ok {
		return true
	}

	if _, _, ok := p.parseRangeOp(pos); ok {
		return true
	}
	if _, _, ok := p.parseGreaterEqual(pos); ok {
		return true
	}
	if _, _, ok := p.parseLessEqual(pos); ok {
		return true
	}
	if _, _, ok := p.parseGreaterThan(pos); ok {
		return true
	}
	if _, _, ok := p.parseLessThan(pos); ok {
		return true
	}
	if _, _, ok := p.parseComplexValue(pos); ok {
		return true
	}
	return false
}

// parseSimpleOperand matches one (optionally negated) terminal value,
// plain before date-shaped, mirroring the original operand ordering.
func (p *parser) parseSimpleOperand(pos int) (cstNode, int, bool) {
	if n, next, ok := p.parseSimpleNegation(pos); ok {
		return n, next, true
	}
	if n, next, ok := p.parseSimpleValue(pos); ok {
		return n, next, true
	}
	return p.parseSimpleDateValue(pos)
}

func (p *parser) parseSimpleNegation(pos int) (cstNode, int, bool) {
	next, ok := p.matchNot(pos)
	if !ok {
		return nil, pos, false
	}
	p1 := p.ws(next)
	child, p2, ok := p.parseSimpleValue(p1)
	if !ok {
		child, p2, ok = p.parseSimpleDateValue(p1)
	}
	if !ok {
		return nil, pos, false
	}
	return &cstSimpleNegation{Span: Span{pos, p2}, Child: child}, p2, true
}

// SimpleValue is a single plaintext term: contiguous plain runs and
// parenthesized groups, e.g. boson, Si-28(p(pol.),n), e(+)e(-).
func (p *parser) parseSimpleValue(pos int) (cstNode, int, bool) {
	p.reach(pos)
	if text, end, ok := p.parseSimpleValueUnit(pos); ok {
		return &cstSimpleValue{Span: Span{pos, end}, Text: text}, end, true
	}
	if text, end, ok := p.parseColonUnit(pos); ok {
		return &cstSimpleValue{Span: Span{pos, end}, Text: text}, end, true
	}
	return nil, pos, false
}

func (p *parser) parseSimpleValueUnit(pos int) (string, int, bool) {
	// Date specifier with an explicit offset, e.g. today-5. Bare
	// specifiers are ordinary tokens here; conversion happens in the
	// builder.
	if end := p.matchDateSpecifier(pos, true); end > pos {
		return p.input[pos:end], end, true
	}

	cur := pos
	lastPlain := false
	var sb strings.Builder
	for cur < len(p.input) {
		if run := p.scanPlainRun(cur); run > cur {
			seg := p.input[cur:run]
			if dslKeywords[strings.ToLower(seg)] {
				break
			}
			sb.WriteString(seg)
			cur = run
			lastPlain = true
			continue
		}
		if p.at(cur, '(') {
			group, end, ok := p.scanParenGroup(cur)
			if !ok {
				break
			}
			sb.WriteString(group)
			cur = end
			lastPlain = false
			continue
		}
		break
	}
	if cur == pos {
		return "", pos, false
	}
	// A terminal followed by ":" is a field qualifier being parsed, not
	// a value.
	if lastPlain && p.colonFollows(cur) {
		return "", pos, false
	}
	return sb.String(), cur, true
}

// parseColonUnit admits colons inside a token for texkey-style values
// (Allison:1980vw), but never a trailing colon.
func (p *parser) parseColonUnit(pos int) (string, int, bool) {
	end := p.scanColonRun(pos)
	for end > pos && p.input[end-1] == ':' {
		end--
	}
	if end-pos < 2 {
		return "", pos, false
	}
	seg := p.input[pos:end]
	if dslKeywords[strings.ToLower(seg)] {
		return "", pos, false
	}
	if p.colonFollows(end) {
		return "", pos, false
	}
	return seg, end, true
}

func (p *parser) colonFollows(pos int) bool {
	return p.at(p.ws(pos), ':')
}

// scanParenGroup consumes a balanced parenthesized token segment as
// raw text. Operator symbols are legal inside (e(+) notation); colons
// are not.
func (p *parser) scanParenGroup(pos int) (string, int, bool) {
	depth := 0
	for i := pos; i < len(p.input); i++ {
		switch p.input[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return p.input[pos : i+1], i + 1, true
			}
		case ':':
			return "", pos, false
		}
	}
	return "", pos, false
}

// SimpleDateValue is a single date-shaped term: a relative specifier
// with optional offset, a textual month date, or a numeric date token.
func (p *parser) parseSimpleDateValue(pos int) (cstNode, int, bool) {
	if end := p.matchDateSpecifier(pos, false); end > pos {
		return &cstSimpleValue{Span: Span{pos, end}, Text: p.input[pos:end], IsDate: true}, end, true
	}
	if m := reMonthDate.FindString(p.input[pos:]); m != "" {
		end := pos + len(m)
		return &cstSimpleValue{Span: Span{pos, end}, Text: m, IsDate: true}, end, true
	}

	end := pos
	for end < len(p.input) && isDateChar(p.input[end]) {
		end++
	}
	if n := end - pos; n >= 4 && n <= 10 && p.atTokenEnd(end) {
		return &cstSimpleValue{Span: Span{pos, end}, Text: p.input[pos:end], IsDate: true}, end, true
	}
	return nil, pos, false
}

func isDateChar(c byte) bool {
	return c >= '0' && c <= '9' || c == '*' || c == '-' || c == '.' || c == '/'
}

// matchDateSpecifier matches today/yesterday/this month/last month,
// with a -N offset (required for plain-value positions so that bare
// "today" stays an ordinary token there).
func (p *parser) matchDateSpecifier(pos int, requireOffset bool) int {
	m := reDateSpecifier.FindString(p.input[pos:])
	if m == "" {
		return pos
	}
	end := pos + len(m)
	if off := reSpecOffset.FindString(p.input[end:]); off != "" {
		return end + len(off)
	}
	if requireOffset {
		return pos
	}
	// Word boundary so "todays" is not a specifier.
	if end < len(p.input) && isWordChar(p.input[end]) {
		return pos
	}
	return end
}
