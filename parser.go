package pdjson5

import "io"

// Parser is an incremental, pull-based tokenizer: the caller drives it one
// event at a time by calling Next, and reads the event's payload and
// location from the accessor methods before calling Next again. A Parser
// is not safe for concurrent use; each goroutine that wants to tokenize a
// document needs its own.
type Parser struct {
	cfg   config
	src   source
	scr   scratch
	loc   location
	stack nestingStack

	err *SyntaxError

	havePeek bool
	peekKind Kind
	peekErr  error

	producedTopLevel  bool
	impliedObjectOpen bool

	// pendingImpliedName defers delivery of the member name sniffed while
	// deciding to open an implied object: the object's KindObjectStart is
	// reported first, and the already-lexed name (still sitting in scr)
	// is handed back as KindName on the very next Next call, using the
	// location it was actually read at rather than wherever the stream
	// has advanced to by then.
	pendingImpliedName bool
	pendingLine        int
	pendingCol         int
	pendingPos         int64

	eventLine int
	eventCol  int
	eventPos  int64
}

func newParser(src source, opts []Option) *Parser {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	p := &Parser{cfg: cfg, src: src}
	p.loc.init()
	p.stack.maxSize = cfg.maxDepth
	return p
}

// New returns a Parser reading from r.
func New(r io.Reader, opts ...Option) *Parser {
	return newParser(newReaderSource(r), opts)
}

// NewFromBytes returns a Parser reading from an in-memory buffer, without
// copying it.
func NewFromBytes(buf []byte, opts ...Option) *Parser {
	return newParser(newBufferSource(buf), opts)
}

// NewFromString returns a Parser reading from an in-memory string.
func NewFromString(s string, opts ...Option) *Parser {
	return newParser(newBufferSource([]byte(s)), opts)
}

// NewFromFuncs returns a Parser reading from a caller-supplied byte source,
// the same role json_open_user plays in the library this package is
// modeled on.
func NewFromFuncs(get GetFunc, peek PeekFunc, opts ...Option) *Parser {
	return newParser(newFuncSource(get, peek), opts)
}

func (p *Parser) json5Like() bool {
	return p.cfg.lang == LanguageJSON5 || p.cfg.lang == LanguageJSON5E
}

// Next advances the Parser and returns the kind of the event produced.
// Once Next returns KindError, every subsequent call returns the same
// error; once it returns KindDone, every subsequent call returns KindDone
// again (in non-streaming mode) unless Reset is called.
func (p *Parser) Next() (Kind, error) {
	if p.havePeek {
		p.havePeek = false
		return p.peekKind, p.peekErr
	}
	if p.err != nil {
		return KindError, p.err
	}
	kind, err := p.advance()
	if err != nil {
		return p.fail(err)
	}
	return kind, nil
}

// Peek reports the kind Next would return, without consuming it. Calling
// Peek twice in a row, or calling it and then Next, returns the same event.
func (p *Parser) Peek() (Kind, error) {
	if p.havePeek {
		return p.peekKind, p.peekErr
	}
	kind, err := p.Next()
	p.havePeek = true
	p.peekKind, p.peekErr = kind, err
	return kind, err
}

// Skip discards an entire container value. Call it right after Next
// returns KindObjectStart or KindArrayStart to skip past the matching end
// without visiting its members; for any other kind Skip is a no-op that
// returns kind unchanged.
func (p *Parser) Skip(kind Kind) (Kind, error) {
	if kind != KindObjectStart && kind != KindArrayStart {
		return kind, nil
	}
	target := p.stack.depth() - 1
	for {
		k, err := p.Next()
		if err != nil {
			return k, err
		}
		if p.stack.depth() <= target {
			return k, nil
		}
	}
}

// SkipUntil discards events at the current nesting depth until one of the
// given kind is produced, descending into (and fully skipping) any
// container it encounters along the way. It stops early on KindDone, on an
// error, or if the current container ends first.
func (p *Parser) SkipUntil(kind Kind) (Kind, error) {
	depth := p.stack.depth()
	for {
		k, err := p.Next()
		if err != nil {
			return k, err
		}
		isStart := k == KindObjectStart || k == KindArrayStart
		if k == kind && (p.stack.depth() == depth || isStart && p.stack.depth() == depth+1) {
			return k, nil
		}
		if k == KindDone || p.stack.depth() < depth {
			return k, nil
		}
		if k == KindObjectStart || k == KindArrayStart {
			if _, err := p.Skip(k); err != nil {
				return KindError, err
			}
		}
	}
}

// Reset clears all parsing state so the same Parser (and, in streaming
// mode, the rest of the same source) can be used to read another document
// from the start.
func (p *Parser) Reset() {
	p.stack.reset()
	p.scr.reset()
	p.err = nil
	p.havePeek = false
	p.producedTopLevel = false
	p.impliedObjectOpen = false
	p.pendingImpliedName = false
	p.loc.clearStart()
}

// Close returns the Parser's scratch buffer to the shared pool. A Parser is
// unusable after Close.
func (p *Parser) Close() {
	p.scr.release()
}

// Payload returns the decoded bytes of the most recent KindString,
// KindNumber, or KindName event. Its contents are only valid until the
// next call to Next.
func (p *Parser) Payload() []byte {
	return p.scr.text()
}

// Line reports the 1-based line of the most recent event's first byte.
func (p *Parser) Line() int {
	if p.eventLine != 0 {
		return p.eventLine
	}
	return p.loc.lineno
}

// Column reports the 1-based column of the most recent event's first byte.
func (p *Parser) Column() int {
	return p.eventCol
}

// Position reports the byte offset of the most recent event's first byte.
func (p *Parser) Position() int64 {
	return p.eventPos
}

// Depth reports the current nesting depth: 0 at the top level.
func (p *Parser) Depth() int {
	return p.stack.depth()
}

// Context reports the kind of container the Parser is currently positioned
// inside.
func (p *Parser) Context() Context {
	if p.stack.empty() {
		return ContextNone
	}
	if p.stack.top().isObject() {
		return ContextObject
	}
	return ContextArray
}

// Err returns the latched error, or nil if none has occurred.
func (p *Parser) Err() error {
	if p.err == nil {
		return nil
	}
	return p.err
}

func (p *Parser) beginEvent() {
	p.loc.snapshotStart(p.src.position())
	p.eventPos = p.src.position()
}

func (p *Parser) finishEvent() {
	p.eventLine = p.loc.startLineno
	p.eventCol = p.loc.startColno
	p.loc.clearStart()
}

func (p *Parser) fail(err error) (Kind, error) {
	se, ok := err.(*SyntaxError)
	if !ok {
		se = newSyntaxError("%s", err.Error())
	}
	se = cloneErr(se)
	pos := p.src.position()
	line := p.loc.lineno
	if p.loc.startLineno != 0 {
		line = p.loc.startLineno
	}
	se.at(line, p.loc.currentColumn(pos), pos)
	p.loc.clearStart()
	p.err = se
	return KindError, se
}

func (p *Parser) advance() (Kind, error) {
	if p.stack.empty() {
		return p.advanceTopLevel()
	}
	if p.stack.top().isObject() {
		return p.advanceObject()
	}
	return p.advanceArray()
}

func (p *Parser) advanceTopLevel() (Kind, error) {
	if p.producedTopLevel && !p.cfg.streaming {
		// Only whitespace and end-of-input are legal after the one value
		// this mode accepts; anything else is trailing data, not a second
		// document to (silently) ignore.
		if _, err := p.skipWS(); err != nil {
			return 0, err
		}
		if p.src.peek() != eof {
			return 0, errTrailingData
		}
		return KindDone, nil
	}

	crossedNL, err := p.skipWS()
	_ = crossedNL
	if err != nil {
		return 0, err
	}
	c := p.src.peek()

	if c == eof {
		if p.producedTopLevel {
			return KindDone, nil
		}
		if p.cfg.lang == LanguageJSON5E {
			p.beginEvent()
			if perr := p.stack.push(true); perr != nil {
				return 0, perr
			}
			p.impliedObjectOpen = true
			p.finishEvent()
			return KindObjectStart, nil
		}
		if p.cfg.streaming {
			return KindDone, nil
		}
		return 0, errUnexpectedEOF
	}

	if c == '{' || c == '[' {
		p.beginEvent()
		kind, verr := p.readValue(c)
		if verr != nil {
			return 0, verr
		}
		p.finishEvent()
		return kind, nil
	}

	if p.cfg.lang != LanguageJSON5E {
		p.beginEvent()
		kind, verr := p.readValue(c)
		if verr != nil {
			return 0, verr
		}
		p.finishEvent()
		p.producedTopLevel = true
		return kind, nil
	}

	return p.sniffImpliedObject(c)
}

// sniffImpliedObject resolves the one genuine ambiguity a JSON5E top level
// introduces: a leading quote or identifier character could start either a
// bareword/quoted object key (opening an implied object) or a bare scalar
// document (a lone string, or one of the value keywords). Both share the
// same lexing up to the character that follows, so this reads the token
// once and decides from what comes after it.
func (p *Parser) sniffImpliedObject(c int) (Kind, error) {
	p.beginEvent()

	isQuote := c == '"' || c == '\''
	if !isQuote && !isFirstIDChar(c) {
		kind, err := p.readValue(c)
		if err != nil {
			return 0, err
		}
		p.finishEvent()
		p.producedTopLevel = true
		return kind, nil
	}

	p.src.get()
	if isQuote {
		if _, err := p.readString(byte(c)); err != nil {
			return 0, err
		}
	} else {
		if err := p.readIdentifier(c); err != nil {
			return 0, err
		}
	}

	if _, err := p.skipWS(); err != nil {
		return 0, err
	}
	next := p.src.peek()

	if next == ':' {
		if perr := p.stack.push(true); perr != nil {
			return 0, perr
		}
		p.impliedObjectOpen = true
		p.pendingImpliedName = true
		p.pendingLine = p.loc.startLineno
		p.pendingCol = p.loc.startColno
		p.pendingPos = p.eventPos
		p.finishEvent()
		return KindObjectStart, nil
	}

	if isQuote {
		p.finishEvent()
		p.producedTopLevel = true
		return KindString, nil
	}

	text := p.scr.text()
	if len(text) == 0 {
		return 0, newSyntaxError("expected ':' after name instead of %s", describeByte(next))
	}
	pattern, isNumber := keywordPattern(text[0])
	if pattern == "" {
		// The same diagnostic readValue gives for this first byte.
		return 0, newSyntaxError("unexpected byte %s", describeByte(int(text[0])))
	}
	if ok, colAdj, merr := matchBuffered(text, pattern, next); !ok {
		p.loc.startColno += colAdj
		return 0, merr
	}
	p.finishEvent()
	p.producedTopLevel = true
	if isNumber {
		return KindNumber, nil
	}
	switch pattern {
	case "true":
		return KindTrue, nil
	case "false":
		return KindFalse, nil
	default:
		return KindNull, nil
	}
}

func (p *Parser) advanceObject() (Kind, error) {
	top := p.stack.top()
	isImplied := p.impliedObjectOpen && p.stack.depth() == 1

	if p.pendingImpliedName {
		p.pendingImpliedName = false
		p.eventLine, p.eventCol, p.eventPos = p.pendingLine, p.pendingCol, p.pendingPos
		top.increment()
		return KindName, nil
	}

	crossedNL, err := p.skipWS()
	if err != nil {
		return 0, err
	}
	c := p.src.peek()

	if top.needName() {
		if c == '}' && !isImplied {
			p.beginEvent()
			p.src.get()
			p.stack.pop()
			p.afterContainerClose()
			p.finishEvent()
			return KindObjectEnd, nil
		}
		if c == eof {
			if isImplied {
				p.beginEvent()
				p.impliedObjectOpen = false
				p.stack.pop()
				p.afterContainerClose()
				p.finishEvent()
				return KindObjectEnd, nil
			}
			return 0, errUnexpectedEOF
		}

		if top.length() > 0 {
			sawSep := false
			if c == ',' {
				p.src.get()
				nl2, werr := p.skipWS()
				if werr != nil {
					return 0, werr
				}
				crossedNL = crossedNL || nl2
				c = p.src.peek()
				sawSep = true
			} else if p.cfg.lang == LanguageJSON5E && crossedNL {
				sawSep = true
			}
			if !sawSep {
				return 0, errMissingCommaObj
			}
			if c == '}' && !isImplied {
				p.beginEvent()
				p.src.get()
				p.stack.pop()
				p.afterContainerClose()
				p.finishEvent()
				return KindObjectEnd, nil
			}
			if c == eof {
				if isImplied {
					p.beginEvent()
					p.impliedObjectOpen = false
					p.stack.pop()
					p.afterContainerClose()
					p.finishEvent()
					return KindObjectEnd, nil
				}
				return 0, errUnexpectedEOF
			}
		}

		if c == ']' && !isImplied {
			return 0, errMismatchDelim
		}
		if !p.json5Like() && c != '"' {
			return 0, errMissingName
		}
		if p.json5Like() && c != '"' && c != '\'' && !isFirstIDChar(c) {
			return 0, errMissingName
		}

		p.beginEvent()
		lead := p.src.get()
		kind, merr := p.readMemberName(lead)
		if merr != nil {
			return 0, merr
		}
		top.increment()
		p.finishEvent()
		return kind, nil
	}

	// top.needValue()
	if c != ':' {
		return 0, errMissingColon
	}
	p.src.get()
	if _, werr := p.skipWS(); werr != nil {
		return 0, werr
	}
	c = p.src.peek()
	if c == '}' || c == ']' || c == ',' || c == eof {
		return 0, errMissingValue
	}
	memberIdx := p.stack.depth() - 1
	p.beginEvent()
	kind, verr := p.readValue(c)
	if verr != nil {
		return 0, verr
	}
	// readValue may have pushed a nested container, so the member frame
	// can no longer be reached via top() (nor, if frames grew, via a
	// pointer obtained before the push) — re-derive it by index instead.
	p.stack.frameAt(memberIdx).increment()
	p.finishEvent()
	return kind, nil
}

func (p *Parser) advanceArray() (Kind, error) {
	elemIdx := p.stack.depth() - 1
	top := p.stack.top()
	crossedNL, err := p.skipWS()
	if err != nil {
		return 0, err
	}
	c := p.src.peek()

	if c == ']' {
		p.beginEvent()
		p.src.get()
		p.stack.pop()
		p.afterContainerClose()
		p.finishEvent()
		return KindArrayEnd, nil
	}
	if c == eof {
		return 0, errUnexpectedEOF
	}

	if top.length() > 0 {
		sawSep := false
		if c == ',' {
			p.src.get()
			nl2, werr := p.skipWS()
			if werr != nil {
				return 0, werr
			}
			crossedNL = crossedNL || nl2
			c = p.src.peek()
			sawSep = true
		} else if p.cfg.lang == LanguageJSON5E && crossedNL {
			sawSep = true
		}
		if !sawSep {
			return 0, errMissingCommaArr
		}
		if c == ']' {
			p.beginEvent()
			p.src.get()
			p.stack.pop()
			p.afterContainerClose()
			p.finishEvent()
			return KindArrayEnd, nil
		}
		if c == eof {
			return 0, errUnexpectedEOF
		}
	}

	if c == '}' {
		return 0, errMismatchDelim
	}

	p.beginEvent()
	kind, verr := p.readValue(c)
	if verr != nil {
		return 0, verr
	}
	p.stack.frameAt(elemIdx).increment()
	p.finishEvent()
	return kind, nil
}

func (p *Parser) afterContainerClose() {
	if p.stack.empty() {
		p.producedTopLevel = true
	}
}

// readMemberName reads one object key, already known (by the caller, from
// needName position) to be the right grammatical slot: a quoted string, or
// in a JSON5 mode, an identifier. lead is its first byte, already consumed.
func (p *Parser) readMemberName(lead int) (Kind, error) {
	if lead == '"' || (p.json5Like() && lead == '\'') {
		if _, err := p.readString(byte(lead)); err != nil {
			return 0, err
		}
		return KindName, nil
	}
	if err := p.readIdentifier(lead); err != nil {
		return 0, err
	}
	return KindName, nil
}

// readValue dispatches on the first byte of a value, already peeked but
// not yet consumed.
func (p *Parser) readValue(c int) (Kind, error) {
	switch {
	case c == '{':
		p.src.get()
		if err := p.stack.push(true); err != nil {
			return 0, err
		}
		return KindObjectStart, nil
	case c == '[':
		p.src.get()
		if err := p.stack.push(false); err != nil {
			return 0, err
		}
		return KindArrayStart, nil
	case c == '"':
		p.src.get()
		return p.readString('"')
	case c == '\'' && p.json5Like():
		p.src.get()
		return p.readString('\'')
	case isDecDigit(c):
		p.src.get()
		return p.readNumber(c)
	case c == '-':
		p.src.get()
		return p.readNumber(c)
	case c == '+' && p.json5Like():
		p.src.get()
		return p.readNumber(c)
	case c == '.' && p.json5Like():
		p.src.get()
		return p.readNumber(c)
	case (c == 'I' || c == 'N') && p.json5Like():
		p.src.get()
		return p.readNumber(c)
	case c == 'n':
		p.src.get()
		if err := matchRest(p.src, "null", false, nil); err != nil {
			return 0, err
		}
		return KindNull, nil
	case c == 't':
		p.src.get()
		if err := matchRest(p.src, "true", false, nil); err != nil {
			return 0, err
		}
		return KindTrue, nil
	case c == 'f':
		p.src.get()
		if err := matchRest(p.src, "false", false, nil); err != nil {
			return 0, err
		}
		return KindFalse, nil
	case c == eof:
		return 0, errUnexpectedEOF
	default:
		return 0, newSyntaxError("unexpected byte %s", describeByte(c))
	}
}

// skipWS consumes whitespace and, in a JSON5 mode, comments, reporting
// whether a '\n' (or a "\r\n") was crossed; a lone '\r' and the multi-byte
// JSON5 whitespace codepoints (including LS/PS) do not count, matching the
// original scanner's line-counting rule. JSON5E consults the report to let
// a crossed newline stand in for a missing comma between array elements or
// object members, a relaxation the library this package is modeled on does
// not implement for any dialect; this package's comma handling is designed
// fresh for it.
func (p *Parser) skipWS() (bool, error) {
	crossedNL := false
	for {
		c := p.src.peek()
		switch c {
		case ' ', '\t', '\v', '\f':
			p.src.get()
			continue
		case '\n':
			p.src.get()
			p.loc.newline(p.src.position())
			crossedNL = true
			continue
		case '\r':
			p.src.get()
			if p.src.peek() == '\n' {
				p.src.get()
				p.loc.newline(p.src.position())
				crossedNL = true
			}
			continue
		}

		if c == '/' && p.json5Like() {
			ok, nl, err := p.skipComment()
			if err != nil {
				return crossedNL, err
			}
			if ok {
				if nl {
					crossedNL = true
				}
				continue
			}
		}

		if c == '#' && p.cfg.lang == LanguageJSON5E {
			p.skipLineComment()
			continue
		}

		if p.json5Like() {
			if p.skipMultiByteWhitespace() {
				continue
			}
		}

		return crossedNL, nil
	}
}

// skipComment consumes a '//' or '/* */' comment starting at the '/' just
// peeked (not yet consumed). ok reports whether a comment was actually
// present; a lone '/' is left untouched for the caller to report as an
// unexpected byte.
func (p *Parser) skipComment() (ok bool, crossedNL bool, err error) {
	b := p.src.peekBytes(2)
	if len(b) < 2 || b[0] != '/' {
		return false, false, nil
	}
	switch b[1] {
	case '/':
		p.src.get()
		p.src.get()
		p.skipLineComment()
		return true, false, nil
	case '*':
		p.src.get()
		p.src.get()
		for {
			c := p.src.get()
			switch {
			case c == eof:
				return true, crossedNL, newSyntaxError("unterminated comment")
			case c == '\n':
				p.loc.newline(p.src.position())
				crossedNL = true
			case c == '*' && p.src.peek() == '/':
				p.src.get()
				return true, crossedNL, nil
			}
		}
	default:
		return false, false, nil
	}
}

// skipLineComment consumes a '//' or '#' comment's body, stopping right
// before its terminating newline (or at EOF); the newline itself is left
// for skipWS's main loop to consume and account for.
func (p *Parser) skipLineComment() {
	for {
		c := p.src.peek()
		if c == eof || c == '\n' || c == '\r' {
			return
		}
		p.src.get()
	}
}

// skipMultiByteWhitespace recognizes the JSON5 whitespace codepoints that
// don't fit in a single byte: NO-BREAK SPACE, LINE SEPARATOR, PARAGRAPH
// SEPARATOR, and a leading byte-order mark. None of these advance the line
// counter — only byte '\n' does that, matching the original scanner.
func (p *Parser) skipMultiByteWhitespace() (consumed bool) {
	b := p.src.peekBytes(3)
	switch {
	case len(b) >= 2 && b[0] == 0xC2 && b[1] == 0xA0:
		p.src.get()
		p.src.get()
		p.loc.lineadj++
		return true
	case len(b) >= 3 && b[0] == 0xE2 && b[1] == 0x80 && (b[2] == 0xA8 || b[2] == 0xA9):
		p.src.get()
		p.src.get()
		p.src.get()
		p.loc.lineadj += 2
		return true
	case len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF:
		p.src.get()
		p.src.get()
		p.src.get()
		p.loc.lineadj += 2
		return true
	default:
		return false
	}
}
