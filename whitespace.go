package pdjson5

// SkipIfSpace inspects peekedByte — the value a caller already obtained by
// peeking the Parser's next unread byte — and, if it begins a codepoint
// Next itself would silently skip (ASCII whitespace, a newline, or in a
// JSON5 mode a comment or one of the JSON5 multi-byte whitespace
// codepoints), consumes that codepoint in full and reports it. It reports
// false without consuming anything if peekedByte does not begin such a
// codepoint.
//
// This exists for callers validating separators between values of a
// streamed, caller-driven scan (distinguishing "blank line between
// records" from "garbage between records") without duplicating the
// Parser's internal whitespace/comment logic. If peekedByte turns out to
// begin a well-formed but non-whitespace multi-byte codepoint, that is a
// byte illegal outside of a string at this position: SkipIfSpace consumes
// it and returns an error naming the codepoint. Any error SkipIfSpace
// returns is latched, so later calls to Next report it as well.
func (p *Parser) SkipIfSpace(peekedByte int) (consumed bool, codepoint rune, err error) {
	switch peekedByte {
	case ' ', '\t', '\v', '\f':
		p.src.get()
		return true, rune(peekedByte), nil
	case '\n':
		p.src.get()
		p.loc.newline(p.src.position())
		return true, '\n', nil
	case '\r':
		p.src.get()
		if p.src.peek() == '\n' {
			p.src.get()
			p.loc.newline(p.src.position())
		}
		return true, '\r', nil
	}

	if peekedByte == '/' && p.json5Like() {
		ok, _, cerr := p.skipComment()
		if cerr != nil {
			_, cerr = p.fail(cerr)
			return true, '/', cerr
		}
		if ok {
			return true, '/', nil
		}
		return false, 0, nil
	}

	if peekedByte == '#' && p.cfg.lang == LanguageJSON5E {
		p.skipLineComment()
		return true, '#', nil
	}

	if !p.json5Like() || peekedByte < 0x80 {
		return false, 0, nil
	}

	consumed, codepoint, err = p.skipIfMultiByte(byte(peekedByte))
	if err != nil {
		_, err = p.fail(err)
	}
	return consumed, codepoint, err
}

// skipIfMultiByte handles the part of SkipIfSpace that needs more than one
// byte of lookahead: the JSON5 multi-byte whitespace codepoints, and any
// other well-formed multi-byte codepoint, which is an error at this
// position since it appears outside of a string.
func (p *Parser) skipIfMultiByte(lead byte) (bool, rune, error) {
	n := utf8SeqLen(lead)
	if n < 2 {
		return false, 0, newSyntaxError("unexpected byte %s", describeByte(int(lead)))
	}

	buf := p.src.peekBytes(n)
	if !utf8Legal(buf, n) {
		p.src.get()
		return true, 0, newSyntaxError("invalid UTF-8 sequence")
	}

	cp := decodeRune(buf, n)
	for i := 0; i < n; i++ {
		p.src.get()
	}
	p.loc.lineadj += int64(n - 1)

	switch cp {
	case runeNBSP, runeLS, runePS:
		return true, cp, nil
	case runeBOM:
		return true, cp, nil
	default:
		return true, cp, newSyntaxError("unexpected codepoint %06x outside of a string", cp)
	}
}

// decodeRune decodes the Unicode scalar value of the n-byte UTF-8 sequence
// buf[:n], already validated legal by utf8Legal.
func decodeRune(buf []byte, n int) rune {
	switch n {
	case 1:
		return rune(buf[0])
	case 2:
		return rune(buf[0]&0x1F)<<6 | rune(buf[1]&0x3F)
	case 3:
		return rune(buf[0]&0x0F)<<12 | rune(buf[1]&0x3F)<<6 | rune(buf[2]&0x3F)
	case 4:
		return rune(buf[0]&0x07)<<18 | rune(buf[1]&0x3F)<<12 | rune(buf[2]&0x3F)<<6 | rune(buf[3]&0x3F)
	default:
		return 0
	}
}
