package pdjson5

// readNumber consumes a number literal whose first byte c has already been
// read from the stream, copying every digit verbatim to scratch (no
// numeric conversion is performed by this package). Grounded closely on
// the reference number scanner, including its flat, non-nested structure
// of sign/mantissa/fraction/exponent checks.
func (p *Parser) readNumber(c int) (Kind, error) {
	p.scr.reset()
	p.scr.push(byte(c))

	// Only reachable with '+' when in a JSON5 mode.
	if c == '-' || c == '+' {
		c = p.src.get()
		if isDecDigit(c) || (p.json5Like() && (c == 'I' || c == 'N' || c == '.')) {
			p.scr.push(byte(c))
		} else {
			if c != eof {
				return 0, newSyntaxError("unexpected byte %s in number", describeByte(c))
			}
			return 0, newSyntaxError("unexpected end of text in number")
		}
	}

	if c >= '1' && c <= '9' {
		if isDecDigit(p.src.peek()) {
			if err := p.readDecDigits(); err != nil {
				return 0, err
			}
		}
	} else if c == '0' {
		// The JSON5 spec doesn't say whether a leading 0 is illegal, but the
		// reference implementation rejects it (json5-spec issue #58); this
		// package follows suit. In streaming mode the '0' ends the number
		// instead, so "01" reads as two top-level values.
		next := p.src.peek()
		switch {
		case next == '.' || next == 'e' || next == 'E':
			// fall through to the shared fraction/exponent handling below.
		case p.json5Like() && (next == 'x' || next == 'X'):
			p.src.get()
			p.scr.push(byte(next))
			if err := p.readHexDigits(); err != nil {
				return 0, err
			}
			p.scr.terminate()
			return KindNumber, nil
		case isDecDigit(next) && !p.cfg.streaming:
			return 0, newSyntaxError("leading '0' in number")
		}
	} else if c == 'I' {
		if err := matchRest(p.src, "Infinity", true, &p.scr); err != nil {
			return 0, err
		}
		return KindNumber, nil
	} else if c == 'N' {
		if err := matchRest(p.src, "NaN", true, &p.scr); err != nil {
			return 0, err
		}
		return KindNumber, nil
	} else if c == '.' {
		// Leading dot is simplest handled as a special case; this also
		// covers the invalid sole-dot input.
		if err := p.readDecDigits(); err != nil {
			return 0, err
		}
		if next := p.src.peek(); next != 'e' && next != 'E' {
			p.scr.terminate()
			return KindNumber, nil
		}
	}

	// Up through the mantissa has been read.
	next := p.src.peek()
	if next != '.' && next != 'e' && next != 'E' {
		p.scr.terminate()
		return KindNumber, nil
	}

	if next == '.' {
		p.src.get()
		p.scr.push('.')
		if p.json5Like() && !isDecDigit(p.src.peek()) {
			// Trailing dot, e.g. "1.".
		} else if err := p.readDecDigits(); err != nil {
			return 0, err
		}
	}

	next = p.src.peek()
	if next == 'e' || next == 'E' {
		p.src.get()
		p.scr.push(byte(next))

		next = p.src.peek()
		switch {
		case next == '+' || next == '-':
			p.src.get()
			p.scr.push(byte(next))
			if err := p.readDecDigits(); err != nil {
				return 0, err
			}
		case isDecDigit(next):
			if err := p.readDecDigits(); err != nil {
				return 0, err
			}
		default:
			c := p.src.get() // consumed so the column points at it
			if c != eof {
				return 0, newSyntaxError("unexpected byte %s in number", describeByte(c))
			}
			return 0, newSyntaxError("unexpected end of text in number")
		}
	}

	p.scr.terminate()
	return KindNumber, nil
}

func isDecDigit(c int) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c int) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func (p *Parser) readDecDigits() error {
	nread := 0
	for isDecDigit(p.src.peek()) {
		c := p.src.get()
		p.scr.push(byte(c))
		nread++
	}
	if nread == 0 {
		c := p.src.get() // consumed so the column points at it
		if c != eof {
			return newSyntaxError("expected digit instead of %s", describeByte(c))
		}
		return newSyntaxError("expected digit instead of end of text")
	}
	return nil
}

func (p *Parser) readHexDigits() error {
	nread := 0
	for isHexDigit(p.src.peek()) {
		c := p.src.get()
		p.scr.push(byte(c))
		nread++
	}
	if nread == 0 {
		c := p.src.get()
		if c != eof {
			return newSyntaxError("expected hex digit instead of %s", describeByte(c))
		}
		return newSyntaxError("expected hex digit instead of end of text")
	}
	return nil
}
