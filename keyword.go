package pdjson5

// matchRest compares the stream against pattern[1:], assuming pattern[0]
// was already consumed by the caller to decide to call matchRest at all.
// If copy is true, every matched byte (plus a trailing NUL) is also
// appended to dst — used for Infinity/NaN, whose matched text becomes the
// Number payload.
func matchRest(src source, pattern string, copy bool, dst *scratch) error {
	for i := 1; i < len(pattern); i++ {
		c := src.get()
		if c != int(pattern[i]) {
			if c != eof {
				return newSyntaxError("expected %s instead of %s in %q", describeByte(int(pattern[i])), describeByte(c), pattern)
			}
			return newSyntaxError("expected %s instead of end of text in %q", describeByte(int(pattern[i])), pattern)
		}
		if copy {
			dst.push(byte(c))
		}
	}
	if copy {
		dst.terminate()
	}
	return nil
}

// matchBuffered compares an already-collected identifier (text, without
// its trailing NUL) against pattern[1:], the re-diagnosis path used when an
// implied-object name sniff turns out to exactly spell a keyword. nextc is
// the character immediately following the identifier in the source (already
// peeked, not consumed). colAdj accumulates the number of matched
// characters so the caller can shift the reported error column to point at
// the actual mismatch rather than the start of the buffered text, matching
// the original library's is_match_string column-adjustment behavior.
func matchBuffered(text []byte, pattern string, nextc int) (ok bool, colAdj int, err error) {
	i := 0
	for ; i+1 < len(pattern); i++ {
		var c int
		if i < len(text)-1 {
			c = int(text[i+1])
		} else {
			c = eof
		}
		if c != int(pattern[i+1]) {
			if c != eof || nextc != eof {
				seen := c
				if c == eof {
					seen = nextc
				}
				return false, i + 1, newSyntaxError("expected %s instead of %s in %q", describeByte(int(pattern[i+1])), describeByte(seen), pattern)
			}
			return false, i, newSyntaxError("expected %s instead of end of text in %q", describeByte(int(pattern[i+1])), pattern)
		}
	}
	if len(text) > len(pattern) {
		extra := text[len(pattern)]
		return false, i + 1, newSyntaxError("expected end of text instead of %s", describeByte(int(extra)))
	}
	return true, 0, nil
}

// keywordPattern names the fixed keyword spellings recognized in value
// position (null/true/false) and, in JSON5 modes, the special numeric
// literals (Infinity/NaN).
func keywordPattern(firstByte byte) (pattern string, isNumber bool) {
	switch firstByte {
	case 'n':
		return "null", false
	case 't':
		return "true", false
	case 'f':
		return "false", false
	case 'I':
		return "Infinity", true
	case 'N':
		return "NaN", true
	default:
		return "", false
	}
}
