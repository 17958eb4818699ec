package pdjson5

import "github.com/json5kit/pdjson5/internal/bufpools"

// scratch is the single growable byte vector reused across events to hold
// the most recent string/number/name payload. It is always kept
// NUL-terminated internally (mirroring the original library's
// null-terminated buffer), but Payload reports the length excluding that terminator — see the payload
// length convention resolved in DESIGN.md.
type scratch struct {
	buf []byte // length always includes the trailing NUL once non-empty
}

func (s *scratch) reset() {
	s.buf = s.buf[:0]
}

// release returns the backing array to the pool. Called by Parser.Close;
// Parser.Reset only truncates the buffer via reset and keeps it.
func (s *scratch) release() {
	if s.buf != nil {
		bufpools.Put(s.buf)
		s.buf = nil
	}
}

// push appends a single decoded byte to the scratch buffer.
func (s *scratch) push(c byte) {
	if len(s.buf) == cap(s.buf) {
		grown := bufpools.Get(len(s.buf)*2 + 1)
		grown = append(grown, s.buf...)
		bufpools.Put(s.buf)
		s.buf = grown
	}
	s.buf = append(s.buf, c)
}

// pushRune appends the UTF-8 encoding of r.
func (s *scratch) pushRune(r rune) error {
	var tmp [4]byte
	enc, err := encodeRuneTo(tmp[:0], r)
	if err != nil {
		return err
	}
	for _, b := range enc {
		s.push(b)
	}
	return nil
}

// terminate appends the trailing NUL that marks the end of the current
// payload, leaving the fill position (scratch.text) unaffected.
func (s *scratch) terminate() {
	s.push(0)
}

// text returns the decoded payload without its trailing NUL.
func (s *scratch) text() []byte {
	if len(s.buf) == 0 {
		return nil
	}
	return s.buf[:len(s.buf)-1]
}

// first returns the first byte of the current payload, or 0 if empty.
func (s *scratch) first() byte {
	if len(s.buf) == 0 {
		return 0
	}
	return s.buf[0]
}
