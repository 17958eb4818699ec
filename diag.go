package pdjson5

import "fmt"

// controlNames maps the C0 control bytes to the short names used in
// diagnostics, so an error can say "tab" instead of printing an
// unprintable byte.
var controlNames = map[byte]string{
	0x00: "NUL", 0x01: "SOH", 0x02: "STX", 0x03: "ETX",
	0x04: "EOT", 0x05: "ENQ", 0x06: "ACK", 0x07: "BEL",
	0x08: "backspace", 0x09: "tab", 0x0A: "newline", 0x0B: "vertical tab",
	0x0C: "form feed", 0x0D: "carriage return", 0x0E: "SO", 0x0F: "SI",
	0x10: "DLE", 0x11: "DC1", 0x12: "DC2", 0x13: "DC3",
	0x14: "DC4", 0x15: "NAK", 0x16: "SYN", 0x17: "ETB",
	0x18: "CAN", 0x19: "EM", 0x1A: "SUB", 0x1B: "escape",
	0x1C: "FS", 0x1D: "GS", 0x1E: "RS", 0x1F: "US",
	0x7F: "DEL",
}

// describeByte renders a single consumed byte for embedding in an error
// message: a named control character, a quoted printable glyph, or a
// byte-value fallback for anything else.
func describeByte(c int) string {
	if c < 0 {
		return "end of text"
	}
	if name, ok := controlNames[byte(c)]; ok {
		return name
	}
	if c >= 0x20 && c < 0x7F {
		return fmt.Sprintf("'%c'", rune(c))
	}
	return fmt.Sprintf("byte 0x%02x", c)
}

// describeRune renders a decoded multi-byte codepoint for embedding in an
// error message.
func describeRune(r rune) string {
	if r < 0 {
		return "invalid UTF-8 sequence"
	}
	return fmt.Sprintf("'%c'", r)
}
