package pdjson5

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUTF8SeqLen(t *testing.T) {
	tests := []struct {
		b    byte
		want int
	}{
		{0x41, 1},
		{0x80, 0}, // continuation byte alone
		{0xC0, 0}, // overlong marker
		{0xC2, 2},
		{0xE0, 3},
		{0xF0, 4},
		{0xF5, 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, utf8SeqLen(tc.b), "byte 0x%02x", tc.b)
	}
}

func TestUTF8LegalRejectsOverlongAndSurrogates(t *testing.T) {
	assert.True(t, utf8Legal([]byte{0xC2, 0xA0}, 2))
	assert.False(t, utf8Legal([]byte{0xE0, 0x80, 0x80}, 3), "overlong 3-byte sequence")
	assert.False(t, utf8Legal([]byte{0xED, 0xA0, 0x80}, 3), "encoded surrogate")
	assert.True(t, utf8Legal([]byte{0xF0, 0x9F, 0x98, 0x80}, 4))
}

func TestEncodeRuneToRejectsSurrogates(t *testing.T) {
	_, err := encodeRuneTo(nil, 0xD800)
	assert.Error(t, err)

	out, err := encodeRuneTo(nil, 0x1F600)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xF0, 0x9F, 0x98, 0x80}, out)
}
