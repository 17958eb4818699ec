package pdjson5

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyntaxErrorFormatting(t *testing.T) {
	e := newSyntaxError("unexpected byte %s", describeByte('x')).at(3, 5, 12)
	assert.Equal(t, "3:5: unexpected byte 'x'", e.Error())
}

func TestCloneErrDoesNotShareStorage(t *testing.T) {
	a := cloneErr(errMissingCommaObj)
	b := cloneErr(errMissingCommaObj)
	a.at(1, 1, 0)
	b.at(2, 2, 1)
	assert.NotEqual(t, a.Line, b.Line)
	assert.Equal(t, errMissingCommaObj.Msg, a.Msg)
}

func TestDescribeByteNamesControlChars(t *testing.T) {
	assert.Equal(t, "tab", describeByte('\t'))
	assert.Equal(t, "end of text", describeByte(eof))
	assert.Equal(t, "'A'", describeByte('A'))
}
