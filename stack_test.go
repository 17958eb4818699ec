package pdjson5

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameEntryParity(t *testing.T) {
	var f frameEntry = frameTypeObject
	assert.True(t, f.isObject())
	assert.True(t, f.needName())
	assert.False(t, f.needValue())

	f.increment()
	assert.False(t, f.needName())
	assert.True(t, f.needValue())

	f.increment()
	assert.True(t, f.needName())
	assert.Equal(t, int64(2), f.length())
}

func TestFrameEntryArrayNeverNeedsName(t *testing.T) {
	var f frameEntry = frameTypeArray
	assert.True(t, f.isArray())
	assert.False(t, f.needName())
	assert.False(t, f.needValue())
}

func TestNestingStackPushPop(t *testing.T) {
	var s nestingStack
	assert.True(t, s.empty())

	require.NoError(t, s.push(true))
	require.NoError(t, s.push(false))
	assert.Equal(t, 2, s.depth())
	assert.True(t, s.top().isArray())

	s.pop()
	assert.True(t, s.top().isObject())
	s.pop()
	assert.True(t, s.empty())
}

func TestNestingStackMaxDepth(t *testing.T) {
	s := nestingStack{maxSize: 2}
	require.NoError(t, s.push(true))
	require.NoError(t, s.push(true))
	err := s.push(true)
	assert.ErrorIs(t, err, errMaxDepth)
}
