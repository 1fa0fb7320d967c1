package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_Cursor(t *testing.T) {
	state := NewState([]string{"a", "b", "c"})

	assert.Equal(t, -1, state.Pos())
	assert.Equal(t, 3, state.Len())
	assert.Equal(t, []string{"a", "b", "c"}, state.Args())
	assert.Equal(t, "", state.CurrentArg())

	require.True(t, state.Advance())
	assert.Equal(t, "a", state.CurrentArg())
	assert.Equal(t, "b", state.Peek())
	assert.Equal(t, []string{"b", "c"}, state.Remaining())

	state.Skip()
	require.True(t, state.Advance())
	assert.Equal(t, "c", state.CurrentArg())
	assert.Equal(t, "", state.Peek())
	assert.Nil(t, state.Remaining())

	assert.False(t, state.Advance())
}

func TestState_ArgAt(t *testing.T) {
	state := NewState([]string{"a", "b"})

	arg, err := state.ArgAt(1)
	require.NoError(t, err)
	assert.Equal(t, "b", arg)

	_, err = state.ArgAt(-1)
	assert.ErrorIs(t, err, ErrInvalidPosition)

	_, err = state.ArgAt(2)
	assert.ErrorIs(t, err, ErrInvalidPosition)
}

func TestState_SetPos(t *testing.T) {
	state := NewState([]string{"a", "b", "c"})
	state.SetPos(2)
	assert.Equal(t, "c", state.CurrentArg())

	state.SetPos(5)
	assert.Equal(t, "", state.CurrentArg())
}

func TestState_Empty(t *testing.T) {
	state := NewState(nil)
	assert.False(t, state.Advance())
	assert.Equal(t, 0, state.Len())
	assert.Equal(t, "", state.Peek())
}
