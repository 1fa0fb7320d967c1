package argspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_TypedGetters(t *testing.T) {
	result := newResult("app")
	result.set("name", "value")
	result.set("port", 8080.0)
	result.set("verbose", true)
	result.set("tags", []string{"a", "b"})
	result.set("ports", []float64{80, 443})

	name, err := result.GetString("name")
	require.NoError(t, err)
	assert.Equal(t, "value", name)

	port, err := result.GetNumber("port")
	require.NoError(t, err)
	assert.Equal(t, 8080.0, port)

	verbose, err := result.GetBool("verbose")
	require.NoError(t, err)
	assert.True(t, verbose)

	tags, err := result.GetStringList("tags")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tags)

	ports, err := result.GetNumberList("ports")
	require.NoError(t, err)
	assert.Equal(t, []float64{80, 443}, ports)
}

func TestResult_NotFound(t *testing.T) {
	result := newResult("app")

	_, err := result.GetString("missing")
	assert.ErrorIs(t, err, ErrOptionNotFound)

	_, found := result.Get("missing")
	assert.False(t, found)

	_, found = result.Sub("missing")
	assert.False(t, found)
}

func TestResult_TypeMismatch(t *testing.T) {
	result := newResult("app")
	result.set("port", 8080.0)

	_, err := result.GetString("port")
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = result.GetBool("port")
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = result.GetStringList("port")
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = result.GetNumberList("port")
	assert.ErrorIs(t, err, ErrTypeMismatch)

	result.set("name", "x")
	_, err = result.GetNumber("name")
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, ok := result.Sub("name")
	assert.False(t, ok)
}

func TestResult_NamesKeepDeclarationOrder(t *testing.T) {
	result := newResult("app")
	result.set("c", 1.0)
	result.set("a", 2.0)
	result.set("b", 3.0)

	assert.Equal(t, []string{"c", "a", "b"}, result.Names())
}

func TestResult_Sub(t *testing.T) {
	child := newResult("app build")
	parent := newResult("app")
	parent.set("build", child)

	sub, found := parent.Sub("build")
	require.True(t, found)
	assert.Equal(t, "app build", sub.CommandPath())
}
