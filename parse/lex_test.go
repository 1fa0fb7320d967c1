package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain tokens", "build --output dist", []string{"build", "--output", "dist"}},
		{"double quotes", `--name "John Doe"`, []string{"--name", "John Doe"}},
		{"single quotes", `--name 'John Doe'`, []string{"--name", "John Doe"}},
		{"escaped space", `a\ b c`, []string{"a b", "c"}},
		{"empty input", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplit_UnterminatedQuote(t *testing.T) {
	_, err := Split(`--name "unterminated`)
	assert.Error(t, err)
}
