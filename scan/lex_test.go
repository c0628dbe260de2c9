//go:build !windows

package scan

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
		{"plain words", "--opt value rest", []string{"--opt", "value", "rest"}},
		{"double quotes group words", `--name "John Doe"`, []string{"--name", "John Doe"}},
		{"single quotes group words", "--name 'John Doe'", []string{"--name", "John Doe"}},
		{"escaped space", `a\ b c`, []string{"a b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplit_Empty(t *testing.T) {
	got, err := Split("")
	require.NoError(t, err)
	assert.Empty(t, got)
}
