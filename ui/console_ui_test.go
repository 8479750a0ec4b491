package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"plain", "Score", 10, "Score"},
		{"toggle key dropped", "`Sco`re", 10, "Score"},
		{"capped", "Spawn Drone", 5, "Spawn"},
		{"capped by runes", "héllo", 2, "hé"},
		{"no cap", "KillAll", 0, "KillAll"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeInput(tt.in, tt.max))
		})
	}
}

func TestTail(t *testing.T) {
	lines := []string{"a", "b", "c"}
	assert.Equal(t, []string{"b", "c"}, tail(lines, 2))
	assert.Equal(t, lines, tail(lines, 5))
	assert.Nil(t, tail(lines, 0))
	assert.Empty(t, tail(nil, 3))
}
