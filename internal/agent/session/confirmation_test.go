package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsConfirmation(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"sí", true},
		{"Sí, continúa", true},
		{"si", true},
		{"s", true},
		{"yes", true},
		{"ok, do it", true},
		{"dale", true},
		{"procede por favor", true},
		{"go ahead", true},
		{"", false},
		{"no, mejor no", false},
		{"Audit the access logs from last week", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsConfirmation(tt.input), "input %q", tt.input)
	}
}

func TestIsRejection(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"no", true},
		{"No, mejor no", true},
		{"n", true},
		{"cancelar", true},
		{"cancel that", true},
		{"abort", true},
		{"no thanks", true},
		{"", false},
		{"Audit the access logs from last week", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsRejection(tt.input), "input %q", tt.input)
	}
}

func TestSingleLetterPhrasesNeedWordBoundaries(t *testing.T) {
	// "s" and "y" must not fire inside ordinary words
	assert.False(t, IsConfirmation("summarize the sprint"))
	assert.False(t, IsRejection("new network diagram"))
}
