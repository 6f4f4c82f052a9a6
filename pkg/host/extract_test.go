package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"1.20.4", "1.20.4", true},
		{"Paper 1.20.4", "1.20.4", true},
		{"git-Paper-496 (MC: 1.20.4)", "1.20.4", true},
		{"git-Spigot-a1b2c3-d4e5f6 (MC: 1.21)", "1.21", true},
		{"1.20.4-R0.1-SNAPSHOT", "1.20.4", true},
		{"Purpur 1.21.1", "1.21.1", true},
		{"Paper", "", false},
		{"", "", false},
		{"build 496", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ExtractVersion(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractOrRaw(t *testing.T) {
	assert.Equal(t, "1.20.4", extractOrRaw("Paper 1.20.4"))
	assert.Equal(t, "Paper", extractOrRaw("Paper"))
}
