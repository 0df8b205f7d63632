package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"punctuation is dropped", "My Big Event!", "my-big-event"},
		{"whitespace runs collapse", "  Multi   Space  ", "multi-space"},
		{"empty name", "", ""},
		{"plain words", "Jazz Night", "jazz-night"},
		{"tabs and newlines", "Tab\tand\nnewline", "tab-and-newline"},
		{"non-breaking space", "Open\u00a0Air", "open-air"},
		{"digits and hyphens survive", "Summer-Fest 2024", "summer-fest-2024"},
		{"non-ascii letters are removed", "Café Olé", "caf-ol"},
		{"nothing valid left", "!!! ???", "-"},
		{"only symbols", "***", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.in))
		})
	}
}

func TestMakeIsDeterministic(t *testing.T) {
	in := "The Same  Name"
	assert.Equal(t, Make(in), Make(in))
}
