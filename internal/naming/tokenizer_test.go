package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		stem string
		want []string
	}{
		{"dash with spaces", "周杰伦 - 晴天", []string{"周杰伦", "晴天"}},
		{"mixed separators", "01_Artist.Song~Live", []string{"01", "Artist", "Song", "Live"}},
		{"em and en dash", "A—B–C", []string{"A", "B", "C"}},
		{"separator runs collapse", "a  --__  b", []string{"a", "b"}},
		{"leading and trailing", "  -hello- ", []string{"hello"}},
		{"ideographic space", "周杰伦　晴天", []string{"周杰伦", "晴天"}},
		{"single token", "晴天", []string{"晴天"}},
		{"all separators", "--__..~~", []string{}},
		{"empty", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.stem)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCollapseSeparators(t *testing.T) {
	assert.Equal(t, "01 XYZ", collapseSeparators("  01 -- XYZ_ "))
	assert.Equal(t, "", collapseSeparators(" - "))
}

func TestTrimSeparators(t *testing.T) {
	assert.Equal(t, "晴天", trimSeparators("- 晴天 ~"))
	assert.Equal(t, "a - b", trimSeparators("a - b"))
}
