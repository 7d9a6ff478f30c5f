package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggle(t *testing.T) {
	t.Cleanup(func() { Apply(ThemeDark) })

	Apply(ThemeDark)
	assert.Equal(t, ThemeLight, Toggle())
	assert.Equal(t, LightPalette.Accent, Accent)
	assert.Equal(t, ThemeDark, Toggle())
	assert.Equal(t, DarkPalette.Accent, Accent)
}

func TestPaletteFor(t *testing.T) {
	assert.Equal(t, ThemeLight, PaletteFor(" Light ").Name)
	assert.Equal(t, ThemeDark, PaletteFor("solarized").Name)
	assert.Equal(t, ThemeDark, PaletteFor("").Name)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Heat", 10, "Heat"},
		{"The Dark Knight Rises", 10, "The Dar..."},
		{"Heat", 2, "He"},
		{"Heat", 0, ""},
		{"Amélie", 5, "Am..."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Truncate(tt.in, tt.width), tt.in)
	}
}

func TestPad(t *testing.T) {
	assert.Equal(t, "ab   ", Pad("ab", 5))
	assert.Equal(t, "abcdef", Pad("abcdef", 3))
}
