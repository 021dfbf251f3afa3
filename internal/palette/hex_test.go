package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RGB
	}{
		{"red", "#FF0000", RGB{255, 0, 0}},
		{"lowercase", "#ff8800", RGB{255, 136, 0}},
		{"mixed case", "#FfFfFf", White},
		{"black shorthand", "#000", Black},
		{"white shorthand", "#FFF", White},
		{"abc shorthand", "#abc", RGB{170, 187, 204}},
		{"tailwind blue-500", "#3b82f6", RGB{59, 130, 246}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := ParseHex(tt.input)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseHex_ShorthandMatchesLongForm(t *testing.T) {
	short, _, err := ParseHex("#abc")
	require.NoError(t, err)
	long, _, err := ParseHex("#aabbcc")
	require.NoError(t, err)
	assert.Equal(t, long, short)
}

func TestParseHex_NotAHexColor(t *testing.T) {
	for _, input := range []string{"notacolor", "currentColor", "transparent", "rgb(0 0 0)", "ff0000", ""} {
		got, ok, err := ParseHex(input)
		assert.NoError(t, err, input)
		assert.False(t, ok, input)
		assert.Equal(t, RGB{}, got, input)
	}
}

func TestParseHex_InvalidFormat(t *testing.T) {
	for _, input := range []string{"#1234", "#", "#12", "#12345", "#1234567", "#aabbccdd", "#ggg", "#12345z"} {
		_, ok, err := ParseHex(input)
		assert.ErrorIs(t, err, ErrInvalidColorFormat, input)
		assert.False(t, ok, input)
	}
}

func TestMustParseHex(t *testing.T) {
	assert.Equal(t, RGB{255, 0, 0}, MustParseHex("#f00"))
	assert.Panics(t, func() { MustParseHex("#1234") })
	assert.Panics(t, func() { MustParseHex("red") })
}

func TestRGBFormatting(t *testing.T) {
	c := RGB{255, 0, 128}
	assert.Equal(t, "255 0 128", c.String())
	assert.Equal(t, "#ff0080", c.Hex())
}

func TestDefaultsParsedFromHex(t *testing.T) {
	assert.Equal(t, RGB{0, 0, 0}, Black)
	assert.Equal(t, RGB{255, 255, 255}, White)
	assert.Equal(t, ContrastPair{Black, White}, DefaultContrastPair)
}
