package utilities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/currentcolor/currentcolor/internal/palette"
)

func mustResolve(t *testing.T, opts Options) Resolved {
	t.Helper()
	r, err := opts.Resolve()
	require.NoError(t, err)
	return r
}

func decodeConfig(t *testing.T, doc string) palette.Config {
	t.Helper()
	var cfg palette.Config
	require.NoError(t, json.Unmarshal([]byte(doc), &cfg))
	return cfg
}

func TestUtilities_Red(t *testing.T) {
	sheet, err := Utilities(decodeConfig(t, `{"red": "#FF0000"}`), mustResolve(t, DefaultOptions()))
	require.NoError(t, err)

	assert.Equal(t, map[string]map[string]string{
		".text-current": {"color": "currentColor"},
		".text-red": {
			"--cc-current-color":                  "255 0 0",
			"--cc-current-color-inverted":         "0 255 255",
			"--cc-current-color-contrast":         "255 255 255",
			"--cc-current-color-contrast-inverted": "0 0 0",
		},
	}, sheet.Map())
}

func TestUtilities_DeclarationOrder(t *testing.T) {
	sheet, err := Utilities(decodeConfig(t, `{"yellow": {"200": "#fef08a"}}`), mustResolve(t, DefaultOptions()))
	require.NoError(t, err)
	require.Len(t, sheet, 2)

	assert.Equal(t, CurrentSelector, sheet[0].Selector)
	assert.Equal(t, Rule{
		Selector: ".text-yellow-200",
		Declarations: []Declaration{
			{Property: PropColor, Value: "254 240 138"},
			{Property: PropInverted, Value: "1 15 117"},
			{Property: PropContrast, Value: "0 0 0"},
			{Property: PropContrastInverted, Value: "255 255 255"},
		},
	}, sheet[1])
}

func TestUtilities_SkipsNonHexValues(t *testing.T) {
	cfg := decodeConfig(t, `{"brand": "notacolor", "current": "currentColor", "transparent": "transparent", "ink": "#000"}`)

	sheet, err := Utilities(cfg, mustResolve(t, DefaultOptions()))
	require.NoError(t, err)

	_, ok := sheet.Rule(".text-brand")
	assert.False(t, ok)
	_, ok = sheet.Rule(".text-transparent")
	assert.False(t, ok)
	ink, ok := sheet.Rule(".text-ink")
	require.True(t, ok)
	v, _ := ink.Value(PropContrast)
	assert.Equal(t, "255 255 255", v)
	assert.Len(t, sheet, 2)
}

func TestUtilities_EmptyPaletteStillEmitsCurrent(t *testing.T) {
	sheet, err := Utilities(nil, mustResolve(t, DefaultOptions()))
	require.NoError(t, err)
	assert.Equal(t, Stylesheet{CurrentColorRule()}, sheet)
}

func TestUtilities_InvalidHexFailsWholePass(t *testing.T) {
	cfg := decodeConfig(t, `{"ok": "#fff", "broken": {"500": "#1234"}}`)

	sheet, err := Utilities(cfg, mustResolve(t, DefaultOptions()))
	assert.ErrorIs(t, err, palette.ErrInvalidColorFormat)
	assert.Contains(t, err.Error(), "broken-500")
	assert.Nil(t, sheet)
}

func TestUtilities_NonStringLeafFails(t *testing.T) {
	cfg := decodeConfig(t, `{"weird": 42}`)

	_, err := Utilities(cfg, mustResolve(t, DefaultOptions()))
	assert.ErrorIs(t, err, palette.ErrInvalidColorFormat)
}

func TestUtilities_CustomContrastColors(t *testing.T) {
	opts := mustResolve(t, Options{ContrastColors: [2]string{"#111827", "#f9fafb"}})

	sheet, err := Utilities(decodeConfig(t, `{"navy": "#000080", "snow": "#fffafa"}`), opts)
	require.NoError(t, err)

	navy, _ := sheet.Rule(".text-navy")
	v, _ := navy.Value(PropContrast)
	assert.Equal(t, "249 250 251", v)
	v, _ = navy.Value(PropContrastInverted)
	assert.Equal(t, "17 24 39", v)

	snow, _ := sheet.Rule(".text-snow")
	v, _ = snow.Value(PropContrast)
	assert.Equal(t, "17 24 39", v)
}

func TestUtilities_IsOrderIndependentPerEntry(t *testing.T) {
	opts := mustResolve(t, DefaultOptions())
	a, err := Utilities(decodeConfig(t, `{"x": "#123", "y": "#fedcba"}`), opts)
	require.NoError(t, err)
	b, err := Utilities(decodeConfig(t, `{"y": "#fedcba", "x": "#123"}`), opts)
	require.NoError(t, err)

	assert.Equal(t, a.Map(), b.Map())
}

func TestUtilities_DuplicateSelectorLastWins(t *testing.T) {
	// "a-b" nested and flat collide on the same selector
	cfg := palette.Config{
		{Key: "a", Value: palette.Config{{Key: "b", Value: "#000"}}},
		{Key: "c", Value: "#fff"},
		{Key: "a-b", Value: "#fff"},
	}

	sheet, err := Utilities(cfg, mustResolve(t, DefaultOptions()))
	require.NoError(t, err)
	require.Len(t, sheet, 3)
	assert.Equal(t, ".text-a-b", sheet[1].Selector)
	v, _ := sheet[1].Value(PropColor)
	assert.Equal(t, "255 255 255", v)
}

func TestUtilities_ColorNamedCurrentKeepsCurrentColor(t *testing.T) {
	cfg := decodeConfig(t, `{"current": "#123456", "red": "#f00"}`)

	sheet, err := Utilities(cfg, mustResolve(t, DefaultOptions()))
	require.NoError(t, err)
	require.Len(t, sheet, 2)
	assert.Equal(t, CurrentSelector, sheet[0].Selector)
	assert.Equal(t, ".text-red", sheet[1].Selector)

	color, ok := sheet[0].Value("color")
	require.True(t, ok)
	assert.Equal(t, "currentColor", color)
	v, ok := sheet[0].Value(PropColor)
	require.True(t, ok)
	assert.Equal(t, "18 52 86", v)

	// a single .text-current key in the JSON form, with both
	m := sheet.Map()
	assert.Equal(t, "currentColor", m[CurrentSelector]["color"])
	assert.Equal(t, "18 52 86", m[CurrentSelector][PropColor])
}

func TestOptions_Resolve(t *testing.T) {
	r, err := Options{}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, palette.DefaultContrastPair, r.Contrast)

	_, err = Options{ContrastColors: [2]string{"black", "white"}}.Resolve()
	assert.ErrorIs(t, err, palette.ErrInvalidContrastColor)
}

func TestColors(t *testing.T) {
	colors, err := Colors(decodeConfig(t, `{"gray": {"50": "#f9fafb", "950": "#030712"}, "skip": "inherit"}`), mustResolve(t, DefaultOptions()))
	require.NoError(t, err)
	require.Len(t, colors, 2)

	assert.Equal(t, "gray-50", colors[0].Name)
	assert.Equal(t, palette.Black, colors[0].Derived.Contrast)
	assert.Equal(t, "gray-950", colors[1].Name)
	assert.Equal(t, palette.White, colors[1].Derived.Contrast)
	assert.Equal(t, palette.RGB{R: 252, G: 248, B: 237}, colors[1].Derived.Inverted)
}
