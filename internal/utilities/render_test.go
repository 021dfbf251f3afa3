package utilities

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSS(t *testing.T) {
	sheet, err := Utilities(decodeConfig(t, `{"red": "#FF0000"}`), mustResolve(t, DefaultOptions()))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSS(&buf, sheet))

	want := `.text-current {
  color: currentColor;
}

.text-red {
  --cc-current-color: 255 0 0;
  --cc-current-color-inverted: 0 255 255;
  --cc-current-color-contrast: 255 255 255;
  --cc-current-color-contrast-inverted: 0 0 0;
}
`
	assert.Equal(t, want, buf.String())
}

func TestStylesheet_MarshalJSONKeepsOrder(t *testing.T) {
	sheet, err := Utilities(decodeConfig(t, `{"zz": "#fff", "aa": "#000"}`), mustResolve(t, DefaultOptions()))
	require.NoError(t, err)

	data, err := json.Marshal(sheet)
	require.NoError(t, err)

	s := string(data)
	current := bytes.Index(data, []byte(`".text-current"`))
	zz := bytes.Index(data, []byte(`".text-zz"`))
	aa := bytes.Index(data, []byte(`".text-aa"`))
	assert.True(t, current < zz && zz < aa, s)
	assert.Contains(t, s, `".text-aa":{"--cc-current-color":"0 0 0","--cc-current-color-inverted":"255 255 255"`)
}

func TestStylesheet_MarshalIndent(t *testing.T) {
	data, err := json.MarshalIndent(Stylesheet{CurrentColorRule()}, "", "  ")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \".text-current\": {\n    \"color\": \"currentColor\"\n  }\n}", string(data))
}

func TestEscapeSelector(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{".text-red-500", ".text-red-500"},
		{".text-brand_primary", ".text-brand_primary"},
		{".text-gray-1.5", `.text-gray-1\.5`},
		{".text-a/b", `.text-a\/b`},
		{".9lives", `.\39 lives`},
		{".text-a\nb", `.text-a\a b`},
		{".text-tab\there", `.text-tab\9 here`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EscapeSelector(tt.in), tt.in)
	}
}

func TestRule_CSS(t *testing.T) {
	assert.Equal(t, ".text-current {\n  color: currentColor;\n}\n", CurrentColorRule().CSS())
}
