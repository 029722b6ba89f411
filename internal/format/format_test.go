package format_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gcat/internal/format"
)

func TestASCII_BasicTable(t *testing.T) {
	tb := format.NewTable(format.ASCII)
	tb.Header("Quantity", "Value")
	tb.Row("p", format.Fixed(4.1541827))
	tb.Row("GCI21 fine", format.Sci(1.2301045e-02))
	out := tb.String()

	assert.Contains(t, out, "Quantity")
	assert.Contains(t, out, "4.154183")
	assert.Contains(t, out, "1.230105e-02")
	assert.Contains(t, out, "───", "StyleLight draws box characters")
}

func TestMarkdown_BasicTable(t *testing.T) {
	tb := format.NewTable(format.Markdown)
	tb.Header("Grid", "h")
	tb.Row(1, format.Fixed(8.304548))
	out := tb.String()

	assert.Contains(t, out, "| Grid")
	assert.Contains(t, out, "---")
	assert.Contains(t, out, "8.304548")
}

func TestTitle_Rendered(t *testing.T) {
	tb := format.NewTable(format.ASCII)
	tb.Title("backward-facing step")
	tb.Header("a")
	tb.Row(1)
	assert.Contains(t, tb.String(), "backward-facing step")
}

func TestColumns_RightAlign(t *testing.T) {
	tb := format.NewTable(format.ASCII)
	tb.Header("k", "value")
	tb.Columns(format.ColumnConfig{Number: 2, Align: format.AlignRight})
	tb.Row("r21", "1.3")
	tb.Row("r32", "1.303840")
	assert.Contains(t, tb.String(), "      1.3 │")
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want format.Mode
	}{
		{"", format.ASCII},
		{"table", format.ASCII},
		{"Markdown", format.Markdown},
		{"md", format.Markdown},
		{" json ", format.JSON},
	}
	for _, tc := range tests {
		got, err := format.ParseMode(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := format.ParseMode("yaml")
	assert.Error(t, err)
}

func TestMode_StringRoundTrip(t *testing.T) {
	for _, m := range []format.Mode{format.ASCII, format.Markdown, format.JSON} {
		got, err := format.ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
}

func TestEncodeJSON(t *testing.T) {
	b, err := format.EncodeJSON(map[string]float64{"p": 2})
	require.NoError(t, err)
	assert.Equal(t, byte('\n'), b[len(b)-1])

	var back map[string]float64
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, 2.0, back["p"])
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "1.306094", format.Fixed(1.3060941))
	assert.Equal(t, "1.2301%", format.Percent(0.012301045))
	assert.Equal(t, "n/a", format.OptionalSci(nil))
	v := 0.5
	assert.Equal(t, "5.000000e-01", format.OptionalSci(&v))
	assert.Equal(t, "yes", format.BoolMark(true))
	assert.Equal(t, "no", format.BoolMark(false))
}
