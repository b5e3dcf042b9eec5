package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePKE(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		code     Keycode
		expected Row
	}{
		{
			name:     "full row",
			input:    "keycode  38 = a A a A",
			code:     38,
			expected: Row{"a", "A", "a", "A"},
		},
		{
			name:     "short row padded with NoSymbol",
			input:    "keycode  24 = q Q",
			code:     24,
			expected: Row{"q", "Q", "NoSymbol", "NoSymbol"},
		},
		{
			name:     "long row truncated to four levels",
			input:    "keycode  10 = 1 exclam 1 exclam bar exclamdown bar",
			code:     10,
			expected: Row{"1", "exclam", "1", "exclam"},
		},
		{
			name:     "leading whitespace tolerated",
			input:    "   keycode 57 = n N n N",
			code:     57,
			expected: Row{"n", "N", "n", "N"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ParsePKE(tt.input)
			row, ok := m.Row(tt.code)
			require.True(t, ok)
			assert.Equal(t, tt.expected, row)
		})
	}
}

func TestParsePKESkipsGarbage(t *testing.T) {
	input := "keycode  38 = a A\n" +
		"not a keycode line\n" +
		"keycode abc = x X\n" +
		"\n" +
		"keycode  39 = s S"
	m := ParsePKE(input)
	assert.Equal(t, 2, m.Len())
	_, ok := m.Row(38)
	assert.True(t, ok)
	_, ok = m.Row(39)
	assert.True(t, ok)
}

func TestParsePKEBareKeycode(t *testing.T) {
	// A key with no symbols at all still gets a fully padded row.
	m := ParsePKE("keycode  92 =")
	row, ok := m.Row(92)
	require.True(t, ok)
	assert.Equal(t, Row{NoSymbol, NoSymbol, NoSymbol, NoSymbol}, row)
}

func TestParsePKEEmpty(t *testing.T) {
	assert.True(t, ParsePKE("").Empty())
	assert.False(t, ParsePKE("keycode 38 = a A").Empty())
}

func TestKeycodesSorted(t *testing.T) {
	m := ParsePKE("keycode 50 = Shift_L\nkeycode 10 = 1 exclam\nkeycode 38 = a A")
	assert.Equal(t, []Keycode{10, 38, 50}, m.Keycodes())
}
