package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodegafresh/qmkmap/internal/qmk"
)

func sampleCombos() []qmk.Combo {
	return []qmk.Combo{
		{Char: "a", KeyLabel: "a", Modifier: "", Symbol: "a", Expr: "KC_A", Found: true},
		{Char: "Ñ", KeyLabel: "ñ", Modifier: "Shift", Symbol: "Ntilde", Expr: "S(KC_SCLN)", Found: true},
		{Char: "ø", Found: false},
	}
}

func TestRows(t *testing.T) {
	rows := Rows(sampleCombos())
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"a", "a", "—", "a", "KC_A"}, rows[0])
	assert.Equal(t, []string{"Ñ", "ñ", "Shift", "Ntilde", "S(KC_SCLN)"}, rows[1])
	assert.Equal(t, []string{"ø", "—", "—", "—", "not found in this layout"}, rows[2])
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatCSV, sampleCombos()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Character,Key,Modifier,Keysym,QMK", lines[0])
	assert.Equal(t, "a,a,—,a,KC_A", lines[1])
	assert.Equal(t, "Ñ,ñ,Shift,Ntilde,S(KC_SCLN)", lines[2])
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatMD, sampleCombos()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "| Character | Key | Modifier | Keysym | QMK |", lines[0])
	assert.Equal(t, "|---|---|---|---|---|", lines[1])
	assert.Equal(t, "| a | a | — | a | KC_A |", lines[2])
}

func TestWritePlain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatPlain, sampleCombos()))

	out := buf.String()
	assert.Contains(t, out, "CHARACTER")
	assert.Contains(t, out, "KC_A")
	assert.Contains(t, out, "S(KC_SCLN)")
	assert.Contains(t, out, "not found in this layout")
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, Format("xml"), sampleCombos())
	assert.Error(t, err)
}
