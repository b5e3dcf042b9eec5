package qmk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no escapes", "Compiling keymap", "Compiling keymap"},
		{"color codes", "\x1b[32m[OK]\x1b[0m done", "[OK] done"},
		{"cursor movement", "\x1b[2Kprogress", "progress"},
		{"bare escape letter", "\x1bMline", "line"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripANSI(tt.input))
		})
	}
}

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line     string
		expected LineClass
	}{
		{"Compiling: keyboards/crkbd/keymaps/default/keymap.c", LineStep},
		{"Linking: .build/crkbd_rev1_default.elf", LineStep},
		{"Checking file size of crkbd_rev1_default.hex", LineStep},
		{"Creating load file for flashing", LineStep},
		{"Copying crkbd_rev1_default.hex to qmk_firmware folder", LineStep},
		{"[OK]", LineOK},
		{"Build finished with success", LineOK},
		{"keymap.c:12: warning: unused variable", LineWarn},
		{"keymap.c:40: error: expected ';'", LineError},
		{"make: *** [build] Failed", LineError},
		{"QMK Firmware 0.22.3", LinePlain},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyLine(tt.line))
		})
	}
}
