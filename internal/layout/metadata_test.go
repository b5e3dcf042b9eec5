package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseXKBQuery(t *testing.T) {
	out := ParseXKBQuery(`rules:      evdev
model:      pc105
layout:     latam
variant:    deadtilde
options:    terminate:ctrl_alt_bksp`)
	assert.Equal(t, "latam", out["layout"])
	assert.Equal(t, "deadtilde", out["variant"])
	assert.Equal(t, "pc105", out["model"])
}

func TestParseLocalectl(t *testing.T) {
	layoutName, variant := ParseLocalectl(`   System Locale: LANG=es_CL.UTF-8
       VC Keymap: la-latin1
      X11 Layout: latam
     X11 Variant: deadtilde`)
	assert.Equal(t, "latam", layoutName)
	assert.Equal(t, "deadtilde", variant)
}

func TestParseModifierMap(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name: "level3 shift on mod5",
			input: `shift       Shift_L (0x32),  Shift_R (0x3e)
mod1        Alt_L (0x40),  Meta_L (0xcd)
mod5        ISO_Level3_Shift (0x5c),  Mode_switch (0xcb)`,
			expected: "mod5",
		},
		{
			name:     "mode switch on mod3",
			input:    "mod3        Mode_switch (0xcb)",
			expected: "mod3",
		},
		{
			name:     "no match defaults to mod5",
			input:    "shift       Shift_L (0x32)\nmod1        Alt_L (0x40)",
			expected: "mod5",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseModifierMap(tt.input))
		})
	}
}

func TestMetadataString(t *testing.T) {
	md := Metadata{Layout: "latam", Variant: "", Model: "pc105", AltGrModifier: "mod5"}
	assert.Equal(t, `layout="latam" variant="" model="pc105" (AltGr -> mod5)`, md.String())
}
