package layout

import (
	"fmt"
	"strings"
)

// Metadata describes the active layout for display purposes only; it is
// never consulted during resolution.
type Metadata struct {
	Layout  string
	Variant string
	Model   string
	// AltGrModifier is the X modifier group carrying ISO_Level3_Shift
	// or Mode_switch, usually mod5.
	AltGrModifier string
}

func (md Metadata) String() string {
	return fmt.Sprintf("layout=%q variant=%q model=%q (AltGr -> %s)",
		md.Layout, md.Variant, md.Model, md.AltGrModifier)
}

// ParseXKBQuery parses `setxkbmap -query` output into key/value pairs
// (rules, model, layout, variant, options).
func ParseXKBQuery(text string) map[string]string {
	out := make(map[string]string)
	for _, line := range strings.Split(text, "\n") {
		k, v, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		out[strings.ToLower(strings.TrimSpace(k))] = strings.TrimSpace(v)
	}
	return out
}

// ParseLocalectl extracts the X11 layout and variant from
// `localectl status` output.
func ParseLocalectl(text string) (layoutName, variant string) {
	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.Contains(line, "X11 Layout"):
			if _, v, ok := strings.Cut(line, ":"); ok {
				layoutName = strings.TrimSpace(v)
			}
		case strings.Contains(line, "X11 Variant"):
			if _, v, ok := strings.Cut(line, ":"); ok {
				variant = strings.TrimSpace(v)
			}
		}
	}
	return layoutName, variant
}

// ParseModifierMap finds the modifier group holding the AltGr role in
// `xmodmap -pm` output, e.g.:
//
//	mod5        ISO_Level3_Shift (0x5c),  Mode_switch (0xcb)
//
// Defaults to mod5 when no group matches.
func ParseModifierMap(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if !strings.HasPrefix(line, "mod") {
			continue
		}
		if strings.Contains(line, "ISO_Level3_Shift") || strings.Contains(line, "Mode_switch") {
			if fields := strings.Fields(line); len(fields) > 0 {
				return fields[0]
			}
		}
	}
	return "mod5"
}
