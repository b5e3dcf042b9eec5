package layout

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Levels is the number of modifier levels tracked per physical key:
// bare, Shift, AltGr, Shift+AltGr. Layouts with more shift levels are
// out of scope; extra symbols are truncated.
const Levels = 4

// Keycode identifies a physical key position in the X keymap.
type Keycode int

// Level indexes into a key's symbol row: 0 bare, 1 Shift, 2 AltGr,
// 3 Shift+AltGr.
type Level int

// Row is the ordered symbol row of one physical key, padded with
// NoSymbol so every key carries exactly Levels entries.
type Row [Levels]string

// Model maps physical keycodes to their symbol rows. Built once per
// invocation from the raw xmodmap table, immutable afterwards.
type Model struct {
	rows map[Keycode]Row
}

var pkeLine = regexp.MustCompile(`^keycode\s+(\d+)\s+=\s*(.*)$`)

// ParsePKE parses the output of `xmodmap -pke` into a Model. Lines that
// do not match the keycode format are skipped; symbol lists are padded
// or truncated to exactly Levels entries.
func ParsePKE(text string) *Model {
	rows := make(map[Keycode]Row)
	for _, line := range strings.Split(text, "\n") {
		m := pkeLine.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		code, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		syms := strings.Fields(m[2])
		var row Row
		for i := 0; i < Levels; i++ {
			if i < len(syms) {
				row[i] = syms[i]
			} else {
				row[i] = NoSymbol
			}
		}
		rows[Keycode(code)] = row
	}
	return &Model{rows: rows}
}

// Empty reports whether the model holds no keys at all. An empty model
// is fatal for layout-aware resolution.
func (m *Model) Empty() bool {
	return len(m.rows) == 0
}

// Len returns the number of physical keys in the model.
func (m *Model) Len() int {
	return len(m.rows)
}

// Row returns the symbol row for a keycode.
func (m *Model) Row(code Keycode) (Row, bool) {
	row, ok := m.rows[code]
	return row, ok
}

// Keycodes returns all keycodes in ascending order, so index building
// has a deterministic discovery order.
func (m *Model) Keycodes() []Keycode {
	codes := make([]Keycode, 0, len(m.rows))
	for code := range m.rows {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}
