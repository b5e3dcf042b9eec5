package layout

// Occurrence records one way to produce a character: the physical key,
// the modifier level, the keysym at that level, and the key's full row.
type Occurrence struct {
	Code   Keycode
	Level  Level
	Symbol string
	Row    Row
}

// Index maps a displayable character to every occurrence producing it,
// in discovery order (keycode ascending, level ascending). A character
// may occur at several keys and levels.
type Index map[string][]Occurrence

// BuildIndex inverts a layout model. Dead keysyms never enter the index
// as ordinary characters: alone they produce no output. The
// standalone-dead overrides are merged in a post-pass, taking priority
// over that exclusion for exactly those keysyms.
func BuildIndex(m *Model) Index {
	idx := make(Index)
	for _, code := range m.Keycodes() {
		row, _ := m.Row(code)
		for lvl := 0; lvl < Levels; lvl++ {
			sym := row[lvl]
			if sym == NoSymbol || IsDead(sym) {
				continue
			}
			ch, class := ResolveChar(sym)
			if class != CharPlain {
				continue
			}
			idx[ch] = append(idx[ch], Occurrence{Code: code, Level: Level(lvl), Symbol: sym, Row: row})
		}
	}
	for _, code := range m.Keycodes() {
		row, _ := m.Row(code)
		for lvl := 0; lvl < Levels; lvl++ {
			ch, ok := StandaloneDeadChar(row[lvl])
			if !ok {
				continue
			}
			idx[ch] = append(idx[ch], Occurrence{Code: code, Level: Level(lvl), Symbol: row[lvl], Row: row})
		}
	}
	return idx
}
