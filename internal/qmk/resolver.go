package qmk

import (
	"sort"

	"github.com/bodegafresh/qmkmap/internal/layout"
)

// Combo is one resolved row: how the active layout produces Char, and
// the QMK expression reproducing it in firmware.
type Combo struct {
	Char     string
	KeyLabel string
	Modifier string // "", "Shift", "AltGr", "Shift+AltGr"
	Symbol   string
	Expr     string
	Found    bool
}

// Resolver selects the cheapest occurrence for requested characters.
type Resolver struct {
	idx layout.Index
}

// NewResolver wraps a built reverse index.
func NewResolver(idx layout.Index) *Resolver {
	return &Resolver{idx: idx}
}

// Resolve returns the combo for char. Occurrences are re-sorted by
// level ascending (stable, ties keep discovery order), preferring the
// simplest keystroke: bare, then Shift, then AltGr, then both. ok is
// false when the layout cannot produce char at all.
func (r *Resolver) Resolve(char string) (Combo, bool) {
	occs := r.idx[char]
	if len(occs) == 0 {
		return Combo{Char: char}, false
	}
	sorted := make([]layout.Occurrence, len(occs))
	copy(sorted, occs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Level < sorted[j].Level })
	occ := sorted[0]
	return Combo{
		Char:     char,
		KeyLabel: layout.PreferredLabel(occ.Row),
		Modifier: ModifierLabel(occ.Level),
		Symbol:   occ.Symbol,
		Expr:     Wrap(BaseHypothesis(occ), occ.Level),
		Found:    true,
	}, true
}

// ResolveAll resolves wanted characters independently, preserving input
// order. Missing characters are dropped unless showMissing is set, in
// which case they appear as placeholder rows with Found unset.
func (r *Resolver) ResolveAll(wanted []string, showMissing bool) []Combo {
	out := make([]Combo, 0, len(wanted))
	for _, ch := range wanted {
		combo, ok := r.Resolve(ch)
		if !ok && !showMissing {
			continue
		}
		out = append(out, combo)
	}
	return out
}
