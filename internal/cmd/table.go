package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/bodegafresh/qmkmap/internal/layout"
	"github.com/bodegafresh/qmkmap/internal/qmk"
	"github.com/bodegafresh/qmkmap/internal/render"
)

// Table resolves the active layout into a character-to-keycode table.
type Table struct {
	Format      string `help:"Output format" enum:"plain,md,csv" default:"plain" env:"QMKMAP_FORMAT"`
	ShowMissing bool   `name:"show-missing" help:"Keep rows for characters the layout cannot produce"`
	Chars       string `help:"Characters to resolve instead of the built-in set (whitespace separated, single characters)"`
}

// DefaultWanted is the built-in character set: Latin letters with
// Spanish ñ/Ñ, digits and the programming punctuation a keymap author
// cares about.
func DefaultWanted() []string {
	var out []string
	for c := 'a'; c <= 'z'; c++ {
		out = append(out, string(c))
	}
	out = append(out, "ñ")
	for c := 'A'; c <= 'Z'; c++ {
		out = append(out, string(c))
	}
	out = append(out, "Ñ")
	for c := '0'; c <= '9'; c++ {
		out = append(out, string(c))
	}
	punct := `[]{}()<>/\|~^` + "`" + `@#$%&*+-_=;:,"'!?.`
	out = append(out, strings.Split(punct, "")...)
	out = append(out, "¿", "¡", "°", "¬", "´")
	return out
}

// Run is called by Kong when the table command is executed.
func (t *Table) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	model, meta, err := layout.Acquire(ctx)
	if err != nil {
		return &ExitError{Code: ExitNoLayout, Err: err}
	}
	logger.Debug("layout acquired", "keys", model.Len(), "meta", meta.String())

	wanted := DefaultWanted()
	if t.Chars != "" {
		wanted = strings.Fields(t.Chars)
	}

	resolver := qmk.NewResolver(layout.BuildIndex(model))
	combos := resolver.ResolveAll(wanted, t.ShowMissing)
	if len(combos) == 0 {
		return &ExitError{Code: ExitNoRows, Err: fmt.Errorf("no wanted characters found in this layout")}
	}

	interactive := term.IsTerminal(int(os.Stdout.Fd())) && render.Format(t.Format) == render.FormatPlain
	if interactive {
		fmt.Printf("Detected layout: %s\n\n", meta.String())
	}

	if err := render.Write(os.Stdout, render.Format(t.Format), combos); err != nil {
		return err
	}

	if interactive {
		fmt.Println()
		fmt.Println("Tips:")
		fmt.Println("  - RALT(kc) emulates AltGr; S(kc) emulates Shift.")
		fmt.Println("  - Cross-check with: xmodmap -pke | less, xmodmap -pm, setxkbmap -query")
		fmt.Println("  - Dead keys (dead_acute, dead_grave, ...) print their accent when followed by Space.")
	}
	return nil
}
