package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bodegafresh/qmkmap/internal/qmk"
)

type buildFlags struct {
	Dir      string `help:"qmk_firmware checkout to run in" default:"." type:"existingdir"`
	Keyboard string `short:"k" required:"" help:"Keyboard name (e.g. crkbd/rev1)" env:"QMKMAP_KEYBOARD"`
	Keymap   string `short:"m" required:"" help:"Keymap name" env:"QMKMAP_KEYMAP"`
}

// Compile runs qmk compile for a keyboard/keymap pair.
type Compile struct {
	buildFlags `embed:""`
}

// Run is called by Kong when the compile command is executed.
func (c *Compile) Run(logger *slog.Logger) error {
	return runQMK(c.buildFlags, "compile", logger)
}

// Flash runs qmk flash for a keyboard/keymap pair.
type Flash struct {
	buildFlags `embed:""`
}

// Run is called by Kong when the flash command is executed.
func (f *Flash) Run(logger *slog.Logger) error {
	return runQMK(f.buildFlags, "flash", logger)
}

// Clean runs qmk clean. It takes no keyboard/keymap.
type Clean struct {
	Dir string `help:"qmk_firmware checkout to run in" default:"." type:"existingdir"`
}

// Run is called by Kong when the clean command is executed.
func (c *Clean) Run(logger *slog.Logger) error {
	return runQMK(buildFlags{Dir: c.Dir}, "clean", logger)
}

func runQMK(f buildFlags, sub string, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	b := qmk.NewBuilder(f.Dir, f.Keyboard, f.Keymap, logger)
	code, err := b.Run(ctx, sub, func(class qmk.LineClass, line string) {
		switch class {
		case qmk.LineError:
			logger.Error(line)
		case qmk.LineWarn:
			logger.Warn(line)
		default:
			fmt.Println(line)
		}
	})
	if err != nil {
		return err
	}
	if code != 0 {
		return &ExitError{Code: code, Err: fmt.Errorf("qmk %s exited with status %d", sub, code)}
	}
	logger.Info("qmk finished", "subcommand", sub)
	return nil
}
