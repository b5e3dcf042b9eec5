package capture

import (
	"fmt"
	"log/slog"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"

	"github.com/bodegafresh/qmkmap/internal/layout"
)

// X11Backend captures key events through a small mapped window. It only
// sees events while that window is focused, which is the point: focus
// the window, press keys, nothing leaks in from other applications.
// Keycodes are translated through the same xmodmap model the static
// path uses, so both paths agree on symbols.
type X11Backend struct {
	conn   *xgb.Conn
	win    xproto.Window
	model  *layout.Model
	mods   ModState
	logger *slog.Logger
}

// OpenX11 connects to the display and maps the capture window.
func OpenX11(model *layout.Model, logger *slog.Logger) (*X11Backend, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect to X display: %w", err)
	}

	setup := xproto.Setup(conn)
	screen := setup.DefaultScreen(conn)

	win, err := xproto.NewWindowId(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("allocate window id: %w", err)
	}

	err = xproto.CreateWindowChecked(conn, screen.RootDepth, win, screen.Root,
		0, 0, 480, 120, 0,
		xproto.WindowClassInputOutput, screen.RootVisual,
		xproto.CwEventMask,
		[]uint32{xproto.EventMaskKeyPress | xproto.EventMaskKeyRelease},
	).Check()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("create capture window: %w", err)
	}

	title := "qmkmap inspector"
	xproto.ChangeProperty(conn, xproto.PropModeReplace, win,
		xproto.AtomWmName, xproto.AtomString, 8, uint32(len(title)), []byte(title))
	xproto.MapWindow(conn, win)

	logger.Debug("capture window mapped", "window", win)
	return &X11Backend{conn: conn, win: win, model: model, logger: logger}, nil
}

// Poll drains all pending X events without blocking, emitting one Event
// per non-modifier key press. Returns an error only when the connection
// is gone.
func (b *X11Backend) Poll(emit func(Event)) error {
	for {
		ev, xerr := b.conn.PollForEvent()
		if ev == nil && xerr == nil {
			return nil
		}
		if xerr != nil {
			b.logger.Debug("x11 protocol error", "error", xerr)
			continue
		}
		switch e := ev.(type) {
		case xproto.KeyPressEvent:
			b.handleKey(layout.Keycode(e.Detail), true, emit)
		case xproto.KeyReleaseEvent:
			b.handleKey(layout.Keycode(e.Detail), false, emit)
		}
	}
}

func (b *X11Backend) handleKey(code layout.Keycode, pressed bool, emit func(Event)) {
	row, ok := b.model.Row(code)
	if !ok {
		return
	}
	if row[0] != layout.NoSymbol && b.mods.HandleKeysym(row[0], pressed) {
		return
	}
	if !pressed {
		return
	}

	sym := symbolAt(row, b.mods.Shift, b.mods.AltR)
	var char string
	if c, class := layout.ResolveChar(sym); class == layout.CharPlain {
		char = c
	}

	e := Event{
		Source:  SourceX11,
		Key:     sym,
		Char:    char,
		Comment: fmt.Sprintf("keycode=%d", code),
	}
	b.mods.Apply(&e)
	emit(e)
}

// symbolAt picks the row symbol for the live modifier flags, falling
// back to level 0 when the selected slot is empty.
func symbolAt(row layout.Row, shift, altgr bool) string {
	lvl := 0
	if shift {
		lvl++
	}
	if altgr {
		lvl += 2
	}
	if row[lvl] == layout.NoSymbol {
		return row[0]
	}
	return row[lvl]
}

// Close unmaps the window and drops the connection.
func (b *X11Backend) Close() {
	xproto.DestroyWindow(b.conn, b.win)
	b.conn.Close()
}
