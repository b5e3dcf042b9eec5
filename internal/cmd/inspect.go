package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/bodegafresh/qmkmap/internal/capture"
	"github.com/bodegafresh/qmkmap/internal/layout"
	"github.com/bodegafresh/qmkmap/internal/log"
)

// Inspect watches live key presses and prints a keycode suggestion per
// event.
type Inspect struct {
	Backend     string        `help:"Capture backend" enum:"x11,evdev,both" default:"x11"`
	Device      string        `help:"Input device path for the evdev backend (e.g. /dev/input/event3)" env:"QMKMAP_DEVICE"`
	ListDevices bool          `name:"list-devices" help:"List input devices and exit"`
	Poll        time.Duration `help:"Poll interval for the capture loop" default:"30ms"`
}

// Run is called by Kong when the inspect command is executed.
func (i *Inspect) Run(logger *slog.Logger, events log.EventLogger) error {
	if i.ListDevices {
		return listDevices()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	useX11 := i.Backend == "x11" || i.Backend == "both"
	useEvdev := i.Backend == "evdev" || i.Backend == "both"

	var x11 *capture.X11Backend
	if useX11 {
		model, meta, err := layout.Acquire(ctx)
		if err != nil {
			return &ExitError{Code: ExitNoLayout, Err: err}
		}
		logger.Info("layout acquired", "keys", model.Len(), "meta", meta.String())

		x11, err = capture.OpenX11(model, logger)
		if err != nil {
			return &ExitError{Code: ExitNoLayout, Err: err}
		}
		defer x11.Close()
		fmt.Println("Focus the \"qmkmap inspector\" window and press keys. Ctrl+C to quit.")
	}

	var ev *capture.EvdevBackend
	if useEvdev {
		if i.Device == "" {
			return fmt.Errorf("the evdev backend needs --device (see --list-devices)")
		}
		var err error
		ev, err = capture.OpenEvdev(i.Device, logger)
		if err != nil {
			return err
		}
		ev.Start()
		defer ev.Stop()
		fmt.Printf("Reading raw scancodes from %s. Ctrl+C to quit.\n", i.Device)
	}

	emit := func(e capture.Event) {
		if e.Err {
			logger.Error("backend failure", "source", e.Source, "error", e.Comment)
			events.Event(string(e.Source), "ERROR "+e.Comment)
			return
		}
		char := e.Char
		if char == "" {
			char = "—"
		}
		line := fmt.Sprintf("%s | key=%s char=%q | %s (%s)",
			e.Combo(), e.Key, char, e.Suggestion(), e.Comment)
		fmt.Println(line)
		events.Event(string(e.Source), line)
	}

	ticker := time.NewTicker(i.Poll)
	defer ticker.Stop()

	var evDone <-chan struct{}
	if ev != nil {
		evDone = ev.Done()
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-evDone:
			// Hand over whatever the worker queued before exiting.
			ev.Drain(emit)
			if x11 == nil {
				return nil
			}
			evDone = nil
		case <-ticker.C:
			if x11 != nil {
				if err := x11.Poll(emit); err != nil {
					return err
				}
			}
			if ev != nil {
				ev.Drain(emit)
			}
		}
	}
}

func listDevices() error {
	devices, err := capture.ListDevices()
	if err != nil {
		return err
	}
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Path", "Name"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding(" ")
	for _, d := range devices {
		table.Append([]string{d.Path, d.Name})
	}
	table.Render()
	return nil
}
