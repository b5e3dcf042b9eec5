package capture

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	evdev "github.com/holoplot/go-evdev"
	"golang.org/x/sys/unix"
)

// Device describes one /dev/input node.
type Device struct {
	Path string
	Name string
}

// ListDevices enumerates readable input devices.
func ListDevices() ([]Device, error) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return nil, fmt.Errorf("list input devices: %w", err)
	}
	out := make([]Device, 0, len(paths))
	for _, p := range paths {
		out = append(out, Device{Path: p.Path, Name: p.Name})
	}
	return out, nil
}

// EvdevBackend reads raw scancodes from one input device on a worker
// goroutine and hands them to the consumer through a bounded queue.
// Scancodes carry no symbol layer: emitted events have Key only, and
// the keycode suggestion falls back to the unknown marker.
type EvdevBackend struct {
	dev    *evdev.InputDevice
	path   string
	queue  chan Event
	stop   atomic.Bool
	done   chan struct{}
	mods   ModState
	logger *slog.Logger
}

// OpenEvdev opens the device read-only. Access is probed first so the
// error names the usual cause instead of a bare EACCES from the read
// loop.
func OpenEvdev(path string, logger *slog.Logger) (*EvdevBackend, error) {
	if err := unix.Access(path, unix.R_OK); err != nil {
		return nil, fmt.Errorf("device %s not readable (try running as root): %w", path, err)
	}
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &EvdevBackend{
		dev:    dev,
		path:   path,
		queue:  make(chan Event, 128),
		done:   make(chan struct{}),
		logger: logger,
	}, nil
}

// Start launches the read loop.
func (b *EvdevBackend) Start() {
	go b.loop()
}

// Stop asks the read loop to exit. The loop checks the flag between
// reads, so shutdown completes after the next incoming event; the
// device is not force-closed out from under a blocked read.
func (b *EvdevBackend) Stop() {
	b.stop.Store(true)
}

// Done is closed when the read loop has exited.
func (b *EvdevBackend) Done() <-chan struct{} {
	return b.done
}

// Drain hands over all queued events without blocking.
func (b *EvdevBackend) Drain(emit func(Event)) {
	for {
		select {
		case e := <-b.queue:
			emit(e)
		default:
			return
		}
	}
}

func (b *EvdevBackend) loop() {
	defer close(b.done)
	defer b.dev.Close()

	for {
		if b.stop.Load() {
			return
		}
		ie, err := b.dev.ReadOne()
		if err != nil {
			if !b.stop.Load() {
				b.push(Event{
					Source:  SourceEvdev,
					Err:     true,
					Comment: fmt.Sprintf("device read failed: %v", err),
				})
			}
			return
		}
		if ie.Type != evdev.EV_KEY {
			continue
		}

		name, ok := evdev.KEYToString[ie.Code]
		if !ok {
			name = fmt.Sprintf("KEY_%d", ie.Code)
		}
		pressed := ie.Value == 1
		released := ie.Value == 0
		if b.mods.HandleScancode(name, pressed, released) {
			continue
		}
		if !pressed {
			continue
		}

		e := Event{
			Source:  SourceEvdev,
			Key:     name,
			Comment: fmt.Sprintf("scancode=%d", ie.Code),
		}
		b.mods.Apply(&e)
		b.push(e)
	}
}

func (b *EvdevBackend) push(e Event) {
	select {
	case b.queue <- e:
	default:
		b.logger.Warn("event queue full, dropping event", "key", e.Key)
	}
}
