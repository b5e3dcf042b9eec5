package log

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// EventLogger records normalized inspector lines with optional file
// output, separate from the structured process log.
type EventLogger interface {
	Event(source, line string)
}

type eventLogger struct {
	w  io.Writer
	mu sync.Mutex
}

// NewEventLogger wraps a writer. A nil writer yields a no-op logger.
func NewEventLogger(w io.Writer) EventLogger {
	return &eventLogger{w: w}
}

// Event emits one timestamped line tagged with the backend source.
func (e *eventLogger) Event(source, line string) {
	if e.w == nil {
		return
	}
	out := fmt.Sprintf("%s [%s] %s\n",
		time.Now().Format("2006/01/02 15:04:05"), source, line)

	e.mu.Lock()
	_, _ = e.w.Write([]byte(out))
	e.mu.Unlock()
}
