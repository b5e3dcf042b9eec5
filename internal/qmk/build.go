package qmk

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"regexp"
	"strings"
)

// LineClass categorizes one line of qmk build output for display.
type LineClass int

const (
	LinePlain LineClass = iota
	LineCommand
	LineStep
	LineOK
	LineWarn
	LineError
)

var ansiEscape = regexp.MustCompile(`\x1b(?:[@-Z\\-_]|\[[0-?]*[ -/]*[@-~])`)

// StripANSI removes ANSI escape sequences from build tool output.
func StripANSI(s string) string {
	return ansiEscape.ReplaceAllString(s, "")
}

// ClassifyLine tags a cleaned output line so renderers can highlight
// failures, warnings and build steps.
func ClassifyLine(line string) LineClass {
	lower := strings.ToLower(line)
	switch {
	case strings.Contains(lower, "error") || strings.Contains(lower, "failed"):
		return LineError
	case strings.Contains(lower, "warning"):
		return LineWarn
	case strings.Contains(lower, "[ok]") || strings.Contains(lower, "success"):
		return LineOK
	case strings.HasPrefix(line, "Compiling") || strings.HasPrefix(line, "Linking") ||
		strings.HasPrefix(line, "Checking") || strings.HasPrefix(line, "Creating") ||
		strings.HasPrefix(line, "Copying"):
		return LineStep
	default:
		return LinePlain
	}
}

// Builder invokes the external qmk tool in a working directory. Only
// the exit status and the streamed text matter; build output is never
// parsed beyond per-line classification.
type Builder struct {
	Dir      string
	Keyboard string
	Keymap   string
	logger   *slog.Logger
}

// NewBuilder returns a Builder for one keyboard/keymap pair.
func NewBuilder(dir, keyboard, keymap string, logger *slog.Logger) *Builder {
	return &Builder{Dir: dir, Keyboard: keyboard, Keymap: keymap, logger: logger}
}

// Run executes one qmk subcommand (compile, flash, clean) and streams
// classified output lines to emit. stdout and stderr are interleaved.
// Returns the process exit status; a non-zero status is not an error
// here, the caller decides how to surface it.
func (b *Builder) Run(ctx context.Context, subcommand string, emit func(LineClass, string)) (int, error) {
	args := []string{subcommand}
	switch subcommand {
	case "compile", "flash":
		args = append(args, "-kb", b.Keyboard, "-km", b.Keymap)
	}

	cmd := exec.CommandContext(ctx, "qmk", args...)
	cmd.Dir = b.Dir
	pr, pw := io.Pipe()
	cmd.Stdout = pw
	cmd.Stderr = pw

	emit(LineCommand, "$ qmk "+strings.Join(args, " "))
	b.logger.Debug("starting qmk", "args", args, "dir", b.Dir)

	if err := cmd.Start(); err != nil {
		_ = pw.Close()
		_ = pr.Close()
		if errors.Is(err, exec.ErrNotFound) {
			return 127, fmt.Errorf("qmk not found in PATH (install with e.g. 'pipx install qmk'): %w", err)
		}
		return 1, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		sc := bufio.NewScanner(pr)
		sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for sc.Scan() {
			line := StripANSI(sc.Text())
			emit(ClassifyLine(line), line)
		}
	}()

	waitErr := cmd.Wait()
	_ = pw.Close()
	<-done
	_ = pr.Close()

	if waitErr != nil {
		var ee *exec.ExitError
		if errors.As(waitErr, &ee) {
			return ee.ExitCode(), nil
		}
		return 1, waitErr
	}
	return 0, nil
}
