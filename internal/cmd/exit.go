// Package cmd holds the kong command structs behind the qmkmap CLI.
package cmd

import "fmt"

// Exit codes for scripted callers.
const (
	// ExitNoLayout: the layout table could not be acquired at all.
	ExitNoLayout = 1
	// ExitNoRows: a layout was acquired but none of the wanted
	// characters resolved.
	ExitNoRows = 2
)

// ExitError carries a process exit code alongside the cause. main
// unwraps it to exit with the right status for scripts.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }
