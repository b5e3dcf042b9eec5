// Package config declares the kong CLI grammar for qmkmap.
package config

import "github.com/bodegafresh/qmkmap/internal/cmd"

// LogFlags configures the process logger and the event sink.
type LogFlags struct {
	Level     string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"QMKMAP_LOG_LEVEL"`
	File      string `help:"Write structured logs to this file instead of the console" env:"QMKMAP_LOG_FILE"`
	EventFile string `help:"Append normalized inspector events to this file" env:"QMKMAP_EVENT_FILE"`
}

// CLI is the top-level command grammar.
type CLI struct {
	Config string   `help:"Path to a config file (json/yaml/toml)" env:"QMKMAP_CONFIG"`
	Log    LogFlags `embed:"" prefix:"log."`

	Table     cmd.Table         `cmd:"" help:"Resolve the active layout into a character-to-keycode table"`
	Inspect   cmd.Inspect       `cmd:"" help:"Watch live key presses and suggest keycodes"`
	Compile   cmd.Compile       `cmd:"" help:"Run qmk compile"`
	Flash     cmd.Flash         `cmd:"" help:"Run qmk flash"`
	Clean     cmd.Clean         `cmd:"" help:"Run qmk clean"`
	ConfigCmd cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration file helpers"`
}
