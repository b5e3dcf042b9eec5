package main

import (
	"errors"
	"os"
	"strings"

	"github.com/bodegafresh/qmkmap/internal/cmd"
	"github.com/bodegafresh/qmkmap/internal/config"
	"github.com/bodegafresh/qmkmap/internal/configpaths"
	"github.com/bodegafresh/qmkmap/internal/log"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
)

func main() {

	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)

	var cli config.CLI
	ctx := kong.Parse(&cli,
		kong.Name("qmkmap"),
		kong.Description("Keyboard layout to QMK keycode helper"),
		kong.UsageOnError(),
		// Load configuration from JSON/YAML/TOML in priority order; flags/env override config values.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, closeFiles, err := log.SetupLogger(cli.Log.Level, cli.Log.File)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()

	var events log.EventLogger
	if cli.Log.EventFile != "" {
		f, err := os.OpenFile(cli.Log.EventFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			logger.Error("failed to open event file", "file", cli.Log.EventFile, "error", err)
			events = log.NewEventLogger(nil)
		} else {
			events = log.NewEventLogger(f)
			closeFiles = append(closeFiles, f)
		}
	} else {
		events = log.NewEventLogger(nil)
	}

	ctx.Bind(logger)
	ctx.BindTo(events, (*log.EventLogger)(nil))

	err = ctx.Run()
	var exitErr *cmd.ExitError
	if errors.As(err, &exitErr) {
		logger.Error(exitErr.Error())
		for _, c := range closeFiles {
			_ = c.Close()
		}
		os.Exit(exitErr.Code)
	}
	ctx.FatalIfErrorf(err)
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	if v := os.Getenv("QMKMAP_CONFIG"); v != "" {
		return v
	}
	return ""
}
