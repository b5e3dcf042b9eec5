package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/bodegafresh/qmkmap/internal/configpaths"
)

// ConfigCommand groups config-related subcommands.
type ConfigCommand struct {
	Init ConfigInit `cmd:"" help:"Generate a configuration template"`
}

// ConfigInit scaffolds a configuration file for a specific command.
type ConfigInit struct {
	Command string `arg:"" name:"command" help:"Command to generate config for" enum:"table,inspect,compile,flash,clean"`
	Format  string `help:"Output format" enum:"json,yaml,toml" default:"json"`
	Output  string `help:"Destination file path (defaults to current directory)"`
	Force   bool   `help:"Overwrite if the file already exists"`
}

// Run generates a configuration template by reflecting over the command
// struct's kong tags, so templates track flag changes automatically.
func (c *ConfigInit) Run() error {
	var root map[string]any
	switch c.Command {
	case "table":
		root = templateFromStruct(reflect.TypeOf(Table{}))
	case "inspect":
		root = templateFromStruct(reflect.TypeOf(Inspect{}))
	case "compile":
		root = templateFromStruct(reflect.TypeOf(Compile{}))
	case "flash":
		root = templateFromStruct(reflect.TypeOf(Flash{}))
	case "clean":
		root = templateFromStruct(reflect.TypeOf(Clean{}))
	default:
		return fmt.Errorf("unknown command %q", c.Command)
	}

	dest := c.Output
	if dest == "" {
		dest = c.Command + "." + extFor(c.Format)
	}
	if !c.Force {
		if _, err := os.Stat(dest); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}
	if err := configpaths.EnsureDir(dest); err != nil {
		return err
	}

	var data []byte
	var err error
	switch extFor(c.Format) {
	case "yaml":
		data, err = yaml.Marshal(root)
	case "toml":
		data, err = toml.Marshal(root)
	default:
		data, err = json.MarshalIndent(root, "", "  ")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0o644)
}

func extFor(format string) string {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return "yaml"
	case "toml":
		return "toml"
	default:
		return "json"
	}
}

func templateFromStruct(t reflect.Type) map[string]any {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	out := map[string]any{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		// Embedded unexported flag structs still contribute fields.
		if !f.IsExported() && !(f.Anonymous && f.Type.Kind() == reflect.Struct) {
			continue
		}
		if f.Tag.Get("kong") == "-" {
			continue
		}

		if _, embedded := f.Tag.Lookup("embed"); embedded || f.Anonymous {
			sub := templateFromStruct(f.Type)
			name := strings.TrimSuffix(f.Tag.Get("prefix"), ".")
			if name == "" {
				for k, v := range sub {
					out[k] = v
				}
			} else {
				out[name] = sub
			}
			continue
		}

		key := f.Name
		if n := f.Tag.Get("name"); n != "" {
			key = n
		} else {
			r := []rune(key)
			if r[0] >= 'A' && r[0] <= 'Z' {
				r[0] += 'a' - 'A'
			}
			key = string(r)
		}
		if val := templateValue(f.Type, f.Tag.Get("default")); val != nil {
			out[key] = val
		}
	}
	return out
}

func templateValue(t reflect.Type, def string) any {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.PkgPath() == "time" && t.Name() == "Duration" {
		if def == "" {
			return "0s"
		}
		return def
	}
	switch t.Kind() {
	case reflect.String:
		return def
	case reflect.Bool:
		b, _ := strconv.ParseBool(def)
		return b
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, _ := strconv.ParseInt(def, 10, 64)
		return n
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, _ := strconv.ParseUint(def, 10, 64)
		return n
	case reflect.Float32, reflect.Float64:
		f, _ := strconv.ParseFloat(def, 64)
		return f
	case reflect.Struct:
		return templateFromStruct(t)
	default:
		return nil
	}
}
