package layout

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Acquire reads the active keymap from the X session and builds the
// layout model plus its display metadata. A missing display session or
// an empty keymap is fatal: no partial layout can be safely assumed.
func Acquire(ctx context.Context) (*Model, Metadata, error) {
	if os.Getenv("DISPLAY") == "" {
		return nil, Metadata{}, errors.New("no DISPLAY set; run inside an X11/XWayland session")
	}
	out, err := runTool(ctx, "xmodmap", "-pke")
	if err != nil {
		return nil, Metadata{}, fmt.Errorf("xmodmap -pke failed (is x11-utils installed?): %w", err)
	}
	model := ParsePKE(out)
	if model.Empty() {
		return nil, Metadata{}, errors.New("xmodmap -pke returned an empty keymap")
	}
	return model, DetectMetadata(ctx), nil
}

// DetectMetadata gathers informational layout metadata from setxkbmap,
// localectl and xmodmap. Every probe is best-effort; failures leave the
// corresponding fields empty.
func DetectMetadata(ctx context.Context) Metadata {
	md := Metadata{AltGrModifier: "mod5"}
	if out, err := runTool(ctx, "setxkbmap", "-query"); err == nil {
		kv := ParseXKBQuery(out)
		md.Layout = kv["layout"]
		md.Variant = kv["variant"]
		md.Model = kv["model"]
	}
	if md.Layout == "" {
		if out, err := runTool(ctx, "localectl", "status"); err == nil {
			md.Layout, md.Variant = ParseLocalectl(out)
		}
	}
	if out, err := runTool(ctx, "xmodmap", "-pm"); err == nil {
		md.AltGrModifier = ParseModifierMap(out)
	}
	return md
}

func runTool(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
