package bindings

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Device names an input device slot in an emitted profile.
type Device struct {
	Type     string
	Instance int
}

// EmitOptions configures profile emission.
type EmitOptions struct {
	// ProfileName is stamped on the ActionMaps root and the UI header.
	ProfileName string

	// Devices declares the device slots. Defaults to keyboard and mouse,
	// instance 1 each.
	Devices []Device
}

// DefaultEmitOptions returns options for a keyboard and mouse profile.
func DefaultEmitOptions(profileName string) EmitOptions {
	return EmitOptions{
		ProfileName: profileName,
		Devices: []Device{
			{Type: "keyboard", Instance: 1},
			{Type: "mouse", Instance: 1},
		},
	}
}

func (o EmitOptions) deviceInstance(devType string) int {
	for _, d := range o.Devices {
		if d.Type == devType {
			return d.Instance
		}
	}
	return 1
}

// modBucket orders modifier tokens the way the game writes them: ctrl, then
// alt, then shift, then anything else alphabetically.
func modBucket(token string) int {
	switch token {
	case "lctrl", "rctrl":
		return 0
	case "lalt", "ralt":
		return 1
	case "lshift", "rshift":
		return 2
	default:
		return 3
	}
}

// inputToken renders a bind as a rebind input value, including the device
// prefix. Binds whose main cannot be assigned by the game (wheels, axes,
// unbound) produce ok=false and are skipped by the emitter.
func inputToken(b Bind, kbInstance, moInstance int) (string, bool) {
	if !b.Main.Assignable() {
		return "", false
	}

	tokens := make([]string, 0, len(b.Modifiers)+1)
	for _, mod := range b.Modifiers {
		tokens = append(tokens, mod.Token())
	}
	sort.Slice(tokens, func(i, j int) bool {
		bi, bj := modBucket(tokens[i]), modBucket(tokens[j])
		if bi != bj {
			return bi < bj
		}
		return tokens[i] < tokens[j]
	})
	tokens = append(tokens, b.Main.Token())

	prefix := fmt.Sprintf("kb%d_", kbInstance)
	if b.Main.Kind == MainMouse {
		prefix = fmt.Sprintf("mo%d_", moInstance)
	}
	return prefix + strings.Join(tokens, "+"), true
}

// WriteProfile emits the graph's custom binds as a rebind profile document.
//
// The document is a diff against the defaults: only actions whose custom
// binds contain at least one active bind are written, in graph order.
// Generated binds are stamped with activationMode="press". The full document
// is assembled in memory and written in one piece, so a failed emission
// leaves w untouched.
func WriteProfile(w io.Writer, g *Graph, opts EmitOptions) error {
	if opts.ProfileName == "" {
		return fmt.Errorf("writing profile: empty profile name")
	}
	if len(opts.Devices) == 0 {
		opts.Devices = DefaultEmitOptions(opts.ProfileName).Devices
	}

	kbInstance := opts.deviceInstance("keyboard")
	moInstance := opts.deviceInstance("mouse")

	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")

	start := func(tag string, attrs ...xml.Attr) error {
		return enc.EncodeToken(xml.StartElement{Name: xml.Name{Local: tag}, Attr: attrs})
	}
	end := func(tag string) error {
		return enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: tag}})
	}
	attr := func(name, value string) xml.Attr {
		return xml.Attr{Name: xml.Name{Local: name}, Value: value}
	}

	if err := start("ActionMaps",
		attr("version", "1"),
		attr("optionsVersion", "2"),
		attr("rebindVersion", "2"),
		attr("profileName", opts.ProfileName),
	); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}

	if err := start("CustomisationUIHeader",
		attr("label", opts.ProfileName),
		attr("description", ""),
		attr("image", ""),
	); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}
	if err := start("devices"); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}
	for _, d := range opts.Devices {
		if err := start(d.Type, attr("instance", fmt.Sprintf("%d", d.Instance))); err != nil {
			return fmt.Errorf("writing profile: %w", err)
		}
		if err := end(d.Type); err != nil {
			return fmt.Errorf("writing profile: %w", err)
		}
	}
	if err := end("devices"); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}
	if err := end("CustomisationUIHeader"); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}

	if err := start("modifiers"); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}
	if err := end("modifiers"); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}

	for _, m := range g.Maps {
		actions := make([]*ActionBinding, 0)
		for _, action := range m.Actions {
			if action.CustomBinds.HasActiveBinds() {
				actions = append(actions, action)
			}
		}
		if len(actions) == 0 {
			continue
		}

		if err := start("actionmap", attr("name", m.Name)); err != nil {
			return fmt.Errorf("writing profile: %w", err)
		}

		for _, action := range actions {
			if err := start("action", attr("name", action.ActionName)); err != nil {
				return fmt.Errorf("writing profile: %w", err)
			}

			writeRebinds := func(device string, binds []Bind) error {
				for _, bind := range binds {
					token, ok := inputToken(bind, kbInstance, moInstance)
					if !ok {
						continue
					}
					attrs := []xml.Attr{attr("device", device)}
					if bind.Origin == OriginGenerated {
						attrs = append(attrs, attr("activationMode", "press"))
					}
					attrs = append(attrs, attr("input", token))
					if err := start("rebind", attrs...); err != nil {
						return err
					}
					if err := end("rebind"); err != nil {
						return err
					}
				}
				return nil
			}

			if err := writeRebinds("keyboard", action.CustomBinds.Keyboard); err != nil {
				return fmt.Errorf("writing profile: %w", err)
			}
			if err := writeRebinds("mouse", action.CustomBinds.Mouse); err != nil {
				return fmt.Errorf("writing profile: %w", err)
			}

			if err := end("action"); err != nil {
				return fmt.Errorf("writing profile: %w", err)
			}
		}

		if err := end("actionmap"); err != nil {
			return fmt.Errorf("writing profile: %w", err)
		}
	}

	if err := end("ActionMaps"); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}
	if err := enc.Flush(); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}
	buf.WriteByte('\n')

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}
	return nil
}
