package bindings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/clemenscodes/joymouse/internal/keys"
	"github.com/clemenscodes/joymouse/internal/model"
)

// bindingsFile mirrors the fixed binding order from the spec (South,
// East, North, West, Up, Down, Left, Right, Forward, Backward, Starboard,
// Port, L1, R1, L2, R2, L3, R3, Start, Select) as struct field order, so
// the TOML encoder writes keys in that order regardless of Go map
// iteration order.
type bindingsFile struct {
	South     []string `toml:"south"`
	East      []string `toml:"east"`
	North     []string `toml:"north"`
	West      []string `toml:"west"`
	Up        []string `toml:"up"`
	Down      []string `toml:"down"`
	Left      []string `toml:"left"`
	Right     []string `toml:"right"`
	Forward   []string `toml:"forward"`
	Backward  []string `toml:"backward"`
	Starboard []string `toml:"starboard"`
	Port      []string `toml:"port"`
	L1        []string `toml:"l1"`
	R1        []string `toml:"r1"`
	L2        []string `toml:"l2"`
	R2        []string `toml:"r2"`
	L3        []string `toml:"l3"`
	R3        []string `toml:"r3"`
	Start     []string `toml:"start"`
	Select    []string `toml:"select"`
}

func keysToStrings(ks []keys.Key) []string {
	out := make([]string, len(ks))
	for i, k := range ks {
		out[i] = k.String()
	}
	return out
}

func stringsToKeys(ss []string) ([]keys.Key, error) {
	out := make([]keys.Key, len(ss))
	for i, s := range ss {
		k, err := keys.ParseKey(s)
		if err != nil {
			return nil, err
		}
		out[i] = k
	}
	return out, nil
}

func toFile(r *Registry) *bindingsFile {
	return &bindingsFile{
		South:     keysToStrings(r.KeysFor(model.South)),
		East:      keysToStrings(r.KeysFor(model.East)),
		North:     keysToStrings(r.KeysFor(model.North)),
		West:      keysToStrings(r.KeysFor(model.West)),
		Up:        keysToStrings(r.KeysFor(model.Up)),
		Down:      keysToStrings(r.KeysFor(model.Down)),
		Left:      keysToStrings(r.KeysFor(model.Left)),
		Right:     keysToStrings(r.KeysFor(model.Right)),
		Forward:   keysToStrings(r.KeysFor(model.Forward)),
		Backward:  keysToStrings(r.KeysFor(model.Backward)),
		Starboard: keysToStrings(r.KeysFor(model.Starboard)),
		Port:      keysToStrings(r.KeysFor(model.Port)),
		L1:        keysToStrings(r.KeysFor(model.L1)),
		R1:        keysToStrings(r.KeysFor(model.R1)),
		L2:        keysToStrings(r.KeysFor(model.L2)),
		R2:        keysToStrings(r.KeysFor(model.R2)),
		L3:        keysToStrings(r.KeysFor(model.L3)),
		R3:        keysToStrings(r.KeysFor(model.R3)),
		Start:     keysToStrings(r.KeysFor(model.Start)),
		Select:    keysToStrings(r.KeysFor(model.Select)),
	}
}

func fromFile(f *bindingsFile) (map[model.ControllerButton][]keys.Key, error) {
	entries := []struct {
		button model.ControllerButton
		ss     []string
	}{
		{model.South, f.South}, {model.East, f.East}, {model.North, f.North}, {model.West, f.West},
		{model.Up, f.Up}, {model.Down, f.Down}, {model.Left, f.Left}, {model.Right, f.Right},
		{model.Forward, f.Forward}, {model.Backward, f.Backward}, {model.Starboard, f.Starboard}, {model.Port, f.Port},
		{model.L1, f.L1}, {model.R1, f.R1}, {model.L2, f.L2}, {model.R2, f.R2},
		{model.L3, f.L3}, {model.R3, f.R3}, {model.Start, f.Start}, {model.Select, f.Select},
	}
	out := make(map[model.ControllerButton][]keys.Key, len(entries))
	for _, e := range entries {
		ks, err := stringsToKeys(e.ss)
		if err != nil {
			return nil, fmt.Errorf("bindings: button %s: %w", e.button, err)
		}
		out[e.button] = ks
	}
	return out, nil
}

// Path returns the canonical bindings file path under configDir, which
// is normally os.UserConfigDir()/joymouse.
func Path(configDir string) string {
	return filepath.Join(configDir, "bindings.toml")
}

// Load reads the bindings file at path. If the file does not exist, it
// is created with Defaults. If the file exists but cannot be parsed, the
// error is wrapped with the file path and returned so the caller can log a
// diagnostic and fall back to Defaults itself -- the registry never
// silently substitutes a different binding set without the caller's
// knowledge.
func Load(path string) (*Registry, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		reg, rerr := DefaultRegistry()
		if rerr != nil {
			return nil, rerr
		}
		if werr := Save(path, reg); werr != nil {
			return nil, werr
		}
		return reg, nil
	}

	var f bindingsFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("bindings: parsing %s: %w", path, err)
	}
	forward, err := fromFile(&f)
	if err != nil {
		return nil, err
	}
	return New(forward)
}

// Save writes the registry to path in the fixed canonical key order.
func Save(path string, r *Registry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("bindings: creating config dir: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".bindings-*.toml")
	if err != nil {
		return fmt.Errorf("bindings: creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	enc := toml.NewEncoder(tmp)
	if err := enc.Encode(toFile(r)); err != nil {
		tmp.Close()
		return fmt.Errorf("bindings: encoding: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("bindings: closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("bindings: renaming into place: %w", err)
	}
	return nil
}
