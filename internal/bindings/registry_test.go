package bindings

import (
	"path/filepath"
	"testing"

	"github.com/clemenscodes/joymouse/internal/keys"
	"github.com/clemenscodes/joymouse/internal/model"
	"github.com/stretchr/testify/require"
)

func TestEveryButtonHasAKey(t *testing.T) {
	reg, err := DefaultRegistry()
	require.NoError(t, err)
	for _, b := range model.AllButtons() {
		require.NotEmpty(t, reg.KeysFor(b), "button %s must have at least one bound key", b)
	}
}

func TestButtonForRoundTrip(t *testing.T) {
	reg, err := DefaultRegistry()
	require.NoError(t, err)
	for _, b := range model.AllButtons() {
		if b.IsJoystickButton() {
			continue
		}
		for _, k := range reg.KeysFor(b) {
			got, ok := reg.ButtonFor(k)
			require.True(t, ok)
			require.Equal(t, b, got)
		}
	}
}

func TestIsJoystickKey(t *testing.T) {
	reg, err := DefaultRegistry()
	require.NoError(t, err)
	require.True(t, reg.IsJoystickKey(keys.Alphabetic('W')))
	require.True(t, reg.IsJoystickKey(keys.Alphabetic('A')))
	require.False(t, reg.IsJoystickKey(keys.System(keys.SystemSpace)))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bindings.toml")

	def, err := DefaultRegistry()
	require.NoError(t, err)
	require.NoError(t, Save(path, def))

	loaded, err := Load(path)
	require.NoError(t, err)
	for _, b := range model.AllButtons() {
		require.Equal(t, def.KeysFor(b), loaded.KeysFor(b))
	}
}

func TestLoadMissingFileWritesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bindings.toml")

	reg, err := Load(path)
	require.NoError(t, err)
	require.FileExists(t, path)
	require.Equal(t, Defaults()[model.Forward], reg.KeysFor(model.Forward))
}

func TestFixedKeyOrderInFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bindings.toml")
	def, err := DefaultRegistry()
	require.NoError(t, err)
	require.NoError(t, Save(path, def))

	data, err := readFile(path)
	require.NoError(t, err)
	southIdx := indexOf(data, "south")
	selectIdx := indexOf(data, "select")
	require.True(t, southIdx >= 0 && selectIdx >= 0 && southIdx < selectIdx,
		"south must be serialised before select per the fixed canonical order")
}
