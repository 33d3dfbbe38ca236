// Package bindings implements the Binding Registry: the bidirectional
// map between virtual ControllerButtons and the physical Keys that
// trigger them, along with its TOML persistence.
package bindings

import (
	"fmt"

	"github.com/clemenscodes/joymouse/internal/keys"
	"github.com/clemenscodes/joymouse/internal/model"
)

// Registry is the bidirectional binding map. The forward map is the
// source of truth; the reverse map is derived from it by flattening.
type Registry struct {
	forward map[model.ControllerButton][]keys.Key
	reverse map[keys.Key]model.ControllerButton
}

// New builds a Registry from a forward map, deriving the reverse map and
// validating that every button has at least one key (the invariant the
// spec requires of the binding registry).
func New(forward map[model.ControllerButton][]keys.Key) (*Registry, error) {
	r := &Registry{
		forward: make(map[model.ControllerButton][]keys.Key, len(forward)),
		reverse: make(map[keys.Key]model.ControllerButton),
	}
	for _, b := range model.AllButtons() {
		ks, ok := forward[b]
		if !ok || len(ks) == 0 {
			return nil, fmt.Errorf("bindings: button %s has no bound key", b)
		}
		cp := make([]keys.Key, len(ks))
		copy(cp, ks)
		r.forward[b] = cp
		for _, k := range ks {
			r.reverse[k] = b
		}
	}
	return r, nil
}

// KeysFor returns the keys bound to a button, in binding order.
func (r *Registry) KeysFor(b model.ControllerButton) []keys.Key {
	return r.forward[b]
}

// ButtonFor returns the button a key is bound to, if any.
func (r *Registry) ButtonFor(k keys.Key) (model.ControllerButton, bool) {
	b, ok := r.reverse[k]
	return b, ok
}

// IsJoystickKey reports whether a key is bound to one of the four
// virtual left-stick direction buttons (Forward/Backward/Port/Starboard).
func (r *Registry) IsJoystickKey(k keys.Key) bool {
	b, ok := r.reverse[k]
	return ok && b.IsJoystickButton()
}

// Buttons returns every button in the fixed canonical order.
func (r *Registry) Buttons() []model.ControllerButton {
	return model.AllButtons()
}
