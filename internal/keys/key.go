// Package keys implements the physical Key taxonomy: the tagged union of
// alphabetic, numeric, function, arrow, modifier, system and mouse keys
// that a PhysicalEventSource reports and the Binding Registry maps to
// controller buttons.
package keys

import (
	"fmt"
	"strings"
)

// Category distinguishes the sub-taxonomy a Key belongs to.
type Category int

const (
	CategoryAlphabetic Category = iota
	CategoryNumeric
	CategoryFunction
	CategoryArrow
	CategoryModifier
	CategorySystem
	CategoryMouse
)

// Key is a physical input identified by category and an in-category
// code. Keys compare equal by value, so they are usable directly as map
// keys in the binding registry.
type Key struct {
	Category Category
	Code     int
}

// Arrow codes.
const (
	ArrowUp = iota
	ArrowDown
	ArrowLeft
	ArrowRight
)

// Modifier codes, already normalised (sided variants collapse to these).
const (
	ModifierSuper = iota
	ModifierEscape
	ModifierCaps
	ModifierCtrl
	ModifierShift
	ModifierAlt
)

// System codes.
const (
	SystemEnter = iota
	SystemTab
	SystemSpace
	SystemBackspace
)

// Mouse codes.
const (
	MouseLeft = iota
	MouseRight
	MouseMiddle
	MouseSide
	MouseExtra
)

// Alphabetic builds a Key for an uppercase letter A-Z (code is the
// letter's zero-based offset from 'A').
func Alphabetic(letter byte) Key {
	return Key{Category: CategoryAlphabetic, Code: int(letter - 'A')}
}

// Numeric builds a Key for digit 0-9.
func Numeric(digit int) Key {
	return Key{Category: CategoryNumeric, Code: digit}
}

// Function builds a Key for F1-F12 (n is 1-12).
func Function(n int) Key {
	return Key{Category: CategoryFunction, Code: n}
}

// Arrow builds a Key for one of the four arrow keys.
func Arrow(code int) Key {
	return Key{Category: CategoryArrow, Code: code}
}

// Modifier builds a Key for a modifier, already normalised.
func Modifier(code int) Key {
	return Key{Category: CategoryModifier, Code: code}
}

// System builds a Key for Enter/Tab/Space/Backspace.
func System(code int) Key {
	return Key{Category: CategorySystem, Code: code}
}

// Mouse builds a Key for a mouse button.
func Mouse(code int) Key {
	return Key{Category: CategoryMouse, Code: code}
}

var (
	arrowNames    = []string{"up", "down", "left", "right"}
	modifierNames = []string{"super", "escape", "caps", "ctrl", "shift", "alt"}
	systemNames   = []string{"enter", "tab", "space", "backspace"}
	mouseNames    = []string{"mouse_left", "mouse_right", "mouse_middle", "mouse_side", "mouse_extra"}
)

// String renders the Key in lowercase snake_case, the serialisable form
// used by the bindings TOML file.
func (k Key) String() string {
	switch k.Category {
	case CategoryAlphabetic:
		return strings.ToLower(string(rune('A' + k.Code)))
	case CategoryNumeric:
		return fmt.Sprintf("%d", k.Code)
	case CategoryFunction:
		return fmt.Sprintf("f%d", k.Code)
	case CategoryArrow:
		if k.Code >= 0 && k.Code < len(arrowNames) {
			return arrowNames[k.Code]
		}
	case CategoryModifier:
		if k.Code >= 0 && k.Code < len(modifierNames) {
			return modifierNames[k.Code]
		}
	case CategorySystem:
		if k.Code >= 0 && k.Code < len(systemNames) {
			return systemNames[k.Code]
		}
	case CategoryMouse:
		if k.Code >= 0 && k.Code < len(mouseNames) {
			return mouseNames[k.Code]
		}
	}
	return fmt.Sprintf("unknown(%d,%d)", k.Category, k.Code)
}

// MarshalText implements encoding.TextMarshaler so Key can serialise
// directly as a TOML/JSON string.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Key) UnmarshalText(text []byte) error {
	parsed, err := ParseKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKey parses the lowercase snake_case form back into a Key.
func ParseKey(s string) (Key, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) == 1 {
		c := s[0]
		if c >= 'a' && c <= 'z' {
			return Alphabetic(c - 'a' + 'A'), nil
		}
		if c >= '0' && c <= '9' {
			return Numeric(int(c - '0')), nil
		}
	}
	if strings.HasPrefix(s, "f") {
		var n int
		if _, err := fmt.Sscanf(s, "f%d", &n); err == nil && n >= 1 && n <= 12 {
			return Function(n), nil
		}
	}
	for i, name := range arrowNames {
		if s == name {
			return Arrow(i), nil
		}
	}
	for i, name := range modifierNames {
		if s == name {
			return Modifier(i), nil
		}
	}
	for i, name := range systemNames {
		if s == name {
			return System(i), nil
		}
	}
	for i, name := range mouseNames {
		if s == name {
			return Mouse(i), nil
		}
	}
	return Key{}, &UnsupportedKeyError{Raw: s}
}

// UnsupportedKeyError reports a raw token that does not parse into any
// known Key. It is a separate type from model.UnsupportedKeyError; the
// bindings loader passes it on wrapped with %w, not converted.
type UnsupportedKeyError struct {
	Raw string
}

func (e *UnsupportedKeyError) Error() string {
	return fmt.Sprintf("keys: unsupported key %q", e.Raw)
}
