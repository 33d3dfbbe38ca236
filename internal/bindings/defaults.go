package bindings

import (
	"github.com/clemenscodes/joymouse/internal/keys"
	"github.com/clemenscodes/joymouse/internal/model"
)

// Defaults returns the canonical default binding map, out-of-the-box
// identical across every fresh install.
func Defaults() map[model.ControllerButton][]keys.Key {
	return map[model.ControllerButton][]keys.Key{
		model.South:     {keys.System(keys.SystemSpace)},
		model.East:      {keys.Modifier(keys.ModifierCtrl)},
		model.North:     {keys.Alphabetic('F')},
		model.West:      {keys.Alphabetic('C'), keys.Mouse(keys.MouseSide)},
		model.Up:        {keys.Arrow(keys.ArrowUp), keys.Alphabetic('K'), keys.Numeric(2)},
		model.Left:      {keys.Arrow(keys.ArrowLeft), keys.Alphabetic('H'), keys.Numeric(1)},
		model.Down:      {keys.Arrow(keys.ArrowDown), keys.Alphabetic('J'), keys.Numeric(4)},
		model.Right:     {keys.Arrow(keys.ArrowRight), keys.Alphabetic('L'), keys.Numeric(3)},
		model.R1:        {keys.Mouse(keys.MouseLeft)},
		model.L1:        {keys.Mouse(keys.MouseRight)},
		model.L2:        {keys.Alphabetic('Q'), keys.Mouse(keys.MouseExtra)},
		model.R2:        {keys.Alphabetic('X')},
		model.L3:        {keys.Modifier(keys.ModifierAlt)},
		model.R3:        {keys.Alphabetic('V')},
		model.Select:    {keys.System(keys.SystemTab)},
		model.Start:     {keys.System(keys.SystemEnter)},
		model.Forward:   {keys.Alphabetic('W')},
		model.Port:      {keys.Alphabetic('A')},
		model.Backward:  {keys.Alphabetic('S')},
		model.Starboard: {keys.Alphabetic('D')},
	}
}

// DefaultRegistry builds a Registry from Defaults. The error return is
// always nil in practice since Defaults always covers every button; it
// is still checked so a future edit to Defaults cannot silently violate
// the invariant.
func DefaultRegistry() (*Registry, error) {
	return New(Defaults())
}
