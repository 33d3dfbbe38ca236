package keys

// Windows virtual-key codes, from winuser.h. Only the subset this
// taxonomy maps to is named here.
const (
	vkBack    = 0x08
	vkTab     = 0x09
	vkReturn  = 0x0D
	vkShift   = 0x10
	vkControl = 0x11
	vkMenu    = 0x12 // Alt
	vkCapital = 0x14
	vkEscape  = 0x1B
	vkSpace   = 0x20
	vkLeft    = 0x25
	vkUp      = 0x26
	vkRight   = 0x27
	vkDown    = 0x28
	vkLWin    = 0x5B
	vkRWin    = 0x5C
	vk0       = 0x30
	vk9       = 0x39
	vkA       = 0x41
	vkZ       = 0x5A
	vkF1      = 0x70
	vkF12     = 0x7B
	vkLShift  = 0xA0
	vkRShift  = 0xA1
	vkLCtrl   = 0xA2
	vkRCtrl   = 0xA3
	vkLAlt    = 0xA4
	vkRAlt    = 0xA5
)

var vkToKey = map[int]Key{
	vkBack:    System(SystemBackspace),
	vkTab:     System(SystemTab),
	vkReturn:  System(SystemEnter),
	vkSpace:   System(SystemSpace),
	vkCapital: Modifier(ModifierCaps),
	vkEscape:  Modifier(ModifierEscape),
	vkShift:   Modifier(ModifierShift),
	vkControl: Modifier(ModifierCtrl),
	vkMenu:    Modifier(ModifierAlt),
	vkLShift:  Modifier(ModifierShift),
	vkRShift:  Modifier(ModifierShift),
	vkLCtrl:   Modifier(ModifierCtrl),
	vkRCtrl:   Modifier(ModifierCtrl),
	vkLAlt:    Modifier(ModifierAlt),
	vkRAlt:    Modifier(ModifierAlt),
	vkLWin:    Modifier(ModifierSuper),
	vkRWin:    Modifier(ModifierSuper),
	vkUp:      Arrow(ArrowUp),
	vkDown:    Arrow(ArrowDown),
	vkLeft:    Arrow(ArrowLeft),
	vkRight:   Arrow(ArrowRight),
}

// FromVirtualKeyCode maps a raw Windows WM_KEYDOWN/WM_KEYUP virtual-key
// code to a Key. The bool is false when the code carries no meaning in
// this taxonomy.
func FromVirtualKeyCode(vk int) (Key, bool) {
	if vk >= vk0 && vk <= vk9 {
		return Numeric(vk - vk0), true
	}
	if vk >= vkA && vk <= vkZ {
		return Alphabetic(byte('A' + (vk - vkA))), true
	}
	if vk >= vkF1 && vk <= vkF12 {
		return Function(vk - vkF1 + 1), true
	}
	k, ok := vkToKey[vk]
	return k, ok
}
