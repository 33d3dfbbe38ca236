package keys

// Linux evdev key codes, from the stable include/uapi/linux/input-event-codes.h
// ABI. Only the subset this taxonomy maps to is named here.
const (
	evKeyEsc       = 1
	evKeyNum1      = 2
	evKeyNum2      = 3
	evKeyNum3      = 4
	evKeyNum4      = 5
	evKeyNum5      = 6
	evKeyNum6      = 7
	evKeyNum7      = 8
	evKeyNum8      = 9
	evKeyNum9      = 10
	evKeyNum0      = 11
	evKeyBackspace = 14
	evKeyTab       = 15
	evKeyQ         = 16
	evKeyW         = 17
	evKeyE         = 18
	evKeyR         = 19
	evKeyT         = 20
	evKeyY         = 21
	evKeyU         = 22
	evKeyI         = 23
	evKeyO         = 24
	evKeyP         = 25
	evKeyEnter     = 28
	evKeyLeftCtrl  = 29
	evKeyA         = 30
	evKeyS         = 31
	evKeyD         = 32
	evKeyF         = 33
	evKeyG         = 34
	evKeyH         = 35
	evKeyJ         = 36
	evKeyK         = 37
	evKeyL         = 38
	evKeyLeftShift  = 42
	evKeyZ          = 44
	evKeyX          = 45
	evKeyC          = 46
	evKeyV          = 47
	evKeyB          = 48
	evKeyN          = 49
	evKeyM          = 50
	evKeyRightShift = 54
	evKeyLeftAlt    = 56
	evKeySpace      = 57
	evKeyCapsLock   = 58
	evKeyF1        = 59
	evKeyF2        = 60
	evKeyF3        = 61
	evKeyF4        = 62
	evKeyF5        = 63
	evKeyF6        = 64
	evKeyF7        = 65
	evKeyF8        = 66
	evKeyF9        = 67
	evKeyF10       = 68
	evKeyF11       = 87
	evKeyF12       = 88
	evKeyRightCtrl = 97
	evKeyRightAlt  = 100
	evKeyUp        = 103
	evKeyLeft      = 105
	evKeyRight     = 106
	evKeyDown      = 108
	evKeyLeftMeta  = 125
	evKeyRightMeta = 126

	evBtnLeft   = 0x110
	evBtnRight  = 0x111
	evBtnMiddle = 0x112
	evBtnSide   = 0x113
	evBtnExtra  = 0x114
)

var evdevToKey = map[int]Key{
	evKeyEsc:        Modifier(ModifierEscape),
	evKeyNum1:       Numeric(1),
	evKeyNum2:       Numeric(2),
	evKeyNum3:       Numeric(3),
	evKeyNum4:       Numeric(4),
	evKeyNum5:       Numeric(5),
	evKeyNum6:       Numeric(6),
	evKeyNum7:       Numeric(7),
	evKeyNum8:       Numeric(8),
	evKeyNum9:       Numeric(9),
	evKeyNum0:       Numeric(0),
	evKeyBackspace:  System(SystemBackspace),
	evKeyTab:        System(SystemTab),
	evKeyEnter:      System(SystemEnter),
	evKeySpace:      System(SystemSpace),
	evKeyCapsLock:   Modifier(ModifierCaps),
	evKeyLeftCtrl:   Modifier(ModifierCtrl),
	evKeyRightCtrl:  Modifier(ModifierCtrl),
	evKeyLeftShift:  Modifier(ModifierShift),
	evKeyRightShift: Modifier(ModifierShift),
	evKeyLeftAlt:    Modifier(ModifierAlt),
	evKeyRightAlt:   Modifier(ModifierAlt),
	evKeyLeftMeta:   Modifier(ModifierSuper),
	evKeyRightMeta:  Modifier(ModifierSuper),
	evKeyUp:         Arrow(ArrowUp),
	evKeyDown:       Arrow(ArrowDown),
	evKeyLeft:       Arrow(ArrowLeft),
	evKeyRight:      Arrow(ArrowRight),
	evKeyF1:         Function(1),
	evKeyF2:         Function(2),
	evKeyF3:         Function(3),
	evKeyF4:         Function(4),
	evKeyF5:         Function(5),
	evKeyF6:         Function(6),
	evKeyF7:         Function(7),
	evKeyF8:         Function(8),
	evKeyF9:         Function(9),
	evKeyF10:        Function(10),
	evKeyF11:        Function(11),
	evKeyF12:        Function(12),
	evBtnLeft:       Mouse(MouseLeft),
	evBtnRight:      Mouse(MouseRight),
	evBtnMiddle:     Mouse(MouseMiddle),
	evBtnSide:       Mouse(MouseSide),
	evBtnExtra:      Mouse(MouseExtra),

	evKeyQ: Alphabetic('Q'), evKeyW: Alphabetic('W'), evKeyE: Alphabetic('E'),
	evKeyR: Alphabetic('R'), evKeyT: Alphabetic('T'), evKeyY: Alphabetic('Y'),
	evKeyU: Alphabetic('U'), evKeyI: Alphabetic('I'), evKeyO: Alphabetic('O'),
	evKeyP: Alphabetic('P'), evKeyA: Alphabetic('A'), evKeyS: Alphabetic('S'),
	evKeyD: Alphabetic('D'), evKeyF: Alphabetic('F'), evKeyG: Alphabetic('G'),
	evKeyH: Alphabetic('H'), evKeyJ: Alphabetic('J'), evKeyK: Alphabetic('K'),
	evKeyL: Alphabetic('L'), evKeyZ: Alphabetic('Z'), evKeyX: Alphabetic('X'),
	evKeyC: Alphabetic('C'), evKeyV: Alphabetic('V'), evKeyB: Alphabetic('B'),
	evKeyN: Alphabetic('N'), evKeyM: Alphabetic('M'),
}

// FromEvdevCode maps a raw Linux evdev KEY_*/BTN_* code to a Key. The
// bool is false when the code carries no meaning in this taxonomy (the
// event should be dropped, not treated as an error, since a keyboard
// reports far more codes than this taxonomy models).
func FromEvdevCode(code int) (Key, bool) {
	k, ok := evdevToKey[code]
	return k, ok
}
