package capture

// ModState tracks rolling modifier flags for one backend. Each backend
// owns exactly one instance, mutated only by the goroutine reading that
// backend, so the flags need no locking. The two backends never share
// state: their vocabularies differ and conflating them would corrupt
// AltGr detection.
type ModState struct {
	Shift bool
	AltL  bool
	AltR  bool
	Ctrl  bool
	Meta  bool
	Super bool
}

// HandleKeysym updates flags for a symbolic modifier keysym and reports
// whether the keysym was a modifier. Alt_R, ISO_Level3_Shift and
// Mode_switch all set the AltGr flag: the symbol layer cannot tell
// these carriers apart, so they are deliberately unified.
func (m *ModState) HandleKeysym(sym string, pressed bool) bool {
	switch sym {
	case "Shift_L", "Shift_R":
		m.Shift = pressed
	case "Control_L", "Control_R":
		m.Ctrl = pressed
	case "Alt_L":
		m.AltL = pressed
	case "Alt_R", "ISO_Level3_Shift", "Mode_switch":
		m.AltR = pressed
	case "Meta_L", "Meta_R":
		m.Meta = pressed
	case "Super_L", "Super_R":
		m.Super = pressed
	default:
		return false
	}
	return true
}

// HandleScancode updates flags for an evdev key name. Unlike the symbol
// layer, scancodes distinguish left and right reliably. Hold events
// (neither pressed nor released) keep the current value.
func (m *ModState) HandleScancode(name string, pressed, released bool) bool {
	keep := func(cur bool) bool { return pressed || (!released && cur) }
	switch name {
	case "KEY_LEFTSHIFT", "KEY_RIGHTSHIFT":
		m.Shift = keep(m.Shift)
	case "KEY_LEFTALT":
		m.AltL = keep(m.AltL)
	case "KEY_RIGHTALT":
		m.AltR = keep(m.AltR)
	case "KEY_LEFTCTRL", "KEY_RIGHTCTRL":
		m.Ctrl = keep(m.Ctrl)
	case "KEY_LEFTMETA", "KEY_RIGHTMETA":
		m.Super = keep(m.Super)
	default:
		return false
	}
	return true
}

// Apply snapshots the flags into an event.
func (m *ModState) Apply(e *Event) {
	e.Shift = m.Shift
	e.AltL = m.AltL
	e.AltR = m.AltR
	e.Ctrl = m.Ctrl
	e.Meta = m.Meta
	e.Super = m.Super
}
