package backend

import (
	evdev "github.com/holoplot/go-evdev"

	"github.com/wayseat/wayseat/internal/device"
)

// capabilities is the subset of evdev capability bits classification
// looks at.
type capabilities struct {
	keys map[evdev.EvCode]bool
	abs  map[evdev.EvCode]bool
	rel  map[evdev.EvCode]bool
}

func readCapabilities(raw *evdev.InputDevice) capabilities {
	caps := capabilities{
		keys: make(map[evdev.EvCode]bool),
		abs:  make(map[evdev.EvCode]bool),
		rel:  make(map[evdev.EvCode]bool),
	}
	for _, c := range raw.CapableEvents(evdev.EV_KEY) {
		caps.keys[c] = true
	}
	for _, c := range raw.CapableEvents(evdev.EV_ABS) {
		caps.abs[c] = true
	}
	for _, c := range raw.CapableEvents(evdev.EV_REL) {
		caps.rel[c] = true
	}
	return caps
}

// classify maps capability bits to a device kind. The order matters:
// pens report BTN_TOUCH too, and touchpads report pointer buttons, so
// the more specific checks come first. ok is false for devices this
// layer does not handle (switches, accelerometers, lid sensors).
func classify(caps capabilities) (device.Type, bool) {
	switch {
	case caps.keys[evdev.BTN_TOOL_PEN] || caps.keys[evdev.BTN_STYLUS]:
		return device.TypeTabletTool, true
	case caps.abs[evdev.ABS_WHEEL] && caps.keys[evdev.BTN_0] && !caps.keys[evdev.BTN_TOUCH]:
		return device.TypeTabletPad, true
	case caps.keys[evdev.BTN_TOUCH] && !caps.keys[evdev.BTN_LEFT] && len(caps.rel) == 0:
		return device.TypeTouch, true
	case caps.keys[evdev.BTN_LEFT] || (caps.rel[evdev.REL_X] && caps.rel[evdev.REL_Y]):
		return device.TypePointer, true
	case caps.keys[evdev.KEY_A] && caps.keys[evdev.KEY_ENTER]:
		return device.TypeKeyboard, true
	default:
		return 0, false
	}
}
