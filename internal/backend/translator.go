package backend

import (
	evdev "github.com/holoplot/go-evdev"

	"github.com/wayseat/wayseat/internal/device"
)

// translator turns raw evdev events into the owning device's typed
// event emissions. One translator per attached device; dispatch runs
// on the Run loop only.
type translator struct {
	dev *device.Device
	abs map[evdev.EvCode]evdev.AbsInfo

	// absolute position state, normalized; shared by the pointer and
	// touch paths, which are mutually exclusive per device
	absX     float64
	absY     float64
	touching bool

	// tablet tool state, axes accumulate until SYN_REPORT
	tool struct {
		x, y     float64
		pressure float64
		distance float64
		tiltX    float64
		tiltY    float64
		dirty    bool
	}
}

// newTranslator creates a translator for dev. abs carries the device's
// absolute axis ranges and may be nil for devices without them.
func newTranslator(dev *device.Device, abs map[evdev.EvCode]evdev.AbsInfo) *translator {
	return &translator{dev: dev, abs: abs}
}

// normAbs scales an absolute axis value to [0,1] by the device's
// reported range. ok is false when the device did not report a usable
// range for the axis.
func (t *translator) normAbs(code evdev.EvCode, value int32) (float64, bool) {
	info, found := t.abs[code]
	if !found || info.Maximum <= info.Minimum {
		return 0, false
	}
	return float64(value-info.Minimum) / float64(info.Maximum-info.Minimum), true
}

func (t *translator) dispatch(ev evdev.InputEvent) {
	switch t.dev.Type() {
	case device.TypeKeyboard:
		t.dispatchKeyboard(ev)
	case device.TypePointer:
		t.dispatchPointer(ev)
	case device.TypeTouch:
		t.dispatchTouch(ev)
	case device.TypeTabletTool:
		t.dispatchTabletTool(ev)
	case device.TypeTabletPad:
		t.dispatchTabletPad(ev)
	}
}

func timeMs(ev evdev.InputEvent) uint32 {
	return uint32(ev.Time.Sec*1000 + ev.Time.Usec/1000)
}

func (t *translator) dispatchKeyboard(ev evdev.InputEvent) {
	if ev.Type != evdev.EV_KEY {
		return
	}
	// Value 2 is kernel autorepeat; repeat policy lives upstairs.
	state := device.KeyReleased
	switch ev.Value {
	case 1:
		state = device.KeyPressed
	case 0:
		state = device.KeyReleased
	default:
		return
	}
	kb, ok := t.dev.Keyboard()
	if !ok {
		return
	}
	kb.ProcessKey(device.KeyEvent{
		TimeMs: timeMs(ev),
		Code:   uint32(ev.Code),
		State:  state,
	})
}

func (t *translator) dispatchPointer(ev evdev.InputEvent) {
	p, ok := t.dev.Pointer()
	if !ok {
		return
	}
	switch ev.Type {
	case evdev.EV_REL:
		switch ev.Code {
		case evdev.REL_X:
			p.Motion.Emit(device.PointerMotionEvent{TimeMs: timeMs(ev), DX: float64(ev.Value)})
		case evdev.REL_Y:
			p.Motion.Emit(device.PointerMotionEvent{TimeMs: timeMs(ev), DY: float64(ev.Value)})
		case evdev.REL_WHEEL:
			p.Axis.Emit(device.PointerAxisEvent{
				TimeMs:      timeMs(ev),
				Orientation: device.AxisVertical,
				Delta:       -float64(ev.Value),
			})
		case evdev.REL_HWHEEL:
			p.Axis.Emit(device.PointerAxisEvent{
				TimeMs:      timeMs(ev),
				Orientation: device.AxisHorizontal,
				Delta:       float64(ev.Value),
			})
		}
	case evdev.EV_ABS:
		// Absolute pointers (drawing displays, VM pointers) report
		// position instead of deltas.
		switch ev.Code {
		case evdev.ABS_X:
			if v, ok := t.normAbs(ev.Code, ev.Value); ok {
				t.absX = v
			}
		case evdev.ABS_Y:
			if v, ok := t.normAbs(ev.Code, ev.Value); ok {
				t.absY = v
			}
		default:
			return
		}
		p.MotionAbsolute.Emit(device.PointerMotionAbsoluteEvent{
			TimeMs: timeMs(ev), X: t.absX, Y: t.absY,
		})
	case evdev.EV_KEY:
		if ev.Code < evdev.BTN_LEFT || ev.Code > evdev.BTN_TASK {
			return
		}
		state := device.ButtonReleased
		if ev.Value != 0 {
			state = device.ButtonPressed
		}
		p.Button.Emit(device.PointerButtonEvent{
			TimeMs: timeMs(ev),
			Button: uint32(ev.Code),
			State:  state,
		})
	}
}

func (t *translator) dispatchTouch(ev evdev.InputEvent) {
	tch, ok := t.dev.Touch()
	if !ok {
		return
	}
	switch ev.Type {
	case evdev.EV_ABS:
		switch ev.Code {
		case evdev.ABS_X, evdev.ABS_MT_POSITION_X:
			if v, ok := t.normAbs(ev.Code, ev.Value); ok {
				t.absX = v
			}
		case evdev.ABS_Y, evdev.ABS_MT_POSITION_Y:
			if v, ok := t.normAbs(ev.Code, ev.Value); ok {
				t.absY = v
			}
		default:
			return
		}
		if t.touching {
			tch.Motion.Emit(device.TouchMotionEvent{
				TimeMs: timeMs(ev), TouchID: 0, X: t.absX, Y: t.absY,
			})
		}
	case evdev.EV_KEY:
		if ev.Code != evdev.BTN_TOUCH {
			return
		}
		if ev.Value != 0 {
			t.touching = true
			tch.Down.Emit(device.TouchDownEvent{
				TimeMs: timeMs(ev), TouchID: 0, X: t.absX, Y: t.absY,
			})
		} else {
			t.touching = false
			tch.Up.Emit(device.TouchUpEvent{TimeMs: timeMs(ev), TouchID: 0})
		}
	}
}

func (t *translator) dispatchTabletTool(ev evdev.InputEvent) {
	tool, ok := t.dev.TabletTool()
	if !ok {
		return
	}
	switch ev.Type {
	case evdev.EV_ABS:
		switch ev.Code {
		case evdev.ABS_X:
			t.tool.x = float64(ev.Value)
			t.tool.dirty = true
		case evdev.ABS_Y:
			t.tool.y = float64(ev.Value)
			t.tool.dirty = true
		case evdev.ABS_PRESSURE:
			t.tool.pressure = float64(ev.Value)
			t.tool.dirty = true
		case evdev.ABS_DISTANCE:
			t.tool.distance = float64(ev.Value)
			t.tool.dirty = true
		case evdev.ABS_TILT_X:
			t.tool.tiltX = float64(ev.Value)
			t.tool.dirty = true
		case evdev.ABS_TILT_Y:
			t.tool.tiltY = float64(ev.Value)
			t.tool.dirty = true
		}
	case evdev.EV_KEY:
		switch ev.Code {
		case evdev.BTN_TOOL_PEN, evdev.BTN_TOOL_RUBBER:
			state := device.ProximityOut
			if ev.Value != 0 {
				state = device.ProximityIn
			}
			tool.Proximity.Emit(device.TabletToolProximityEvent{
				TimeMs: timeMs(ev), X: t.tool.x, Y: t.tool.y, State: state,
			})
		case evdev.BTN_TOUCH:
			state := device.TipUp
			if ev.Value != 0 {
				state = device.TipDown
			}
			tool.Tip.Emit(device.TabletToolTipEvent{
				TimeMs: timeMs(ev), X: t.tool.x, Y: t.tool.y, State: state,
			})
		case evdev.BTN_STYLUS, evdev.BTN_STYLUS2:
			state := device.ButtonReleased
			if ev.Value != 0 {
				state = device.ButtonPressed
			}
			tool.Button.Emit(device.TabletToolButtonEvent{
				TimeMs: timeMs(ev), Button: uint32(ev.Code), State: state,
			})
		}
	case evdev.EV_SYN:
		if ev.Code == evdev.SYN_REPORT && t.tool.dirty {
			t.tool.dirty = false
			tool.Axis.Emit(device.TabletToolAxisEvent{
				TimeMs:   timeMs(ev),
				X:        t.tool.x,
				Y:        t.tool.y,
				Pressure: t.tool.pressure,
				Distance: t.tool.distance,
				TiltX:    t.tool.tiltX,
				TiltY:    t.tool.tiltY,
			})
		}
	}
}

func (t *translator) dispatchTabletPad(ev evdev.InputEvent) {
	pad, ok := t.dev.TabletPad()
	if !ok {
		return
	}
	switch ev.Type {
	case evdev.EV_KEY:
		state := device.ButtonReleased
		if ev.Value != 0 {
			state = device.ButtonPressed
		}
		pad.Button.Emit(device.TabletPadButtonEvent{
			TimeMs: timeMs(ev), Button: uint32(ev.Code), State: state,
		})
	case evdev.EV_ABS:
		switch ev.Code {
		case evdev.ABS_WHEEL:
			pos := float64(ev.Value)
			if v, ok := t.normAbs(ev.Code, ev.Value); ok {
				pos = v * 360
			}
			pad.Ring.Emit(device.TabletPadRingEvent{
				TimeMs: timeMs(ev), Ring: 0, Position: pos,
			})
		case evdev.ABS_RX:
			pos := float64(ev.Value)
			if v, ok := t.normAbs(ev.Code, ev.Value); ok {
				pos = v
			}
			pad.Strip.Emit(device.TabletPadStripEvent{
				TimeMs: timeMs(ev), Strip: 0, Position: pos,
			})
		}
	}
}
