package backend

import (
	"syscall"
	"testing"

	evdev "github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayseat/wayseat/internal/device"
)

func rawEvent(typ evdev.EvType, code evdev.EvCode, value int32) evdev.InputEvent {
	return evdev.InputEvent{
		Time:  syscall.Timeval{Sec: 1, Usec: 500000},
		Type:  typ,
		Code:  code,
		Value: value,
	}
}

func absRange(min, max int32) evdev.AbsInfo {
	return evdev.AbsInfo{Minimum: min, Maximum: max}
}

func TestTranslator_Keyboard(t *testing.T) {
	d := device.New(device.TypeKeyboard, "kbd")
	kb, _ := d.Keyboard()
	tr := newTranslator(d, nil)

	var keys []device.KeyEvent
	kb.Key.Connect(func(ev device.KeyEvent) { keys = append(keys, ev) })

	tr.dispatch(rawEvent(evdev.EV_KEY, evdev.KEY_A, 1))
	tr.dispatch(rawEvent(evdev.EV_KEY, evdev.KEY_A, 2)) // autorepeat, dropped
	tr.dispatch(rawEvent(evdev.EV_KEY, evdev.KEY_A, 0))
	tr.dispatch(rawEvent(evdev.EV_REL, evdev.REL_X, 5)) // not a key event

	require.Len(t, keys, 2)
	assert.Equal(t, device.KeyPressed, keys[0].State)
	assert.Equal(t, uint32(evdev.KEY_A), keys[0].Code)
	assert.Equal(t, uint32(1500), keys[0].TimeMs)
	assert.Equal(t, device.KeyReleased, keys[1].State)
}

func TestTranslator_Pointer(t *testing.T) {
	d := device.New(device.TypePointer, "mouse")
	p, _ := d.Pointer()
	tr := newTranslator(d, nil)

	var motions []device.PointerMotionEvent
	var buttons []device.PointerButtonEvent
	var axes []device.PointerAxisEvent
	p.Motion.Connect(func(ev device.PointerMotionEvent) { motions = append(motions, ev) })
	p.Button.Connect(func(ev device.PointerButtonEvent) { buttons = append(buttons, ev) })
	p.Axis.Connect(func(ev device.PointerAxisEvent) { axes = append(axes, ev) })

	tr.dispatch(rawEvent(evdev.EV_REL, evdev.REL_X, 7))
	tr.dispatch(rawEvent(evdev.EV_REL, evdev.REL_Y, -3))
	tr.dispatch(rawEvent(evdev.EV_KEY, evdev.BTN_LEFT, 1))
	tr.dispatch(rawEvent(evdev.EV_KEY, evdev.BTN_LEFT, 0))
	tr.dispatch(rawEvent(evdev.EV_KEY, evdev.KEY_A, 1)) // not a pointer button
	tr.dispatch(rawEvent(evdev.EV_REL, evdev.REL_WHEEL, 1))

	require.Len(t, motions, 2)
	assert.Equal(t, 7.0, motions[0].DX)
	assert.Equal(t, -3.0, motions[1].DY)

	require.Len(t, buttons, 2)
	assert.Equal(t, uint32(evdev.BTN_LEFT), buttons[0].Button)
	assert.Equal(t, device.ButtonPressed, buttons[0].State)
	assert.Equal(t, device.ButtonReleased, buttons[1].State)

	require.Len(t, axes, 1)
	assert.Equal(t, device.AxisVertical, axes[0].Orientation)
	assert.Equal(t, -1.0, axes[0].Delta)
}

func TestTranslator_PointerAbsolute(t *testing.T) {
	d := device.New(device.TypePointer, "drawing display")
	p, _ := d.Pointer()
	tr := newTranslator(d, map[evdev.EvCode]evdev.AbsInfo{
		evdev.ABS_X: absRange(0, 32767),
		evdev.ABS_Y: absRange(0, 32767),
	})

	var absolutes []device.PointerMotionAbsoluteEvent
	p.MotionAbsolute.Connect(func(ev device.PointerMotionAbsoluteEvent) {
		absolutes = append(absolutes, ev)
	})

	tr.dispatch(rawEvent(evdev.EV_ABS, evdev.ABS_X, 16384))
	tr.dispatch(rawEvent(evdev.EV_ABS, evdev.ABS_Y, 32767))
	tr.dispatch(rawEvent(evdev.EV_ABS, evdev.ABS_Z, 100)) // unmapped axis
	tr.dispatch(rawEvent(evdev.EV_SYN, evdev.SYN_REPORT, 0))

	require.Len(t, absolutes, 2)
	assert.InDelta(t, 0.5, absolutes[0].X, 0.001)
	assert.Equal(t, 0.0, absolutes[0].Y)
	assert.InDelta(t, 0.5, absolutes[1].X, 0.001)
	assert.Equal(t, 1.0, absolutes[1].Y)
}

func TestTranslator_Touch(t *testing.T) {
	d := device.New(device.TypeTouch, "panel")
	tch, _ := d.Touch()
	tr := newTranslator(d, map[evdev.EvCode]evdev.AbsInfo{
		evdev.ABS_X: absRange(0, 4095),
		evdev.ABS_Y: absRange(0, 4095),
	})

	var events []string
	var downs []device.TouchDownEvent
	tch.Down.Connect(func(ev device.TouchDownEvent) {
		events = append(events, "down")
		downs = append(downs, ev)
	})
	tch.Motion.Connect(func(device.TouchMotionEvent) { events = append(events, "motion") })
	tch.Up.Connect(func(device.TouchUpEvent) { events = append(events, "up") })

	// Position updates before contact do not emit motion.
	tr.dispatch(rawEvent(evdev.EV_ABS, evdev.ABS_X, 4095))
	tr.dispatch(rawEvent(evdev.EV_ABS, evdev.ABS_Y, 1024))
	tr.dispatch(rawEvent(evdev.EV_KEY, evdev.BTN_TOUCH, 1))
	tr.dispatch(rawEvent(evdev.EV_ABS, evdev.ABS_X, 2048))
	tr.dispatch(rawEvent(evdev.EV_KEY, evdev.BTN_TOUCH, 0))

	assert.Equal(t, []string{"down", "motion", "up"}, events)

	// Coordinates arrive scaled by the axis range, never in raw units.
	require.Len(t, downs, 1)
	assert.Equal(t, 1.0, downs[0].X)
	assert.InDelta(t, 0.25, downs[0].Y, 0.001)
}

func TestTranslator_TabletTool(t *testing.T) {
	d := device.New(device.TypeTabletTool, "pen")
	tool, _ := d.TabletTool()
	tr := newTranslator(d, nil)

	var axes []device.TabletToolAxisEvent
	var tips []device.TabletToolTipEvent
	var proximities []device.TabletToolProximityEvent
	tool.Axis.Connect(func(ev device.TabletToolAxisEvent) { axes = append(axes, ev) })
	tool.Tip.Connect(func(ev device.TabletToolTipEvent) { tips = append(tips, ev) })
	tool.Proximity.Connect(func(ev device.TabletToolProximityEvent) { proximities = append(proximities, ev) })

	tr.dispatch(rawEvent(evdev.EV_KEY, evdev.BTN_TOOL_PEN, 1))
	tr.dispatch(rawEvent(evdev.EV_ABS, evdev.ABS_X, 500))
	tr.dispatch(rawEvent(evdev.EV_ABS, evdev.ABS_Y, 600))
	tr.dispatch(rawEvent(evdev.EV_ABS, evdev.ABS_PRESSURE, 1024))
	tr.dispatch(rawEvent(evdev.EV_ABS, evdev.ABS_DISTANCE, 12))
	tr.dispatch(rawEvent(evdev.EV_SYN, evdev.SYN_REPORT, 0))
	tr.dispatch(rawEvent(evdev.EV_SYN, evdev.SYN_REPORT, 0)) // no new axes, no emit
	tr.dispatch(rawEvent(evdev.EV_KEY, evdev.BTN_TOUCH, 1))

	require.Len(t, proximities, 1)
	assert.Equal(t, device.ProximityIn, proximities[0].State)

	require.Len(t, axes, 1)
	assert.Equal(t, 500.0, axes[0].X)
	assert.Equal(t, 600.0, axes[0].Y)
	assert.Equal(t, 1024.0, axes[0].Pressure)
	assert.Equal(t, 12.0, axes[0].Distance)

	require.Len(t, tips, 1)
	assert.Equal(t, device.TipDown, tips[0].State)
}

func TestTranslator_TabletPad(t *testing.T) {
	d := device.New(device.TypeTabletPad, "pad")
	pad, _ := d.TabletPad()
	tr := newTranslator(d, map[evdev.EvCode]evdev.AbsInfo{
		evdev.ABS_WHEEL: absRange(0, 71),
		evdev.ABS_RX:    absRange(0, 2048),
	})

	var buttons []device.TabletPadButtonEvent
	var rings []device.TabletPadRingEvent
	var strips []device.TabletPadStripEvent
	pad.Button.Connect(func(ev device.TabletPadButtonEvent) { buttons = append(buttons, ev) })
	pad.Ring.Connect(func(ev device.TabletPadRingEvent) { rings = append(rings, ev) })
	pad.Strip.Connect(func(ev device.TabletPadStripEvent) { strips = append(strips, ev) })

	tr.dispatch(rawEvent(evdev.EV_KEY, evdev.BTN_0, 1))
	tr.dispatch(rawEvent(evdev.EV_ABS, evdev.ABS_WHEEL, 36))
	tr.dispatch(rawEvent(evdev.EV_ABS, evdev.ABS_RX, 1024))

	require.Len(t, buttons, 1)
	assert.Equal(t, device.ButtonPressed, buttons[0].State)

	// Ring position in degrees, strip normalized.
	require.Len(t, rings, 1)
	assert.InDelta(t, 182.5, rings[0].Position, 0.1)
	require.Len(t, strips, 1)
	assert.Equal(t, 0.5, strips[0].Position)
}
