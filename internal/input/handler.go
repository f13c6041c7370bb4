package input

import (
	"github.com/wayseat/wayseat/internal/device"
	"github.com/wayseat/wayseat/internal/xkb"
)

// Handler is the user-facing acceptance protocol. For each device kind
// the manager calls the matching Added method with a weak reference to
// the new device; returning a non-nil handler accepts the device and
// subscribes it, returning nil declines it. InputAdded always fires
// afterwards, accepted or not, once the device is fully set up.
//
// Any panic raised inside these callbacks aborts the process: the
// surrounding event loop cannot roll back a half-initialized device.
// Embed UnimplementedHandler to decline kinds you do not care about.
type Handler interface {
	// InputAdded is the generic notification, invoked after all
	// kind-specific handling for the device completed.
	InputAdded(device.Handle)

	// KeyboardAdded offers a new keyboard. The keymap and repeat
	// policy are already applied when this is called.
	KeyboardAdded(device.KeyboardHandle) KeyboardHandler

	// PointerAdded offers a new pointer.
	PointerAdded(device.PointerHandle) PointerHandler

	// TouchAdded offers a new touchscreen.
	TouchAdded(device.TouchHandle) TouchHandler

	// TabletToolAdded offers a new tablet tool.
	TabletToolAdded(device.TabletToolHandle) TabletToolHandler

	// TabletPadAdded offers a new tablet pad.
	TabletPadAdded(device.TabletPadHandle) TabletPadHandler
}

// KeyboardHandler receives events for an accepted keyboard.
type KeyboardHandler interface {
	OnKey(device.KeyboardHandle, device.KeyEvent)
	OnModifiers(device.KeyboardHandle, xkb.Modifier)
	OnKeymap(device.KeyboardHandle, *xkb.Keymap)
	OnRepeatInfo(device.KeyboardHandle, device.RepeatInfo)
}

// PointerHandler receives events for an accepted pointer.
type PointerHandler interface {
	OnMotion(device.PointerHandle, device.PointerMotionEvent)
	OnMotionAbsolute(device.PointerHandle, device.PointerMotionAbsoluteEvent)
	OnButton(device.PointerHandle, device.PointerButtonEvent)
	OnAxis(device.PointerHandle, device.PointerAxisEvent)
}

// TouchHandler receives events for an accepted touchscreen.
type TouchHandler interface {
	OnDown(device.TouchHandle, device.TouchDownEvent)
	OnUp(device.TouchHandle, device.TouchUpEvent)
	OnMotion(device.TouchHandle, device.TouchMotionEvent)
	OnCancel(device.TouchHandle, device.TouchCancelEvent)
}

// TabletToolHandler receives events for an accepted tablet tool.
type TabletToolHandler interface {
	OnAxis(device.TabletToolHandle, device.TabletToolAxisEvent)
	OnProximity(device.TabletToolHandle, device.TabletToolProximityEvent)
	OnTip(device.TabletToolHandle, device.TabletToolTipEvent)
	OnButton(device.TabletToolHandle, device.TabletToolButtonEvent)
}

// TabletPadHandler receives events for an accepted tablet pad.
type TabletPadHandler interface {
	OnButton(device.TabletPadHandle, device.TabletPadButtonEvent)
	OnRing(device.TabletPadHandle, device.TabletPadRingEvent)
	OnStrip(device.TabletPadHandle, device.TabletPadStripEvent)
}

// UnimplementedHandler declines every device kind and ignores the
// generic notification. Embed it to implement only what you need.
type UnimplementedHandler struct{}

func (UnimplementedHandler) InputAdded(device.Handle) {}

func (UnimplementedHandler) KeyboardAdded(device.KeyboardHandle) KeyboardHandler { return nil }

func (UnimplementedHandler) PointerAdded(device.PointerHandle) PointerHandler { return nil }

func (UnimplementedHandler) TouchAdded(device.TouchHandle) TouchHandler { return nil }

func (UnimplementedHandler) TabletToolAdded(device.TabletToolHandle) TabletToolHandler { return nil }

func (UnimplementedHandler) TabletPadAdded(device.TabletPadHandle) TabletPadHandler { return nil }
