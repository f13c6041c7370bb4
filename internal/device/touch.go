package device

import "github.com/wayseat/wayseat/internal/signal"

// Touch is the touchscreen payload.
type Touch struct {
	dev *Device

	Down   signal.Signal[TouchDownEvent]
	Up     signal.Signal[TouchUpEvent]
	Motion signal.Signal[TouchMotionEvent]
	Cancel signal.Signal[TouchCancelEvent]
}

// Device returns the owning device.
func (t *Touch) Device() *Device { return t.dev }
