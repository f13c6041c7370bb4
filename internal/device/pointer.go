package device

import "github.com/wayseat/wayseat/internal/signal"

// Pointer is the pointer payload: relative and absolute motion,
// buttons, and scroll axes.
type Pointer struct {
	dev *Device

	Motion         signal.Signal[PointerMotionEvent]
	MotionAbsolute signal.Signal[PointerMotionAbsoluteEvent]
	Button         signal.Signal[PointerButtonEvent]
	Axis           signal.Signal[PointerAxisEvent]
}

// Device returns the owning device.
func (p *Pointer) Device() *Device { return p.dev }
