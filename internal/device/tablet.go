package device

import "github.com/wayseat/wayseat/internal/signal"

// TabletTool is the pen/stylus payload.
type TabletTool struct {
	dev *Device

	Axis      signal.Signal[TabletToolAxisEvent]
	Proximity signal.Signal[TabletToolProximityEvent]
	Tip       signal.Signal[TabletToolTipEvent]
	Button    signal.Signal[TabletToolButtonEvent]
}

// Device returns the owning device.
func (t *TabletTool) Device() *Device { return t.dev }

// TabletPad is the pad payload: the buttons, rings and strips on the
// tablet body.
type TabletPad struct {
	dev *Device

	Button signal.Signal[TabletPadButtonEvent]
	Ring   signal.Signal[TabletPadRingEvent]
	Strip  signal.Signal[TabletPadStripEvent]
}

// Device returns the owning device.
func (t *TabletPad) Device() *Device { return t.dev }
