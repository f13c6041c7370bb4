package device

// KeyState is the direction of a key transition.
type KeyState int32

const (
	KeyReleased KeyState = iota
	KeyPressed
)

// KeyEvent is one keyboard key transition. Code is an evdev key code.
type KeyEvent struct {
	TimeMs uint32
	Code   uint32
	State  KeyState
}

// RepeatInfo is the key-repeat policy applied to a keyboard.
type RepeatInfo struct {
	Rate  int32 // repeats per second
	Delay int32 // milliseconds before repeat starts
}

// ButtonState is the direction of a button transition.
type ButtonState int32

const (
	ButtonReleased ButtonState = iota
	ButtonPressed
)

// PointerMotionEvent is relative pointer motion.
type PointerMotionEvent struct {
	TimeMs uint32
	DX, DY float64
}

// PointerMotionAbsoluteEvent is absolute motion, coordinates normalized
// to [0,1] over the device surface.
type PointerMotionAbsoluteEvent struct {
	TimeMs uint32
	X, Y   float64
}

// PointerButtonEvent is a pointer button transition. Button is an evdev
// button code (BTN_LEFT and friends).
type PointerButtonEvent struct {
	TimeMs uint32
	Button uint32
	State  ButtonState
}

// AxisOrientation selects the scroll axis.
type AxisOrientation int32

const (
	AxisVertical AxisOrientation = iota
	AxisHorizontal
)

// PointerAxisEvent is scroll motion along one axis.
type PointerAxisEvent struct {
	TimeMs      uint32
	Orientation AxisOrientation
	Delta       float64
}

// TouchDownEvent is a new touch point, coordinates normalized to [0,1].
type TouchDownEvent struct {
	TimeMs  uint32
	TouchID int32
	X, Y    float64
}

// TouchUpEvent ends a touch point.
type TouchUpEvent struct {
	TimeMs  uint32
	TouchID int32
}

// TouchMotionEvent moves an existing touch point.
type TouchMotionEvent struct {
	TimeMs  uint32
	TouchID int32
	X, Y    float64
}

// TouchCancelEvent aborts a touch sequence without an up event.
type TouchCancelEvent struct {
	TouchID int32
}

// TabletToolAxisEvent reports updated tool axes.
type TabletToolAxisEvent struct {
	TimeMs       uint32
	X, Y         float64
	Pressure     float64
	Distance     float64
	TiltX, TiltY float64
}

// ProximityState reports whether the tool entered or left sensing range.
type ProximityState int32

const (
	ProximityOut ProximityState = iota
	ProximityIn
)

// TabletToolProximityEvent is a tool proximity transition.
type TabletToolProximityEvent struct {
	TimeMs uint32
	X, Y   float64
	State  ProximityState
}

// TipState reports pen tip contact.
type TipState int32

const (
	TipUp TipState = iota
	TipDown
)

// TabletToolTipEvent is a pen tip transition.
type TabletToolTipEvent struct {
	TimeMs uint32
	X, Y   float64
	State  TipState
}

// TabletToolButtonEvent is a button transition on the tool itself.
type TabletToolButtonEvent struct {
	TimeMs uint32
	Button uint32
	State  ButtonState
}

// TabletPadButtonEvent is a pad button transition.
type TabletPadButtonEvent struct {
	TimeMs uint32
	Button uint32
	State  ButtonState
}

// TabletPadRingEvent is ring motion; Position is in degrees.
type TabletPadRingEvent struct {
	TimeMs   uint32
	Ring     int32
	Position float64
}

// TabletPadStripEvent is strip motion; Position is normalized to [0,1].
type TabletPadStripEvent struct {
	TimeMs   uint32
	Strip    int32
	Position float64
}
