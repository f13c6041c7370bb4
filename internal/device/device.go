// Package device models input devices exposed by the driver layer: a
// typed handle per device, kind-specific payloads carrying the event
// signals for that kind, and a registry that hands out weak references
// so user code never holds a device past its destroy notification.
package device

import (
	"fmt"
	"sync/atomic"

	"github.com/wayseat/wayseat/internal/signal"
)

// Type is the closed set of input device kinds. The driver contract is
// versioned against exactly these five values; anything else reaching
// the input manager is a fatal contract violation there.
type Type int

const (
	TypeKeyboard Type = iota
	TypePointer
	TypeTouch
	TypeTabletTool
	TypeTabletPad
)

// Valid reports whether t is one of the five known kinds.
func (t Type) Valid() bool {
	return t >= TypeKeyboard && t <= TypeTabletPad
}

func (t Type) String() string {
	switch t {
	case TypeKeyboard:
		return "keyboard"
	case TypePointer:
		return "pointer"
	case TypeTouch:
		return "touch"
	case TypeTabletTool:
		return "tablet-tool"
	case TypeTabletPad:
		return "tablet-pad"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// ID is a stable device identifier, unique for the process lifetime.
// It is the lookup key behind weak references.
type ID uint64

var nextID atomic.Uint64

// Device is a non-owning handle to one input device. It carries exactly
// one kind payload matching its type tag, a destroy signal, and an
// opaque data slot for whoever binds the device.
//
// A device is valid from New until Destroy; the registry entry and the
// payload resources go away with the destroy notification.
type Device struct {
	id   ID
	name string
	typ  Type

	keyboard   *Keyboard
	pointer    *Pointer
	touch      *Touch
	tabletTool *TabletTool
	tabletPad  *TabletPad

	// Destroyed fires exactly once, when the driver drops the device.
	Destroyed signal.Signal[*Device]

	data      any
	reg       *Registry
	destroyed bool
}

// New creates a device of the given type. An invalid type yields a
// device with no payload; such a device can exist (the driver hands us
// the raw value) but the input manager aborts on it.
func New(typ Type, name string) *Device {
	d := &Device{
		id:   ID(nextID.Add(1)),
		name: name,
		typ:  typ,
	}
	switch typ {
	case TypeKeyboard:
		d.keyboard = &Keyboard{dev: d}
	case TypePointer:
		d.pointer = &Pointer{dev: d}
	case TypeTouch:
		d.touch = &Touch{dev: d}
	case TypeTabletTool:
		d.tabletTool = &TabletTool{dev: d}
	case TypeTabletPad:
		d.tabletPad = &TabletPad{dev: d}
	}
	return d
}

func (d *Device) ID() ID       { return d.id }
func (d *Device) Name() string { return d.name }
func (d *Device) Type() Type   { return d.typ }

// Keyboard returns the keyboard payload. ok is false when the device
// is not a keyboard; callers for whom that is impossible treat false
// as a driver contract violation.
func (d *Device) Keyboard() (*Keyboard, bool) { return d.keyboard, d.keyboard != nil }

// Pointer returns the pointer payload.
func (d *Device) Pointer() (*Pointer, bool) { return d.pointer, d.pointer != nil }

// Touch returns the touch payload.
func (d *Device) Touch() (*Touch, bool) { return d.touch, d.touch != nil }

// TabletTool returns the tablet tool payload.
func (d *Device) TabletTool() (*TabletTool, bool) { return d.tabletTool, d.tabletTool != nil }

// TabletPad returns the tablet pad payload.
func (d *Device) TabletPad() (*TabletPad, bool) { return d.tabletPad, d.tabletPad != nil }

// SetData publishes opaque per-device state. The input manager stores
// the bound unit here; nothing else may hold a durable reference to it.
func (d *Device) SetData(v any) { d.data = v }

// Data returns the opaque per-device state, nil when unbound.
func (d *Device) Data() any { return d.data }

// Destroy delivers the destroy notification and releases payload
// resources. Idempotent: the signal fires at most once and resources
// are released exactly once.
func (d *Device) Destroy() {
	if d.destroyed {
		return
	}
	d.destroyed = true
	d.Destroyed.Emit(d)
	if d.keyboard != nil {
		d.keyboard.release()
	}
}
