package device

import "errors"

var (
	// ErrDeviceGone is returned when resolving a weak reference after
	// the device's destroy notification fired.
	ErrDeviceGone = errors.New("input device no longer exists")
	// ErrWrongKind is returned when a typed handle resolves to a device
	// of a different kind.
	ErrWrongKind = errors.New("input device has a different kind")
	// ErrNotRegistered is returned for handles taken from a device that
	// was never added to a registry.
	ErrNotRegistered = errors.New("input device is not registered")
)

// Registry maps stable identifiers to live devices. It backs weak
// references: an entry exists exactly while the device does, removed by
// the destroy notification.
//
// Like everything in this layer the registry is single-threaded; it is
// owned by the event-loop goroutine.
type Registry struct {
	devices map[ID]*Device
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{devices: make(map[ID]*Device)}
}

// Add registers a device and arranges its removal on destroy. Adding a
// destroyed or already registered device is a no-op.
func (r *Registry) Add(d *Device) {
	if d.destroyed || d.reg != nil {
		return
	}
	d.reg = r
	r.devices[d.id] = d
	d.Destroyed.Connect(func(d *Device) {
		delete(r.devices, d.id)
	})
}

// Get resolves an identifier to the live device, ErrDeviceGone if it no
// longer exists.
func (r *Registry) Get(id ID) (*Device, error) {
	d, ok := r.devices[id]
	if !ok {
		return nil, ErrDeviceGone
	}
	return d, nil
}

// Len reports the number of live devices.
func (r *Registry) Len() int { return len(r.devices) }

// Devices returns the live devices in unspecified order.
func (r *Registry) Devices() []*Device {
	out := make([]*Device, 0, len(r.devices))
	for _, d := range r.devices {
		out = append(out, d)
	}
	return out
}

// Handle is a weak reference to a device: a lookup key, never an
// aliased pointer. Resolving after destroy yields ErrDeviceGone.
type Handle struct {
	id  ID
	reg *Registry
}

// Handle returns a weak reference to the device. The device must be
// registered; an unregistered device yields a handle that only errors.
func (d *Device) Handle() Handle {
	return Handle{id: d.id, reg: d.reg}
}

// ID returns the stable identifier the handle refers to.
func (h Handle) ID() ID { return h.id }

// Device resolves the handle to the live device.
func (h Handle) Device() (*Device, error) {
	if h.reg == nil {
		return nil, ErrNotRegistered
	}
	return h.reg.Get(h.id)
}

// KeyboardHandle is a weak reference known to be a keyboard.
type KeyboardHandle struct{ Handle }

// Keyboard resolves to the live keyboard payload.
func (h KeyboardHandle) Keyboard() (*Keyboard, error) {
	d, err := h.Device()
	if err != nil {
		return nil, err
	}
	kb, ok := d.Keyboard()
	if !ok {
		return nil, ErrWrongKind
	}
	return kb, nil
}

// PointerHandle is a weak reference known to be a pointer.
type PointerHandle struct{ Handle }

// Pointer resolves to the live pointer payload.
func (h PointerHandle) Pointer() (*Pointer, error) {
	d, err := h.Device()
	if err != nil {
		return nil, err
	}
	p, ok := d.Pointer()
	if !ok {
		return nil, ErrWrongKind
	}
	return p, nil
}

// TouchHandle is a weak reference known to be a touchscreen.
type TouchHandle struct{ Handle }

// Touch resolves to the live touch payload.
func (h TouchHandle) Touch() (*Touch, error) {
	d, err := h.Device()
	if err != nil {
		return nil, err
	}
	t, ok := d.Touch()
	if !ok {
		return nil, ErrWrongKind
	}
	return t, nil
}

// TabletToolHandle is a weak reference known to be a tablet tool.
type TabletToolHandle struct{ Handle }

// TabletTool resolves to the live tool payload.
func (h TabletToolHandle) TabletTool() (*TabletTool, error) {
	d, err := h.Device()
	if err != nil {
		return nil, err
	}
	t, ok := d.TabletTool()
	if !ok {
		return nil, ErrWrongKind
	}
	return t, nil
}

// TabletPadHandle is a weak reference known to be a tablet pad.
type TabletPadHandle struct{ Handle }

// TabletPad resolves to the live pad payload.
func (h TabletPadHandle) TabletPad() (*TabletPad, error) {
	d, err := h.Device()
	if err != nil {
		return nil, err
	}
	t, ok := d.TabletPad()
	if !ok {
		return nil, ErrWrongKind
	}
	return t, nil
}
