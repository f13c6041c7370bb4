// Package input is the device-lifecycle core: it classifies devices
// the driver layer announces, offers them to user handler code, wires
// event subscriptions for accepted devices, and guards the whole
// sequence with a panic-to-abort boundary.
package input

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/wayseat/wayseat/internal/device"
	"github.com/wayseat/wayseat/internal/logger"
	"github.com/wayseat/wayseat/internal/xkb"
)

// Default key-repeat policy applied to every keyboard. Not configurable
// at this layer.
const (
	defaultRepeatRate  = 25  // repeats per second
	defaultRepeatDelay = 600 // ms before repeat starts
)

// Manager owns the device-added protocol. All methods must be called
// from the event-loop goroutine; the manager does no locking of its
// own.
type Manager struct {
	reg     *device.Registry
	handler Handler

	ruleNames func() xkb.RuleNames
	abort     func()
	log       *log.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithRuleNames pins the keymap settings instead of reading the
// XKB_DEFAULT_* environment on every device attach.
func WithRuleNames(names xkb.RuleNames) Option {
	return func(m *Manager) {
		m.ruleNames = func() xkb.RuleNames { return names }
	}
}

// WithRuleNamesFunc resolves the keymap settings through fn on every
// device attach, letting hosts merge configuration over the environment.
func WithRuleNamesFunc(fn func() xkb.RuleNames) Option {
	return func(m *Manager) { m.ruleNames = fn }
}

// WithAbortFunc replaces the process abort invoked on a setup fault.
// Intended for tests and for hosts that need a crash report first; the
// replacement must not return control into normal operation.
func WithAbortFunc(fn func()) Option {
	return func(m *Manager) { m.abort = fn }
}

// NewManager creates a manager dispatching to the given handler,
// resolving weak references through reg.
func NewManager(reg *device.Registry, h Handler, opts ...Option) *Manager {
	m := &Manager{
		reg:       reg,
		handler:   h,
		ruleNames: xkb.RuleNamesFromEnv,
		abort:     func() { os.Exit(1) },
		log:       logger.WithPrefix("input"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddDevice is the device-added entry point, invoked once per attached
// device. On return the device is either fully bound (handler accepted,
// subscriptions installed) or ignored; there is no partial state.
//
// Neither the event loop nor the driver can roll back a half-initialized
// device, and an event delivered into one later would hit invalid
// state. So any panic inside the sequence, including inside user
// handler code, aborts the process instead of propagating.
func (m *Manager) AddDevice(d *device.Device) {
	defer func() {
		if r := recover(); r != nil {
			m.log.Error("input device setup failed, aborting",
				"device", d.Name(), "type", d.Type().String(), "panic", r)
			m.abort()
		}
	}()

	m.reg.Add(d)

	switch d.Type() {
	case device.TypeKeyboard:
		kb, ok := d.Keyboard()
		if !ok {
			panic(fmt.Sprintf("device %q was not a keyboard", d.Name()))
		}
		m.setupKeyboard(kb)
		h := device.KeyboardHandle{Handle: d.Handle()}
		if handler := m.handler.KeyboardAdded(h); handler != nil {
			m.bindKeyboard(d, kb, h, handler)
		}
	case device.TypePointer:
		p, ok := d.Pointer()
		if !ok {
			panic(fmt.Sprintf("device %q was not a pointer", d.Name()))
		}
		h := device.PointerHandle{Handle: d.Handle()}
		if handler := m.handler.PointerAdded(h); handler != nil {
			m.bindPointer(d, p, h, handler)
		}
	case device.TypeTouch:
		tch, ok := d.Touch()
		if !ok {
			panic(fmt.Sprintf("device %q was not a touchscreen", d.Name()))
		}
		h := device.TouchHandle{Handle: d.Handle()}
		if handler := m.handler.TouchAdded(h); handler != nil {
			m.bindTouch(d, tch, h, handler)
		}
	case device.TypeTabletTool:
		tool, ok := d.TabletTool()
		if !ok {
			panic(fmt.Sprintf("device %q was not a tablet tool", d.Name()))
		}
		h := device.TabletToolHandle{Handle: d.Handle()}
		if handler := m.handler.TabletToolAdded(h); handler != nil {
			m.bindTabletTool(d, tool, h, handler)
		}
	case device.TypeTabletPad:
		pad, ok := d.TabletPad()
		if !ok {
			panic(fmt.Sprintf("device %q was not a tablet pad", d.Name()))
		}
		h := device.TabletPadHandle{Handle: d.Handle()}
		if handler := m.handler.TabletPadAdded(h); handler != nil {
			m.bindTabletPad(d, pad, h, handler)
		}
	default:
		// The driver contract is closed over the five kinds above.
		panic(fmt.Sprintf("unknown input device type %d for %q", int(d.Type()), d.Name()))
	}

	m.log.Debug("input device added", "device", d.Name(), "type", d.Type().String())
	m.handler.InputAdded(d.Handle())
}

// setupKeyboard compiles and applies the keymap and the default repeat
// policy. Runs for every keyboard before it is offered to the handler:
// keymap state belongs to the device, not to whoever accepts it.
func (m *Manager) setupKeyboard(kb *device.Keyboard) {
	names := m.ruleNames()
	m.log.Debug("compiling keymap",
		"rules", names.Rules, "model", names.Model, "layout", names.Layout,
		"variant", names.Variant, "options", names.Options)

	ctx, err := xkb.NewContext()
	if err != nil {
		panic(fmt.Sprintf("failed to create xkb context: %v", err))
	}
	defer ctx.Close()

	keymap, err := ctx.CompileKeymap(names)
	if err != nil {
		panic(fmt.Sprintf("could not compile keymap: %v", err))
	}
	defer keymap.Unref()

	kb.SetKeymap(keymap)
	kb.SetRepeatInfo(defaultRepeatRate, defaultRepeatDelay)
}
