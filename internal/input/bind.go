package input

import (
	"github.com/wayseat/wayseat/internal/device"
	"github.com/wayseat/wayseat/internal/signal"
	"github.com/wayseat/wayseat/internal/xkb"
)

type remover interface{ Remove() }

// binding is the bound unit for one accepted device: its handler plus
// every active event subscription. It is published as the device's
// opaque data and lives exactly until the destroy notification.
type binding struct {
	handler any
	subs    []remover
	destroy *signal.Listener[*device.Device]

	released bool
}

func (b *binding) track(r remover) {
	b.subs = append(b.subs, r)
}

// release removes every subscription exactly once. The destroy listener
// is tracked separately because it is installed after all kind channels
// and must survive its own emission.
func (b *binding) release() {
	if b.released {
		return
	}
	b.released = true
	for _, s := range b.subs {
		s.Remove()
	}
	if b.destroy != nil {
		b.destroy.Remove()
	}
	b.handler = nil
}

// finish installs the destroy subscription, always last, and publishes
// the binding on the device. Destroy firing is the only teardown path.
func (b *binding) finish(d *device.Device) {
	b.destroy = d.Destroyed.Connect(func(d *device.Device) {
		b.release()
		d.SetData(nil)
	})
	d.SetData(b)
}

func (m *Manager) bindKeyboard(d *device.Device, kb *device.Keyboard, h device.KeyboardHandle, handler KeyboardHandler) {
	b := &binding{handler: handler}
	b.track(kb.Key.Connect(func(ev device.KeyEvent) { handler.OnKey(h, ev) }))
	b.track(kb.ModifiersChanged.Connect(func(mods xkb.Modifier) { handler.OnModifiers(h, mods) }))
	b.track(kb.KeymapChanged.Connect(func(km *xkb.Keymap) { handler.OnKeymap(h, km) }))
	b.track(kb.RepeatInfoChanged.Connect(func(ri device.RepeatInfo) { handler.OnRepeatInfo(h, ri) }))
	b.finish(d)
}

func (m *Manager) bindPointer(d *device.Device, p *device.Pointer, h device.PointerHandle, handler PointerHandler) {
	b := &binding{handler: handler}
	b.track(p.Motion.Connect(func(ev device.PointerMotionEvent) { handler.OnMotion(h, ev) }))
	b.track(p.MotionAbsolute.Connect(func(ev device.PointerMotionAbsoluteEvent) { handler.OnMotionAbsolute(h, ev) }))
	b.track(p.Button.Connect(func(ev device.PointerButtonEvent) { handler.OnButton(h, ev) }))
	b.track(p.Axis.Connect(func(ev device.PointerAxisEvent) { handler.OnAxis(h, ev) }))
	b.finish(d)
}

func (m *Manager) bindTouch(d *device.Device, t *device.Touch, h device.TouchHandle, handler TouchHandler) {
	b := &binding{handler: handler}
	b.track(t.Down.Connect(func(ev device.TouchDownEvent) { handler.OnDown(h, ev) }))
	b.track(t.Up.Connect(func(ev device.TouchUpEvent) { handler.OnUp(h, ev) }))
	b.track(t.Motion.Connect(func(ev device.TouchMotionEvent) { handler.OnMotion(h, ev) }))
	b.track(t.Cancel.Connect(func(ev device.TouchCancelEvent) { handler.OnCancel(h, ev) }))
	b.finish(d)
}

func (m *Manager) bindTabletTool(d *device.Device, t *device.TabletTool, h device.TabletToolHandle, handler TabletToolHandler) {
	b := &binding{handler: handler}
	b.track(t.Axis.Connect(func(ev device.TabletToolAxisEvent) { handler.OnAxis(h, ev) }))
	b.track(t.Proximity.Connect(func(ev device.TabletToolProximityEvent) { handler.OnProximity(h, ev) }))
	b.track(t.Tip.Connect(func(ev device.TabletToolTipEvent) { handler.OnTip(h, ev) }))
	b.track(t.Button.Connect(func(ev device.TabletToolButtonEvent) { handler.OnButton(h, ev) }))
	b.finish(d)
}

func (m *Manager) bindTabletPad(d *device.Device, t *device.TabletPad, h device.TabletPadHandle, handler TabletPadHandler) {
	b := &binding{handler: handler}
	b.track(t.Button.Connect(func(ev device.TabletPadButtonEvent) { handler.OnButton(h, ev) }))
	b.track(t.Ring.Connect(func(ev device.TabletPadRingEvent) { handler.OnRing(h, ev) }))
	b.track(t.Strip.Connect(func(ev device.TabletPadStripEvent) { handler.OnStrip(h, ev) }))
	b.finish(d)
}
