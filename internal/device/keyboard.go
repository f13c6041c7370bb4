package device

import (
	"github.com/wayseat/wayseat/internal/signal"
	"github.com/wayseat/wayseat/internal/xkb"
)

// Keyboard is the keyboard payload of a device. It owns a reference to
// its keymap, tracks the modifier mask, and emits the four keyboard
// event channels.
type Keyboard struct {
	dev *Device

	keymap    *xkb.Keymap
	repeat    RepeatInfo
	modifiers xkb.Modifier

	Key               signal.Signal[KeyEvent]
	ModifiersChanged  signal.Signal[xkb.Modifier]
	KeymapChanged     signal.Signal[*xkb.Keymap]
	RepeatInfoChanged signal.Signal[RepeatInfo]
}

// Device returns the owning device.
func (k *Keyboard) Device() *Device { return k.dev }

// SetKeymap installs a keymap. The keyboard takes its own reference;
// the caller keeps (and eventually releases) its own. The previous
// keymap, if any, is released.
func (k *Keyboard) SetKeymap(km *xkb.Keymap) {
	if k.keymap != nil {
		k.keymap.Unref()
	}
	k.keymap = km.Ref()
	k.KeymapChanged.Emit(km)
}

// Keymap returns the installed keymap, nil before SetKeymap.
func (k *Keyboard) Keymap() *xkb.Keymap { return k.keymap }

// SetRepeatInfo sets the repeat policy and notifies subscribers.
func (k *Keyboard) SetRepeatInfo(rate, delay int32) {
	k.repeat = RepeatInfo{Rate: rate, Delay: delay}
	k.RepeatInfoChanged.Emit(k.repeat)
}

// RepeatInfo returns the current repeat policy.
func (k *Keyboard) RepeatInfo() RepeatInfo { return k.repeat }

// Modifiers returns the current modifier mask.
func (k *Keyboard) Modifiers() xkb.Modifier { return k.modifiers }

// ProcessKey delivers a key transition: the modifier mask is updated
// from the keymap, the key channel fires, and the modifiers channel
// fires after it when the mask changed. Caps lock latches on press.
func (k *Keyboard) ProcessKey(ev KeyEvent) {
	changed := false
	if k.keymap != nil {
		if mod := k.keymap.ModifierForKey(ev.Code); mod != 0 {
			old := k.modifiers
			switch {
			case mod == xkb.ModCaps && ev.State == KeyPressed:
				k.modifiers ^= mod
			case ev.State == KeyPressed:
				k.modifiers |= mod
			case mod != xkb.ModCaps:
				k.modifiers &^= mod
			}
			changed = old != k.modifiers
		}
	}
	k.Key.Emit(ev)
	if changed {
		k.ModifiersChanged.Emit(k.modifiers)
	}
}

// release drops the keymap reference on device destroy.
func (k *Keyboard) release() {
	if k.keymap != nil {
		k.keymap.Unref()
		k.keymap = nil
	}
}
