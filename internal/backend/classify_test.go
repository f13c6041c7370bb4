package backend

import (
	"testing"

	evdev "github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"

	"github.com/wayseat/wayseat/internal/device"
)

func capsOf(keys, abs, rel []evdev.EvCode) capabilities {
	caps := capabilities{
		keys: make(map[evdev.EvCode]bool),
		abs:  make(map[evdev.EvCode]bool),
		rel:  make(map[evdev.EvCode]bool),
	}
	for _, c := range keys {
		caps.keys[c] = true
	}
	for _, c := range abs {
		caps.abs[c] = true
	}
	for _, c := range rel {
		caps.rel[c] = true
	}
	return caps
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		keys     []evdev.EvCode
		abs      []evdev.EvCode
		rel      []evdev.EvCode
		wantType device.Type
		wantOK   bool
	}{
		{
			name:     "keyboard",
			keys:     []evdev.EvCode{evdev.KEY_A, evdev.KEY_ENTER, evdev.KEY_LEFTSHIFT},
			wantType: device.TypeKeyboard,
			wantOK:   true,
		},
		{
			name:     "mouse",
			keys:     []evdev.EvCode{evdev.BTN_LEFT, evdev.BTN_RIGHT, evdev.BTN_MIDDLE},
			rel:      []evdev.EvCode{evdev.REL_X, evdev.REL_Y, evdev.REL_WHEEL},
			wantType: device.TypePointer,
			wantOK:   true,
		},
		{
			name:     "trackball without buttons bit set first",
			rel:      []evdev.EvCode{evdev.REL_X, evdev.REL_Y},
			wantType: device.TypePointer,
			wantOK:   true,
		},
		{
			name:     "touchscreen",
			keys:     []evdev.EvCode{evdev.BTN_TOUCH},
			abs:      []evdev.EvCode{evdev.ABS_X, evdev.ABS_Y, evdev.ABS_MT_POSITION_X},
			wantType: device.TypeTouch,
			wantOK:   true,
		},
		{
			name:     "touchpad is a pointer, not a touchscreen",
			keys:     []evdev.EvCode{evdev.BTN_TOUCH, evdev.BTN_LEFT, evdev.BTN_TOOL_FINGER},
			abs:      []evdev.EvCode{evdev.ABS_X, evdev.ABS_Y},
			wantType: device.TypePointer,
			wantOK:   true,
		},
		{
			name:     "pen reports touch but classifies as tablet tool",
			keys:     []evdev.EvCode{evdev.BTN_TOOL_PEN, evdev.BTN_TOUCH, evdev.BTN_STYLUS},
			abs:      []evdev.EvCode{evdev.ABS_X, evdev.ABS_Y, evdev.ABS_PRESSURE},
			wantType: device.TypeTabletTool,
			wantOK:   true,
		},
		{
			name:     "tablet pad",
			keys:     []evdev.EvCode{evdev.BTN_0, evdev.BTN_1},
			abs:      []evdev.EvCode{evdev.ABS_WHEEL},
			wantType: device.TypeTabletPad,
			wantOK:   true,
		},
		{
			name:   "lid switch is ignored",
			wantOK: false,
		},
		{
			name:   "media keys only is not a keyboard",
			keys:   []evdev.EvCode{evdev.KEY_VOLUMEUP, evdev.KEY_VOLUMEDOWN},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ, ok := classify(capsOf(tt.keys, tt.abs, tt.rel))
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantType, typ)
			}
		})
	}
}
