package cmd

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wayseat/wayseat/internal/backend"
	"github.com/wayseat/wayseat/internal/config"
	"github.com/wayseat/wayseat/internal/device"
	"github.com/wayseat/wayseat/internal/input"
	"github.com/wayseat/wayseat/internal/logger"
	"github.com/wayseat/wayseat/internal/xkb"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the input layer with a logging handler",
	Long: `Attaches every input device on the system, accepts all of them with a
handler that logs their events, and keeps running until interrupted.
Mainly useful for verifying device detection and keymap configuration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		logger.SetLevelFromString(cfg.Logging.LogLevel)

		reg := device.NewRegistry()
		mgr := input.NewManager(reg, &logAllHandler{},
			input.WithRuleNamesFunc(cfg.Input.RuleNames))
		b := backend.New(mgr, backend.WithDeviceDir(cfg.Input.DeviceDir))

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		logger.Info("starting input layer", "device_dir", cfg.Input.DeviceDir)
		if err := b.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		logger.Info("input layer stopped")
		return nil
	},
}

// logAllHandler accepts every device kind and logs its events.
type logAllHandler struct{}

func (logAllHandler) InputAdded(h device.Handle) {
	d, err := h.Device()
	if err != nil {
		return
	}
	logger.Info("input added", "device", d.Name(), "type", d.Type().String())
}

func (logAllHandler) KeyboardAdded(h device.KeyboardHandle) input.KeyboardHandler {
	if kb, err := h.Keyboard(); err == nil && kb.Keymap() != nil {
		logger.Info("keyboard configured", "layouts", kb.Keymap().Layouts())
	}
	return logKeyboard{}
}

func (logAllHandler) PointerAdded(device.PointerHandle) input.PointerHandler {
	return logPointer{}
}

func (logAllHandler) TouchAdded(device.TouchHandle) input.TouchHandler {
	return logTouch{}
}

func (logAllHandler) TabletToolAdded(device.TabletToolHandle) input.TabletToolHandler {
	return logTabletTool{}
}

func (logAllHandler) TabletPadAdded(device.TabletPadHandle) input.TabletPadHandler {
	return logTabletPad{}
}

type logKeyboard struct{}

func (logKeyboard) OnKey(h device.KeyboardHandle, ev device.KeyEvent) {
	sym := "?"
	if kb, err := h.Keyboard(); err == nil && kb.Keymap() != nil {
		level := 0
		if kb.Modifiers()&(xkb.ModShift|xkb.ModCaps) != 0 {
			level = 1
		}
		if r, ok := kb.Keymap().KeysymAt(ev.Code, 0, level); ok {
			sym = string(r)
		}
	}
	logger.Debug("key", "code", ev.Code, "sym", sym, "state", ev.State)
}

func (logKeyboard) OnModifiers(_ device.KeyboardHandle, mods xkb.Modifier) {
	logger.Debug("modifiers", "mask", mods)
}

func (logKeyboard) OnKeymap(_ device.KeyboardHandle, km *xkb.Keymap) {
	logger.Debug("keymap changed", "layouts", km.Layouts())
}

func (logKeyboard) OnRepeatInfo(_ device.KeyboardHandle, ri device.RepeatInfo) {
	logger.Debug("repeat info", "rate", ri.Rate, "delay", ri.Delay)
}

type logPointer struct{}

func (logPointer) OnMotion(_ device.PointerHandle, ev device.PointerMotionEvent) {
	logger.Debug("pointer motion", "dx", ev.DX, "dy", ev.DY)
}

func (logPointer) OnMotionAbsolute(_ device.PointerHandle, ev device.PointerMotionAbsoluteEvent) {
	logger.Debug("pointer motion absolute", "x", ev.X, "y", ev.Y)
}

func (logPointer) OnButton(_ device.PointerHandle, ev device.PointerButtonEvent) {
	logger.Debug("pointer button", "button", ev.Button, "state", ev.State)
}

func (logPointer) OnAxis(_ device.PointerHandle, ev device.PointerAxisEvent) {
	logger.Debug("pointer axis", "orientation", ev.Orientation, "delta", ev.Delta)
}

type logTouch struct{}

func (logTouch) OnDown(_ device.TouchHandle, ev device.TouchDownEvent) {
	logger.Debug("touch down", "id", ev.TouchID, "x", ev.X, "y", ev.Y)
}

func (logTouch) OnUp(_ device.TouchHandle, ev device.TouchUpEvent) {
	logger.Debug("touch up", "id", ev.TouchID)
}

func (logTouch) OnMotion(_ device.TouchHandle, ev device.TouchMotionEvent) {
	logger.Debug("touch motion", "id", ev.TouchID, "x", ev.X, "y", ev.Y)
}

func (logTouch) OnCancel(_ device.TouchHandle, ev device.TouchCancelEvent) {
	logger.Debug("touch cancel", "id", ev.TouchID)
}

type logTabletTool struct{}

func (logTabletTool) OnAxis(_ device.TabletToolHandle, ev device.TabletToolAxisEvent) {
	logger.Debug("tool axis", "x", ev.X, "y", ev.Y, "pressure", ev.Pressure)
}

func (logTabletTool) OnProximity(_ device.TabletToolHandle, ev device.TabletToolProximityEvent) {
	logger.Debug("tool proximity", "state", ev.State)
}

func (logTabletTool) OnTip(_ device.TabletToolHandle, ev device.TabletToolTipEvent) {
	logger.Debug("tool tip", "state", ev.State)
}

func (logTabletTool) OnButton(_ device.TabletToolHandle, ev device.TabletToolButtonEvent) {
	logger.Debug("tool button", "button", ev.Button, "state", ev.State)
}

type logTabletPad struct{}

func (logTabletPad) OnButton(_ device.TabletPadHandle, ev device.TabletPadButtonEvent) {
	logger.Debug("pad button", "button", ev.Button, "state", ev.State)
}

func (logTabletPad) OnRing(_ device.TabletPadHandle, ev device.TabletPadRingEvent) {
	logger.Debug("pad ring", "ring", ev.Ring, "position", ev.Position)
}

func (logTabletPad) OnStrip(_ device.TabletPadHandle, ev device.TabletPadStripEvent) {
	logger.Debug("pad strip", "strip", ev.Strip, "position", ev.Position)
}
