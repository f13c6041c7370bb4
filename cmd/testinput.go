package cmd

import (
	"fmt"
	"time"

	"github.com/ThomasT75/uinput"
	evdev "github.com/holoplot/go-evdev"
	"github.com/spf13/cobra"

	"github.com/wayseat/wayseat/internal/logger"
)

var testInputCmd = &cobra.Command{
	Use:   "test-input",
	Short: "Create a virtual keyboard and type a probe sequence",
	Long: `Creates a virtual keyboard through uinput and presses a short key
sequence. Run "wayseat run" in another terminal to verify hot-plug
detection, keymap setup and key delivery end to end.

Requires write access to /dev/uinput.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		kbd, err := uinput.CreateKeyboard("/dev/uinput", []byte("Wayseat Test Keyboard"))
		if err != nil {
			return fmt.Errorf("failed to create virtual keyboard: %w", err)
		}
		defer kbd.Close()

		// Give udev time to create the event node and the watcher time
		// to attach it.
		logger.Info("virtual keyboard created, waiting for attach")
		time.Sleep(time.Second)

		probe := []evdev.EvCode{
			evdev.KEY_H, evdev.KEY_E, evdev.KEY_L, evdev.KEY_L, evdev.KEY_O,
		}
		for _, code := range probe {
			if err := kbd.KeyDown(int(code)); err != nil {
				return fmt.Errorf("key down failed: %w", err)
			}
			time.Sleep(20 * time.Millisecond)
			if err := kbd.KeyUp(int(code)); err != nil {
				return fmt.Errorf("key up failed: %w", err)
			}
			time.Sleep(50 * time.Millisecond)
		}

		logger.Info("probe sequence sent", "keys", len(probe))

		// Keep the node alive long enough for the detach path to be
		// observable too.
		time.Sleep(time.Second)
		return nil
	},
}
