package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wayseat/wayseat/internal/config"
)

var (
	// Version is set during build
	Version = "0.1.0-dev"

	configPath string

	rootCmd = &cobra.Command{
		Use:   "wayseat",
		Short: "Wayseat - input device lifecycle for Wayland compositors",
		Long: `Wayseat is the input-device layer of a Wayland compositor: it detects
attached keyboards, pointers, touchscreens and tablets, applies keymap
and repeat defaults to keyboards, and dispatches hardware events to
whichever handlers accept each device.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				config.SetConfigPath(configPath)
			}
			return config.Init()
		},
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s\n" .Version}}`)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(devicesCmd)
	rootCmd.AddCommand(testInputCmd)
}
