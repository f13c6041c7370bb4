package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/wayseat/wayseat/internal/backend"
)

var (
	deviceHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("86"))

	devicePathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	deviceTypeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212"))
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List detected input devices",
	Long:  `Scans the device directory once and prints every device the input layer would attach, with its classified kind.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		infos, err := backend.ListDevices()
		if err != nil {
			return err
		}

		if len(infos) == 0 {
			fmt.Println("No input devices detected.")
			return nil
		}

		fmt.Println(deviceHeaderStyle.Render("Input devices"))
		for _, info := range infos {
			fmt.Printf("  %s  %s  %s\n",
				devicePathStyle.Render(info.Path),
				deviceTypeStyle.Render(fmt.Sprintf("%-11s", info.Type.String())),
				info.Name)
		}
		return nil
	},
}
