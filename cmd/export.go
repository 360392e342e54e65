package cmd

import (
	"fmt"

	"edease/pkg/config"
	"edease/pkg/tui"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Directly export the timetable to a CSV or ICS file",
	Long:  `Export the saved timetable without using the interactive TUI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")

		if output == "" {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			output = tui.ExportBase(cfg)
		}

		session, err := openSession()
		if err != nil {
			return err
		}

		slots := session.Slots()
		if len(slots) == 0 {
			return fmt.Errorf("the timetable is empty, nothing to export")
		}

		path, err := tui.ExportFile(session, format, output)
		if err != nil {
			return err
		}

		fmt.Printf("Successfully exported %d slots to %s\n", len(slots), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("format", "f", "csv", "Export format (csv or ics)")
	exportCmd.Flags().StringP("output", "o", "", "Output file path (default edease-timetable.<format>)")
}
