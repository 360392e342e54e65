package cmd

import (
	"fmt"

	"edease/pkg/tui"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved timetable",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := openSession()
		if err != nil {
			return err
		}

		fmt.Println(tui.RenderGrid(session.Grid(), session.Slots()))
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every slot and the chat history",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := openSession()
		if err != nil {
			return err
		}

		if err := session.Reset(); err != nil {
			return err
		}
		fmt.Println("Schedule cleared successfully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(clearCmd)
}
