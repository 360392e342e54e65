package cmd

import (
	"edease/pkg/tui"

	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive TUI",
	Long:  `Launch the Text User Interface to chat with the assistant, view, and export your timetable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := openSession()
		if err != nil {
			return err
		}
		return tui.RunTUI(session)
	},
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the timetable assistant",
	Long:  `Start a conversation where each message either edits the timetable or is answered by the assistant.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := openSession()
		if err != nil {
			return err
		}
		return tui.RunChatTUI(session)
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
	rootCmd.AddCommand(chatCmd)
}
