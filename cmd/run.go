package cmd

import (
	"fmt"
	"strings"

	"edease/pkg/tui"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <command...>",
	Short: "Apply a single command to the saved timetable",
	Long: `Interpret one plain-English command against the saved timetable, for example:

  edease run add Science at 10 AM on Monday
  edease run "add a Geography class between 10 AM and 2 PM on Wednesday and Thursday"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := openSession()
		if err != nil {
			return err
		}

		res, err := tui.Submit(session, strings.Join(args, " "))
		fmt.Println(res.Message)
		if err != nil {
			return err
		}

		showGrid, _ := cmd.Flags().GetBool("show")
		if showGrid && res.Changed {
			fmt.Println(tui.RenderGrid(session.Grid(), session.Slots()))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolP("show", "s", false, "Print the timetable after a change")
}
