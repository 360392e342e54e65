package cmd

import (
	"fmt"

	"edease/pkg/config"
	"edease/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage edease configuration",
	Long:  "View or edit your local configuration settings (Gemini API key, model, theme, export path).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		changed := false
		if key, _ := cmd.Flags().GetString("set-key"); key != "" {
			cfg.GeminiAPIKey = key
			changed = true
		}
		if model, _ := cmd.Flags().GetString("model"); model != "" {
			cfg.Model = model
			changed = true
		}
		if path, _ := cmd.Flags().GetString("export-path"); path != "" {
			cfg.ExportPath = path
			changed = true
		}

		if changed {
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Println("✅ Configuration saved to ~/.edease.json")
			return nil
		}

		// If no flags are given, launch the interactive TUI flow
		return tui.RunConfigTUI()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringP("set-key", "k", "", "Set your Gemini API key")
	configCmd.Flags().StringP("model", "m", "", "Set the Gemini model name")
	configCmd.Flags().String("export-path", "", "Set the default export file path")
}
