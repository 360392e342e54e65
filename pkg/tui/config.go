package tui

import (
	"fmt"
	"strings"

	"edease/pkg/config"
	"edease/pkg/gemini"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Gemini API Key", "key"),
						huh.NewOption("Set Model", "model"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return ignoreAbort(err)
		}

		switch action {
		case "back":
			return nil
		case "theme":
			err = runSetThemeTUI(cfg)
		case "key":
			err = runSetAPIKeyTUI(cfg)
		case "model":
			err = runSetModelTUI(cfg)
		case "view":
			printConfig(cfg)
		}

		if err != nil {
			return err
		}
	}
}

func printConfig(cfg *config.AppConfig) {
	fmt.Println(accentStyle.Render("\n--- Current Configuration (~/.edease.json) ---"))
	if cfg.APIKey() == "" {
		fmt.Println("API Key: Not set")
	} else {
		fmt.Printf("API Key: %s\n", MaskKey(cfg.APIKey()))
	}

	model := cfg.ModelName()
	if model == "" {
		model = gemini.DefaultModel + " (default)"
	}
	fmt.Printf("Model: %s\n", model)
	fmt.Printf("Accent Color: %s\n", cfg.AccentColor)
	fmt.Printf("Export Path: %s\n", cfg.ExportPath)
	fmt.Println(mutedStyle.Render("Key and model changes apply the next time edease starts."))
	fmt.Println()
}

// MaskKey hides all but the last four characters of a secret
func MaskKey(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}

func runSetAPIKeyTUI(cfg *config.AppConfig) error {
	var key string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Gemini API Key").
				Description("Stored in ~/.edease.json. GEMINI_API_KEY in the environment takes precedence.").
				EchoMode(huh.EchoModePassword).
				Value(&key).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("key cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return ignoreAbort(err)
	}

	cfg.GeminiAPIKey = strings.TrimSpace(key)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ API key saved.\n"))
	return nil
}

func runSetModelTUI(cfg *config.AppConfig) error {
	model := cfg.Model
	if model == "" {
		model = gemini.DefaultModel
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Model name").
				Description("Any model that supports generateContent.").
				Value(&model),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return ignoreAbort(err)
	}

	cfg.Model = strings.TrimSpace(model)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Model changed to: %s\n", cfg.Model)))
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an Accent Color for EdEase").
				Description("Select a curated Charm style or choose Custom to enter your own Hex.").
				Options(
					huh.NewOption(fmt.Sprintf("%s EdEase Blue", colorBlock(defaultAccent)), defaultAccent),
					huh.NewOption(fmt.Sprintf("%s Lesson Purple", colorBlock("99")), "99"),
					huh.NewOption(fmt.Sprintf("%s Chalk Green", colorBlock("42")), "42"),
					huh.NewOption(fmt.Sprintf("%s Marker Orange", colorBlock("208")), "208"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
				).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return ignoreAbort(err)
	}

	if input == "custom" {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Enter a Hex Color Code").
					Description("Include the `#` symbol. Example: #FF00FF").
					Placeholder("#").
					Value(&hexInput).
					Validate(func(str string) error {
						if len(str) != 7 || !strings.HasPrefix(str, "#") {
							return fmt.Errorf("must be a valid 6-character hex code starting with #")
						}
						return nil
					}),
			),
		).WithTheme(GetTheme())

		if err := hexForm.Run(); err != nil {
			return ignoreAbort(err)
		}
		cfg.AccentColor = hexInput
	} else {
		cfg.AccentColor = input
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ The theme color is now saved.\n"))
	return nil
}
