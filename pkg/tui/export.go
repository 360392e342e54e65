package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"edease/pkg/assistant"
	"edease/pkg/config"
	"edease/pkg/exporter"

	"github.com/charmbracelet/huh"
)

// ExportFile writes the session's timetable to path in the given format ("csv" or "ics").
// The file extension is added when missing.
func ExportFile(session *assistant.Session, format, path string) (string, error) {
	format = strings.ToLower(format)
	if format != "csv" && format != "ics" {
		return "", fmt.Errorf("unsupported export format %q (use csv or ics)", format)
	}
	if filepath.Ext(path) != "."+format {
		path += "." + format
	}

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if format == "csv" {
		err = exporter.WriteCSV(session.Grid(), session.Slots(), file)
	} else {
		err = exporter.GenerateICS(session.Slots(), time.Now(), file)
	}
	if err != nil {
		return "", fmt.Errorf("failed to export timetable: %w", err)
	}

	return path, nil
}

// ExportBase is the output path without extension, taken from the configured
// export path or "edease-timetable"
func ExportBase(cfg *config.AppConfig) string {
	if cfg == nil || cfg.ExportPath == "" {
		return "edease-timetable"
	}
	return strings.TrimSuffix(cfg.ExportPath, filepath.Ext(cfg.ExportPath))
}

// RunExportTUI asks for a format and file name, then writes the export
func RunExportTUI(session *assistant.Session) error {
	if len(session.Slots()) == 0 {
		fmt.Println(errorStyle.Render("The timetable is empty, nothing to export!"))
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	format := "csv"
	outputFile := ExportBase(cfg)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Export format").
				Options(
					huh.NewOption("CSV grid (spreadsheets)", "csv"),
					huh.NewOption("ICS calendar (weekly events)", "ics"),
				).
				Value(&format),

			huh.NewInput().
				Title("Output file name").
				Value(&outputFile).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("file name cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return ignoreAbort(err)
	}

	path, err := ExportFile(session, format, strings.TrimSpace(outputFile))
	if err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\nSuccess! Exported %d slots to %s", len(session.Slots()), path)))
	return nil
}
