package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"

	"github.com/studiowebux/ispcli/internal/config"
	"github.com/studiowebux/ispcli/internal/formatter"
)

// ErrNotReady is returned when a document cannot produce a test set
var ErrNotReady = errors.New("test set is not ready")

// clipboardWrite is replaced in tests
var clipboardWrite = clipboard.WriteAll

// Output controls where a command writes its result
type Output struct {
	Path   string    // Write to this file instead of Stdout
	Copy   bool      // Also copy the result to the clipboard
	Stdout io.Writer // Defaults to os.Stdout
	Stderr io.Writer // Defaults to os.Stderr
}

func (o Output) stdout() io.Writer {
	if o.Stdout != nil {
		return o.Stdout
	}
	return os.Stdout
}

func (o Output) stderr() io.Writer {
	if o.Stderr != nil {
		return o.Stderr
	}
	return os.Stderr
}

// emit writes content to the configured destinations
func (o Output) emit(content string) error {
	if o.Copy {
		if err := clipboardWrite(content); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		success(o.stderr(), "Copied to clipboard")
	}

	if o.Path != "" {
		if dir := filepath.Dir(o.Path); dir != "" {
			if err := os.MkdirAll(dir, config.DirPermissions); err != nil {
				return fmt.Errorf("failed to create directory: %w", err)
			}
		}
		if err := os.WriteFile(o.Path, []byte(content), config.FilePermissions); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		success(o.stderr(), "Wrote %s", o.Path)
		return nil
	}

	if o.Copy {
		return nil
	}
	_, err := io.WriteString(o.stdout(), content)
	return err
}

func success(w io.Writer, format string, args ...interface{}) {
	color.New(color.FgGreen).Fprintf(w, "✓ "+format+"\n", args...)
}

func warn(w io.Writer, format string, args ...interface{}) {
	color.New(color.FgYellow).Fprintf(w, format+"\n", args...)
}

func failure(w io.Writer, format string, args ...interface{}) {
	color.New(color.FgRed).Fprintf(w, "✗ "+format+"\n", args...)
}

// LoadSettings reads the active settings file, warning and falling back to
// defaults when it is malformed
func LoadSettings(stderr io.Writer) config.Settings {
	settings, err := config.LoadSettings(config.GetSettingsFilePath())
	if err != nil {
		fmt.Fprintf(stderr, "warning: %v\n", err)
		return config.DefaultSettings()
	}
	return settings
}

// FormatterOptions maps settings onto formatter options
func FormatterOptions(s config.Settings) formatter.Options {
	return formatter.Options{
		HighlightColor:    s.HighlightColor,
		OraclePlaceholder: s.OraclePlaceholder,
	}
}
