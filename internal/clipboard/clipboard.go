// Package clipboard copies generated prompts to the system clipboard using
// whatever utility the platform provides.
package clipboard

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Copy copies text to the system clipboard
func Copy(text string) error {
	switch runtime.GOOS {
	case "darwin":
		return pipeTo(text, "pbcopy")
	case "linux":
		return copyLinux(text)
	case "windows":
		return pipeTo(text, "cmd", "/c", "clip")
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}

// copyLinux tries the common X11 and Wayland clipboard utilities in order.
func copyLinux(text string) error {
	candidates := [][]string{
		{"xclip", "-selection", "clipboard"},
		{"xsel", "--clipboard", "--input"},
		{"wl-copy"},
	}

	var lastErr error
	for _, candidate := range candidates {
		if !isCommandAvailable(candidate[0]) {
			continue
		}
		if err := pipeTo(text, candidate[0], candidate[1:]...); err == nil {
			return nil
		} else {
			lastErr = fmt.Errorf("%s failed: %w", candidate[0], err)
		}
	}

	if lastErr != nil {
		return fmt.Errorf("clipboard utilities available but failed: %w", lastErr)
	}
	return fmt.Errorf("no clipboard utility found (install xclip, xsel, or wl-clipboard)")
}

func pipeTo(text, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// isCommandAvailable checks if a command is available in PATH
func isCommandAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
