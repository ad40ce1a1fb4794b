package tui

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// copyToClipboard is swapped out in tests.
var copyToClipboard = systemClipboard

// clipboardCommand picks the platform clipboard writer.
func clipboardCommand() (*exec.Cmd, error) {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("pbcopy"), nil
	case "linux":
		for _, c := range [][]string{
			{"wl-copy"},
			{"xclip", "-selection", "clipboard"},
			{"xsel", "--clipboard", "--input"},
		} {
			if _, err := exec.LookPath(c[0]); err == nil {
				return exec.Command(c[0], c[1:]...), nil
			}
		}
		return nil, fmt.Errorf("no clipboard tool: install wl-clipboard, xclip or xsel")
	}
	return nil, fmt.Errorf("clipboard not supported on %s", runtime.GOOS)
}

func systemClipboard(text string) error {
	cmd, err := clipboardCommand()
	if err != nil {
		return err
	}
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}
