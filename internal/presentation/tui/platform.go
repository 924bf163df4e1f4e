package tui

import (
	"fmt"
	"os/exec"
	"runtime"
)

// OSOpenCmd builds the command that hands a URL to the desktop. Tests replace it.
var OSOpenCmd = func(url string) *exec.Cmd {
	var cmd string
	var args []string
	switch runtime.GOOS {
	case "linux", "freebsd", "openbsd":
		cmd = "xdg-open"
		args = []string{url}
	case "windows":
		cmd = "rundll32"
		args = []string{"url.dll,FileProtocolHandler", url}
	case "darwin":
		cmd = "open"
		args = []string{url}
	default:
		return nil
	}
	return exec.Command(cmd, args...) //nolint:gosec
}

// openBrowser opens a remote image that has no bundled asset.
func openBrowser(url string) error {
	cmd := OSOpenCmd(url)
	if cmd == nil {
		return fmt.Errorf("opening %s: unsupported platform %s", url, runtime.GOOS)
	}
	return cmd.Start()
}
