// Package open hands URLs to the system's default handler.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/epilist-cli/epilist/constant"
	"github.com/epilist-cli/epilist/log"
)

// Start opens input without waiting for the handler to exit.
func Start(input string) error {
	cmd, err := Command(runtime.GOOS, input)
	if err != nil {
		return err
	}

	log.Infof("opening %s", input)
	return cmd.Start()
}

// Command returns the command that opens input on goos.
func Command(goos, input string) (*exec.Cmd, error) {
	switch goos {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", input), nil
	case constant.Darwin:
		return exec.Command("open", input), nil
	case constant.Linux:
		return exec.Command("xdg-open", input), nil
	case constant.Android:
		return exec.Command("termux-open", input), nil
	default:
		return nil, fmt.Errorf("open %s: unsupported OS %q", input, goos)
	}
}
