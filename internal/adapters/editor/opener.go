package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"devotional/internal/ports"
)

// Opener implements ports.EditorOpener
type Opener struct {
	// command overrides $EDITOR/$VISUAL when set (e.g. "code --wait")
	command string
	lookEnv func(string) string
	lookup  func(string) (string, error)
}

var _ ports.EditorOpener = (*Opener)(nil)

// fallbacks are tried on PATH when no editor is configured
var fallbacks = []string{"nvim", "vim", "vi", "nano"}

// NewOpener creates a new editor opener. command may be empty to use the
// environment.
func NewOpener(command string) *Opener {
	return &Opener{
		command: command,
		lookEnv: os.Getenv,
		lookup:  exec.LookPath,
	}
}

// OpenFile opens a file and waits for the editor to exit
func (o *Opener) OpenFile(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns an exec.Cmd for opening a file in the editor.
// Editor strings may carry arguments, which are kept before the path.
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	argv := o.resolve()
	if len(argv) == 0 {
		return nil, fmt.Errorf("no editor found: set $EDITOR or editor in devotional.yaml")
	}

	args := append(argv[1:], path)
	cmd := exec.Command(argv[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

// resolve returns the editor program and its leading arguments
func (o *Opener) resolve() []string {
	for _, candidate := range []string{o.command, o.lookEnv("EDITOR"), o.lookEnv("VISUAL")} {
		if argv := strings.Fields(candidate); len(argv) > 0 {
			return argv
		}
	}

	for _, name := range fallbacks {
		if path, err := o.lookup(name); err == nil {
			return []string{path}
		}
	}
	return nil
}
