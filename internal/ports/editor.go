package ports

import "os/exec"

// EditorOpener opens artifact files in an external editor
type EditorOpener interface {
	// OpenFile opens the file and waits for the editor to exit
	OpenFile(path string) error

	// Command builds the editor process without starting it, for tea.ExecProcess
	Command(path string) (*exec.Cmd, error)
}
