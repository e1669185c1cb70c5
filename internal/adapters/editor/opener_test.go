package editor

import (
	"errors"
	"os/exec"
	"slices"
	"testing"
)

func TestOpener_Command(t *testing.T) {
	tests := []struct {
		name     string
		command  string
		env      map[string]string
		onPath   string
		wantArgs []string
		wantErr  bool
	}{
		{
			name:     "configured command with flags",
			command:  "code --wait",
			env:      map[string]string{"EDITOR": "vim"},
			wantArgs: []string{"code", "--wait", "/tmp/2025-10-13.json"},
		},
		{
			name:     "EDITOR wins over VISUAL",
			env:      map[string]string{"EDITOR": "hx", "VISUAL": "emacs"},
			wantArgs: []string{"hx", "/tmp/2025-10-13.json"},
		},
		{
			name:     "VISUAL when EDITOR is blank",
			env:      map[string]string{"EDITOR": "  ", "VISUAL": "emacs -nw"},
			wantArgs: []string{"emacs", "-nw", "/tmp/2025-10-13.json"},
		},
		{
			name:     "fallback on PATH",
			onPath:   "nano",
			wantArgs: []string{"/usr/bin/nano", "/tmp/2025-10-13.json"},
		},
		{
			name:    "nothing available",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOpener(tt.command)
			o.lookEnv = func(k string) string { return tt.env[k] }
			o.lookup = func(name string) (string, error) {
				if name == tt.onPath {
					return "/usr/bin/" + name, nil
				}
				return "", errors.New("not found")
			}

			cmd, err := o.Command("/tmp/2025-10-13.json")
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(cmd.Args, tt.wantArgs) {
				t.Errorf("args = %v, want %v", cmd.Args, tt.wantArgs)
			}
		})
	}
}

func TestOpener_OpenFile(t *testing.T) {
	tests := []struct {
		name    string
		command string
		wantErr bool
	}{
		{"editor exits cleanly", "true", false},
		{"editor exits with failure", "false", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := exec.LookPath(tt.command); err != nil {
				t.Skipf("%s not on PATH", tt.command)
			}

			err := NewOpener(tt.command).OpenFile("/tmp/2025-10-13.json")
			if (err != nil) != tt.wantErr {
				t.Errorf("OpenFile() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestOpener_OpenFileWithoutEditor(t *testing.T) {
	o := NewOpener("")
	o.lookEnv = func(string) string { return "" }
	o.lookup = func(string) (string, error) { return "", errors.New("not found") }

	if err := o.OpenFile("/tmp/2025-10-13.json"); err == nil {
		t.Error("expected error when no editor is available")
	}
}
