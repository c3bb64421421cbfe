// Package clipboard copies text to the clipboard of the machine running the
// server. Copying is best effort: failures are logged and reported as false.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
	"github.com/sirupsen/logrus"
)

// Command is a platform copy tool that reads the text on stdin
type Command struct {
	Bin  string
	Args []string
}

// Clipboard writes text through the system clipboard with a command fallback
type Clipboard struct {
	// Primary writes directly to the clipboard
	Primary func(text string) error
	// Commands are tried in order when Primary fails
	Commands []Command
	// TempDir holds the scratch file fed to the fallback command
	TempDir  string
	lookPath func(file string) (string, error)
	remove   func(name string) error
}

// New returns a Clipboard backed by atotto/clipboard and the usual platform tools
func New(tempDir string) *Clipboard {
	return &Clipboard{
		Primary:  writeAll,
		Commands: DefaultCommands(runtime.GOOS),
		TempDir:  tempDir,
		lookPath: exec.LookPath,
		remove:   os.Remove,
	}
}

// DefaultCommands returns the copy tools to try on goos
func DefaultCommands(goos string) []Command {
	switch goos {
	case "darwin":
		return []Command{{Bin: "pbcopy"}}
	case "windows":
		return []Command{{Bin: "clip"}}
	default:
		return []Command{
			{Bin: "wl-copy"},
			{Bin: "xclip", Args: []string{"-selection", "clipboard"}},
			{Bin: "xsel", Args: []string{"--clipboard", "--input"}},
		}
	}
}

func writeAll(text string) error {
	if clipboard.Unsupported {
		return errors.New("system clipboard unsupported")
	}
	return clipboard.WriteAll(text)
}

// Copy places text on the clipboard and reports whether it worked.
// Empty text is never copied.
func (c *Clipboard) Copy(text string) bool {
	if text == "" {
		return false
	}

	if c.Primary != nil {
		err := c.Primary(text)
		if err == nil {
			return true
		}
		logrus.Warnf("Clipboard write failed: %v", err)
	}

	if err := c.fallbackCopy(text); err != nil {
		logrus.Warnf("Fallback copy failed: %v", err)
		return false
	}
	return true
}

// fallbackCopy stages the text in a temporary file and pipes it to the first
// available copy command. The file is removed on every return path.
func (c *Clipboard) fallbackCopy(text string) error {
	cmd, err := c.findCommand()
	if err != nil {
		return err
	}

	f, err := os.CreateTemp(c.TempDir, "clip-*.txt")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		f.Close()
		remove := c.remove
		if remove == nil {
			remove = os.Remove
		}
		if err := remove(f.Name()); err != nil {
			logrus.Warnf("Failed to remove temp file %s: %v", f.Name(), err)
		}
	}()

	if _, err := f.WriteString(text); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to rewind temp file: %w", err)
	}

	run := exec.Command(cmd.Bin, cmd.Args...)
	run.Stdin = f
	if err := run.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", cmd.Bin, err)
	}
	return nil
}

func (c *Clipboard) findCommand() (Command, error) {
	lookPath := c.lookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	for _, cmd := range c.Commands {
		if _, err := lookPath(cmd.Bin); err == nil {
			return cmd, nil
		}
	}
	return Command{}, errors.New("no clipboard command available")
}
