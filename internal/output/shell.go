package output

import (
	"io"

	"github.com/kballard/go-shellquote"
)

// ShellLine quotes args for a POSIX shell
func ShellLine(args ...string) string {
	return shellquote.Join(args...)
}

// WriteShell writes one quoted command per line
func WriteShell(w io.Writer, commands ...[]string) error {
	for _, args := range commands {
		if _, err := io.WriteString(w, ShellLine(args...)+"\n"); err != nil {
			return err
		}
	}
	return nil
}
