package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	successColor = lipgloss.Color("82") // Green

	// SuccessStyle marks confirmations
	SuccessStyle = lipgloss.NewStyle().
			Foreground(successColor)
)

// Successf prints a styled confirmation line
func Successf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, SuccessStyle.Render(fmt.Sprintf(format, args...)))
}
