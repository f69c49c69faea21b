package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and save an access token",
	Long: `Ask for email and password and exchange them for an access token.

The token is written to the token file (default ./ituring-access-token.json)
and used by every other command. A rejected login leaves the file untouched.`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

func runLogin(cmd *cobra.Command, args []string) error {
	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	email, err := prompt(in, out, "Email: ")
	if err != nil {
		return err
	}
	password, err := promptPassword(cmd.InOrStdin(), in, out, "Password: ")
	if err != nil {
		return err
	}

	ok, err := runner.Login(cmd.Context(), email, password, store)
	if err != nil {
		return err
	}
	if ok {
		Successf(out, "login done")
	}
	return nil
}

func prompt(in *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("read %s: %w", strings.TrimSuffix(strings.ToLower(label), ": "), err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptPassword reads without echo when stdin is a terminal
func promptPassword(stdin io.Reader, in *bufio.Reader, out io.Writer, label string) (string, error) {
	f, ok := stdin.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return prompt(in, out, label)
	}

	fmt.Fprint(out, label)
	password, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(password), nil
}
