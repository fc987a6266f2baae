// Package creds resolves the API key used for a command invocation.
package creds

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// ErrNoCredential is returned when no API key is available and
// interactive prompting is disallowed.
var ErrNoCredential = errors.New("no api key available, run `panw-utils config update` to save one or pass --key")

// Credential is an API key and the user it was issued to, if known.
type Credential struct {
	Key  string
	User string
}

// KeyGenerator exchanges a username and password for an API key.
type KeyGenerator interface {
	GenerateKey(ctx context.Context, host, user, password string) (string, error)
}

// Options control credential resolution. Precedence: ExplicitKey, then
// SavedKey, then an interactive user/password exchange against Host.
type Options struct {
	ExplicitKey string
	SavedKey    string
	SavedUser   string
	User        string // from the --user flag
	Host        string // keygen target for the interactive path
	Interactive bool
	Keygen      KeyGenerator

	// Prompt hooks, overridable in tests. Nil selects the terminal.
	ReadLine     func(prompt string) (string, error)
	ReadPassword func(prompt string) (string, error)
}

// Resolve produces the credential for this invocation.
func Resolve(ctx context.Context, opts Options) (Credential, error) {
	user := opts.User
	if user == "" {
		user = opts.SavedUser
	}

	if opts.ExplicitKey != "" {
		return Credential{Key: opts.ExplicitKey, User: user}, nil
	}
	if opts.SavedKey != "" {
		return Credential{Key: opts.SavedKey, User: user}, nil
	}
	if !opts.Interactive {
		return Credential{}, ErrNoCredential
	}

	readLine := opts.ReadLine
	if readLine == nil {
		readLine = PromptLine
	}
	readPassword := opts.ReadPassword
	if readPassword == nil {
		readPassword = PromptPassword
	}

	if user == "" {
		var err error
		user, err = readLine("PAN User: ")
		if err != nil {
			return Credential{}, err
		}
	}

	password, err := readPassword(fmt.Sprintf("Password (%s): ", user))
	if err != nil {
		return Credential{}, err
	}

	key, err := opts.Keygen.GenerateKey(ctx, opts.Host, user, password)
	if err != nil {
		return Credential{}, err
	}
	return Credential{Key: key, User: user}, nil
}

// PromptLine reads a single line from the terminal, echoing the prompt
// to stderr so stdout stays pipeable.
func PromptLine(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	var line string
	fmt.Scanln(&line)
	return line, nil
}

// PromptPassword reads without echo from the controlling terminal, so it
// works when stdin carries piped hosts.
func PromptPassword(prompt string) (string, error) {
	tty, err := os.Open("/dev/tty")
	if err != nil {
		return "", fmt.Errorf("error allocating terminal: %w", err)
	}
	defer tty.Close()

	fmt.Fprint(os.Stderr, prompt)
	bytepw, err := term.ReadPassword(int(tty.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(bytepw), nil
}
