//go:build !windows
// +build !windows

package panos

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	expect "github.com/google/goexpect"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

const scriptingMode = "set cli scripting-mode on"

// Operational prompt ends in '>', configure mode in '#'.
var promptRE = regexp.MustCompile(`[>#]`)

// SSHConfig holds connection settings for a PAN-OS CLI session.
type SSHConfig struct {
	User          string
	Password      string
	Port          string
	KeyFile       string // non-empty selects key-based auth
	IgnoreHostKey bool
	Timeout       time.Duration
}

// RunCommands opens a CLI session on host, enables scripting mode and
// executes cmds in order, returning each command's raw output.
func RunCommands(host string, cfg SSHConfig, cmds []string) (map[string]string, error) {
	var authMethod ssh.AuthMethod
	if cfg.KeyFile != "" {
		file, err := os.ReadFile(cfg.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("unable to read private key: %w", err)
		}
		signer, err := ssh.ParsePrivateKey(file)
		if err != nil {
			return nil, fmt.Errorf("unable to parse private key: %w", err)
		}
		authMethod = ssh.PublicKeys(signer)
	} else {
		authMethod = ssh.Password(cfg.Password)
	}

	var hostkeyCallback ssh.HostKeyCallback
	if cfg.IgnoreHostKey {
		hostkeyCallback = ssh.InsecureIgnoreHostKey()
	} else {
		var err error
		hostkeyCallback, err = knownhosts.New(filepath.Join(os.Getenv("HOME"), ".ssh", "known_hosts"))
		if err != nil {
			return nil, fmt.Errorf("unable to load ssh known_hosts: %w", err)
		}
	}

	port := cfg.Port
	if port == "" {
		port = "22"
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	sshClt, err := ssh.Dial("tcp", net.JoinHostPort(host, port), &ssh.ClientConfig{
		User:            cfg.User,
		Auth:            []ssh.AuthMethod{authMethod},
		HostKeyCallback: hostkeyCallback,
		Timeout:         timeout,
	})
	if err != nil {
		return nil, &NetworkError{Host: host, Err: err}
	}
	defer sshClt.Close()

	e, _, err := expect.SpawnSSH(sshClt, timeout)
	if err != nil {
		return nil, &NetworkError{Host: host, Err: err}
	}
	defer e.Close()

	// Wait for prompt after login
	if _, _, err := e.Expect(promptRE, timeout); err != nil {
		return nil, &NetworkError{Host: host, Err: err}
	}

	if err := e.Send(scriptingMode + "\n"); err != nil {
		return nil, &NetworkError{Host: host, Err: err}
	}
	if _, _, err := e.Expect(promptRE, timeout); err != nil {
		return nil, &NetworkError{Host: host, Err: err}
	}

	results := make(map[string]string, len(cmds))
	for _, cmd := range cmds {
		if err := e.Send(cmd + "\n"); err != nil {
			return nil, &NetworkError{Host: host, Err: err}
		}
		out, _, err := e.Expect(promptRE, timeout)
		if err != nil {
			return nil, &NetworkError{Host: host, Err: err}
		}
		results[cmd] = out
	}

	return results, nil
}

// SetConfigCommands is the CLI sequence that renders the configuration
// in set format, optionally filtered.
func SetConfigCommands(filter string) []string {
	cmds := []string{"set cli config-output-format set", "configure"}
	if filter != "" {
		return append(cmds, fmt.Sprintf("show | match '%s'", filter))
	}
	return append(cmds, "show")
}

// FetchSetConfig retrieves the set-format configuration of host over SSH.
func FetchSetConfig(host string, cfg SSHConfig, filter string) (string, error) {
	cmds := SetConfigCommands(filter)
	results, err := RunCommands(host, cfg, cmds)
	if err != nil {
		return "", err
	}
	return TrimOutput(results[cmds[len(cmds)-1]]), nil
}

// TrimOutput removes the echoed command and the trailing prompt from a
// command's captured output.
func TrimOutput(output string) string {
	lines := strings.Split(output, "\n")
	if len(lines) < 3 {
		return strings.TrimSpace(output)
	}
	return strings.Join(lines[1:len(lines)-1], "\n")
}
