//go:build !windows
// +build !windows

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/panw-tools/panw-utils/internal/creds"
	"github.com/panw-tools/panw-utils/internal/panos"
)

// Flags shared by the SSH-based commands
var (
	sshPort       string
	sshTimeout    int
	keyBasedAuth  bool
	ignoreHostKey bool
)

// sshConfig gathers SSH connection settings, prompting for the user and
// password unless key-based auth is selected. Prompting is refused when
// hosts arrive on stdin.
func sshConfig(piped bool) (panos.SSHConfig, error) {
	sshCfg := panos.SSHConfig{
		Port:          sshPort,
		IgnoreHostKey: ignoreHostKey,
		Timeout:       time.Duration(sshTimeout) * time.Second,
	}

	if user == "" {
		user = cfg.User
	}
	if user == "" {
		if piped {
			return panos.SSHConfig{}, fmt.Errorf("the --user flag is required when reading hosts from stdin")
		}
		var err error
		user, err = creds.PromptLine("PAN User: ")
		if err != nil {
			return panos.SSHConfig{}, err
		}
	}
	sshCfg.User = user

	if keyBasedAuth {
		sshCfg.KeyFile = filepath.Join(os.Getenv("HOME"), ".ssh", "id_rsa")
		return sshCfg, nil
	}

	if password == "" {
		var err error
		password, err = creds.PromptPassword(fmt.Sprintf("Password (%s): ", user))
		if err != nil {
			return panos.SSHConfig{}, err
		}
	}
	sshCfg.Password = password
	return sshCfg, nil
}
