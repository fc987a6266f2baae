// Package settings reads and writes the user's saved preferences.
package settings

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// FileName is the preferences file name, stored in the user's home
// directory with a .yaml extension.
const FileName = ".panw-utils"

// Settings are the saved defaults. A zero value means no preference.
type Settings struct {
	User     string `mapstructure:"user"`
	Firewall string `mapstructure:"firewall"`
	Panorama string `mapstructure:"panorama"`
	APIKey   string `mapstructure:"apikey"`
	Format   string `mapstructure:"format"`
}

// Path returns the preferences file location.
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, FileName+".yaml")
}

// Load reads the preferences from the user's home directory. A missing
// file is not an error; an unreadable one is, so the caller can warn and
// continue with defaults.
func Load() (Settings, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Settings{}, err
	}
	return LoadFrom(home)
}

// LoadFrom reads the preferences from dir.
func LoadFrom(dir string) (Settings, error) {
	v := viper.New()
	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return Settings{}, nil
		}
		return Settings{}, err
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Save writes the preferences to the user's home directory.
func (s Settings) Save() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	return s.SaveTo(home)
}

// SaveTo writes the preferences to dir, mode 0600 since the file may
// hold an API key.
func (s Settings) SaveTo(dir string) error {
	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("user", s.User)
	v.Set("firewall", s.Firewall)
	v.Set("panorama", s.Panorama)
	v.Set("apikey", s.APIKey)
	v.Set("format", s.Format)

	path := filepath.Join(dir, FileName+".yaml")
	if err := v.WriteConfigAs(path); err != nil {
		return err
	}
	return os.Chmod(path, 0o600)
}
