package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultAdminPassword guards the admin console until the admin sets a real
// one at first login.
const DefaultAdminPassword = "admin1234"

// Config is the application configuration, stored as TOML under
// ~/.coursereg/config.toml.
type Config struct {
	DataDir       string `toml:"data_dir"`
	AdminPassword string `toml:"admin_password"`
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".coursereg", "config.toml"), nil
}

// Load reads the config file, falling back to defaults when it does not
// exist.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolving home directory: %w", err)
	}
	cfg := &Config{
		DataDir:       filepath.Join(home, ".coursereg", "data"),
		AdminPassword: DefaultAdminPassword,
	}

	path, err := configPath()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	return cfg, nil
}

// Save writes the config back, creating the config directory if needed.
// Used when the admin changes the password.
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
