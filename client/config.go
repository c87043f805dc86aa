package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

const defaultBaseURL = "http://localhost:8080"

// Config is the client configuration stored as TOML.
type Config struct {
	Relay    RelayConfig    `toml:"relay"`
	Delivery DeliveryConfig `toml:"delivery"`
}

type RelayConfig struct {
	BaseURL string `toml:"base_url"`
	Token   string `toml:"token"`
}

type DeliveryConfig struct {
	MaxReconnectAttempts int `toml:"max_reconnect_attempts"`
	MaxAttempts          int `toml:"max_attempts"`
	PageSize             int `toml:"page_size"`
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the client configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				fmt.Fprintln(cmd.OutOrStdout(), "No configuration file found. Run 'relay config set relay.token <token>' to create one.")
				return nil
			}
			return fmt.Errorf("cannot read config file: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long:  "Set a configuration value using dot notation.\nExample: relay config set relay.base_url http://localhost:8080",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := setConfigValue(cfg, args[0], args[1]); err != nil {
			return err
		}
		if err := saveConfig(cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])
		return nil
	},
}

func configPath() (string, error) {
	if configFile != "" {
		return configFile, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".chat-relay", "config.toml"), nil
}

// loadConfig returns the stored configuration, or defaults when no file exists.
// RELAY_TOKEN and RELAY_URL override the file.
func loadConfig() (*Config, error) {
	cfg := &Config{Relay: RelayConfig{BaseURL: defaultBaseURL}}
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("cannot read config: %w", err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("cannot parse config: %w", err)
		}
	}
	if v := os.Getenv("RELAY_URL"); v != "" {
		cfg.Relay.BaseURL = v
	}
	if v := os.Getenv("RELAY_TOKEN"); v != "" {
		cfg.Relay.Token = v
	}
	return cfg, nil
}

func saveConfig(cfg *Config) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("cannot write config: %w", err)
	}
	return nil
}

func setConfigValue(cfg *Config, key, value string) error {
	section, field, ok := strings.Cut(key, ".")
	if !ok {
		return fmt.Errorf("key must use dot notation: section.field (e.g. relay.token)")
	}
	switch section {
	case "relay":
		switch field {
		case "base_url":
			cfg.Relay.BaseURL = strings.TrimRight(value, "/")
		case "token":
			cfg.Relay.Token = value
		default:
			return fmt.Errorf("unknown field %q in section [relay]", field)
		}
	case "delivery":
		var target *int
		switch field {
		case "max_reconnect_attempts":
			target = &cfg.Delivery.MaxReconnectAttempts
		case "max_attempts":
			target = &cfg.Delivery.MaxAttempts
		case "page_size":
			target = &cfg.Delivery.PageSize
		default:
			return fmt.Errorf("unknown field %q in section [delivery]", field)
		}
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%s must be a positive integer", key)
		}
		*target = n
	default:
		return fmt.Errorf("unknown section %q", section)
	}
	return nil
}
