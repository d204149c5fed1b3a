package cli

import (
	"os"
	"path/filepath"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Player    string
	Token     string
	TokenFile string
	Output    string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("BLACKJACK_SERVER", "http://localhost:8080"),
		Player:    os.Getenv("BLACKJACK_PLAYER"),
		Token:     os.Getenv("BLACKJACK_TOKEN"),
		TokenFile: getEnvOrDefault("BLACKJACK_TOKEN_FILE", defaultTokenFile()),
		Output:    "text",
	}
}

// LoadToken loads the token from file if not already set
func (c *Config) LoadToken() error {
	if c.Token != "" {
		return nil
	}

	data, err := os.ReadFile(c.TokenFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No token file is fine
		}
		return err
	}

	c.Token = string(data)
	return nil
}

// SaveToken saves the token to the token file
func (c *Config) SaveToken(token string) error {
	c.Token = token

	dir := filepath.Dir(c.TokenFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.TokenFile, []byte(token), 0600)
}

// LoadPlayer loads the saved player address if none is configured
func (c *Config) LoadPlayer() error {
	if c.Player != "" {
		return nil
	}

	data, err := os.ReadFile(c.playerFile())
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	c.Player = string(data)
	return nil
}

// SavePlayer saves the player address next to the token
func (c *Config) SavePlayer(player string) error {
	c.Player = player

	dir := filepath.Dir(c.playerFile())
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.playerFile(), []byte(player), 0600)
}

func (c *Config) playerFile() string {
	return filepath.Join(filepath.Dir(c.TokenFile), "player")
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".blackjack/token"
	}
	return filepath.Join(home, ".blackjack", "token")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
