package cli

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/mcoot/yahtzeegame-go/internal/model"
)

// Config holds CLI configuration
type Config struct {
	Storage     string
	RedisURL    string
	DBPath      string
	SessionFile string
	Output      string
	Verbose     bool
}

// DefaultConfig returns a Config with default values. Storage defaults
// to a local sqlite database; pointing YZGAME_REDIS_URL at a shared
// Redis switches both storage and change notification to it, which is
// what cross-machine play needs.
func DefaultConfig() *Config {
	storage := getEnvOrDefault("YZGAME_STORAGE", "sqlite")
	redisURL := os.Getenv("YZGAME_REDIS_URL")
	if redisURL != "" && os.Getenv("YZGAME_STORAGE") == "" {
		storage = "redis"
	}

	return &Config{
		Storage:     storage,
		RedisURL:    redisURL,
		DBPath:      getEnvOrDefault("YZGAME_DB", defaultConfigPath("yahtzee.db")),
		SessionFile: getEnvOrDefault("YZGAME_SESSION_FILE", defaultConfigPath("session.json")),
		Output:      "text",
		Verbose:     false,
	}
}

// LoadSession reads the persisted session, if any. A missing file means
// no session, not an error.
func (c *Config) LoadSession() (*model.Session, error) {
	data, err := os.ReadFile(c.SessionFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var sess model.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	if sess.GameID == "" || sess.PlayerName == "" {
		return nil, nil
	}
	return &sess, nil
}

// SaveSession persists the session for later invocations
func (c *Config) SaveSession(sess *model.Session) error {
	dir := filepath.Dir(c.SessionFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.SessionFile, data, 0600)
}

// ClearSession removes the persisted session
func (c *Config) ClearSession() error {
	if err := os.Remove(c.SessionFile); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func defaultConfigPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".yzgame", name)
	}
	return filepath.Join(home, ".yzgame", name)
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
