package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/milden6/lexicon/session"
)

// Config holds all configuration for the lexicon command
type Config struct {
	// Words is an optional word list loaded at start-up
	Words     string          `mapstructure:"words"`
	Seed      uint64          `mapstructure:"seed"`
	LogLevel  string          `mapstructure:"log_level"`
	History   HistoryConfig   `mapstructure:"history"`
	WordOfDay WordOfDayConfig `mapstructure:"wordofday"`
	Hangman   HangmanConfig   `mapstructure:"hangman"`
}

// HistoryConfig holds recent search related configuration
type HistoryConfig struct {
	Capacity int `mapstructure:"capacity"`
}

// WordOfDayConfig holds word of the day related configuration
type WordOfDayConfig struct {
	Candidates []string `mapstructure:"candidates"`
}

// HangmanConfig holds hangman related configuration
type HangmanConfig struct {
	Word     string `mapstructure:"word"`
	Attempts int    `mapstructure:"attempts"`
}

// Flags returns the command line flags the configuration can be overridden with.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("lexicon", pflag.ContinueOnError)
	fs.String("config", "", "Path to config file")
	fs.String("words", "", "Word list to load at start-up")
	fs.Uint64("seed", 0, "Seed for the word of the day (0 picks one from the clock)")
	fs.String("log_level", "warn", "Log level: debug, info, warn, error")
	fs.Int("history.capacity", session.DefaultHistoryCapacity, "Number of recent searches kept")
	fs.String("hangman.word", session.DefaultHangmanWord, "Word to guess in hangman")
	fs.Int("hangman.attempts", session.DefaultAttempts, "Wrong guesses allowed in hangman")
	return fs
}

// LoadConfig loads configuration from defaults, the config file, environment
// variables prefixed with LEXICON_ and flags, later sources winning.
// The flags must have been parsed already.
func LoadConfig(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath, _ := fs.GetString("config"); configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("lexicon")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("words", "")
	v.SetDefault("seed", 0)
	v.SetDefault("log_level", "warn")

	v.SetDefault("history.capacity", session.DefaultHistoryCapacity)
	v.SetDefault("wordofday.candidates", session.DefaultCandidates)
	v.SetDefault("hangman.word", session.DefaultHangmanWord)
	v.SetDefault("hangman.attempts", session.DefaultAttempts)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.History.Capacity < 1 {
		return fmt.Errorf("invalid history capacity: %d", c.History.Capacity)
	}
	if len(c.WordOfDay.Candidates) == 0 {
		return fmt.Errorf("word of the day needs at least one candidate")
	}
	if c.Hangman.Attempts < 1 {
		return fmt.Errorf("invalid hangman attempts: %d", c.Hangman.Attempts)
	}
	if c.Hangman.Word == "" || strings.Trim(c.Hangman.Word, "abcdefghijklmnopqrstuvwxyz") != "" {
		return fmt.Errorf("hangman word must be lowercase letters, got %q", c.Hangman.Word)
	}
	return nil
}
