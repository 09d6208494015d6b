package main

import (
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"golang.org/x/exp/rand"

	"github.com/milden6/lexicon"
	"github.com/milden6/lexicon/internal/config"
	"github.com/milden6/lexicon/session"
)

func main() {
	fs := config.Flags()
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	log.Logger = logger

	cfg, err := config.LoadConfig(fs)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("log_level", cfg.LogLevel).Msg("Invalid log level")
	}
	logger = logger.Level(level)
	log.Logger = logger

	lex := lexicon.New()
	if cfg.Words != "" {
		added, err := lex.LoadFile(cfg.Words)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Words).Msg("Failed to load word list")
		}
		log.Info().Str("path", cfg.Words).Int("words", added).Msg("Loaded word list")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Debug().Uint64("seed", seed).Msg("Seeding word of the day")

	sess, err := session.New(lex,
		session.WithHistoryCapacity(cfg.History.Capacity),
		session.WithCandidates(cfg.WordOfDay.Candidates),
		session.WithHangman(cfg.Hangman.Word, cfg.Hangman.Attempts),
		session.WithRand(rand.New(rand.NewSource(seed))),
		session.WithLogger(logger),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start session")
	}

	if err := run(os.Stdin, os.Stdout, sess); err != nil {
		log.Fatal().Err(err).Msg("Reading input failed")
	}
}
