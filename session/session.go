// Package session holds the state of one interactive use of a dictionary:
// recent searches, the word of the day and hangman games. It drives a
// lexicon.Lexicon and never stores words of its own in it.
package session

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"github.com/milden6/lexicon"
)

// Option configures a Session.
type Option func(*Session) error

// WithHistoryCapacity sets how many recent searches are kept.
func WithHistoryCapacity(capacity int) Option {
	return func(s *Session) error {
		if capacity < 1 {
			return fmt.Errorf("history capacity must be positive, got %d", capacity)
		}
		s.history = NewHistory(capacity)
		return nil
	}
}

// WithCandidates sets the words the word of the day is drawn from.
func WithCandidates(candidates []string) Option {
	return func(s *Session) error {
		wod, err := NewWordOfDay(candidates)
		if err != nil {
			return err
		}
		s.wordOfDay = wod
		return nil
	}
}

// WithHangman sets the target word and the allowed wrong guesses of new games.
func WithHangman(word string, attempts int) Option {
	return func(s *Session) error {
		if _, err := NewGame(word, attempts); err != nil {
			return err
		}
		s.hangmanWord = word
		s.attempts = attempts
		return nil
	}
}

// WithRand sets the random source used to update the word of the day.
func WithRand(rng Rand) Option {
	return func(s *Session) error {
		if rng == nil {
			return errors.New("random source is nil")
		}
		s.rng = rng
		return nil
	}
}

// WithLogger sets the logger. Sessions log nothing by default.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) error {
		s.logger = logger
		return nil
	}
}

// Session ties a Lexicon to the interactive features around it.
type Session struct {
	lex         *lexicon.Lexicon
	history     *History
	wordOfDay   *WordOfDay
	rng         Rand
	hangmanWord string
	attempts    int
	logger      zerolog.Logger
}

// New creates a Session on lex. Without options it keeps 5 recent searches,
// starts with "example" as word of the day, plays hangman on "hangman" with 6
// attempts and uses a fixed seed for its random source.
func New(lex *lexicon.Lexicon, opts ...Option) (*Session, error) {
	if lex == nil {
		return nil, errors.New("session needs a lexicon")
	}
	wod, _ := NewWordOfDay(DefaultCandidates)
	s := &Session{
		lex:         lex,
		history:     NewHistory(DefaultHistoryCapacity),
		wordOfDay:   wod,
		rng:         rand.New(rand.NewSource(1)),
		hangmanWord: DefaultHangmanWord,
		attempts:    DefaultAttempts,
		logger:      zerolog.Nop(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Insert adds word to the dictionary. The word is recorded as a recent search
// even when it is rejected.
func (s *Session) Insert(word string) error {
	s.history.Record(word)
	if err := s.lex.Insert(word); err != nil {
		s.logger.Warn().Err(err).Str("word", word).Msg("insert rejected")
		return err
	}
	s.logger.Debug().Str("word", word).Int("words", s.lex.NumAdded()).Msg("inserted")
	return nil
}

// Search looks word up. The word is recorded as a recent search whether it
// is found, missing or rejected.
func (s *Session) Search(word string) (bool, error) {
	s.history.Record(word)
	found, err := s.lex.Search(word)
	if err != nil {
		s.logger.Warn().Err(err).Str("word", word).Msg("search rejected")
		return false, err
	}
	s.logger.Debug().Str("word", word).Bool("found", found).Msg("searched")
	return found, nil
}

// Suggest lists the dictionary words starting with prefix. Suggestions are
// not recorded as searches.
func (s *Session) Suggest(prefix string) ([]string, error) {
	words, err := s.lex.WordsWithPrefix(prefix)
	if err != nil {
		s.logger.Warn().Err(err).Str("prefix", prefix).Msg("suggest rejected")
		return nil, err
	}
	s.logger.Debug().Str("prefix", prefix).Int("matches", len(words)).Msg("suggested")
	return words, nil
}

// WordOfDay returns the current word of the day.
func (s *Session) WordOfDay() string {
	return s.wordOfDay.Current()
}

// UpdateWordOfDay draws a new word of the day and returns it.
func (s *Session) UpdateWordOfDay() string {
	word := s.wordOfDay.Update(s.rng)
	s.logger.Debug().Str("word", word).Msg("word of the day updated")
	return word
}

// Recent returns the recent searches, oldest first.
func (s *Session) Recent() []string {
	return s.history.Entries()
}

// NewGame starts a hangman game on the configured word.
func (s *Session) NewGame() *Game {
	// the word and attempts were checked when the session was configured
	game, _ := NewGame(s.hangmanWord, s.attempts)
	s.logger.Debug().Int("letters", len(s.hangmanWord)).Int("attempts", s.attempts).Msg("hangman started")
	return game
}

// Lexicon returns the dictionary the session works on.
func (s *Session) Lexicon() *lexicon.Lexicon {
	return s.lex
}
