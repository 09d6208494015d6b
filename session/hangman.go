package session

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

const (
	// DefaultHangmanWord is the word every game targets unless configured otherwise.
	DefaultHangmanWord = "hangman"

	// DefaultAttempts is the number of wrong guesses a game allows.
	DefaultAttempts = 6
)

var (
	ErrGameOver       = errors.New("game is over")
	ErrAlreadyGuessed = errors.New("letter already guessed")
	ErrInvalidGuess   = errors.New("guess must be a letter from a to z")
)

// Game is a round of hangman. Wrong guesses use up attempts; the game ends
// when every letter of the word is revealed or no attempts remain.
type Game struct {
	word      string
	remaining int
	guessed   []rune
	seen      [26]bool
}

// NewGame starts a game on word, which must be lowercase a-z, allowing
// attempts wrong guesses.
func NewGame(word string, attempts int) (*Game, error) {
	if word == "" {
		return nil, errors.New("hangman word is empty")
	}
	for _, ch := range word {
		if ch < 'a' || ch > 'z' {
			return nil, fmt.Errorf("hangman word %q: %w", word, ErrInvalidGuess)
		}
	}
	if attempts < 1 {
		return nil, fmt.Errorf("hangman needs at least one attempt, got %d", attempts)
	}
	return &Game{word: word, remaining: attempts}, nil
}

// Guess tries a letter, case-insensitively, and reports whether the word
// contains it. Repeating a letter is an error and costs nothing.
func (g *Game) Guess(r rune) (bool, error) {
	if g.Over() {
		return false, ErrGameOver
	}
	r = unicode.ToLower(r)
	if r < 'a' || r > 'z' {
		return false, fmt.Errorf("%w: %q", ErrInvalidGuess, r)
	}
	if g.seen[r-'a'] {
		return false, fmt.Errorf("%w: %q", ErrAlreadyGuessed, r)
	}

	g.seen[r-'a'] = true
	g.guessed = append(g.guessed, r)

	hit := strings.ContainsRune(g.word, r)
	if !hit {
		g.remaining--
	}
	return hit, nil
}

// Masked returns the word with every letter not guessed yet replaced by '_'.
func (g *Game) Masked() string {
	var b strings.Builder
	for _, ch := range g.word {
		if g.seen[ch-'a'] {
			b.WriteRune(ch)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// Guessed returns the letters tried so far in the order they were guessed.
func (g *Game) Guessed() []rune {
	return append([]rune(nil), g.guessed...)
}

func (g *Game) Remaining() int { return g.remaining }

func (g *Game) Word() string { return g.word }

// Won reports whether every letter of the word has been guessed.
func (g *Game) Won() bool {
	for _, ch := range g.word {
		if !g.seen[ch-'a'] {
			return false
		}
	}
	return true
}

// Over reports whether the game was won or ran out of attempts.
func (g *Game) Over() bool {
	return g.remaining == 0 || g.Won()
}
