package session

import (
	"errors"

	"golang.org/x/exp/slices"
)

// DefaultCandidates are the words the word of the day is drawn from.
var DefaultCandidates = []string{"example", "trie", "dictionary", "hangman", "search"}

var errNoCandidates = errors.New("word of the day needs at least one candidate")

// Rand picks random indexes. *rand.Rand from golang.org/x/exp/rand and
// math/rand both satisfy it.
type Rand interface {
	Intn(n int) int
}

// WordOfDay holds the current word of the day and the list it is picked from.
// The word has nothing to do with the contents of the dictionary.
type WordOfDay struct {
	candidates []string
	current    string
}

// NewWordOfDay starts with the first candidate as the current word.
func NewWordOfDay(candidates []string) (*WordOfDay, error) {
	if len(candidates) == 0 {
		return nil, errNoCandidates
	}
	return &WordOfDay{
		candidates: slices.Clone(candidates),
		current:    candidates[0],
	}, nil
}

// Current returns the word of the day.
func (w *WordOfDay) Current() string {
	return w.current
}

// Update replaces the word of the day with a candidate picked by rng, which
// may be the same word again.
func (w *WordOfDay) Update(rng Rand) string {
	w.current = w.candidates[rng.Intn(len(w.candidates))]
	return w.current
}

// Candidates returns a copy of the candidate list.
func (w *WordOfDay) Candidates() []string {
	return slices.Clone(w.candidates)
}
