package session_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/milden6/lexicon"
	"github.com/milden6/lexicon/session"
)

// fixedRand returns the given indexes in turn.
type fixedRand struct {
	picks []int
}

func (f *fixedRand) Intn(n int) int {
	pick := f.picks[0] % n
	f.picks = f.picks[1:]
	return pick
}

func newSession(t *testing.T, opts ...session.Option) *session.Session {
	t.Helper()
	s, err := session.New(lexicon.New(), opts...)
	require.NoError(t, err)
	return s
}

func TestSessionRecordsEverySearch(t *testing.T) {
	s := newSession(t)

	require.NoError(t, s.Insert("cat"))

	found, err := s.Search("cat")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = s.Search("dog")
	require.NoError(t, err)
	assert.False(t, found)

	_, err = s.Search("Dog")
	assert.ErrorIs(t, err, lexicon.ErrInvalidInput)

	err = s.Insert("d0g")
	assert.ErrorIs(t, err, lexicon.ErrInvalidInput)

	assert.Equal(t, []string{"cat", "cat", "dog", "Dog", "d0g"}, s.Recent())

	_, err = s.Search("cow")
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog", "Dog", "d0g", "cow"}, s.Recent())
}

func TestSessionSuggestIsNotRecorded(t *testing.T) {
	s := newSession(t)
	for _, word := range []string{"trie", "trip", "true"} {
		require.NoError(t, s.Insert(word))
	}

	words, err := s.Suggest("tri")
	require.NoError(t, err)
	assert.Equal(t, []string{"trie", "trip"}, words)
	assert.Equal(t, []string{"trie", "trip", "true"}, s.Recent())
}

func TestSessionWordOfDay(t *testing.T) {
	s := newSession(t, session.WithRand(&fixedRand{picks: []int{3, 1, 8}}))
	assert.Equal(t, "example", s.WordOfDay())

	assert.Equal(t, "hangman", s.UpdateWordOfDay())
	assert.Equal(t, "hangman", s.WordOfDay())
	assert.Equal(t, "trie", s.UpdateWordOfDay())
	assert.Equal(t, "hangman", s.UpdateWordOfDay())
}

func TestSessionWordOfDayIsDeterministic(t *testing.T) {
	draw := func() []string {
		s := newSession(t, session.WithRand(rand.New(rand.NewSource(42))))
		var words []string
		for i := 0; i < 10; i++ {
			words = append(words, s.UpdateWordOfDay())
		}
		return words
	}

	first := draw()
	assert.Equal(t, first, draw())
	for _, word := range first {
		assert.Contains(t, session.DefaultCandidates, word)
	}
}

func TestSessionWordOfDayIgnoresDictionary(t *testing.T) {
	s := newSession(t, session.WithCandidates([]string{"zebra"}))
	assert.Equal(t, "zebra", s.WordOfDay())
	found, err := s.Lexicon().Search("zebra")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSessionNewGame(t *testing.T) {
	g := newSession(t).NewGame()
	assert.Equal(t, "hangman", g.Word())
	assert.Equal(t, session.DefaultAttempts, g.Remaining())

	g = newSession(t, session.WithHangman("go", 2)).NewGame()
	assert.Equal(t, "__", g.Masked())
	assert.Equal(t, 2, g.Remaining())
}

func TestSessionOptionErrors(t *testing.T) {
	tests := []struct {
		name string
		opt  session.Option
	}{
		{name: "zero capacity", opt: session.WithHistoryCapacity(0)},
		{name: "no candidates", opt: session.WithCandidates(nil)},
		{name: "bad hangman word", opt: session.WithHangman("Go", 3)},
		{name: "no attempts", opt: session.WithHangman("go", 0)},
		{name: "nil rand", opt: session.WithRand(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := session.New(lexicon.New(), tt.opt)
			assert.Error(t, err)
		})
	}

	_, err := session.New(nil)
	assert.Error(t, err)
}

func TestSessionHistoryCapacity(t *testing.T) {
	s := newSession(t, session.WithHistoryCapacity(2))
	for _, word := range []string{"a", "b", "c"} {
		_, err := s.Search(word)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"b", "c"}, s.Recent())
}

func TestSessionLogs(t *testing.T) {
	var buf bytes.Buffer
	s := newSession(t, session.WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))

	require.NoError(t, s.Insert("cat"))
	_, err := s.Search("CAT")
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, `"message":"inserted"`)
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"word":"CAT"`)
}
