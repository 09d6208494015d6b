package lexicon_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milden6/lexicon"
)

const wordList = `# sample words
trie
  Trip
true

example
`

func TestLoad(t *testing.T) {
	lex := lexicon.New()
	added, err := lex.Load(strings.NewReader(wordList))
	require.NoError(t, err)
	assert.Equal(t, 4, added)
	assert.Equal(t, []string{"example", "trie", "trip", "true"}, wordsWithPrefix(t, lex, ""))
}

func TestLoadInvalidLine(t *testing.T) {
	lex := lexicon.New()
	added, err := lex.Load(strings.NewReader("alpha\nbeta\ngam ma\ndelta\n"))
	require.ErrorIs(t, err, lexicon.ErrInvalidInput)
	assert.Contains(t, err.Error(), "line 3")
	assert.Equal(t, 2, added)
	assert.Equal(t, []string{"alpha", "beta"}, wordsWithPrefix(t, lex, ""))
}

func TestLoadFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(filename, []byte(wordList), 0o644))

	lex := lexicon.New()
	added, err := lex.LoadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, 4, added)
	assert.True(t, search(t, lex, "trip"))
}

func TestLoadFileMissing(t *testing.T) {
	_, err := lexicon.New().LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestFullDict(t *testing.T) {
	dict := "/usr/share/dict/words"
	if _, err := os.Stat(dict); os.IsNotExist(err) {
		t.Skipf("Skipping full dictionary test; can't find %s", dict)
	}

	data, err := os.ReadFile(dict)
	require.NoError(t, err)

	lex := lexicon.New()
	for _, line := range strings.Split(string(data), "\n") {
		// system dictionaries carry possessives and accented words, skip those
		_ = lex.Insert(strings.ToLower(line))
	}

	words := wordsWithPrefix(t, lex, "")
	assert.Len(t, words, lex.NumAdded())
	assert.IsIncreasing(t, words)
	t.Logf("Lexicon has %v words, %v nodes, %v edges",
		lex.NumAdded(), lex.NumNodes(), lex.NumEdges())
}
