package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/mmap"
)

// Load inserts the words of a newline separated list into the Lexicon.
// Surrounding whitespace is trimmed and each line is lowercased. Blank lines
// and lines starting with '#' are skipped. Loading stops at the first line
// that is not a valid word, with an error matching ErrInvalidInput; words
// before it stay inserted. Load returns the number of lines inserted.
func (l *Lexicon) Load(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	added := 0
	line := 0
	for scanner.Scan() {
		line++
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || word[0] == '#' {
			continue
		}
		if err := l.Insert(word); err != nil {
			return added, fmt.Errorf("line %d: %w", line, err)
		}
		added++
	}
	if err := scanner.Err(); err != nil {
		return added, fmt.Errorf("read word list: %w", err)
	}
	return added, nil
}

// LoadFile memory-maps the named word list and inserts its words as Load does.
func (l *Lexicon) LoadFile(filename string) (int, error) {
	f, err := mmap.Open(filename)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	added, err := l.Load(io.NewSectionReader(f, 0, int64(f.Len())))
	if err != nil {
		return added, fmt.Errorf("%s: %w", filename, err)
	}
	return added, nil
}
