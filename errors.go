package lexicon

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every error caused by a word that contains
// characters outside a-z.
var ErrInvalidInput = errors.New("invalid input")

// InputError describes the first offending character of a rejected word.
type InputError struct {
	Word   string
	Offset int // byte offset of Char in Word
	Char   rune
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%v: %q has %q at offset %d, only a-z allowed",
		ErrInvalidInput, e.Word, e.Char, e.Offset)
}

// Is reports whether target is ErrInvalidInput.
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// validate returns an *InputError for the first character of word outside a-z.
func validate(word string) error {
	for i, ch := range word {
		if ch < 'a' || ch > 'z' {
			return &InputError{Word: word, Offset: i, Char: ch}
		}
	}
	return nil
}
