package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/milden6/lexicon"
	"github.com/milden6/lexicon/session"
)

const menuText = `Menu:
1. Insert a word
2. Search for a word
3. Show Word of the Day
4. Update Word of the Day
5. Show Recent Searches
6. Play Hangman
7. Exit
8. Show words with a prefix
`

// menu reads whitespace separated tokens, so "1 cat" on one line inserts cat.
type menu struct {
	in   *bufio.Scanner
	out  io.Writer
	sess *session.Session
}

// run drives sess from the console until the user exits or the input ends.
func run(in io.Reader, out io.Writer, sess *session.Session) error {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	m := &menu{in: scanner, out: out, sess: sess}

	for {
		fmt.Fprint(out, menuText)
		choice, ok := m.prompt("Enter your choice: ")
		if !ok {
			return scanner.Err()
		}

		switch choice {
		case "1":
			ok = m.insert()
		case "2":
			ok = m.search()
		case "3":
			fmt.Fprintf(out, "Word of the Day: %s\n", sess.WordOfDay())
		case "4":
			sess.UpdateWordOfDay()
			fmt.Fprintln(out, "Word of the Day updated.")
		case "5":
			m.recent()
		case "6":
			ok = m.hangman()
		case "7":
			fmt.Fprintln(out, "Exiting program.")
			return nil
		case "8":
			ok = m.suggest()
		default:
			fmt.Fprintln(out, "Invalid choice. Please try again.")
		}

		if !ok {
			return scanner.Err()
		}
	}
}

// prompt prints msg and returns the next token, or false at the end of input.
func (m *menu) prompt(msg string) (string, bool) {
	fmt.Fprint(m.out, msg)
	if !m.in.Scan() {
		fmt.Fprintln(m.out)
		return "", false
	}
	return m.in.Text(), true
}

func (m *menu) insert() bool {
	word, ok := m.prompt("Enter word to insert: ")
	if !ok {
		return false
	}
	if err := m.sess.Insert(word); err != nil {
		m.invalid(err)
	}
	return true
}

func (m *menu) search() bool {
	word, ok := m.prompt("Enter word to search: ")
	if !ok {
		return false
	}
	found, err := m.sess.Search(word)
	switch {
	case err != nil:
		m.invalid(err)
	case found:
		fmt.Fprintln(m.out, "Word found in the dictionary.")
	default:
		fmt.Fprintln(m.out, "Word not found in the dictionary.")
	}
	return true
}

func (m *menu) suggest() bool {
	prefix, ok := m.prompt("Enter prefix: ")
	if !ok {
		return false
	}
	words, err := m.sess.Suggest(prefix)
	switch {
	case err != nil:
		m.invalid(err)
	case len(words) == 0:
		fmt.Fprintln(m.out, "No words with that prefix.")
	default:
		for _, word := range words {
			fmt.Fprintf(m.out, "- %s\n", word)
		}
	}
	return true
}

func (m *menu) recent() {
	entries := m.sess.Recent()
	if len(entries) == 0 {
		fmt.Fprintln(m.out, "No recent searches.")
		return
	}
	fmt.Fprintln(m.out, "Recent Searches:")
	for _, word := range entries {
		fmt.Fprintf(m.out, "- %s\n", word)
	}
}

func (m *menu) hangman() bool {
	game := m.sess.NewGame()
	for !game.Over() {
		fmt.Fprintf(m.out, "Word: %s\n", game.Masked())
		fmt.Fprintf(m.out, "Attempts remaining: %d\n", game.Remaining())
		letters := make([]string, 0, len(game.Guessed()))
		for _, r := range game.Guessed() {
			letters = append(letters, string(r))
		}
		fmt.Fprintf(m.out, "Guessed letters: %s\n", strings.Join(letters, " "))

		guess, ok := m.prompt("Enter a letter: ")
		if !ok {
			return false
		}
		r, _ := utf8.DecodeRuneInString(guess)
		if _, err := game.Guess(r); err != nil {
			switch {
			case errors.Is(err, session.ErrAlreadyGuessed):
				fmt.Fprintln(m.out, "You already guessed that letter.")
			default:
				fmt.Fprintln(m.out, "Please enter a letter from a to z.")
			}
		}
	}

	if game.Won() {
		fmt.Fprintf(m.out, "Congratulations! You've guessed the word: %s\n", game.Word())
	} else {
		fmt.Fprintf(m.out, "Game Over! The word was: %s\n", game.Word())
	}
	return true
}

func (m *menu) invalid(err error) {
	var inputErr *lexicon.InputError
	if errors.As(err, &inputErr) {
		fmt.Fprintf(m.out, "Invalid word %q: only lowercase letters a-z are allowed.\n", inputErr.Word)
		return
	}
	fmt.Fprintf(m.out, "Error: %v\n", err)
}
