/*
Package lexicon is an in-memory word dictionary built on a prefix tree.

A Lexicon answers two kinds of questions quickly: whether a word was added,
and which added words start with a given prefix. Words are sequences of the
lowercase letters a-z. Anything else is rejected with an error matching
ErrInvalidInput before the tree is touched, so a failed Insert never leaves
partial state behind.

Nodes live in a single slice and refer to each other by index. Each node keeps
its outgoing edges sorted by letter, so every enumeration (WordsWithPrefix,
Words, Enumerate) produces words in lexicographic order without sorting.

In general, to use it you first create a Lexicon using lexicon.New(). You can
then Insert words in any order; inserting the same word twice is harmless.
Search reports exact membership, and WordsWithPrefix or Words list the
completions of a prefix. A lexicon can be seeded from a newline separated word
list with Load or LoadFile.

The session sub-package builds the interactive features (recent searches,
word of the day, hangman) on top of a Lexicon.
*/
package lexicon
