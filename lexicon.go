package lexicon

import (
	"iter"

	"golang.org/x/exp/slices"
)

// EnumFn is called by Enumerate for every prefix stored in the Lexicon.
// The word slice is reused between calls and must be copied to be kept.
type EnumFn = func(word []byte, final bool) EnumerationResult

// EnumerationResult is returned by the enumeration function to indicate whether
// enumeration should continue below this depth or stop altogether
type EnumerationResult = int

const (
	// Continue enumerating all words with this prefix
	Continue EnumerationResult = iota

	// Skip will skip all words with this prefix
	Skip

	// Stop will immediately stop enumerating words
	Stop
)

const rootNode = 0

type edge struct {
	ch   byte
	node int
}

type node struct {
	final bool
	// sorted by ch, at most one edge per letter
	edges []edge
}

// search returns the position of ch in the edges of n and whether it is there.
// When it is not, the position is where ch would have to be inserted.
func (n *node) search(ch byte) (int, bool) {
	return slices.BinarySearchFunc(n.edges, ch, func(e edge, ch byte) int {
		return int(e.ch) - int(ch)
	})
}

// Lexicon is a set of words stored as a prefix tree.
//
// Nodes are kept in one slice and addressed by index, the root being the first
// one. Nodes are only ever appended, so the whole tree is released at once
// when the Lexicon is no longer referenced.
//
// A Lexicon is not safe for concurrent use.
type Lexicon struct {
	nodes    []node
	numAdded int
}

// New creates an empty Lexicon.
func New() *Lexicon {
	return &Lexicon{
		nodes: make([]node, 1),
	}
}

// Insert adds a word to the Lexicon. Inserting a word that is already there
// changes nothing. The empty word is allowed and marks the root.
// A word containing anything other than a-z is rejected with an error
// matching ErrInvalidInput and the Lexicon is left unchanged.
func (l *Lexicon) Insert(word string) error {
	if err := validate(word); err != nil {
		return err
	}

	n := rootNode
	for i := 0; i < len(word); i++ {
		ch := word[i]
		pos, ok := l.nodes[n].search(ch)
		if ok {
			n = l.nodes[n].edges[pos].node
			continue
		}

		next := l.newNode()
		l.nodes[n].edges = slices.Insert(l.nodes[n].edges, pos, edge{ch: ch, node: next})
		n = next
	}

	if !l.nodes[n].final {
		l.nodes[n].final = true
		l.numAdded++
	}
	return nil
}

// Search reports whether word was inserted. A word that is only the prefix of
// inserted words is not found.
func (l *Lexicon) Search(word string) (bool, error) {
	if err := validate(word); err != nil {
		return false, err
	}
	n, ok := l.findNode(word)
	return ok && l.nodes[n].final, nil
}

// HasPrefix reports whether any inserted word starts with prefix.
func (l *Lexicon) HasPrefix(prefix string) (bool, error) {
	if err := validate(prefix); err != nil {
		return false, err
	}
	n, ok := l.findNode(prefix)
	if !ok {
		return false, nil
	}
	// only the root can be a node without words below it
	return l.nodes[n].final || len(l.nodes[n].edges) > 0, nil
}

// WordsWithPrefix returns all inserted words that start with prefix, in
// lexicographic order. The result is empty if there are none.
func (l *Lexicon) WordsWithPrefix(prefix string) ([]string, error) {
	if err := validate(prefix); err != nil {
		return nil, err
	}
	n, ok := l.findNode(prefix)
	if !ok {
		return []string{}, nil
	}
	return l.collectWords(n, prefix), nil
}

// Words returns a lazy sequence over the same words as WordsWithPrefix.
// The tree is walked only as far as the caller ranges, and every range
// starts over from the current contents of the Lexicon.
func (l *Lexicon) Words(prefix string) (iter.Seq[string], error) {
	if err := validate(prefix); err != nil {
		return nil, err
	}
	return func(yield func(string) bool) {
		n, ok := l.findNode(prefix)
		if !ok {
			return
		}
		l.walkWords(n, []byte(prefix), yield)
	}, nil
}

// FindAllPrefixesOf returns all inserted words that are a prefix of input,
// shortest first. The input itself is included when it was inserted.
func (l *Lexicon) FindAllPrefixesOf(input string) ([]string, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	var results []string
	n := rootNode
	for i := 0; i < len(input); i++ {
		if l.nodes[n].final {
			results = append(results, input[:i])
		}
		pos, ok := l.nodes[n].search(input[i])
		if !ok {
			return results, nil
		}
		n = l.nodes[n].edges[pos].node
	}

	if l.nodes[n].final {
		results = append(results, input)
	}
	return results, nil
}

// Enumerate will call the given method, passing it every prefix stored in the
// Lexicon, starting with the empty one, in lexicographic order.
// Return Continue to continue enumeration, Skip to skip this branch, or Stop to stop enumeration.
func (l *Lexicon) Enumerate(fn EnumFn) {
	l.enumerate(rootNode, nil, fn)
}

func (l *Lexicon) enumerate(n int, word []byte, fn EnumFn) EnumerationResult {
	result := fn(word, l.nodes[n].final)

	// if the function didn't say to continue, then return.
	if result != Continue {
		return result
	}

	for _, e := range l.nodes[n].edges {
		result = l.enumerate(e.node, append(word, e.ch), fn)
		if result == Stop {
			break
		}
	}

	return result
}

// NumAdded returns the number of distinct words inserted.
func (l *Lexicon) NumAdded() int {
	return l.numAdded
}

// NumNodes returns the number of nodes, including the root.
func (l *Lexicon) NumNodes() int {
	return len(l.nodes)
}

// NumEdges returns the number of edges. Every node but the root has exactly
// one edge leading to it.
func (l *Lexicon) NumEdges() int {
	return len(l.nodes) - 1
}

// findNode returns the node reached by consuming prefix from the root.
func (l *Lexicon) findNode(prefix string) (int, bool) {
	n := rootNode
	for i := 0; i < len(prefix); i++ {
		pos, ok := l.nodes[n].search(prefix[i])
		if !ok {
			return 0, false
		}
		n = l.nodes[n].edges[pos].node
	}
	return n, true
}

// collectWords returns every word reachable from node n, each spelled as
// prefix followed by the letters on the path from n.
func (l *Lexicon) collectWords(n int, prefix string) []string {
	words := []string{}
	l.walkWords(n, []byte(prefix), func(word string) bool {
		words = append(words, word)
		return true
	})
	return words
}

// walkWords yields the words below n depth-first, a node before its
// children and children a to z. It returns false once yield does.
func (l *Lexicon) walkWords(n int, word []byte, yield func(string) bool) bool {
	if l.nodes[n].final && !yield(string(word)) {
		return false
	}
	for _, e := range l.nodes[n].edges {
		if !l.walkWords(e.node, append(word, e.ch), yield) {
			return false
		}
	}
	return true
}

func (l *Lexicon) newNode() int {
	l.nodes = append(l.nodes, node{})
	return len(l.nodes) - 1
}
