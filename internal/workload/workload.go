// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package workload generates deterministic string corpora for exercising and
// benchmarking the comparators.
//
// The corpora model typical prefix-trie contents: random lowercase keys, DNA
// and protein sequences, English-looking words and hierarchical paths. Query
// sets are derived from a corpus by introducing a few edits, so comparisons
// see realistic shared prefixes and late mismatches.
//
// A Generator is not safe for concurrent use; create one per goroutine.
package workload

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// Kind selects a corpus shape.
type Kind string

const (
	Random  Kind = "random"
	DNA     Kind = "dna"
	Protein Kind = "protein"
	Words   Kind = "words"
	Paths   Kind = "paths"
)

// Kinds lists every corpus shape.
var Kinds = []Kind{Random, DNA, Protein, Words, Paths}

var (
	// ErrUnknownKind is returned for an unsupported corpus shape.
	ErrUnknownKind = errors.New("unknown workload kind")
	// ErrInvalidSize is returned for a negative count or length.
	ErrInvalidSize = errors.New("invalid workload size")
)

const (
	lowercase  = "abcdefghijklmnopqrstuvwxyz"
	nucleotide = "ATCG"
	aminoAcids = "ACDEFGHIKLMNPQRSTVWY"
)

var (
	wordPrefixes = []string{"pre", "un", "re", "in", "dis", "mis", "over", "under", "out", "up"}
	wordRoots    = []string{"test", "work", "play", "run", "jump", "walk", "talk", "read", "write", "sing",
		"dance", "cook", "clean", "build", "fix", "make", "take", "give", "find", "help"}
	wordSuffixes = []string{"ing", "ed", "er", "est", "ly", "tion", "sion", "ness", "ment", "able"}

	pathLevels = [][]string{
		{"sys", "usr", "var", "home", "opt", "tmp"},
		{"bin", "lib", "src", "data", "config", "cache"},
		{"main", "test", "util", "core", "api", "ui"},
		{"file", "module", "class", "func", "var", "const"},
	}
)

// ParseKind validates a corpus shape name.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Generator produces corpora from a seeded source.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator whose output is fully determined by seed.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))} // #nosec G404
}

// Strings returns count strings of the given kind. length is the string
// length for random, dna and protein, and the number of path levels for
// paths; words ignore it.
func (g *Generator) Strings(kind Kind, count, length int) ([]string, error) {
	if count < 0 || length < 0 {
		return nil, fmt.Errorf("%w: count=%d length=%d", ErrInvalidSize, count, length)
	}

	var next func() string
	switch kind {
	case Random:
		next = func() string { return g.fromAlphabet(lowercase, length) }
	case DNA:
		next = func() string { return g.fromAlphabet(nucleotide, length) }
	case Protein:
		next = func() string { return g.fromAlphabet(aminoAcids, length) }
	case Words:
		next = g.word
	case Paths:
		next = func() string { return g.path(length) }
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	out := make([]string, count)
	for i := range out {
		out[i] = next()
	}
	return out, nil
}

func (g *Generator) fromAlphabet(alphabet string, length int) string {
	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		sb.WriteByte(alphabet[g.rng.Intn(len(alphabet))])
	}
	return sb.String()
}

// word joins an optional prefix (30%), a root and an optional suffix (40%).
func (g *Generator) word() string {
	var sb strings.Builder
	if g.rng.Float64() < 0.3 {
		sb.WriteString(g.pick(wordPrefixes))
	}
	sb.WriteString(g.pick(wordRoots))
	if g.rng.Float64() < 0.4 {
		sb.WriteString(g.pick(wordSuffixes))
	}
	return sb.String()
}

// path joins one name per level; levels beyond the name tables get numbered
// items.
func (g *Generator) path(levels int) string {
	parts := make([]string, levels)
	for i := range parts {
		if i < len(pathLevels) {
			parts[i] = g.pick(pathLevels[i])
		} else {
			parts[i] = fmt.Sprintf("item%d", 1000+g.rng.Intn(9000))
		}
	}
	return strings.Join(parts, "/")
}

func (g *Generator) pick(choices []string) string {
	return choices[g.rng.Intn(len(choices))]
}

// Queries derives one query per entry. Half of the queries receive one or two
// random edits (substitution, insertion or deletion) drawn from the corpus
// alphabet; the rest are exact copies.
func (g *Generator) Queries(entries []string) []string {
	alphabet := corpusAlphabet(entries)
	queries := make([]string, len(entries))
	for i, entry := range entries {
		if g.rng.Float64() >= 0.5 || entry == "" {
			queries[i] = entry
			continue
		}

		query := []byte(entry)
		edits := 1 + g.rng.Intn(min(2, len(entry)))
		for e := 0; e < edits && len(query) > 0; e++ {
			pos := g.rng.Intn(len(query))
			c := alphabet[g.rng.Intn(len(alphabet))]
			switch g.rng.Intn(3) {
			case 0:
				query[pos] = c
			case 1:
				query = append(query[:pos], append([]byte{c}, query[pos:]...)...)
			default:
				query = append(query[:pos], query[pos+1:]...)
			}
		}
		queries[i] = string(query)
	}
	return queries
}

func corpusAlphabet(entries []string) []byte {
	var seen [256]bool
	var alphabet []byte
	for _, entry := range entries {
		for i := 0; i < len(entry); i++ {
			if !seen[entry[i]] {
				seen[entry[i]] = true
				alphabet = append(alphabet, entry[i])
			}
		}
	}
	if len(alphabet) == 0 {
		return []byte(lowercase)
	}
	return alphabet
}

// Pair is one comparison input.
type Pair struct {
	A, B []byte
}

// Pairs builds count entry/query pairs of the given kind. Every pair starts
// with the same random prefix of prefixLen bytes, which pushes the first
// mismatch past the leading chunks.
func (g *Generator) Pairs(kind Kind, count, length, prefixLen int) ([]Pair, error) {
	if prefixLen < 0 {
		return nil, fmt.Errorf("%w: prefix=%d", ErrInvalidSize, prefixLen)
	}
	entries, err := g.Strings(kind, count, length)
	if err != nil {
		return nil, err
	}
	queries := g.Queries(entries)
	prefix := g.fromAlphabet(lowercase, prefixLen)

	pairs := make([]Pair, count)
	for i := range pairs {
		pairs[i] = Pair{
			A: []byte(prefix + entries[i]),
			B: []byte(prefix + queries[i]),
		}
	}
	return pairs, nil
}
