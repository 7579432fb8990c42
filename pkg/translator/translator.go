// Package translator turns English sentences into formulas by combining the
// lexicon entries of their words through function application.
package translator

import (
	"fmt"
	"strings"

	"github.com/vic/montague/pkg/formula"
)

// LexiconEntry pairs a word's denotation with its semantic type.
type LexiconEntry struct {
	Denotation formula.Formula
	Type       formula.Type
}

func (e LexiconEntry) String() string {
	return fmt.Sprintf("%s : %s", e.Denotation, e.Type.ConciseString())
}

// Lexicon maps words to their entries.
type Lexicon map[string]LexiconEntry

// CombinationError is returned by Combine for a pair of entries whose types
// admit no function application in either direction.
type CombinationError struct {
	Left, Right LexiconEntry
}

func (e *CombinationError) Error() string {
	return fmt.Sprintf("cannot combine %s with %s", e.Left, e.Right)
}

// TranslationError reports why a sentence has no translation: either Word is
// missing from the lexicon, or the entries Left and Right could not combine.
type TranslationError struct {
	Word        string
	Left, Right *LexiconEntry
}

func (e *TranslationError) Error() string {
	if e.Word != "" {
		return fmt.Sprintf("unknown word %q", e.Word)
	}
	return fmt.Sprintf("could not combine %s with %s", e.Left, e.Right)
}

// Unwrap exposes the failed combination, if any.
func (e *TranslationError) Unwrap() error {
	if e.Left == nil || e.Right == nil {
		return nil
	}
	return &CombinationError{Left: *e.Left, Right: *e.Right}
}

func applies(functor, arg LexiconEntry) bool {
	ct, ok := functor.Type.(formula.ComplexType)
	return ok && formula.TypeEqual(ct.Domain, arg.Type)
}

// CanCombine reports whether either entry can be applied to the other.
func CanCombine(a, b LexiconEntry) bool {
	return applies(a, b) || applies(b, a)
}

// Combine applies a to b when a's type takes b's, otherwise b to a. The
// resulting denotation is the unreduced Call.
func Combine(a, b LexiconEntry) (LexiconEntry, error) {
	switch {
	case applies(a, b):
		return apply(a, b), nil
	case applies(b, a):
		return apply(b, a), nil
	}
	return LexiconEntry{}, &CombinationError{Left: a, Right: b}
}

func apply(functor, arg LexiconEntry) LexiconEntry {
	return LexiconEntry{
		Denotation: formula.Call{Caller: functor.Denotation, Arg: arg.Denotation},
		Type:       functor.Type.(formula.ComplexType).Range,
	}
}

func lookup(text string, lexicon Lexicon) ([]LexiconEntry, error) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil, fmt.Errorf("empty sentence")
	}
	entries := make([]LexiconEntry, len(words))
	for i, w := range words {
		entry, ok := lexicon[w]
		if !ok {
			return nil, &TranslationError{Word: w}
		}
		entries[i] = entry
	}
	return entries, nil
}

// TranslateSentence looks up every word of text and folds the entries from
// left to right, combining the accumulated entry with the next one. The
// denotation is left unreduced.
func TranslateSentence(text string, lexicon Lexicon) (LexiconEntry, error) {
	entries, err := lookup(text, lexicon)
	if err != nil {
		return LexiconEntry{}, err
	}
	acc := entries[0]
	for _, next := range entries[1:] {
		combined, err := Combine(acc, next)
		if err != nil {
			return LexiconEntry{}, &TranslationError{Left: &acc, Right: &next}
		}
		acc = combined
	}
	return acc, nil
}

// Translate translates text and beta-reduces the result. Unlike
// TranslateSentence it does not require every prefix to combine: it sweeps
// the sentence combining adjacent pairs, leaving an entry in place when it
// combines with neither neighbour, and repeats until one entry is left. This
// accepts sentences such as "John is good" where the verb phrase has to be
// built before the subject can apply to it.
func Translate(text string, lexicon Lexicon) (LexiconEntry, error) {
	entries, err := lookup(text, lexicon)
	if err != nil {
		return LexiconEntry{}, err
	}
	for len(entries) > 1 {
		reduced, err := sweep(entries)
		if err != nil {
			return LexiconEntry{}, err
		}
		entries = reduced
	}
	return LexiconEntry{Denotation: formula.Simplify(entries[0].Denotation), Type: entries[0].Type}, nil
}

// sweep makes one left-to-right pass over entries. It fails when the pass
// combines nothing.
func sweep(entries []LexiconEntry) ([]LexiconEntry, error) {
	out := make([]LexiconEntry, 0, len(entries))
	i := 0
	for i < len(entries)-1 {
		combined, err := Combine(entries[i], entries[i+1])
		if err != nil {
			out = append(out, entries[i])
			i++
			continue
		}
		out = append(out, combined)
		i += 2
	}
	if i == len(entries)-1 {
		out = append(out, entries[i])
	}
	if len(out) == len(entries) {
		return nil, &TranslationError{Left: &entries[0], Right: &entries[1]}
	}
	return out, nil
}
