// Package lexicon loads translator lexicons from JSON and YAML documents and
// keeps them in a SQLite database.
//
// Both document formats map each word to a record holding the denotation
// text under "d" and the type text under "t":
//
//	{"John": {"d": "j", "t": "e"}, "good": {"d": "Lx.Good(x)", "t": "et"}}
package lexicon

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vic/montague/pkg/formula"
	"github.com/vic/montague/pkg/translator"
)

// Record is the textual form of one lexicon entry.
type Record struct {
	Denotation string `json:"d" yaml:"d"`
	Type       string `json:"t" yaml:"t"`
}

// LexiconError reports a record that could not be turned into an entry.
type LexiconError struct {
	Word string
	Err  error
}

func (e *LexiconError) Error() string {
	return fmt.Sprintf("lexicon entry %q: %v", e.Word, e.Err)
}

func (e *LexiconError) Unwrap() error { return e.Err }

// ParseEntry parses the denotation and type text of a record.
func ParseEntry(word string, r Record) (translator.LexiconEntry, error) {
	d, err := formula.ParseFormula(r.Denotation)
	if err != nil {
		return translator.LexiconEntry{}, &LexiconError{Word: word, Err: fmt.Errorf("denotation: %w", err)}
	}
	t, err := formula.ParseType(r.Type)
	if err != nil {
		return translator.LexiconEntry{}, &LexiconError{Word: word, Err: fmt.Errorf("type: %w", err)}
	}
	return translator.LexiconEntry{Denotation: d, Type: t}, nil
}

// FromRecords parses every record.
func FromRecords(records map[string]Record) (translator.Lexicon, error) {
	lex := make(translator.Lexicon, len(records))
	for word, r := range records {
		entry, err := ParseEntry(word, r)
		if err != nil {
			return nil, err
		}
		lex[word] = entry
	}
	return lex, nil
}

// LoadJSON reads a JSON lexicon document.
func LoadJSON(r io.Reader) (translator.Lexicon, error) {
	var records map[string]Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode lexicon: %w", err)
	}
	return FromRecords(records)
}

// LoadYAML reads a YAML lexicon document.
func LoadYAML(r io.Reader) (translator.Lexicon, error) {
	var records map[string]Record
	if err := yaml.NewDecoder(r).Decode(&records); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode lexicon: %w", err)
	}
	return FromRecords(records)
}

// LoadFile reads a lexicon from path. The format follows the extension:
// .yaml and .yml are YAML, .db and .sqlite are a Store, anything else is JSON.
func LoadFile(path string) (translator.Lexicon, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite":
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("failed to open lexicon: %w", err)
		}
		store, err := Open(path, nil)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		return store.Load()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open lexicon: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(f)
	default:
		return LoadJSON(f)
	}
}
