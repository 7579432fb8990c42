package lexicon

import (
	"database/sql"
	"fmt"
	"sort"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/vic/montague/pkg/translator"
)

// Store keeps lexicon records in a SQLite database. Denotations and types are
// stored as text and parsed on the way out.
type Store struct {
	db     *sql.DB
	path   string
	logger *zap.Logger
}

// Open opens or creates the lexicon database at path. A nil logger discards
// output.
func Open(path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open lexicon database: %w", err)
	}
	s := &Store{db: db, path: path, logger: logger}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

func (s *Store) initSchema() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS lexicon (
		word TEXT PRIMARY KEY,
		denotation TEXT NOT NULL,
		type TEXT NOT NULL
	)`)
	return err
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Put stores the record for word, replacing any earlier one. The record is
// parsed first so the table only ever holds loadable entries.
func (s *Store) Put(word string, r Record) error {
	if _, err := ParseEntry(word, r); err != nil {
		return err
	}
	_, err := s.db.Exec(`INSERT OR REPLACE INTO lexicon (word, denotation, type) VALUES (?, ?, ?)`,
		word, r.Denotation, r.Type)
	if err != nil {
		return fmt.Errorf("failed to store %q: %w", word, err)
	}
	s.logger.Debug("stored lexicon entry", zap.String("word", word), zap.String("type", r.Type))
	return nil
}

// PutLexicon stores every entry of lex in one transaction, printing each
// denotation and type in canonical form.
func (s *Store) PutLexicon(lex translator.Lexicon) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	words := make([]string, 0, len(lex))
	for w := range lex {
		words = append(words, w)
	}
	sort.Strings(words)
	for _, w := range words {
		e := lex[w]
		if _, err := tx.Exec(`INSERT OR REPLACE INTO lexicon (word, denotation, type) VALUES (?, ?, ?)`,
			w, e.Denotation.String(), e.Type.String()); err != nil {
			return fmt.Errorf("failed to store %q: %w", w, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit lexicon: %w", err)
	}
	s.logger.Info("stored lexicon", zap.Int("entries", len(words)))
	return nil
}

// Get returns the parsed entry for word. ok is false if the word is absent.
func (s *Store) Get(word string) (entry translator.LexiconEntry, ok bool, err error) {
	var r Record
	err = s.db.QueryRow(`SELECT denotation, type FROM lexicon WHERE word = ?`, word).Scan(&r.Denotation, &r.Type)
	if err == sql.ErrNoRows {
		return translator.LexiconEntry{}, false, nil
	}
	if err != nil {
		return translator.LexiconEntry{}, false, fmt.Errorf("failed to query %q: %w", word, err)
	}
	entry, err = ParseEntry(word, r)
	if err != nil {
		return translator.LexiconEntry{}, false, err
	}
	return entry, true, nil
}

// Delete removes word. Removing an absent word is not an error.
func (s *Store) Delete(word string) error {
	if _, err := s.db.Exec(`DELETE FROM lexicon WHERE word = ?`, word); err != nil {
		return fmt.Errorf("failed to delete %q: %w", word, err)
	}
	return nil
}

// Load reads the whole table into a lexicon.
func (s *Store) Load() (translator.Lexicon, error) {
	rows, err := s.db.Query(`SELECT word, denotation, type FROM lexicon ORDER BY word`)
	if err != nil {
		return nil, fmt.Errorf("failed to query lexicon: %w", err)
	}
	defer rows.Close()

	records := make(map[string]Record)
	for rows.Next() {
		var word string
		var r Record
		if err := rows.Scan(&word, &r.Denotation, &r.Type); err != nil {
			return nil, fmt.Errorf("failed to scan lexicon row: %w", err)
		}
		records[word] = r
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lexicon: %w", err)
	}
	s.logger.Debug("loaded lexicon", zap.String("path", s.path), zap.Int("entries", len(records)))
	return FromRecords(records)
}
