// internal/words/sqlite.go
//
// SQLite form of the word bank.
// Responsibilities:
//   - Opening SQLite files (read-only for players, read-write for the generator).
//   - Applying the embedded schema migrations (idempotent, recorded in _migrations).
//   - Writing a Document into the words/bank_meta tables and reading it back.
//
// Players never write: LoadSQLite opens the file with mode=ro.

package words

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

//go:embed sql/*.sql
var migrations embed.FS

// openDB opens a SQLite database file.
//
// Writable handles create the parent directory and use WAL with a busy
// timeout; read-only handles fail if the file is absent.
func openDB(path string, readOnly bool) (*sql.DB, error) {
	if readOnly {
		return sql.Open("sqlite3", "file:"+path+"?mode=ro&_busy_timeout=5000")
	}

	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// migrate applies the embedded sql/*.sql files in lexical order, skipping
// the ones already listed in _migrations.
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(migrations, "sql/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("query _migrations: %w", err)
		}

		body, err := migrations.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(body)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Debug().Str("migration", f).Msg("applied")
	}
	return nil
}

// SaveSQLite writes doc to the SQLite file at path, replacing any previous
// contents of the bank tables.
func SaveSQLite(path string, doc Document) error {
	db, err := openDB(path, false)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migrate(db); err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM words; DELETE FROM bank_meta;`); err != nil {
		return fmt.Errorf("clear bank: %w", err)
	}
	meta := map[string]string{"version": doc.Version, "language": doc.Language, "source": doc.Source}
	for k, v := range meta {
		if _, err := tx.Exec(`INSERT INTO bank_meta(key, value) VALUES (?, ?)`, k, v); err != nil {
			return fmt.Errorf("insert meta %s: %w", k, err)
		}
	}

	stmt, err := tx.Prepare(`INSERT INTO words (theme, display_form, normalized_form, level, hint)
	                         VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, w := range doc.Words {
		lvl := w.Level
		if lvl == "" {
			lvl = LevelA
		}
		if _, err := stmt.Exec(w.Theme, w.DisplayForm, Normalize(w.DisplayForm), string(lvl), w.Hint); err != nil {
			return fmt.Errorf("insert %q: %w", w.DisplayForm, err)
		}
	}
	return tx.Commit()
}

// LoadSQLite reads a bank written by SaveSQLite.
func LoadSQLite(path string) (*Bank, error) {
	db, err := openDB(path, true)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var meta Meta
	rows, err := db.Query(`SELECT key, value FROM bank_meta`)
	if err != nil {
		return nil, fmt.Errorf("query bank_meta: %w", err)
	}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			rows.Close()
			return nil, err
		}
		switch k {
		case "version":
			meta.Version = v
		case "language":
			meta.Language = v
		case "source":
			meta.Source = v
		}
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	rows, err = db.Query(`SELECT theme, display_form, level, hint FROM words ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var lvl string
		if err := rows.Scan(&r.Theme, &r.DisplayForm, &lvl, &r.Hint); err != nil {
			return nil, err
		}
		r.Level = Level(lvl)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return NewBank(meta, records)
}
