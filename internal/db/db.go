package db

import (
	"database/sql"
	"fmt"
	"net/url"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// pragmas are applied to every pooled connection through the DSN.
var pragmas = []string{
	"journal_mode(WAL)",
	"busy_timeout(5000)",
	"foreign_keys(ON)",
	"synchronous(NORMAL)",
}

// Open opens a SQLite database and configures pragmas.
func Open(path string) (*sql.DB, error) {
	dsn := path
	if path != MemoryPath {
		q := url.Values{}
		for _, p := range pragmas {
			q.Add("_pragma", p)
		}
		dsn = "file:" + path + "?" + q.Encode()
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if path == MemoryPath {
		// Every connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
		for _, p := range pragmas[1:] {
			if _, err := db.Exec("PRAGMA " + pragmaStatement(p)); err != nil {
				db.Close()
				return nil, fmt.Errorf("setting pragma %q: %w", p, err)
			}
		}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	return db, nil
}

// pragmaStatement turns "name(value)" into "name=value".
func pragmaStatement(p string) string {
	for i := 0; i < len(p); i++ {
		if p[i] == '(' && p[len(p)-1] == ')' {
			return p[:i] + "=" + p[i+1:len(p)-1]
		}
	}
	return p
}
