package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

// NewSQLiteDB opens (creating if needed) the SQLite database at path and
// verifies the connection. The busy timeout covers concurrent save calls
// from parallel request handlers; identity assignment itself is left to
// SQLite's AUTOINCREMENT.
func NewSQLiteDB(path string) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)

	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sqlite database at %s: %w", path, err)
	}

	return db, nil
}
