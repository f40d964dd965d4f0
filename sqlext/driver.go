// Package sqlext registers the bech32 codec and its companion blob functions
// as deterministic scalar functions on SQLite connections.
//
// Importing the package registers the DriverName driver with database/sql;
// every connection it opens has the functions available.
package sqlext

import (
	"database/sql"

	"github.com/mattn/go-sqlite3"
)

// DriverName is the database/sql driver name with the functions registered.
const DriverName = "chiasql"

func init() {
	sql.Register(DriverName, &sqlite3.SQLiteDriver{ConnectHook: Register})
}

// Register adds every function in Functions to a connection. They are marked
// pure, which lets SQLite use them in indexes and constant folding.
func Register(conn *sqlite3.SQLiteConn) (err er) {
	for _, f := range Functions {
		if err = conn.RegisterFunc(f.Name, f.Impl, true); chk.E(err) {
			return errorf.E("registering %s: %w", f.Name, err)
		}
	}
	log.T.F("registered %d functions", len(Functions))
	return
}

// Open opens a database on the driver. An in-memory database is limited to
// one connection, as each connection to ":memory:" is a separate database.
func Open(dsn st) (db *sql.DB, err er) {
	if db, err = sql.Open(DriverName, dsn); chk.E(err) {
		return
	}
	if dsn == ":memory:" || dsn == "" {
		db.SetMaxOpenConns(1)
	}
	if err = db.Ping(); chk.E(err) {
		_ = db.Close()
		return nil, err
	}
	return
}
