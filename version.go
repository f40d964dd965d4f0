// Package chiasql is a bech32m codec for Chia addresses exposed as SQLite
// functions.
package chiasql

// Version is the release version of chiasql.
const Version = "v0.1.0"
