package main

import (
	"bufio"
	"database/sql"
	"fmt"
	"io"
	"strings"

	"chiasql.lol/context"
	"chiasql.lol/hex"
	"chiasql.lol/sqlext"
)

// query runs one SQL statement and prints the rows tab separated. Blobs are
// printed as hex and NULL as NULL.
func query(c context.T, dsn st, r io.Reader, w io.Writer, cmd *QueryCmd) (err er) {
	if cmd.Functions {
		for _, f := range sqlext.Functions {
			if _, err = fmt.Fprintln(w, f.Usage); chk.E(err) {
				return
			}
		}
		return
	}
	q := cmd.SQL
	if q == "" || q == "-" {
		var b by
		if b, err = io.ReadAll(r); chk.E(err) {
			return
		}
		q = st(b)
	}
	if strings.TrimSpace(q) == "" {
		return errorf.E("no SQL given")
	}
	var db *sql.DB
	if db, err = sqlext.Open(dsn); chk.E(err) {
		return
	}
	defer db.Close()
	var rows *sql.Rows
	if rows, err = db.QueryContext(c, q); chk.D(err) {
		return
	}
	defer rows.Close()
	var cols []st
	if cols, err = rows.Columns(); chk.E(err) {
		return
	}
	bw := bufio.NewWriter(w)
	defer bw.Flush()
	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	for rows.Next() {
		if err = rows.Scan(ptrs...); chk.D(err) {
			return
		}
		for i, v := range vals {
			if i > 0 {
				_ = bw.WriteByte('\t')
			}
			_, _ = bw.WriteString(format(v))
		}
		_ = bw.WriteByte('\n')
	}
	return rows.Err()
}

func format(v any) st {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case by:
		return hex.Enc(x)
	default:
		return fmt.Sprint(x)
	}
}
