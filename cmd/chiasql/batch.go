package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	"chiasql.lol/bech32encoding"
	"chiasql.lol/context"
	"chiasql.lol/hex"
)

// batch converts each line of r on a pool of threads workers and writes the
// results to w in input order. A line that fails is written as "error: " and
// the reason, and counted in failed. Blank lines are passed through.
func batch(c context.T, r io.Reader, w io.Writer, cmd *BatchCmd, threads no) (
	failed no, err er) {

	var conv func(line st) (st, er)
	switch cmd.Mode {
	case "encode":
		conv = func(line st) (s st, err er) {
			var payload by
			if payload, err = hex.Dec(hex.Trim0x(line)); err != nil {
				return
			}
			if cmd.Legacy {
				return bech32encoding.EncodeLegacy(cmd.HRP, payload)
			}
			return bech32encoding.Encode(cmd.HRP, payload)
		}
	case "decode":
		conv = func(line st) (s st, err er) {
			var hrp st
			var payload by
			if hrp, payload, err = bech32encoding.Decode(line); err != nil {
				return
			}
			return hrp + "\t" + hex.Enc(payload), nil
		}
	default:
		return 0, errorf.E("unknown batch mode '%s', want encode or decode", cmd.Mode)
	}
	// lines have no length limit, an oversized one fails on its own.
	var lines []st
	br := bufio.NewReader(r)
	for {
		line, rerr := br.ReadString('\n')
		if len(line) > 0 {
			lines = append(lines, strings.TrimSpace(line))
		}
		if rerr == io.EOF {
			break
		}
		if err = rerr; chk.E(err) {
			return
		}
	}
	out := make([]st, len(lines))
	errs := make([]er, len(lines))
	g, gc := errgroup.WithContext(c)
	if threads < 1 {
		threads = 1
	}
	g.SetLimit(threads)
	for i := range lines {
		if gc.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gc.Err(); err != nil {
				return err
			}
			if lines[i] != "" {
				out[i], errs[i] = conv(lines[i])
			}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return
	}
	if err = c.Err(); err != nil {
		return
	}
	bw := bufio.NewWriter(w)
	for i := range out {
		if errs[i] != nil {
			failed++
			log.D.F("line %d: %s", i+1, errs[i])
			_, _ = fmt.Fprintf(bw, "error: %s\n", errs[i])
			continue
		}
		_, _ = fmt.Fprintln(bw, out[i])
	}
	err = bw.Flush()
	log.D.F("converted %d lines on %d threads, %d failed", len(lines), threads,
		failed)
	return
}
