// Command chiasql encodes and decodes bech32m strings and runs SQL with the
// codec functions registered.
//
// Configuration is read from the environment, see 'chiasql help'.
package main

import (
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime/debug"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/pkg/profile"

	"chiasql.lol"
	"chiasql.lol/bech32encoding"
	"chiasql.lol/config"
	"chiasql.lol/context"
	"chiasql.lol/hex"
	"chiasql.lol/interrupt"
	"chiasql.lol/lol"
	"chiasql.lol/sha256"
)

type EncodeCmd struct {
	HRP    st `arg:"positional,required" help:"human-readable part, eg xch"`
	Hex    st `arg:"positional,required" help:"payload as hex, a 0x prefix is allowed"`
	Legacy bo `help:"use the original bech32 checksum instead of bech32m"`
}

type DecodeCmd struct {
	Address st `arg:"positional,required" help:"bech32 or bech32m string"`
}

type QueryCmd struct {
	SQL       st `arg:"positional" help:"SQL to run, - or empty reads it from stdin"`
	Functions bo `help:"list the registered SQL functions and exit"`
}

type BatchCmd struct {
	Mode   st `arg:"positional,required" help:"encode|decode"`
	HRP    st `default:"xch" help:"human-readable part for encode"`
	Legacy bo `help:"use the original bech32 checksum when encoding"`
}

var args struct {
	Encode *EncodeCmd `arg:"subcommand:encode" help:"encode a hex payload"`
	Decode *DecodeCmd `arg:"subcommand:decode" help:"decode to prefix and hex payload"`
	Query  *QueryCmd  `arg:"subcommand:query" help:"run SQL on the configured DB"`
	Batch  *BatchCmd  `arg:"subcommand:batch" help:"encode or decode stdin lines in parallel"`
}

func main() {
	var err er
	var cfg *config.C
	if cfg, err = config.New(); chk.E(err) {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n\n", err)
		if cfg != nil {
			config.PrintHelp(cfg, os.Stderr)
		}
		os.Exit(1)
	}
	switch {
	case config.VersionRequested():
		config.PrintVersion(os.Stdout)
		os.Exit(0)
	case config.EnvRequested():
		config.PrintEnv(cfg, os.Stdout)
		os.Exit(0)
	case len(os.Args) > 1 && strings.ToLower(os.Args[1]) == "help":
		config.PrintHelp(cfg, os.Stderr)
		os.Exit(0)
	}
	lol.SetLogLevel(cfg.LogLevel)
	log.D.F("%s %s, sha256 acceleration %v", cfg.AppName, chiasql.Version,
		sha256.Accelerated())
	p := arg.MustParse(&args)
	if p.Subcommand() == nil {
		p.WriteHelp(os.Stderr)
		os.Exit(1)
	}
	if cfg.Pprof {
		defer profile.Start(profile.MemProfile).Stop()
		go func() {
			chk.E(http.ListenAndServe("127.0.0.1:6060", nil))
		}()
	}
	if cfg.MemLimit > 0 {
		debug.SetMemoryLimit(int64(cfg.MemLimit))
	}
	c, cancel := context.Cancel(context.Bg())
	interrupt.AddHandler(cancel)
	switch {
	case args.Encode != nil:
		err = encode(os.Stdout, args.Encode)
	case args.Decode != nil:
		err = decode(os.Stdout, args.Decode)
	case args.Query != nil:
		err = query(c, cfg.DB, os.Stdin, os.Stdout, args.Query)
	case args.Batch != nil:
		var failed no
		failed, err = batch(c, os.Stdin, os.Stdout, args.Batch, cfg.Threads)
		if err == nil && failed > 0 {
			err = errorf.W("%d lines failed", failed)
		}
	}
	interrupt.Request()
	<-interrupt.HandlersDone
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
}

func encode(w io.Writer, cmd *EncodeCmd) (err er) {
	var payload by
	if payload, err = hex.Dec(hex.Trim0x(cmd.Hex)); chk.D(err) {
		return
	}
	var s st
	if cmd.Legacy {
		s, err = bech32encoding.EncodeLegacy(cmd.HRP, payload)
	} else {
		s, err = bech32encoding.Encode(cmd.HRP, payload)
	}
	if chk.D(err) {
		return
	}
	_, err = fmt.Fprintln(w, s)
	return
}

func decode(w io.Writer, cmd *DecodeCmd) (err er) {
	var hrp st
	var payload by
	if hrp, payload, err = bech32encoding.Decode(cmd.Address); chk.D(err) {
		return
	}
	_, err = fmt.Fprintf(w, "%s\t%s\n", hrp, hex.Enc(payload))
	return
}
