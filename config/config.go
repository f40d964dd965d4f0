// Package config loads the chiasql configuration from the environment and an
// optional .env file in the profile directory.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"go-simpler.org/env"

	"chiasql.lol"
	"chiasql.lol/appdata"
	"chiasql.lol/config/keyvalue"
	dotenv "chiasql.lol/env"
)

// C is the configuration for chiasql.
type C struct {
	AppName  st `env:"APP_NAME" default:"chiasql"`
	Profile  st `env:"PROFILE" usage:"directory holding the .env file (default is based on APP_NAME and the OS config location)"`
	LogLevel st `env:"LOG_LEVEL" default:"info" usage:"debug level: fatal error warn info debug trace"`
	DB       st `env:"DB" default:":memory:" usage:"SQLite database the query command opens"`
	Threads  no `env:"THREADS" default:"0" usage:"number of batch workers, 0 uses every CPU"`
	Pprof    bo `env:"PPROF" default:"false" usage:"enable pprof on 127.0.0.1:6060"`
	MemLimit no `env:"MEM_LIMIT" default:"250000000" usage:"set memory limit, default is 250Mb, 0 for none"`
}

// New loads the configuration. Variables set in the process environment take
// precedence over the profile .env file.
func New() (cfg *C, err er) {
	return load(os.Environ())
}

func load(environ []st) (cfg *C, err er) {
	proc := make(dotenv.Env)
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			proc[k] = v
		}
	}
	cfg = &C{}
	if err = env.Load(cfg, &env.Options{Source: proc}); chk.E(err) {
		return
	}
	if cfg.Profile == "" {
		cfg.Profile = appdata.Dir(cfg.AppName, true)
	}
	envPath := filepath.Join(cfg.Profile, ".env")
	if _, err = os.Stat(envPath); err != nil {
		// no .env is fine.
		err = nil
		return cfg, cfg.check()
	}
	var e dotenv.Env
	if e, err = dotenv.GetEnv(envPath); chk.E(err) {
		return
	}
	log.D.F("loading configuration from %s", envPath)
	for k, v := range proc {
		e[k] = v
	}
	if err = env.Load(cfg, &env.Options{Source: e}); chk.E(err) {
		return
	}
	return cfg, cfg.check()
}

func (cfg *C) check() (err er) {
	if cfg.Threads < 0 {
		return errorf.E("THREADS must not be negative, got %d", cfg.Threads)
	}
	if cfg.Threads == 0 {
		cfg.Threads = runtime.NumCPU()
	}
	return
}

// HelpRequested returns true if any of the common types of help invocation are
// found as the first command line parameter/flag.
func HelpRequested() (help bo) {
	if len(os.Args) > 1 {
		switch strings.ToLower(os.Args[1]) {
		case "help", "-h", "--h", "-help", "--help", "?":
			help = true
		}
	}
	return
}

// EnvRequested returns true if the first parameter is env.
func EnvRequested() bo { return len(os.Args) > 1 && strings.ToLower(os.Args[1]) == "env" }

// VersionRequested returns true if the first parameter is version.
func VersionRequested() bo {
	return len(os.Args) > 1 && strings.ToLower(os.Args[1]) == "version"
}

// PrintVersion writes the version string.
func PrintVersion(printer io.Writer) { _, _ = fmt.Fprintln(printer, chiasql.Version) }

// PrintEnv writes the configuration as a shell script.
func PrintEnv(cfg *C, printer io.Writer) { keyvalue.PrintEnv(cfg, printer) }

// PrintHelp outputs a help text listing the configuration options and default
// values to a provided io.Writer (usually os.Stderr or os.Stdout).
func PrintHelp(cfg *C, printer io.Writer) {
	_, _ = fmt.Fprintf(printer,
		"%s %s\n\nEnvironment variables that configure %s:\n\n",
		cfg.AppName, chiasql.Version, cfg.AppName)
	env.Usage(cfg, printer, nil)
	_, _ = fmt.Fprintf(printer, `
commands:

  - print this help message

      %[1]s help

  - print version info

      %[1]s version

  - print environment variables as a shell script that can be edited to set the configuration

      %[1]s env

  - bech32m codec and SQL functions, see '%[1]s --help' after a subcommand

      %[1]s encode|decode|query|batch

a .env file in the PROFILE directory is loaded if present, the environment
overrides it. create one with

      %[1]s env >%[2]s/.env

`, os.Args[0], cfg.Profile)
}
