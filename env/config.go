// Package env reads .env files into an env.Source for go-simpler.org/env, so a
// profile directory can carry the configuration that the process environment
// does not set.
package env

import (
	"os"
	"strings"
)

// Env is a key/value map used to represent environment variables.
type Env map[st]st

// GetEnv reads a file of KEY=value lines in the format printed by the env
// command: blank lines and # comments are skipped, an export prefix is
// allowed, and values may be single or double quoted.
func GetEnv(path st) (env Env, err er) {
	var s by
	if s, err = os.ReadFile(path); chk.T(err) {
		return
	}
	return Parse(s), nil
}

// Parse reads KEY=value lines. Lines without an = are ignored.
func Parse(b by) (env Env) {
	env = make(Env)
	for _, line := range strings.Split(st(b), "\n") {
		line = strings.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		split := strings.SplitN(line, "=", 2)
		if len(split) != 2 {
			log.D.F("skipping env line without '=': %s", line)
			continue
		}
		env[strings.TrimSpace(split[0])] = unquote(strings.TrimSpace(split[1]))
	}
	return
}

func unquote(v st) st {
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		return v[1 : len(v)-1]
	}
	return v
}

// LookupEnv returns the raw string value associated with a provided key name,
// used as a custom environment variable loader for go-simpler.org/env to enable
// .env file loading.
func (env Env) LookupEnv(key st) (value st, ok bo) {
	value, ok = env[key]
	return
}
