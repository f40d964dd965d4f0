// Package appdata locates the per user directory an application keeps its
// profile in, following the XDG base directory conventions on unix and the
// platform equivalents elsewhere.
package appdata

import (
	"path/filepath"
	"runtime"
	"strings"
	"unicode"

	"github.com/adrg/xdg"
)

// Dir returns the profile directory for appName. A leading period is
// removed and the name is lowercased, except on windows and macOS where the
// first letter is capitalised. Roaming selects the config home over the data
// home. An empty name gives the current directory.
func Dir(appName st, roaming bo) st {
	return dir(runtime.GOOS, appName, roaming)
}

func dir(goos, appName st, roaming bo) st {
	name := strings.TrimPrefix(appName, ".")
	if name == "" {
		return "."
	}
	r := []rune(name)
	switch goos {
	case "windows", "darwin":
		r[0] = unicode.ToUpper(r[0])
	default:
		r[0] = unicode.ToLower(r[0])
	}
	base := xdg.DataHome
	if roaming {
		base = xdg.ConfigHome
	}
	return filepath.Join(base, st(r))
}
