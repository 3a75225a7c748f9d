// Package envshare manages WSLENV, the list of Windows environment variables
// that wsl.exe forwards into the distribution.
//
// WSLENV is a colon separated list of NAME[/flags] entries. The flags tell
// WSL how to translate the value, e.g. /p converts a path and /u only shares
// the variable from Windows to WSL.
package envshare

import (
	"regexp"
	"strings"
)

// WSLEnv is the name of the variable wsl.exe reads.
const WSLEnv = "WSLENV"

// Var is one WSLENV entry.
type Var struct {
	Name  string
	Flags string
}

// Key returns the entry as written in WSLENV.
func (v Var) Key() string {
	if v.Flags == "" {
		return v.Name
	}
	return v.Name + "/" + v.Flags
}

// Parse splits a colon separated NAME[/flags] list. Empty entries are
// skipped.
func Parse(list string) []Var {
	var vars []Var
	for _, entry := range strings.Split(list, ":") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, flags, _ := strings.Cut(entry, "/")
		if name == "" {
			continue
		}
		vars = append(vars, Var{Name: name, Flags: flags})
	}
	return vars
}

func entryRe(key string) *regexp.Regexp {
	return regexp.MustCompile(`(^|:)` + regexp.QuoteMeta(key) + `(/|:|$)`)
}

// Contains reports whether wslenv has an entry for key, with or without
// flags when key itself carries none.
func Contains(wslenv, key string) bool {
	return entryRe(key).MatchString(wslenv)
}

// Add returns wslenv with v appended, unless an entry with the same key is
// already present. An entry that differs only in flags is not a match, so
// sharing VAR/p next to an existing VAR adds it.
func Add(wslenv string, v Var) string {
	key := v.Key()
	switch {
	case wslenv == "":
		return key
	case Contains(wslenv, key):
		return wslenv
	default:
		return wslenv + ":" + key
	}
}

// AddAll adds vars in order.
func AddAll(wslenv string, vars []Var) string {
	for _, v := range vars {
		wslenv = Add(wslenv, v)
	}
	return wslenv
}

// Environ returns a copy of env (KEY=value pairs) with vars added to its
// WSLENV entry. env is returned unchanged when vars is empty.
func Environ(env []string, vars []Var) []string {
	if len(vars) == 0 {
		return env
	}

	out := make([]string, 0, len(env)+1)
	current := ""
	for _, kv := range env {
		if k, v, ok := strings.Cut(kv, "="); ok && k == WSLEnv {
			current = v
			continue
		}
		out = append(out, kv)
	}
	return append(out, WSLEnv+"="+AddAll(current, vars))
}
