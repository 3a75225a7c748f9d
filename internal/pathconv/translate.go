package pathconv

import (
	"os"
	"strings"
)

// OptionsTerminator ends option parsing in git; everything after it is a
// path or revision.
const OptionsTerminator = "--"

// State is threaded through the translation of one invocation. It is a
// value: Translate returns the state to use for the next argument.
type State struct {
	// TerminatorSeen is set once "--" has been seen and never cleared.
	TerminatorSeen bool
}

// StatFunc reports whether a path exists. os.Stat satisfies it.
type StatFunc func(name string) (os.FileInfo, error)

// Translator rewrites caller paths into WSL paths.
type Translator struct {
	// Stat is used to confirm relative-path candidates. Defaults to os.Stat.
	Stat StatFunc
}

// NewTranslator returns a Translator that checks relative paths against the
// local filesystem, relative to the process working directory.
func NewTranslator() *Translator {
	return &Translator{Stat: os.Stat}
}

// WSLPathExpr returns the shell expression that converts path on the WSL side.
// path never contains a single quote, the classifier excludes it.
func WSLPathExpr(path string) string {
	return "$(wslpath '" + path + "')"
}

// Translate rewrites a single argument. Arguments are expected in order; the
// returned State must be passed to the next call.
func (t *Translator) Translate(st State, arg string) (State, string) {
	if arg == OptionsTerminator {
		st.TerminatorSeen = true
		return st, arg
	}

	// --name=value: only the value can be a path.
	if strings.HasPrefix(arg, "--") {
		if i := strings.IndexByte(arg, '='); i >= 0 {
			return st, arg[:i+1] + t.translateSpan(arg[i+1:], st.TerminatorSeen)
		}
	}

	return st, t.translateSpan(arg, st.TerminatorSeen)
}

// TranslateAll translates args left to right, starting from a fresh State.
func (t *Translator) TranslateAll(args []string) []string {
	out := make([]string, len(args))
	var st State
	for i, arg := range args {
		st, out[i] = t.Translate(st, arg)
	}
	return out
}

// TranslateDir translates a working directory. A directory is never "--" and
// never a long option, so only the path rules apply.
func (t *Translator) TranslateDir(dir string) string {
	return t.translateSpan(dir, false)
}

func (t *Translator) translateSpan(s string, terminatorSeen bool) string {
	switch TransportScheme(s) {
	case "":
	case FileScheme:
		return FileScheme + t.translateFileURLPath(s[len(FileScheme):])
	default:
		// Network remotes are passed through untouched.
		return s
	}

	if out, ok := rewriteAbsolute(s); ok {
		return out
	}
	return t.rewriteRelative(s, terminatorSeen)
}

// translateFileURLPath handles the part after file://. A relative body is
// always treated as a path, there is nothing else it could be.
func (t *Translator) translateFileURLPath(s string) string {
	b := []byte(s)
	if tok, ok := MatchAbsolutePrefix(b); ok {
		return WSLPathExpr(s[tok.Start:tok.End]) + s[tok.End:]
	}
	return t.rewriteRelative(s, true)
}

func rewriteAbsolute(s string) (string, bool) {
	tokens := FindAbsolute([]byte(s))
	if len(tokens) == 0 {
		return s, false
	}

	var b strings.Builder
	last := 0
	for _, tok := range tokens {
		b.WriteString(s[last:tok.Start])
		b.WriteString(WSLPathExpr(s[tok.Start:tok.End]))
		last = tok.End
	}
	b.WriteString(s[last:])
	return b.String(), true
}

func (t *Translator) rewriteRelative(s string, force bool) string {
	tok, ok := MatchRelative([]byte(s))
	if !ok {
		return s
	}

	path := s[tok.Start:tok.End]
	// A backslash is just as likely to be a regex escape (^remote\..*), so
	// only rewrite what is known to be a path.
	if !force && !t.exists(path) {
		return s
	}

	return s[:tok.Start] + strings.ReplaceAll(path, `\`, "/") + s[tok.End:]
}

func (t *Translator) exists(path string) bool {
	stat := t.Stat
	if stat == nil {
		stat = os.Stat
	}
	_, err := stat(path)
	return err == nil
}
