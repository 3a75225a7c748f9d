package shell

import "strings"

const (
	// quoteChars mark an argument the caller already quoted.
	quoteChars = `"'`
	// invalidChars force an argument into double quotes.
	invalidChars = " ()|"
	// interactiveChars are read by the history and redirection layers of
	// an interactive bash.
	interactiveChars = `"<>!`
)

// escapedNewline reinserts a newline inside the single command string.
const escapedNewline = "$'\n'"

// Quote prepares a translated argument for the bash command line.
//
// Arguments containing a quote character are trusted to be quoted already
// and are never wrapped again. Empty arguments and arguments containing a
// space, '(', ')' or '|' are wrapped in double quotes, except option-looking
// arguments without a space in NonInteractive mode: they get a trailing
// space instead, which makes the Windows argument layer quote them on the
// way to wsl.exe.
//
// In Interactive mode '"', '<', '>' and '!' are escaped in every argument.
// Inside the double quotes Quote adds itself, '!' is split out as "'!'"
// since a backslash would stay in the string there.
func Quote(mode Mode, arg string) string {
	var out string
	switch {
	case strings.ContainsAny(arg, quoteChars):
		out = escapeInteractive(mode, arg)
	case arg == "" || strings.ContainsAny(arg, invalidChars):
		if mode == NonInteractive && strings.HasPrefix(arg, "-") && !strings.Contains(arg, " ") {
			out = arg + " "
		} else {
			out = `"` + escapeQuoted(mode, arg) + `"`
		}
	default:
		out = escapeInteractive(mode, arg)
	}
	return strings.ReplaceAll(out, "\n", escapedNewline)
}

// QuoteAll quotes every argument.
func QuoteAll(mode Mode, args []string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		out[i] = Quote(mode, arg)
	}
	return out
}

var quotedEscaper = strings.NewReplacer("!", `"'!'"`)

// escapeInteractive backslash-escapes interactiveChars. Text between single
// quotes is already literal to bash, so it is copied as is; this keeps
// $(wslpath '...') placeholders intact.
func escapeInteractive(mode Mode, arg string) string {
	if mode != Interactive || !strings.ContainsAny(arg, interactiveChars) {
		return arg
	}

	var b strings.Builder
	b.Grow(len(arg) + 4)
	inSingle := false
	for i := 0; i < len(arg); i++ {
		c := arg[i]
		switch {
		case c == '\'':
			inSingle = !inSingle
		case !inSingle && strings.IndexByte(interactiveChars, c) >= 0:
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}

// escapeQuoted escapes inside double quotes, where '<' and '>' are already
// literal but '!' still triggers history expansion.
func escapeQuoted(mode Mode, arg string) string {
	if mode != Interactive {
		return arg
	}
	return quotedEscaper.Replace(arg)
}
