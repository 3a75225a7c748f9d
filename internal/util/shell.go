// Package util provides small helpers shared by the wslgit packages.
package util

import "strings"

// ShellQuote wraps s in single quotes so bash treats it literally, escaping
// any single quote inside as '\''.
func ShellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// ShellJoin quotes each word with ShellQuote and joins them with spaces.
func ShellJoin(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = ShellQuote(w)
	}
	return strings.Join(quoted, " ")
}
