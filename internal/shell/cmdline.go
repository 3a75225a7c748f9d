package shell

import "strings"

// BuildCommandLine joins an already translated working directory, the
// executable and already quoted arguments into the string handed to bash:
//
//	cd "<dir>" && <executable> <args...>
//
// The cd preamble is left out when dir is empty. Nothing is escaped here.
func BuildCommandLine(dir, executable string, args []string) string {
	parts := make([]string, 0, len(args)+4)
	if dir != "" {
		parts = append(parts, "cd", `"`+dir+`"`, "&&")
	}
	parts = append(parts, executable)
	parts = append(parts, args...)
	return strings.Join(parts, " ")
}
