// Package distro picks the WSL distribution a git invocation runs in.
package distro

import "regexp"

// Target is the distribution an invocation is sent to. An empty Name means
// the system default distribution.
type Target struct {
	Name string
}

// IsDefault reports whether the system default distribution is used.
func (t Target) IsDefault() bool {
	return t.Name == ""
}

// Args returns the wsl.exe arguments that select the distribution.
func (t Target) Args() []string {
	if t.IsDefault() {
		return nil
	}
	return []string{"-d", t.Name}
}

func (t Target) String() string {
	if t.IsDefault() {
		return "(default)"
	}
	return t.Name
}

// \\wsl$\<name>\... and \\wsl.localhost\<name>\..., either slash, any host case.
var shareRe = regexp.MustCompile(`^(?i)[\\/]{2}(?:wsl\$|wsl\.localhost)[\\/]([^\\/]+)(?:[\\/]|$)`)

// Resolve returns the distribution that owns dir when dir lives on a WSL
// network share, otherwise defaultDist.
func Resolve(dir, defaultDist string) Target {
	if m := shareRe.FindStringSubmatch(dir); m != nil {
		return Target{Name: m[1]}
	}
	return Target{Name: defaultDist}
}
