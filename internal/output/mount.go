package output

import (
	"context"
	"strings"

	"github.com/rileyhilliard/wslgit/internal/pathconv"
)

// MountConverter maps drive mounts (<root><drive>) to <drive>:/ without
// calling into the distribution. A mount is recognised at the start of the
// string or after whitespace, and must be followed by '/', whitespace or the
// end of the string. Everything else is returned unchanged.
type MountConverter struct {
	Root string
}

// Convert implements Converter. It never fails.
func (c MountConverter) Convert(_ context.Context, paths []string) ([]string, error) {
	root := pathconv.NormalizeMountRoot(c.Root)
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = mapDrives(root, p)
	}
	return out, nil
}

func mapDrives(root, s string) string {
	if !strings.Contains(s, root) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if i == 0 || isSpace(s[i-1]) {
			if drive, n, ok := matchDrive(root, s[i:]); ok {
				b.WriteByte(drive)
				b.WriteString(":/")
				i += n
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// matchDrive matches <root><drive> at the start of s and returns the drive
// letter and the bytes consumed, including a following '/'.
func matchDrive(root, s string) (byte, int, bool) {
	if !strings.HasPrefix(s, root) || len(s) <= len(root) {
		return 0, 0, false
	}
	drive := s[len(root)]
	if !isDriveLetter(drive) {
		return 0, 0, false
	}
	n := len(root) + 1
	switch {
	case n == len(s), isSpace(s[n]):
		return drive, n, true
	case s[n] == '/':
		return drive, n + 1, true
	default:
		// e.g. /mnt/ab is not a drive mount
		return 0, 0, false
	}
}

func isDriveLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
