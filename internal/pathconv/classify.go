// Package pathconv rewrites Windows paths in git arguments into a form the
// WSL side understands.
//
// Matching is done on bytes. Absolute and UNC paths are not resolved here;
// they are replaced by a $(wslpath '...') expression so that the distribution
// applies its own mount configuration when the command runs. Relative paths
// only need their separators flipped, which is done in place.
package pathconv

import (
	"regexp"
	"strings"
)

// Kind classifies a path-like token found inside an argument.
type Kind int

const (
	KindNone Kind = iota
	KindAbsoluteWindows
	KindUNC
	KindRelative
	KindTransportURL
)

func (k Kind) String() string {
	switch k {
	case KindAbsoluteWindows:
		return "absolute"
	case KindUNC:
		return "unc"
	case KindRelative:
		return "relative"
	case KindTransportURL:
		return "url"
	default:
		return "none"
	}
}

// Token is a classified byte span of an argument. For absolute and relative
// tokens Start:End covers only the path; the bytes around it are kept verbatim
// by the translator.
type Token struct {
	Kind  Kind
	Start int
	End   int
	// Pre is the anchor in front of an absolute path: "", a whitespace byte,
	// ":", "=" or "file://".
	Pre string
}

// FileScheme is the only transport whose path part is translated.
const FileScheme = "file://"

// transportSchemes are URL prefixes that mark an argument as a remote URL.
var transportSchemes = []string{
	"ssh://",
	"git://",
	"http://",
	"https://",
	"ftp://",
	"ftps://",
	FileScheme,
}

var (
	// An absolute or UNC path:
	// 1. starts the argument, or follows whitespace, ':', '=' or "file://"
	// 2. begins with <drive-letter>:\, <drive-letter>:/ or \\
	// 3. does not contain < > : | ? ' " or newline
	absPathRe = regexp.MustCompile(`(^|[[:space:]]|:|=|file://)(([A-Za-z]:[\\/]|\\\\)[^<>:|?'"\n]*)`)

	// The same path, anchored at the start of the input.
	absPathPrefixRe = regexp.MustCompile(`^([A-Za-z]:[\\/]|\\\\)[^<>:|?'"\n]*`)

	// A relative path whose separators need flipping:
	// 1. optionally preceded by text without '\' that ends in whitespace, ':' or '='
	// 2. a run of valid characters (except '\')
	// 3. followed by one '\'
	// 4. and then any number of valid characters (including '\')
	relPathRe = regexp.MustCompile(`^(?:[^\\]+(?:[[:space:]]|:|=))?([^<>:|?'"\n\\]+\\[^<>:|?'"\n]*)`)
)

// TransportScheme returns the URL scheme prefix s starts with, or "".
func TransportScheme(s string) string {
	for _, scheme := range transportSchemes {
		if strings.HasPrefix(s, scheme) {
			return scheme
		}
	}
	return ""
}

// FindAbsolute returns every absolute or UNC path in b, left to right and
// non-overlapping. Each path is the longest run permitted by the character
// rules, so it may include spaces.
func FindAbsolute(b []byte) []Token {
	matches := absPathRe.FindAllSubmatchIndex(b, -1)
	if len(matches) == 0 {
		return nil
	}
	tokens := make([]Token, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, Token{
			Kind:  absKind(b[m[4]:m[5]]),
			Start: m[4],
			End:   m[5],
			Pre:   string(b[m[2]:m[3]]),
		})
	}
	return tokens
}

// MatchAbsolutePrefix reports the absolute or UNC path b starts with.
func MatchAbsolutePrefix(b []byte) (Token, bool) {
	loc := absPathPrefixRe.FindIndex(b)
	if loc == nil {
		return Token{}, false
	}
	return Token{Kind: absKind(b[loc[0]:loc[1]]), Start: loc[0], End: loc[1]}, true
}

// MatchRelative returns the relative-path candidate in b, if any. Whether the
// candidate is really a path is decided by the caller.
func MatchRelative(b []byte) (Token, bool) {
	m := relPathRe.FindSubmatchIndex(b)
	if m == nil {
		return Token{}, false
	}
	return Token{Kind: KindRelative, Start: m[2], End: m[3]}, true
}

// Classify reports the kind of the first path-like token in s, ignoring the
// filesystem. It is meant for diagnostics; translation uses the finer
// grained functions above.
func Classify(s string) Kind {
	if TransportScheme(s) != "" {
		return KindTransportURL
	}
	b := []byte(s)
	if tokens := FindAbsolute(b); len(tokens) > 0 {
		return tokens[0].Kind
	}
	if _, ok := MatchRelative(b); ok {
		return KindRelative
	}
	return KindNone
}

func absKind(path []byte) Kind {
	if len(path) >= 2 && path[0] == '\\' && path[1] == '\\' {
		return KindUNC
	}
	return KindAbsoluteWindows
}
