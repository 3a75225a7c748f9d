// Package output translates WSL paths in captured git output back into
// Windows paths.
package output

import (
	"context"
	"fmt"
	"regexp"

	"github.com/rileyhilliard/wslgit/internal/errors"
	"github.com/rileyhilliard/wslgit/internal/gitcmd"
	"github.com/rileyhilliard/wslgit/internal/logger"
	"github.com/rileyhilliard/wslgit/internal/util"
)

// Converter turns WSL paths into Windows paths. All paths of one output are
// passed in a single call; the result must have the same length and order.
type Converter interface {
	Convert(ctx context.Context, paths []string) ([]string, error)
}

// Match is a WSL path found in git output. Start:End covers the path and
// the annotation, the part that is replaced.
type Match struct {
	Start int
	End   int
	Path  string
	// Annotation is a detached " (fetch)" / " (push)" suffix, reattached verbatim.
	Annotation string
}

var (
	// A path starts a line or follows whitespace, begins with '/', and runs to
	// the end of the line unless it hits < > : | ? ' *.
	outputPathRe = regexp.MustCompile(`(?m)(?:^|[[:space:]])(/[^<>:|?'*\n]*)`)

	// "git remote -v" appends the direction after the URL.
	remoteAnnotationRe = regexp.MustCompile(`[[:space:]]+\((?:fetch|push)\)$`)
)

// FindPaths returns every WSL path in out, left to right.
func FindPaths(out []byte) []Match {
	locs := outputPathRe.FindAllSubmatchIndex(out, -1)
	if len(locs) == 0 {
		return nil
	}

	matches := make([]Match, 0, len(locs))
	for _, loc := range locs {
		start, end := loc[2], loc[3]
		path := out[start:end]
		m := Match{Start: start, End: end, Path: string(path)}
		if a := remoteAnnotationRe.FindIndex(path); a != nil {
			m.Path = string(path[:a[0]])
			m.Annotation = string(path[a[0]:])
		}
		matches = append(matches, m)
	}
	return matches
}

// Rewriter rewrites the output of path-revealing git subcommands.
type Rewriter struct {
	conv Converter
	log  logger.Logger
}

// NewRewriter creates a Rewriter. A nil logger discards messages.
func NewRewriter(conv Converter, log logger.Logger) *Rewriter {
	if log == nil {
		log = logger.Noop()
	}
	return &Rewriter{conv: conv, log: log}
}

// Rewrite returns out with WSL paths replaced by Windows paths when
// subcommand can print paths. Output of other subcommands, and output
// without any path, is returned as is.
func (r *Rewriter) Rewrite(ctx context.Context, subcommand string, out []byte) ([]byte, error) {
	if !gitcmd.RevealsPaths(subcommand) {
		return out, nil
	}

	matches := FindPaths(out)
	if len(matches) == 0 {
		return out, nil
	}

	paths := make([]string, len(matches))
	for i, m := range matches {
		paths[i] = m.Path
	}

	r.log.Debug("converting %d %s from %s output", len(paths), util.Pluralize(len(paths), "path", "paths"), subcommand)
	converted, err := r.conv.Convert(ctx, paths)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConvert,
			"Couldn't convert paths in git "+subcommand+" output",
			"Make sure wslpath works in your distribution, or set WSLGIT_OUTPUT_CONVERTER=mount.")
	}
	if len(converted) != len(paths) {
		return nil, errors.New(errors.ErrConvert,
			fmt.Sprintf("Path conversion returned %d path(s) for %d input(s)", len(converted), len(paths)),
			"This shouldn't happen - please report this bug!")
	}

	result := make([]byte, 0, len(out))
	last := 0
	for i, m := range matches {
		result = append(result, out[last:m.Start]...)
		result = append(result, converted[i]...)
		result = append(result, m.Annotation...)
		last = m.End
	}
	result = append(result, out[last:]...)
	return result, nil
}
