// Package filetype decides which file names count as images. The decision is
// advisory: callers use it to filter pickers and watch events, never to
// refuse a file the user picked explicitly.
package filetype

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// Matcher matches base file names against a set of glob patterns.
type Matcher struct {
	patterns []string
	globs    []glob.Glob
}

// NewMatcher compiles patterns such as "*.{png,jpg}". Matching is case
// insensitive.
func NewMatcher(patterns []string) (*Matcher, error) {
	m := &Matcher{patterns: patterns}
	for _, p := range patterns {
		g, err := glob.Compile(strings.ToLower(p))
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", p, err)
		}
		m.globs = append(m.globs, g)
	}
	return m, nil
}

// Match reports whether the base name of path matches any pattern. A
// matcher without patterns accepts everything.
func (m *Matcher) Match(path string) bool {
	if len(m.globs) == 0 {
		return true
	}
	name := strings.ToLower(filepath.Base(path))
	for _, g := range m.globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// Patterns returns the source patterns.
func (m *Matcher) Patterns() []string {
	return append([]string(nil), m.patterns...)
}

// Extensions lists the literal extensions named by "*.ext" and "*.{a,b}"
// patterns, with leading dots, for pickers that filter by extension.
// Patterns of any other shape are skipped.
func (m *Matcher) Extensions() []string {
	seen := map[string]bool{}
	for _, p := range m.patterns {
		rest, ok := strings.CutPrefix(strings.ToLower(p), "*.")
		if !ok {
			continue
		}
		var exts []string
		if strings.HasPrefix(rest, "{") && strings.HasSuffix(rest, "}") {
			exts = strings.Split(rest[1:len(rest)-1], ",")
		} else {
			exts = []string{rest}
		}
		for _, e := range exts {
			e = strings.TrimSpace(e)
			if e == "" || strings.ContainsAny(e, "*?[]{}") {
				continue
			}
			seen["."+e] = true
		}
	}
	out := make([]string, 0, len(seen))
	for e := range seen {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}
