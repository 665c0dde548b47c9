package mux

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// compiled holds path patterns by source. Versioned APIs register the same
// template once per version, so most lookups hit.
var compiled sync.Map

func compileRegexp(pattern string) (*regexp.Regexp, error) {
	if v, ok := compiled.Load(pattern); ok {
		return v.(*regexp.Regexp), nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	actual, _ := compiled.LoadOrStore(pattern, re)
	return actual.(*regexp.Regexp), nil
}

// routeRegexp stores a compiled path template.
type routeRegexp struct {
	// template is the original template string.
	template string
	// regexp is the compiled regular expression.
	regexp *regexp.Regexp
	// varsN are the variable names in order.
	varsN []string
	// wildcard indicates a prefix match (no $ anchor).
	wildcard bool
}

// newRouteRegexp parses a path template such as "/users/{id:int}" and
// compiles it. With prefix set, the template matches any path it prefixes.
func newRouteRegexp(tpl string, prefix bool) (*routeRegexp, error) {
	idxs, err := braceIndices(tpl)
	if err != nil {
		return nil, err
	}

	var (
		pattern bytes.Buffer
		varsN   []string
		end     int
	)

	pattern.WriteByte('^')

	for i := 0; i < len(idxs); i += 2 {
		raw := tpl[end:idxs[i]]
		end = idxs[i+1]

		parts := strings.SplitN(tpl[idxs[i]+1:end-1], ":", 2)
		name := parts[0]
		if name == "" {
			return nil, fmt.Errorf("mux: missing name in %q from %q", tpl[idxs[i]:end], tpl)
		}

		patt := "[^/]+"
		if len(parts) == 2 {
			patt = expandMacro(parts[1])
		}
		if _, err := compileRegexp(patt); err != nil {
			return nil, fmt.Errorf("mux: invalid pattern %q in variable %q: %w", patt, name, err)
		}

		fmt.Fprintf(&pattern, "%s(%s)", regexp.QuoteMeta(raw), patt)
		varsN = append(varsN, name)
	}

	pattern.WriteString(regexp.QuoteMeta(tpl[end:]))
	if !prefix {
		pattern.WriteByte('$')
	}

	if err := checkDuplicateVars(varsN); err != nil {
		return nil, err
	}

	reg, err := compileRegexp(pattern.String())
	if err != nil {
		return nil, err
	}

	return &routeRegexp{
		template: tpl,
		regexp:   reg,
		varsN:    varsN,
		wildcard: prefix,
	}, nil
}

// Match reports whether path matches the template.
func (r *routeRegexp) Match(path string) bool {
	return r.regexp.MatchString(path)
}

// setVars extracts variables from input and writes them into dst.
// Returns true if the input matched the regexp.
func (r *routeRegexp) setVars(input string, dst map[string]string) bool {
	matches := r.regexp.FindStringSubmatch(input)
	if matches == nil {
		return false
	}
	for i, name := range r.varsN {
		if i+1 < len(matches) {
			dst[name] = matches[i+1]
		}
	}
	return true
}

// braceIndices returns the start and end+1 indices of each top-level
// {...} pair in s. Returns an error if braces are unbalanced.
func braceIndices(s string) ([]int, error) {
	var (
		idxs  []int
		level int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			if level++; level == 1 {
				idxs = append(idxs, i)
			}
		case '}':
			if level--; level == 0 {
				idxs = append(idxs, i+1)
			} else if level < 0 {
				return nil, fmt.Errorf("mux: unbalanced braces in %q", s)
			}
		}
	}
	if level != 0 {
		return nil, fmt.Errorf("mux: unbalanced braces in %q", s)
	}
	return idxs, nil
}

// checkDuplicateVars returns an error if any variable name is repeated.
func checkDuplicateVars(vars []string) error {
	seen := make(map[string]bool, len(vars))
	for _, v := range vars {
		if seen[v] {
			return fmt.Errorf("mux: duplicated route variable %q", v)
		}
		seen[v] = true
	}
	return nil
}
