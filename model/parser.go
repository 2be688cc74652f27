package model

import (
	"fmt"
	"strings"
)

// parseTerm splits a term string such as "AltKTriangles(2.0)" into its name
// and comma-separated, whitespace-trimmed argument list. A bare name with no
// parentheses ("EdgeCount") parses to (name, nil, nil).
func parseTerm(s string) (name string, args []string, err error) {
	s = strings.TrimSpace(s)
	open := strings.IndexByte(s, '(')
	if open < 0 {
		return s, nil, nil
	}
	if !strings.HasSuffix(s, ")") {
		return "", nil, fmt.Errorf("%s: %w", s, ErrMalformedTerm)
	}

	name = strings.TrimSpace(s[:open])
	inner := strings.TrimSpace(s[open+1 : len(s)-1])
	if inner == "" {
		return name, nil, nil
	}

	parts := strings.Split(inner, ",")
	args = make([]string, len(parts))
	for i, p := range parts {
		args[i] = strings.TrimSpace(p)
	}

	return name, args, nil
}
