package web

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
)

type param struct {
	name  string
	index int
}

// route is a compiled Entry path. pattern is the ServeMux form of the path
// without a method, shape identifies patterns that match the same set of
// paths regardless of parameter names.
type route struct {
	pattern string
	shape   string
	params  []param
}

func compilePattern(path string) (route, error) {
	if !strings.HasPrefix(path, "/") {
		return route{}, fmt.Errorf("%w: %q must begin with /", ErrInvalidPattern, path)
	}

	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}

	if path == "/" {
		return route{pattern: "/{$}", shape: "/{$}"}, nil
	}

	var pattern, shape strings.Builder
	var params []param
	var names []string

	for i, seg := range strings.Split(path[1:], "/") {
		if seg == "" {
			return route{}, fmt.Errorf("%w: %q contains an empty segment", ErrInvalidPattern, path)
		}
		if strings.ContainsAny(seg, "{}") {
			return route{}, fmt.Errorf("%w: %q contains a brace", ErrInvalidPattern, path)
		}
		if seg == "." || seg == ".." {
			return route{}, fmt.Errorf("%w: %q contains a dot segment", ErrInvalidPattern, path)
		}
		if strings.ContainsFunc(seg, unicode.IsSpace) {
			return route{}, fmt.Errorf("%w: %q contains whitespace", ErrInvalidPattern, path)
		}

		pattern.WriteByte('/')
		shape.WriteByte('/')

		name, ok := strings.CutPrefix(seg, ":")
		if !ok {
			pattern.WriteString(seg)
			shape.WriteString(seg)
			continue
		}

		if !isIdentifier(name) {
			return route{}, fmt.Errorf("%w: %q has invalid parameter name %q", ErrInvalidPattern, path, name)
		}
		if slices.Contains(names, name) {
			return route{}, fmt.Errorf("%w: %q repeats parameter %q", ErrInvalidPattern, path, name)
		}

		names = append(names, name)
		params = append(params, param{name: name, index: i})
		pattern.WriteString("{" + name + "}")
		shape.WriteString("{}")
	}

	return route{
		pattern: pattern.String(),
		shape:   shape.String(),
		params:  params,
	}, nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
