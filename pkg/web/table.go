package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"
)

// DuplicatePolicy decides how a Table treats two entries with the same
// pattern shape bound to different views. Identical duplicates are always
// collapsed with a warning.
type DuplicatePolicy string

const (
	DuplicatesReject   DuplicatePolicy = "reject"
	DuplicatesLastWins DuplicatePolicy = "last_wins"
)

// Validate checks if the policy is a known duplicate policy.
func (p DuplicatePolicy) Validate() error {
	switch p {
	case DuplicatesReject, DuplicatesLastWins:
		return nil
	default:
		return fmt.Errorf("invalid duplicate policy: %s (must be reject or last_wins)", p)
	}
}

// MatchHandler renders the view selected by a route match.
type MatchHandler func(w http.ResponseWriter, r *http.Request, m Match)

// Table is an immutable, ordered set of route entries. Pattern selection is
// delegated to http.ServeMux, so the most specific pattern wins and literal
// segments take precedence over parameter segments.
type Table struct {
	entries []Entry
	routes  []route
	index   map[string]int
	mux     *http.ServeMux
}

// NewTable compiles and registers entries in order. Entries are validated up
// front so a malformed table fails at startup rather than on first request.
func NewTable(entries []Entry, policy DuplicatePolicy, logger *slog.Logger) (*Table, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	t := &Table{
		entries: make([]Entry, 0, len(entries)),
		routes:  make([]route, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
		mux:     http.NewServeMux(),
	}

	shapes := make(map[string]int, len(entries))

	for _, e := range entries {
		if err := e.View.validate(); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidView, e.Path, err)
		}

		rt, err := compilePattern(e.Path)
		if err != nil {
			return nil, err
		}

		i, seen := shapes[rt.shape]
		if !seen {
			shapes[rt.shape] = len(t.entries)
			t.entries = append(t.entries, e)
			t.routes = append(t.routes, rt)
			continue
		}

		prev := t.entries[i]
		if prev.View == e.View {
			logger.Warn("duplicate route collapsed", "path", e.Path, "view", e.View.Name)
			t.entries[i] = e
			t.routes[i] = rt
			continue
		}

		if policy == DuplicatesReject {
			return nil, fmt.Errorf(
				"%w: %s bound to %s and %s",
				ErrConflictingRoute, e.Path, prev.View.Name, e.View.Name,
			)
		}

		logger.Warn(
			"route overridden",
			"path", e.Path,
			"previous", prev.View.Name,
			"view", e.View.Name,
		)
		t.entries[i] = e
		t.routes[i] = rt
	}

	for i, rt := range t.routes {
		pattern := http.MethodGet + " " + rt.pattern
		if err := register(t.mux, pattern, http.NotFoundHandler()); err != nil {
			return nil, err
		}
		t.index[pattern] = i
	}

	return t, nil
}

// Len returns the number of distinct routes in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the table's entries in registration order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Patterns returns the ServeMux pattern of each entry, aligned with Entries.
func (t *Table) Patterns() []string {
	out := make([]string, len(t.routes))
	for i, rt := range t.routes {
		out[i] = http.MethodGet + " " + rt.pattern
	}
	return out
}

// Resolve selects the entry bound to the best-matching pattern for the given
// path. A query string is ignored and the path is cleaned before matching.
// Matching runs on the escaped path and each parameter is unescaped on its
// own, the same way a request is routed, so "/detail/a%2Fb" binds id "a/b".
func (t *Table) Resolve(raw string) (Match, error) {
	u, err := url.Parse(raw)
	if err != nil || !strings.HasPrefix(u.Path, "/") {
		return Match{}, fmt.Errorf("%w: %q", ErrInvalidPath, raw)
	}

	escaped := path.Clean(u.EscapedPath())
	decoded, err := url.PathUnescape(escaped)
	if err != nil {
		return Match{}, fmt.Errorf("%w: %q", ErrInvalidPath, raw)
	}

	req := &http.Request{
		Method: http.MethodGet,
		URL:    &url.URL{Path: decoded, RawPath: escaped},
		Header: make(http.Header),
	}

	_, pattern := t.mux.Handler(req)
	i, ok := t.index[pattern]
	if !ok {
		return Match{}, fmt.Errorf("%w: %s", ErrNoMatch, escaped)
	}

	rt := t.routes[i]
	segments := strings.Split(strings.TrimPrefix(escaped, "/"), "/")
	params := make(map[string]string, len(rt.params))
	for _, p := range rt.params {
		if p.index >= len(segments) {
			continue
		}
		v, err := url.PathUnescape(segments[p.index])
		if err != nil {
			return Match{}, fmt.Errorf("%w: %q", ErrInvalidPath, raw)
		}
		params[p.name] = v
	}

	return Match{
		Entry:   t.entries[i],
		Pattern: pattern,
		Params:  params,
	}, nil
}

// Mount registers a GET handler on r for every entry in the table.
func (t *Table) Mount(r *Router, h MatchHandler) error {
	for i, rt := range t.routes {
		entry := t.entries[i]
		pattern := http.MethodGet + " " + rt.pattern

		handler := func(w http.ResponseWriter, req *http.Request) {
			params := make(map[string]string, len(rt.params))
			for _, p := range rt.params {
				params[p.name] = req.PathValue(p.name)
			}
			h(w, req, Match{Entry: entry, Pattern: pattern, Params: params})
		}

		if err := register(r.mux, pattern, http.HandlerFunc(handler)); err != nil {
			return err
		}
	}
	return nil
}

// register converts ServeMux registration panics into errors.
func register(mux *http.ServeMux, pattern string, h http.Handler) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrConflictingRoute, rec)
		}
	}()
	mux.Handle(pattern, h)
	return nil
}
