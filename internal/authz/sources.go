package authz

import "strings"

// Lookup reads a named value from one request location.
type Lookup func(key string) (string, bool)

// Source is a named request location searched for an identifier.
type Source struct {
	Name   string
	Lookup Lookup
}

// Request exposes the request locations a gate may read identifiers from.
// A nil Lookup means the location is unavailable.
type Request struct {
	Path  Lookup
	Body  Lookup
	Query Lookup
}

// ChurchIDSources returns path, body and query, in that order.
func (r Request) ChurchIDSources() []Source {
	return compact(Source{"path", r.Path}, Source{"body", r.Body}, Source{"query", r.Query})
}

// OwnerSources returns path then body.
func (r Request) OwnerSources() []Source {
	return compact(Source{"path", r.Path}, Source{"body", r.Body})
}

func compact(sources ...Source) []Source {
	out := sources[:0]
	for _, s := range sources {
		if s.Lookup != nil {
			out = append(out, s)
		}
	}
	return out
}

// Resolve returns the first non-blank value for key across sources, and the
// name of the source it came from. "0" is a valid identifier; blank is not.
func Resolve(key string, sources []Source) (value, from string, ok bool) {
	for _, s := range sources {
		v, found := s.Lookup(key)
		if !found {
			continue
		}
		if strings.TrimSpace(v) == "" {
			continue
		}
		return v, s.Name, true
	}
	return "", "", false
}

// MapLookup adapts a string map.
func MapLookup(m map[string]string) Lookup {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func sourceNames(sources []Source) []string {
	names := make([]string, len(sources))
	for i, s := range sources {
		names[i] = s.Name
	}
	return names
}
