package graph

import "strings"

// RootIdentifier is the identifier assigned to the document root.
const RootIdentifier = "root"

// IdentifierFor derives the resource identifier for a traversal path.
// The empty path is the root; each segment (a sanitized object key or a
// decimal array index) is appended with an underscore separator. The
// function is pure: equal paths always yield equal identifiers, and
// distinct paths yield distinct identifiers.
func IdentifierFor(path []string) string {
	if len(path) == 0 {
		return RootIdentifier
	}
	parts := make([]string, 0, len(path)+1)
	parts = append(parts, RootIdentifier)
	for _, seg := range path {
		parts = append(parts, Sanitize(seg))
	}
	return strings.Join(parts, "_")
}

// Sanitize replaces every byte outside [A-Za-z0-9_-] with an
// underscore, making any JSON key safe for use in an identifier or IRI.
// Total and deterministic.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z',
			c >= 'A' && c <= 'Z',
			c >= '0' && c <= '9',
			c == '_', c == '-':
			b.WriteByte(c)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// Minter composes absolute IRIs under a base URI.
type Minter struct {
	Base string
}

// ResourceIRI returns the IRI for a resource identifier.
func (m Minter) ResourceIRI(id string) string { return m.Base + id }

// PredicateIRI returns the IRI for a property derived from a JSON key.
func (m Minter) PredicateIRI(key string) string { return m.Base + Sanitize(key) }
