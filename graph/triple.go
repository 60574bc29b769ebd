// Package graph implements the JSON-to-RDF mapping engine: it walks an
// arbitrary JSON value tree and produces an ordered set of triples with
// stable, path-derived resource identifiers.
package graph

// Literal is a typed scalar occupying the object position of a triple.
type Literal struct {
	// Lexical is the literal's textual form, e.g. "42" or "John Doe".
	Lexical string

	// Datatype is the XSD datatype IRI, e.g. xsd.Integer.
	Datatype string
}

// Object is the object position of a triple: either a reference to
// another resource or a typed literal.
type Object struct {
	// Resource is the referenced resource IRI. Empty for literals.
	Resource string

	// Literal holds the value when Resource is empty.
	Literal Literal
}

// IsResource reports whether the object references a resource.
func (o Object) IsResource() bool { return o.Resource != "" }

// ResourceObject returns an Object referencing the given IRI.
func ResourceObject(iri string) Object { return Object{Resource: iri} }

// LiteralObject returns an Object holding the given literal.
func LiteralObject(lit Literal) Object { return Object{Literal: lit} }

// Triple is one (subject, predicate, object) statement.
type Triple struct {
	Subject   string // absolute resource IRI
	Predicate string // absolute predicate IRI
	Object    Object
}

// TripleSet is the ordered sequence of triples produced by one build.
// Order is append order during the pre-order traversal; it matters only
// for reproducible textual output, not for RDF semantics.
type TripleSet struct {
	triples  []Triple
	subjects map[string]struct{}
}

// NewTripleSet returns an empty triple set.
func NewTripleSet() *TripleSet {
	return &TripleSet{subjects: make(map[string]struct{})}
}

// Add appends a triple.
func (ts *TripleSet) Add(t Triple) {
	ts.triples = append(ts.triples, t)
	ts.subjects[t.Subject] = struct{}{}
}

// Triples returns the triples in append order. The returned slice is
// shared; callers must not modify it.
func (ts *TripleSet) Triples() []Triple { return ts.triples }

// Len returns the number of triples.
func (ts *TripleSet) Len() int { return len(ts.triples) }

// ResourceCount returns the number of distinct subjects.
func (ts *TripleSet) ResourceCount() int { return len(ts.subjects) }
