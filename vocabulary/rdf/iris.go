// Package rdf provides IRI constants from the RDF core vocabulary.
package rdf

// Namespace is the RDF syntax namespace.
const Namespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

// Type asserts class membership for a resource.
const Type = Namespace + "type"

// Value relates a structured value resource to its content.
const Value = Namespace + "value"
