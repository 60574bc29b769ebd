// Package xsd provides IRI constants for the XML Schema datatypes used
// when typing RDF literals.
package xsd

// Namespace is the XML Schema datatype namespace.
const Namespace = "http://www.w3.org/2001/XMLSchema#"

// Datatype IRIs attached to literals by the type classifier.
const (
	// String is the default datatype for string values.
	String = Namespace + "string"

	// Integer types whole numbers within the 64-bit signed range.
	Integer = Namespace + "integer"

	// Double types numbers with a fractional part or outside the safe
	// integer range.
	Double = Namespace + "double"

	// Boolean types true/false values.
	Boolean = Namespace + "boolean"

	// DateTime types strings matching the ISO-8601 date/time heuristic.
	DateTime = Namespace + "dateTime"
)

// Local returns the local part of a datatype IRI in this namespace,
// e.g. "integer" for xsd.Integer. Returns the IRI unchanged when it is
// not in the XSD namespace.
func Local(iri string) string {
	if len(iri) > len(Namespace) && iri[:len(Namespace)] == Namespace {
		return iri[len(Namespace):]
	}
	return iri
}
