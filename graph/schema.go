package graph

// SchemaPolicy decides which class-membership triple, if any, is
// asserted for an object-shaped resource. Implementations plug into the
// builder without touching its traversal logic; richer mappings (for
// example keying specific vocabulary classes off identifier patterns)
// implement this interface.
type SchemaPolicy interface {
	// ClassFor returns the class IRI asserted for the resource with the
	// given identifier. ok=false suppresses the type triple.
	ClassFor(identifier string) (classIRI string, ok bool)
}

// ThingPolicy asserts a generic Thing class for every object-shaped
// resource, mirroring schema.org's universal base type.
type ThingPolicy struct {
	// SchemaURI is the vocabulary prefix, e.g. "http://schema.org/".
	SchemaURI string
}

// ClassFor returns <SchemaURI>Thing for every resource.
func (p ThingPolicy) ClassFor(string) (string, bool) {
	return p.SchemaURI + "Thing", true
}
