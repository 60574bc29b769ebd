package export

import (
	"fmt"
	"sort"

	"github.com/c360studio/jsonrdf/graph"
	"github.com/c360studio/jsonrdf/vocabulary/rdf"
	"github.com/c360studio/jsonrdf/vocabulary/xsd"
)

// Options configures serialization. It affects only presentation; the
// triple content is fixed by the build.
type Options struct {
	// BaseURI is the prefix under which resources were minted.
	BaseURI string

	// SchemaURI is the prefix of emitted class terms.
	SchemaURI string

	// PrettyPrint enables human-oriented formatting.
	PrettyPrint bool
}

// Serializer renders a triple set as text. The caller guarantees every
// triple carries well-formed subject/predicate IRIs and a literal or
// resource object; serializers do not re-validate.
type Serializer interface {
	Serialize(ts *graph.TripleSet) (string, error)
}

// New returns the serializer for a format.
func New(format Format, opts Options) (Serializer, error) {
	switch format {
	case FormatTurtle:
		return &turtleSerializer{opts: opts}, nil
	case FormatNTriples:
		return &ntriplesSerializer{}, nil
	case FormatJSONLD:
		return &jsonldSerializer{opts: opts}, nil
	case FormatRDFXML:
		return &rdfxmlSerializer{opts: opts}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// prefixes returns the namespace prefixes declared in prefix-capable
// formats, keyed by prefix label.
func (o Options) prefixes() map[string]string {
	return map[string]string{
		"":       o.BaseURI,
		"rdf":    rdf.Namespace,
		"xsd":    xsd.Namespace,
		"schema": o.SchemaURI,
	}
}

// sortedPrefixKeys returns prefix labels in a stable order.
func sortedPrefixKeys(prefixes map[string]string) []string {
	keys := make([]string, 0, len(prefixes))
	for k := range prefixes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// groupBySubject partitions triples by subject, preserving the
// first-appearance order of subjects and the append order of each
// subject's triples. Serializers that emit subject blocks rely on this
// being deterministic.
func groupBySubject(ts *graph.TripleSet) (subjects []string, grouped map[string][]graph.Triple) {
	grouped = make(map[string][]graph.Triple)
	for _, t := range ts.Triples() {
		if _, seen := grouped[t.Subject]; !seen {
			subjects = append(subjects, t.Subject)
		}
		grouped[t.Subject] = append(grouped[t.Subject], t)
	}
	return subjects, grouped
}
