package export

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	ld "github.com/piprate/json-gold/ld"

	"github.com/c360studio/jsonrdf/graph"
)

// jsonldSerializer produces JSON-LD by round-tripping through json-gold:
// the triple set is rendered as N-Quads, expanded with FromRDF, then
// compacted against a prefix context. Grammar correctness is the
// library's responsibility.
type jsonldSerializer struct {
	opts Options
}

func (s *jsonldSerializer) Serialize(ts *graph.TripleSet) (string, error) {
	var nquads strings.Builder
	for _, t := range ts.Triples() {
		nquads.WriteString(ntriplesStatement(t))
	}

	proc := ld.NewJsonLdProcessor()
	goldOpts := ld.NewJsonLdOptions(s.opts.BaseURI)
	goldOpts.Format = "application/n-quads"

	expanded, err := proc.FromRDF(nquads.String(), goldOpts)
	if err != nil {
		return "", fmt.Errorf("jsonld conversion: %w", err)
	}

	context := map[string]any{
		"rdf":    s.opts.prefixes()["rdf"],
		"xsd":    s.opts.prefixes()["xsd"],
		"schema": s.opts.SchemaURI,
	}
	compacted, err := proc.Compact(expanded, context, ld.NewJsonLdOptions(s.opts.BaseURI))
	if err != nil {
		return "", fmt.Errorf("jsonld compaction: %w", err)
	}

	var data []byte
	if s.opts.PrettyPrint {
		data, err = json.MarshalIndent(compacted, "", "  ")
	} else {
		data, err = json.Marshal(compacted)
	}
	if err != nil {
		return "", fmt.Errorf("jsonld marshaling: %w", err)
	}
	return string(data) + "\n", nil
}
