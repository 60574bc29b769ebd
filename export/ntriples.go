package export

import (
	"fmt"
	"strings"

	"github.com/c360studio/jsonrdf/graph"
)

// ntriplesSerializer writes N-Triples: one statement per line, absolute
// IRIs only. The output is also valid N-Quads (default graph), which
// the JSON-LD serializer reuses.
type ntriplesSerializer struct{}

func (s *ntriplesSerializer) Serialize(ts *graph.TripleSet) (string, error) {
	var sb strings.Builder
	for _, t := range ts.Triples() {
		sb.WriteString(ntriplesStatement(t))
	}
	return sb.String(), nil
}

func ntriplesStatement(t graph.Triple) string {
	return fmt.Sprintf("<%s> <%s> %s .\n", t.Subject, t.Predicate, ntriplesObject(t.Object))
}

func ntriplesObject(o graph.Object) string {
	if o.IsResource() {
		return fmt.Sprintf("<%s>", o.Resource)
	}
	return fmt.Sprintf("\"%s\"^^<%s>", escapeLiteral(o.Literal.Lexical), o.Literal.Datatype)
}
