package export

import (
	"fmt"
	"strings"

	"github.com/c360studio/jsonrdf/graph"
	"github.com/c360studio/jsonrdf/vocabulary/rdf"
	"github.com/c360studio/jsonrdf/vocabulary/xsd"
)

// turtleSerializer writes Turtle. Pretty output groups each subject
// into a predicate list separated by semicolons; compact output emits
// one full statement per line.
type turtleSerializer struct {
	opts Options
}

func (s *turtleSerializer) Serialize(ts *graph.TripleSet) (string, error) {
	var sb strings.Builder

	prefixes := s.opts.prefixes()
	for _, prefix := range sortedPrefixKeys(prefixes) {
		fmt.Fprintf(&sb, "@prefix %s: <%s> .\n", prefix, prefixes[prefix])
	}
	sb.WriteString("\n")

	if s.opts.PrettyPrint {
		s.writeGrouped(&sb, ts)
	} else {
		s.writeFlat(&sb, ts)
	}
	return sb.String(), nil
}

func (s *turtleSerializer) writeGrouped(sb *strings.Builder, ts *graph.TripleSet) {
	subjects, grouped := groupBySubject(ts)
	for _, subject := range subjects {
		triples := grouped[subject]
		fmt.Fprintf(sb, "<%s>\n", subject)
		for i, t := range triples {
			terminator := " ;"
			if i == len(triples)-1 {
				terminator = " ."
			}
			fmt.Fprintf(sb, "    %s %s%s\n", turtlePredicate(t.Predicate), turtleObject(t.Object), terminator)
		}
		sb.WriteString("\n")
	}
}

func (s *turtleSerializer) writeFlat(sb *strings.Builder, ts *graph.TripleSet) {
	for _, t := range ts.Triples() {
		fmt.Fprintf(sb, "<%s> %s %s .\n", t.Subject, turtlePredicate(t.Predicate), turtleObject(t.Object))
	}
}

// turtlePredicate renders rdf:type as the "a" shorthand and everything
// else as a full IRI reference.
func turtlePredicate(iri string) string {
	if iri == rdf.Type {
		return "a"
	}
	return fmt.Sprintf("<%s>", iri)
}

func turtleObject(o graph.Object) string {
	if o.IsResource() {
		return fmt.Sprintf("<%s>", o.Resource)
	}
	return fmt.Sprintf("\"%s\"^^xsd:%s", escapeLiteral(o.Literal.Lexical), xsd.Local(o.Literal.Datatype))
}
