package export

import (
	"fmt"
	"strings"

	"github.com/c360studio/jsonrdf/graph"
	"github.com/c360studio/jsonrdf/vocabulary/rdf"
)

// rdfxmlSerializer writes RDF/XML: one rdf:Description block per
// subject, literal properties carrying rdf:datatype and resource
// properties carrying rdf:resource. Predicates minted under the base
// URI are emitted as qualified names in the ns0 namespace.
type rdfxmlSerializer struct {
	opts Options
}

func (s *rdfxmlSerializer) Serialize(ts *graph.TripleSet) (string, error) {
	indent, inner := "", ""
	if s.opts.PrettyPrint {
		indent, inner = "  ", "    "
	}

	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&sb, "<rdf:RDF xmlns:rdf=\"%s\" xmlns:ns0=\"%s\">\n",
		escapeXML(rdf.Namespace), escapeXML(s.opts.BaseURI))

	subjects, grouped := groupBySubject(ts)
	for _, subject := range subjects {
		fmt.Fprintf(&sb, "%s<rdf:Description rdf:about=\"%s\">\n", indent, escapeXML(subject))
		for _, t := range grouped[subject] {
			name, err := s.elementName(t.Predicate)
			if err != nil {
				return "", err
			}
			if t.Object.IsResource() {
				fmt.Fprintf(&sb, "%s<%s rdf:resource=\"%s\"/>\n", inner, name, escapeXML(t.Object.Resource))
			} else {
				fmt.Fprintf(&sb, "%s<%s rdf:datatype=\"%s\">%s</%s>\n",
					inner, name, escapeXML(t.Object.Literal.Datatype),
					escapeXML(t.Object.Literal.Lexical), name)
			}
		}
		fmt.Fprintf(&sb, "%s</rdf:Description>\n", indent)
	}

	sb.WriteString("</rdf:RDF>\n")
	return sb.String(), nil
}

// elementName maps a predicate IRI to an XML qualified name. rdf:type
// uses the rdf prefix; base-URI predicates use ns0. RDF/XML cannot
// express predicates outside a declared namespace, but the builder only
// mints the two kinds handled here.
func (s *rdfxmlSerializer) elementName(predicate string) (string, error) {
	if predicate == rdf.Type {
		return "rdf:type", nil
	}
	local, ok := strings.CutPrefix(predicate, s.opts.BaseURI)
	if !ok || local == "" {
		return "", fmt.Errorf("predicate %q is not expressible in RDF/XML under base %q", predicate, s.opts.BaseURI)
	}
	return "ns0:" + xmlName(local), nil
}

// xmlName makes a sanitized key a valid XML element local name. Keys
// are already reduced to [A-Za-z0-9_-]; a leading digit or hyphen is
// still illegal in XML names and gets an underscore prefix.
func xmlName(local string) string {
	c := local[0]
	if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_' {
		return local
	}
	return "_" + local
}
