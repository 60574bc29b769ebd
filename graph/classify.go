package graph

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/c360studio/jsonrdf/jsonval"
	"github.com/c360studio/jsonrdf/vocabulary/xsd"
)

// dateTimePattern recognizes ISO-8601-like strings: a date, optionally
// followed by a time, optional fractional seconds, and an optional
// timezone offset.
var dateTimePattern = regexp.MustCompile(
	`^\d{4}-\d{2}-\d{2}(T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})?)?$`)

// Classify determines the literal form and XSD datatype of a scalar
// JSON value. It is total over the scalar domain (string, number,
// boolean); null never reaches the classifier because the builder skips
// null-valued fields. The datatype depends only on the value itself,
// never on surrounding context.
func Classify(v jsonval.Value) Literal {
	switch v.Kind {
	case jsonval.KindBool:
		return Literal{Lexical: strconv.FormatBool(v.Bool), Datatype: xsd.Boolean}
	case jsonval.KindNumber:
		return classifyNumber(v.Number)
	case jsonval.KindString:
		if dateTimePattern.MatchString(v.Str) {
			return Literal{Lexical: v.Str, Datatype: xsd.DateTime}
		}
		return Literal{Lexical: v.Str, Datatype: xsd.String}
	}
	// Containers and null are dispatched by the builder before
	// classification; treat anything else as a plain string.
	return Literal{Lexical: v.Str, Datatype: xsd.String}
}

// classifyNumber types a number from its source lexeme. Whole numbers
// within the int64 range become xsd:integer with a canonical base-10
// form; everything else keeps its decimal text as xsd:double.
func classifyNumber(lexeme string) Literal {
	if !strings.ContainsAny(lexeme, ".eE") {
		if n, err := strconv.ParseInt(lexeme, 10, 64); err == nil {
			return Literal{Lexical: strconv.FormatInt(n, 10), Datatype: xsd.Integer}
		}
	}
	return Literal{Lexical: lexeme, Datatype: xsd.Double}
}
