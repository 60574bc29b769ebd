// Package jsonval models a parsed JSON document as an order-preserving
// value tree. Object members keep the document's key order, and number
// lexemes are kept verbatim, so that downstream traversal is
// deterministic and byte-reproducible across runs.
package jsonval

// Kind discriminates the closed set of JSON value shapes.
type Kind int

const (
	// KindNull is the JSON null value.
	KindNull Kind = iota

	// KindBool is a JSON boolean.
	KindBool

	// KindNumber is a JSON number; the source lexeme is preserved.
	KindNumber

	// KindString is a JSON string.
	KindString

	// KindArray is a JSON array.
	KindArray

	// KindObject is a JSON object with ordered members.
	KindObject
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "unknown"
}

// Value is one node of a JSON document. Exactly the field selected by
// Kind is meaningful; the rest are zero. Values are read-only after
// decoding.
type Value struct {
	Kind Kind

	// Bool holds the value for KindBool.
	Bool bool

	// Number holds the source lexeme for KindNumber, e.g. "3.14".
	Number string

	// Str holds the value for KindString.
	Str string

	// Items holds the elements for KindArray.
	Items []Value

	// Members holds the key/value pairs for KindObject in document order.
	Members []Member
}

// Member is a single object member.
type Member struct {
	Key   string
	Value Value
}

// IsScalar reports whether the value is a string, number, or boolean.
// Null is not a scalar: null-valued fields are skipped during mapping.
func (v Value) IsScalar() bool {
	switch v.Kind {
	case KindBool, KindNumber, KindString:
		return true
	}
	return false
}
