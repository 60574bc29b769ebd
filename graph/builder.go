package graph

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/c360studio/jsonrdf/jsonval"
	"github.com/c360studio/jsonrdf/vocabulary/rdf"
)

// DefaultMaxDepth bounds traversal depth when Options.MaxDepth is zero.
const DefaultMaxDepth = 1000

// ErrDepthExceeded is returned when the input nests deeper than the
// configured limit. Pathological input fails with this bounded error
// instead of exhausting the stack.
var ErrDepthExceeded = errors.New("nesting depth limit exceeded")

// Root-array property names. The document root is not an object, so its
// elements have no natural key: object elements hang off "item" and
// scalar elements off "value".
const (
	rootItemKey  = "item"
	rootValueKey = "value"
)

// Options configures a build.
type Options struct {
	// BaseURI is the prefix under which resource and predicate IRIs are
	// minted, e.g. "http://example.org/".
	BaseURI string

	// Schema, when non-nil, injects one rdf:type triple per
	// object-shaped resource. Nil disables schema annotation.
	Schema SchemaPolicy

	// MaxDepth bounds nesting depth; zero means DefaultMaxDepth.
	MaxDepth int
}

// Build walks a JSON value tree in a single depth-first pre-order pass
// and returns the resulting triple set. The walk is deterministic:
// object members are visited in document order and identifiers are pure
// functions of the traversal path.
//
// Policy notes: null-valued fields emit nothing; scalar array elements
// attach repeated literal triples directly to the parent (no
// intermediate resource); an empty array emits nothing at all, exactly
// as if the field were absent (unlike an empty object, which still gets
// its type triple when schema annotation is on); scalar and null roots
// produce an empty set.
func Build(root jsonval.Value, opts Options) (*TripleSet, error) {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	b := &builder{
		mint:     Minter{Base: opts.BaseURI},
		schema:   opts.Schema,
		maxDepth: maxDepth,
		ts:       NewTripleSet(),
	}

	switch root.Kind {
	case jsonval.KindObject:
		if err := b.object(root, 0); err != nil {
			return nil, err
		}
	case jsonval.KindArray:
		if err := b.rootArray(root); err != nil {
			return nil, err
		}
	}
	return b.ts, nil
}

type builder struct {
	mint     Minter
	schema   SchemaPolicy
	maxDepth int
	ts       *TripleSet

	// path holds the traversal segments leading to the resource
	// currently being emitted.
	path []string
}

func (b *builder) push(seg string) { b.path = append(b.path, seg) }
func (b *builder) pop()            { b.path = b.path[:len(b.path)-1] }

// object emits the triples for an object-shaped resource at the current
// path: its type triple first (when schema annotation is on), then one
// triple per non-null member in document order.
func (b *builder) object(v jsonval.Value, depth int) error {
	if depth > b.maxDepth {
		return fmt.Errorf("%w at depth %d", ErrDepthExceeded, depth)
	}

	id := IdentifierFor(b.path)
	subject := b.mint.ResourceIRI(id)

	if b.schema != nil {
		if class, ok := b.schema.ClassFor(id); ok {
			b.ts.Add(Triple{Subject: subject, Predicate: rdf.Type, Object: ResourceObject(class)})
		}
	}

	for _, m := range v.Members {
		pred := b.mint.PredicateIRI(m.Key)
		switch m.Value.Kind {
		case jsonval.KindNull:
			// No triple for null leaf values.
		case jsonval.KindBool, jsonval.KindNumber, jsonval.KindString:
			b.ts.Add(Triple{Subject: subject, Predicate: pred, Object: LiteralObject(Classify(m.Value))})
		case jsonval.KindObject:
			b.push(m.Key)
			childIRI := b.mint.ResourceIRI(IdentifierFor(b.path))
			b.ts.Add(Triple{Subject: subject, Predicate: pred, Object: ResourceObject(childIRI)})
			if err := b.object(m.Value, depth+1); err != nil {
				return err
			}
			b.pop()
		case jsonval.KindArray:
			b.push(m.Key)
			err := b.array(subject, pred, m.Value, depth+1)
			b.pop()
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// array emits an array's elements against the given parent subject and
// predicate. The current path already includes the array's field
// segment; element indexes are appended beneath it. Scalars fan out as
// repeated literals on the parent, objects become linked child
// resources, nested arrays recurse with the inner index added to the
// path so element identifiers stay unique.
func (b *builder) array(subject, pred string, v jsonval.Value, depth int) error {
	if depth > b.maxDepth {
		return fmt.Errorf("%w at depth %d", ErrDepthExceeded, depth)
	}

	for i, el := range v.Items {
		switch el.Kind {
		case jsonval.KindNull:
			// Skipped, same as null object members.
		case jsonval.KindBool, jsonval.KindNumber, jsonval.KindString:
			b.ts.Add(Triple{Subject: subject, Predicate: pred, Object: LiteralObject(Classify(el))})
		case jsonval.KindObject:
			b.push(strconv.Itoa(i))
			elemIRI := b.mint.ResourceIRI(IdentifierFor(b.path))
			b.ts.Add(Triple{Subject: subject, Predicate: pred, Object: ResourceObject(elemIRI)})
			if err := b.object(el, depth+1); err != nil {
				return err
			}
			b.pop()
		case jsonval.KindArray:
			b.push(strconv.Itoa(i))
			err := b.array(subject, pred, el, depth+1)
			b.pop()
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// rootArray handles a document whose root is an array. Object elements
// are minted directly under root with index-scoped identifiers (root_0,
// root_1, ...) and linked via the "item" property; scalar elements
// attach to root as "value" literals. The root itself gets no type
// triple: only object-shaped resources are annotated.
func (b *builder) rootArray(v jsonval.Value) error {
	subject := b.mint.ResourceIRI(RootIdentifier)
	itemPred := b.mint.PredicateIRI(rootItemKey)
	valuePred := b.mint.PredicateIRI(rootValueKey)

	for i, el := range v.Items {
		switch el.Kind {
		case jsonval.KindNull:
		case jsonval.KindBool, jsonval.KindNumber, jsonval.KindString:
			b.ts.Add(Triple{Subject: subject, Predicate: valuePred, Object: LiteralObject(Classify(el))})
		case jsonval.KindObject:
			b.push(strconv.Itoa(i))
			elemIRI := b.mint.ResourceIRI(IdentifierFor(b.path))
			b.ts.Add(Triple{Subject: subject, Predicate: itemPred, Object: ResourceObject(elemIRI)})
			if err := b.object(el, 1); err != nil {
				return err
			}
			b.pop()
		case jsonval.KindArray:
			b.push(strconv.Itoa(i))
			err := b.array(subject, valuePred, el, 1)
			b.pop()
			if err != nil {
				return err
			}
		}
	}
	return nil
}
