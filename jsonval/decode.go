package jsonval

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	json "github.com/goccy/go-json"
)

// Decode reads a single JSON document from r into a Value tree. Object
// member order follows the document. Trailing non-whitespace content
// after the document is an error.
func Decode(r io.Reader) (Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	v, err := parseValue(dec)
	if err != nil {
		if err == io.EOF {
			return Value{}, fmt.Errorf("empty input: expected a JSON document")
		}
		return Value{}, err
	}

	if _, err := dec.Token(); err != io.EOF {
		return Value{}, fmt.Errorf("trailing data after JSON document")
	}
	return v, nil
}

// DecodeBytes decodes a JSON document from a byte slice.
func DecodeBytes(data []byte) (Value, error) {
	return Decode(bytes.NewReader(data))
}

func parseValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return valueFromToken(dec, tok)
}

func valueFromToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		}
		return Value{}, fmt.Errorf("unexpected delimiter %q", t)
	case string:
		return Value{Kind: KindString, Str: t}, nil
	case bool:
		return Value{Kind: KindBool, Bool: t}, nil
	case json.Number:
		return Value{Kind: KindNumber, Number: string(t)}, nil
	case float64:
		// UseNumber makes this unreachable; kept so the switch is total
		// over the decoder's token domain.
		return Value{Kind: KindNumber, Number: strconv.FormatFloat(t, 'g', -1, 64)}, nil
	case nil:
		return Value{Kind: KindNull}, nil
	}
	return Value{}, fmt.Errorf("unexpected token %T", tok)
}

func parseObject(dec *json.Decoder) (Value, error) {
	var members []Member
	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return Value{}, fmt.Errorf("unterminated object")
			}
			return Value{}, err
		}

		if d, ok := tok.(json.Delim); ok {
			if d == '}' {
				return Value{Kind: KindObject, Members: members}, nil
			}
			return Value{}, fmt.Errorf("unexpected delimiter %q in object", d)
		}

		key, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("object key must be a string, got %T", tok)
		}

		val, err := parseValue(dec)
		if err != nil {
			if err == io.EOF {
				return Value{}, fmt.Errorf("unterminated object")
			}
			return Value{}, err
		}
		members = append(members, Member{Key: key, Value: val})
	}
}

func parseArray(dec *json.Decoder) (Value, error) {
	var items []Value
	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return Value{}, fmt.Errorf("unterminated array")
			}
			return Value{}, err
		}

		if d, ok := tok.(json.Delim); ok && d == ']' {
			return Value{Kind: KindArray, Items: items}, nil
		}

		item, err := valueFromToken(dec, tok)
		if err != nil {
			return Value{}, err
		}
		items = append(items, item)
	}
}
