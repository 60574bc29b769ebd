package jsonval_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/jsonrdf/jsonval"
)

func TestDecodePreservesMemberOrder(t *testing.T) {
	input := `{"zeta":1,"alpha":2,"mid":3,"zeta2":4}`

	v, err := jsonval.DecodeBytes([]byte(input))
	require.NoError(t, err)
	require.Equal(t, jsonval.KindObject, v.Kind)

	keys := make([]string, 0, len(v.Members))
	for _, m := range v.Members {
		keys = append(keys, m.Key)
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid", "zeta2"}, keys)
}

func TestDecodeScalars(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, v jsonval.Value)
	}{
		{
			name:  "string",
			input: `"hello"`,
			check: func(t *testing.T, v jsonval.Value) {
				assert.Equal(t, jsonval.KindString, v.Kind)
				assert.Equal(t, "hello", v.Str)
			},
		},
		{
			name:  "integer lexeme preserved",
			input: `42`,
			check: func(t *testing.T, v jsonval.Value) {
				assert.Equal(t, jsonval.KindNumber, v.Kind)
				assert.Equal(t, "42", v.Number)
			},
		},
		{
			name:  "decimal lexeme preserved",
			input: `3.14`,
			check: func(t *testing.T, v jsonval.Value) {
				assert.Equal(t, jsonval.KindNumber, v.Kind)
				assert.Equal(t, "3.14", v.Number)
			},
		},
		{
			name:  "bool",
			input: `true`,
			check: func(t *testing.T, v jsonval.Value) {
				assert.Equal(t, jsonval.KindBool, v.Kind)
				assert.True(t, v.Bool)
			},
		},
		{
			name:  "null",
			input: `null`,
			check: func(t *testing.T, v jsonval.Value) {
				assert.Equal(t, jsonval.KindNull, v.Kind)
				assert.False(t, v.IsScalar())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := jsonval.DecodeBytes([]byte(tt.input))
			require.NoError(t, err)
			tt.check(t, v)
		})
	}
}

func TestDecodeNested(t *testing.T) {
	input := `{"user":{"skills":["go","sql"],"active":true,"age":30}}`

	v, err := jsonval.DecodeBytes([]byte(input))
	require.NoError(t, err)

	require.Len(t, v.Members, 1)
	user := v.Members[0].Value
	require.Equal(t, jsonval.KindObject, user.Kind)
	require.Len(t, user.Members, 3)

	skills := user.Members[0].Value
	require.Equal(t, jsonval.KindArray, skills.Kind)
	require.Len(t, skills.Items, 2)
	assert.Equal(t, "go", skills.Items[0].Str)
	assert.Equal(t, "sql", skills.Items[1].Str)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ``},
		{"malformed", `{"a":`},
		{"unterminated array", `[1, 2`},
		{"trailing data", `{"a":1} extra`},
		{"bare garbage", `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := jsonval.Decode(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}
