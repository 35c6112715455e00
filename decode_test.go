package jsonmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeValue(t *testing.T) {
	testCases := []struct {
		description string
		input       string
		expect      Kind
	}{
		{description: "string", input: `"abc"`, expect: KindString},
		{description: "bool", input: `true`, expect: KindBool},
		{description: "number", input: `1.5`, expect: KindNumber},
		{description: "array", input: `["a","b"]`, expect: KindArray},
		{description: "object", input: `{"a":"b"}`, expect: KindDictionary},
		{description: "null", input: `null`, expect: KindNull},
	}

	for _, testCase := range testCases {
		value, err := DecodeValue([]byte(testCase.input))
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, KindOf(value), testCase.description)
	}

	_, err := DecodeValue([]byte(`{"broken`))
	assert.NotNil(t, err)
}

// wire bytes -> dynamic value -> typed property value, the way the mapping
// engine drives this package
func TestDecodeValueTransformEndToEnd(t *testing.T) {
	transformer := New()

	value, err := DecodeValue([]byte(`"1"`))
	assert.Nil(t, err)

	number, err := transformer.Transform(value, KindNumber)
	assert.Nil(t, err)
	assert.Equal(t, float64(1), number)

	encoded, err := transformer.Transform(number, KindString)
	assert.Nil(t, err)
	assert.Equal(t, "1", encoded)
}
