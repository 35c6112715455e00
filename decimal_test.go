package jsonmodel

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDecimal(t *testing.T) {
	testCases := []struct {
		description string
		input       string
		expect      string
		hasError    bool
	}{
		{description: "integer", input: "42", expect: "42"},
		{description: "negative fraction", input: "-3.5", expect: "-3.5"},
		{description: "trailing zeros preserved", input: "1.500", expect: "1.500"},
		{description: "leading fraction", input: ".25", expect: "0.25"},
		{description: "small negative", input: "-0.007", expect: "-0.007"},
		{description: "positive exponent", input: "1.5e3", expect: "1500"},
		{description: "negative exponent", input: "25e-3", expect: "0.025"},
		{description: "long mantissa survives", input: "123456789012345.6789", expect: "123456789012345.6789"},
		{description: "empty", input: "", hasError: true},
		{description: "not a number", input: "abc", hasError: true},
		{description: "double point", input: "1.2.3", hasError: true},
		{description: "bare exponent", input: "1e", hasError: true},
	}

	for _, testCase := range testCases {
		actual, err := ParseDecimal(testCase.input)
		if testCase.hasError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, actual.String(), testCase.description)
	}
}

// The decimal path exists because the binary float path loses digits on
// exactly this class of input.
func TestDecimalPrecisionVersusFloat(t *testing.T) {
	input := "123456789012345.6789"

	decimal, err := ParseDecimal(input)
	assert.Nil(t, err)
	assert.Equal(t, input, decimal.String())

	asFloat, err := NumberFromString(input)
	assert.Nil(t, err)
	assert.NotEqual(t, input, strconv.FormatFloat(asFloat, 'f', -1, 64))
}

func TestDecimalRat(t *testing.T) {
	decimal, err := ParseDecimal("2.5")
	assert.Nil(t, err)
	assert.Equal(t, "5/2", decimal.Rat().String())
	assert.Equal(t, 2.5, decimal.Float64())

	var zero Decimal
	assert.Equal(t, "0", zero.String())
	assert.Equal(t, float64(0), zero.Float64())
}
