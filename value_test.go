package jsonmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNull(t *testing.T) {
	var nilMap map[string]interface{}
	var nilSlice []interface{}
	var nilPointer *Decimal

	assert.True(t, IsNull(nil))
	assert.True(t, IsNull(nilMap))
	assert.True(t, IsNull(nilSlice))
	assert.True(t, IsNull(nilPointer))
	assert.False(t, IsNull(""))
	assert.False(t, IsNull(0))
	assert.False(t, IsNull(map[string]interface{}{}))
}

func TestIsNullString(t *testing.T) {
	assert.True(t, IsNullString(nil))
	assert.True(t, IsNullString(42))
	assert.False(t, IsNullString(""))
	assert.False(t, IsNullString("abc"))
}
