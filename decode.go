package jsonmodel

import (
	"bytes"

	"github.com/francoispqt/gojay"
)

// DecodeValue decodes raw JSON into the dynamic forms the catalog consumes:
// string, bool, float64, []interface{}, map[string]interface{} or nil.
func DecodeValue(data []byte) (interface{}, error) {
	decoder := gojay.BorrowDecoder(bytes.NewReader(data))
	defer decoder.Release()
	var value interface{}
	if err := decoder.DecodeInterface(&value); err != nil {
		return nil, err
	}
	return value, nil
}
