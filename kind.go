package jsonmodel

import (
	"encoding/json"
	"net/url"
	"reflect"
	"time"
)

// Kind names the semantic kind of a runtime value. Conversion rules are
// addressed by an ordered (from, to) Kind pair.
type Kind string

const (
	KindString            Kind = "string"
	KindMutableString     Kind = "mutable-string"
	KindArray             Kind = "array"
	KindMutableArray      Kind = "mutable-array"
	KindDictionary        Kind = "dictionary"
	KindMutableDictionary Kind = "mutable-dictionary"
	KindSet               Kind = "set"
	KindMutableSet        Kind = "mutable-set"
	KindNumber            Kind = "number"
	KindDecimal           Kind = "decimal"
	KindBool              Kind = "bool"
	KindURL               Kind = "url"
	KindTimeZone          Kind = "timezone"
	KindDate              Kind = "date"
	KindNull              Kind = "null"

	//KindJSONObject is the encode-side target kind: any value already in a
	//JSON-representable form.
	KindJSONObject Kind = "json-object"
)

// clusterKinds maps every known concrete/variant kind to its umbrella kind.
// Populated once, read-only afterwards; canonical kinds map to themselves.
var clusterKinds = map[Kind]Kind{
	KindString:            KindString,
	KindMutableString:     KindString,
	KindArray:             KindArray,
	KindMutableArray:      KindArray,
	KindDictionary:        KindDictionary,
	KindMutableDictionary: KindDictionary,
	KindSet:               KindSet,
	KindMutableSet:        KindSet,
}

// ResolveClusterKind returns the umbrella kind a concrete/variant kind
// belongs to. Only exact table hits succeed; for any kind not listed the
// second result is false and callers shall keep using the original kind.
func ResolveClusterKind(kind Kind) (Kind, bool) {
	umbrella, ok := clusterKinds[kind]
	return umbrella, ok
}

func canonicalKind(kind Kind) Kind {
	if umbrella, ok := ResolveClusterKind(kind); ok {
		return umbrella
	}
	return kind
}

// KindOf discriminates a dynamic value into its concrete kind. It accepts
// both the forms JSON decoders produce (string, bool, float64/int64,
// json.Number, []interface{}, map[string]interface{}, nil) and the richer
// values the catalog returns (Set, Decimal, *url.URL, *time.Location,
// time.Time, []byte). Unrecognized values yield the empty Kind.
func KindOf(value interface{}) Kind {
	switch value.(type) {
	case nil:
		return KindNull
	case string:
		return KindString
	case []byte:
		return KindMutableString
	case bool:
		return KindBool
	case float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, json.Number:
		return KindNumber
	case []interface{}:
		return KindArray
	case map[string]interface{}:
		return KindDictionary
	case Set:
		return KindSet
	case Decimal, *Decimal:
		return KindDecimal
	case *url.URL:
		return KindURL
	case *time.Location:
		return KindTimeZone
	case time.Time:
		return KindDate
	}
	return kindOfReflect(value)
}

// kindOfReflect covers named types whose underlying kind is still one of the
// JSON-native ones.
func kindOfReflect(value interface{}) Kind {
	rType := reflect.TypeOf(value)
	switch rType.Kind() {
	case reflect.String:
		return KindString
	case reflect.Bool:
		return KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.Map:
		return KindDictionary
	}
	return ""
}
