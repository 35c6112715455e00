package jsonmodel

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sync"
	"time"
)

// DefaultDateLayout is the layout the built-in date encoder uses when no
// override is registered and no option changes it.
const DefaultDateLayout = time.RFC3339

// Func converts a single value between two kinds. Implementations must be
// pure: a failure concerns that one value only and is reported as an error,
// never as a panic.
type Func func(value interface{}) (interface{}, error)

type convKey struct {
	from Kind
	to   Kind
}

// Transformer dispatches value conversions through a fixed built-in catalog
// plus caller-registered overrides. The built-in table is populated once in
// New and read-only afterwards; registration goes through a sync.Map, so
// steady-state lookups need no locking while registration stays safe from
// concurrent callers.
type Transformer struct {
	dateLayout string
	builtins   map[convKey]Func
	overrides  sync.Map // map[convKey]Func
}

// New returns a transformer with the full built-in catalog.
func New(options ...Option) *Transformer {
	result := &Transformer{dateLayout: DefaultDateLayout}
	Options(options).Apply(result)
	result.builtins = result.builtinCatalog()
	return result
}

// RegisterConversion registers fn for the (from, to) pair. A registered
// conversion shadows the built-in one for the same pair on every subsequent
// lookup.
func (t *Transformer) RegisterConversion(from, to Kind, fn Func) {
	t.overrides.Store(convKey{from: from, to: to}, fn)
}

// Lookup returns the conversion registered for the exact (from, to) pair,
// overrides first, then the built-in catalog. Callers canonicalize variant
// kinds with ResolveClusterKind before calling when they want cluster
// collapsing; Lookup itself does only exact hits.
func (t *Transformer) Lookup(from, to Kind) (Func, bool) {
	key := convKey{from: from, to: to}
	if fn, ok := t.overrides.Load(key); ok {
		return fn.(Func), true
	}
	fn, ok := t.builtins[key]
	return fn, ok
}

// Transform converts value toward the target kind. The value's own kind is
// discriminated with KindOf and collapsed to its umbrella kind; when no rule
// matches the pair the value is returned unchanged, which is the contract
// for unsupported conversions, not an error.
func (t *Transformer) Transform(value interface{}, target Kind) (interface{}, error) {
	from := canonicalKind(KindOf(value))
	if fn, ok := t.Lookup(from, target); ok {
		return fn(value)
	}
	return value, nil
}

func (t *Transformer) builtinCatalog() map[convKey]Func {
	catalog := map[convKey]Func{}
	register := func(from, to Kind, fn Func) {
		catalog[convKey{from: from, to: to}] = fn
	}

	register(KindString, KindMutableString, func(value interface{}) (interface{}, error) {
		s, err := asString(value)
		if err != nil {
			return nil, err
		}
		return MutableStringFromString(s), nil
	})
	register(KindArray, KindMutableArray, func(value interface{}) (interface{}, error) {
		a, err := asArray(value)
		if err != nil {
			return nil, err
		}
		return MutableArrayFromArray(a), nil
	})
	register(KindDictionary, KindMutableDictionary, func(value interface{}) (interface{}, error) {
		d, err := asDictionary(value)
		if err != nil {
			return nil, err
		}
		return MutableDictionaryFromDictionary(d), nil
	})

	register(KindArray, KindSet, func(value interface{}) (interface{}, error) {
		a, err := asArray(value)
		if err != nil {
			return nil, err
		}
		return SetFromArray(a)
	})
	register(KindArray, KindMutableSet, func(value interface{}) (interface{}, error) {
		a, err := asArray(value)
		if err != nil {
			return nil, err
		}
		return MutableSetFromArray(a)
	})
	register(KindSet, KindJSONObject, func(value interface{}) (interface{}, error) {
		s, err := asSet(value)
		if err != nil {
			return nil, err
		}
		return JSONObjectFromSet(s), nil
	})
	register(KindMutableSet, KindJSONObject, func(value interface{}) (interface{}, error) {
		s, err := asSet(value)
		if err != nil {
			return nil, err
		}
		return JSONObjectFromMutableSet(s), nil
	})

	register(KindNumber, KindBool, func(value interface{}) (interface{}, error) {
		n, err := asNumber(value)
		if err != nil {
			return nil, err
		}
		return BoolFromNumber(n), nil
	})
	register(KindString, KindBool, func(value interface{}) (interface{}, error) {
		s, err := asString(value)
		if err != nil {
			return nil, err
		}
		return BoolFromString(s), nil
	})
	register(KindBool, KindJSONObject, func(value interface{}) (interface{}, error) {
		b, err := asBool(value)
		if err != nil {
			return nil, err
		}
		return JSONObjectFromBool(b), nil
	})

	register(KindString, KindNumber, func(value interface{}) (interface{}, error) {
		s, err := asString(value)
		if err != nil {
			return nil, err
		}
		return NumberFromString(s)
	})
	register(KindNumber, KindString, func(value interface{}) (interface{}, error) {
		n, err := asNumber(value)
		if err != nil {
			return nil, err
		}
		return StringFromNumber(n), nil
	})
	register(KindString, KindDecimal, func(value interface{}) (interface{}, error) {
		s, err := asString(value)
		if err != nil {
			return nil, err
		}
		return DecimalFromString(s)
	})
	register(KindDecimal, KindString, func(value interface{}) (interface{}, error) {
		d, err := asDecimal(value)
		if err != nil {
			return nil, err
		}
		return StringFromDecimal(d), nil
	})

	register(KindString, KindURL, func(value interface{}) (interface{}, error) {
		s, err := asString(value)
		if err != nil {
			return nil, err
		}
		return URLFromString(s)
	})
	register(KindURL, KindJSONObject, func(value interface{}) (interface{}, error) {
		u, err := asURL(value)
		if err != nil {
			return nil, err
		}
		return JSONObjectFromURL(u), nil
	})
	register(KindString, KindTimeZone, func(value interface{}) (interface{}, error) {
		s, err := asString(value)
		if err != nil {
			return nil, err
		}
		return TimeZoneFromString(s)
	})
	register(KindTimeZone, KindJSONObject, func(value interface{}) (interface{}, error) {
		tz, err := asTimeZone(value)
		if err != nil {
			return nil, err
		}
		return JSONObjectFromTimeZone(tz), nil
	})
	register(KindNumber, KindDate, func(value interface{}) (interface{}, error) {
		n, err := asNumber(value)
		if err != nil {
			return nil, err
		}
		return DateFromNumber(n), nil
	})

	// Default string<->date rules: present in the table so decoding works out
	// of the box, but always shadowed by an external registration.
	register(KindString, KindDate, func(value interface{}) (interface{}, error) {
		s, err := asString(value)
		if err != nil {
			return nil, err
		}
		return dateFromString(s)
	})
	register(KindDate, KindJSONObject, func(value interface{}) (interface{}, error) {
		d, err := asDate(value)
		if err != nil {
			return nil, err
		}
		return jsonObjectFromDate(d, t.dateLayout), nil
	})

	return catalog
}

// dynamic value coercion

func asString(value interface{}) (string, error) {
	switch actual := value.(type) {
	case string:
		return actual, nil
	case []byte:
		return string(actual), nil
	}
	return "", fmt.Errorf("cannot convert %T to %v", value, KindString)
}

func asBool(value interface{}) (bool, error) {
	if actual, ok := value.(bool); ok {
		return actual, nil
	}
	return false, fmt.Errorf("cannot convert %T to %v", value, KindBool)
}

func asNumber(value interface{}) (float64, error) {
	switch actual := value.(type) {
	case float64:
		return actual, nil
	case float32:
		return float64(actual), nil
	case int:
		return float64(actual), nil
	case int8:
		return float64(actual), nil
	case int16:
		return float64(actual), nil
	case int32:
		return float64(actual), nil
	case int64:
		return float64(actual), nil
	case uint:
		return float64(actual), nil
	case uint8:
		return float64(actual), nil
	case uint16:
		return float64(actual), nil
	case uint32:
		return float64(actual), nil
	case uint64:
		return float64(actual), nil
	case json.Number:
		return actual.Float64()
	}
	return 0, fmt.Errorf("cannot convert %T to %v", value, KindNumber)
}

func asArray(value interface{}) ([]interface{}, error) {
	if actual, ok := value.([]interface{}); ok {
		return actual, nil
	}
	return nil, fmt.Errorf("cannot convert %T to %v", value, KindArray)
}

func asDictionary(value interface{}) (map[string]interface{}, error) {
	if actual, ok := value.(map[string]interface{}); ok {
		return actual, nil
	}
	return nil, fmt.Errorf("cannot convert %T to %v", value, KindDictionary)
}

func asSet(value interface{}) (Set, error) {
	if actual, ok := value.(Set); ok {
		return actual, nil
	}
	return nil, fmt.Errorf("cannot convert %T to %v", value, KindSet)
}

func asDecimal(value interface{}) (Decimal, error) {
	switch actual := value.(type) {
	case Decimal:
		return actual, nil
	case *Decimal:
		if actual == nil {
			return Decimal{}, fmt.Errorf("cannot convert nil %T to %v", value, KindDecimal)
		}
		return *actual, nil
	}
	return Decimal{}, fmt.Errorf("cannot convert %T to %v", value, KindDecimal)
}

func asURL(value interface{}) (*url.URL, error) {
	if actual, ok := value.(*url.URL); ok && actual != nil {
		return actual, nil
	}
	return nil, fmt.Errorf("cannot convert %T to %v", value, KindURL)
}

func asTimeZone(value interface{}) (*time.Location, error) {
	if actual, ok := value.(*time.Location); ok && actual != nil {
		return actual, nil
	}
	return nil, fmt.Errorf("cannot convert %T to %v", value, KindTimeZone)
}

func asDate(value interface{}) (time.Time, error) {
	if actual, ok := value.(time.Time); ok {
		return actual, nil
	}
	return time.Time{}, fmt.Errorf("cannot convert %T to %v", value, KindDate)
}
