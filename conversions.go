package jsonmodel

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"time"
)

// Built-in conversion routines. Every routine is a pure function of its
// single argument; failures surface as an error for that one value and
// never abort the surrounding mapping run.

// MutableStringFromString copies the string's character data into an
// independently mutable byte slice.
func MutableStringFromString(s string) []byte {
	return []byte(s)
}

// MutableArrayFromArray returns a shallow copy of the array: mutating the
// copy never affects the source, element order is preserved.
func MutableArrayFromArray(a []interface{}) []interface{} {
	result := make([]interface{}, len(a))
	copy(result, a)
	return result
}

// MutableDictionaryFromDictionary returns a shallow copy of the dictionary.
func MutableDictionaryFromDictionary(d map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(d))
	for key, value := range d {
		result[key] = value
	}
	return result
}

// SetFromArray collapses the array into a set of its distinct elements.
// Original order and duplicate count are lost. Only comparable elements can
// become members: a JSON object or nested array in the source is reported
// as a per-value error, never a panic.
func SetFromArray(a []interface{}) (Set, error) {
	result := make(Set, len(a))
	for _, element := range a {
		if !isHashable(element) {
			return nil, fmt.Errorf("cannot convert %T array element to %v member", element, KindSet)
		}
		result[element] = struct{}{}
	}
	return result, nil
}

// MutableSetFromArray is SetFromArray for a mutable-set target.
func MutableSetFromArray(a []interface{}) (Set, error) {
	return SetFromArray(a)
}

func isHashable(value interface{}) bool {
	if value == nil {
		return true
	}
	return reflect.TypeOf(value).Comparable()
}

// JSONObjectFromSet returns the set's elements as an array, in set-iteration
// order.
func JSONObjectFromSet(s Set) []interface{} {
	return s.Values()
}

// JSONObjectFromMutableSet is JSONObjectFromSet for the mutable variant.
func JSONObjectFromMutableSet(s Set) []interface{} {
	return s.Values()
}

// BoolFromNumber maps zero to false and any other value to true.
func BoolFromNumber(n float64) bool {
	return n != 0
}

// BoolFromString maps the literal "0" to false and every other string,
// the empty string included, to true. Callers depend on this exact rule;
// "false", "no" and friends are deliberately not special-cased.
func BoolFromString(s string) bool {
	return s != "0"
}

// JSONObjectFromBool is the identity: booleans are already a JSON wire kind.
func JSONObjectFromBool(b bool) bool {
	return b
}

// NumberFromString parses s as a number, locale independent.
func NumberFromString(s string) (float64, error) {
	result, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("cannot convert %q to %v: %w", s, KindNumber, err)
	}
	return result, nil
}

// StringFromNumber renders the canonical decimal form of n.
func StringFromNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// DecimalFromString parses an arbitrary-precision decimal. Kept separate
// from NumberFromString: the decimal path preserves precision the binary
// float path cannot.
func DecimalFromString(s string) (Decimal, error) {
	return ParseDecimal(s)
}

// StringFromDecimal renders d with full precision.
func StringFromDecimal(d Decimal) string {
	return d.String()
}

// URLFromString parses s as a URL reference.
func URLFromString(s string) (*url.URL, error) {
	result, err := url.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("cannot convert %q to %v: %w", s, KindURL, err)
	}
	return result, nil
}

// JSONObjectFromURL returns the URL's canonical string form.
func JSONObjectFromURL(u *url.URL) string {
	return u.String()
}

// TimeZoneFromString looks a time zone up by its IANA identifier.
func TimeZoneFromString(s string) (*time.Location, error) {
	result, err := time.LoadLocation(s)
	if err != nil {
		return nil, fmt.Errorf("cannot convert %q to %v: %w", s, KindTimeZone, err)
	}
	return result, nil
}

// JSONObjectFromTimeZone returns the zone's identifier string.
func JSONObjectFromTimeZone(tz *time.Location) string {
	return tz.String()
}

// DateFromNumber interprets n as a Unix epoch timestamp in seconds; a
// fractional part is kept as nanoseconds.
func DateFromNumber(n float64) time.Time {
	seconds := int64(n)
	nanos := int64((n - float64(seconds)) * 1e9)
	return time.Unix(seconds, nanos).UTC()
}

// The string<->date defaults are not public catalog API: an externally
// registered (string, date) or (date, json-object) conversion always shadows
// them, so consumers can install their own date format without fighting the
// built-in one.

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func dateFromString(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if result, err := time.Parse(layout, s); err == nil {
			return result, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse date string %q", s)
}

func jsonObjectFromDate(t time.Time, layout string) string {
	return t.Format(layout)
}
