// Package jsonmodel provides the value-transformation catalog used when
// mapping decoded JSON values onto typed model properties. It canonicalizes
// runtime value kinds, dispatches conversions through a table keyed by
// (from, to) kind pairs, and lets callers register their own conversion
// functions that shadow the built-in ones.
package jsonmodel
