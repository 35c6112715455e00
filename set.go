package jsonmodel

// Set is an unordered collection of distinct values. JSON has no set type,
// so the catalog materializes one when a target property asks for it; only
// comparable values (JSON scalars) can be members.
type Set map[interface{}]struct{}

// NewSet returns a set holding the given values, duplicates collapsed.
func NewSet(values ...interface{}) Set {
	result := make(Set, len(values))
	for _, value := range values {
		result[value] = struct{}{}
	}
	return result
}

func (s Set) Add(value interface{}) {
	s[value] = struct{}{}
}

func (s Set) Remove(value interface{}) {
	delete(s, value)
}

func (s Set) Contains(value interface{}) bool {
	_, ok := s[value]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

// Values returns the set members in unspecified order.
func (s Set) Values() []interface{} {
	result := make([]interface{}, 0, len(s))
	for value := range s {
		result = append(result, value)
	}
	return result
}
