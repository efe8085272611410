// lenient.go decodes API objects member by member so one wrong-typed optional
// field leaves only that field empty.
package mw

import (
	"encoding/json"
	"errors"
	"strconv"
)

var errNotObject = errors.New("not a JSON object")

// members is a JSON object split into its raw members.
type members map[string]json.RawMessage

// objectMembers splits data into members. Anything but an object is an error.
func objectMembers(data []byte) (members, error) {
	var m members
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, errNotObject
	}
	return m, nil
}

// member decodes the named member. A missing or wrong-typed member yields the
// zero value and false.
func member[T any](m members, name string) (T, bool) {
	var v T
	raw, ok := m[name]
	if !ok || json.Unmarshal(raw, &v) != nil {
		var zero T
		return zero, false
	}
	return v, true
}

// labels decodes a label list, accepting a bare string as a one-element list.
func labels(m members, name string) []string {
	if list, ok := member[[]string](m, name); ok {
		return list
	}
	if s, ok := member[string](m, name); ok && s != "" {
		return []string{s}
	}
	return nil
}

// homograph decodes "hom", which is normally a number but is accepted as a
// numeric string.
func homograph(m members) int {
	if n, ok := member[int](m, "hom"); ok {
		return n
	}
	if s, ok := member[string](m, "hom"); ok {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	return 0
}
