package reflect

import (
	"fmt"
	"reflect"
	"sort"
)

type (
	Value = reflect.Value
	Type  = reflect.Type
	Kind  = reflect.Kind
)

const (
	Map    = reflect.Map
	String = reflect.String
)

var (
	ValueOf  = reflect.ValueOf
	TypeOf   = reflect.TypeOf
	Indirect = reflect.Indirect
)

// MapKeys returns string representations of map keys in unspecified order.
func MapKeys(v Value) []string {
	v = Indirect(v)
	if v.Kind() != Map {
		return nil
	}

	keys := make([]string, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		key := iter.Key()
		if key.Kind() == String {
			keys = append(keys, key.String())
		} else {
			keys = append(keys, fmt.Sprint(key.Interface()))
		}
	}
	return keys
}

func MapSortedKeys(v Value) []string {
	keys := MapKeys(v)
	sort.Strings(keys)
	return keys
}
