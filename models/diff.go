package models

import (
	"reflect"
	"strings"
)

// Diff compares two records of the same type and returns the wire names of
// the top level fields that differ, in field order. It returns nil when the
// records are identical or when the arguments are not records of one type.
// Unexported fields are ignored. Drivers use it on the old and new objects
// of an update to find out what actually changed.
func Diff(old, new any) []string {
	vo := reflect.Indirect(reflect.ValueOf(old))
	vn := reflect.Indirect(reflect.ValueOf(new))
	if !vo.IsValid() || !vn.IsValid() {
		return nil
	}
	if vo.Kind() != reflect.Struct || vo.Type() != vn.Type() {
		return nil
	}

	var changed []string
	t := vo.Type()
	for i := 0; i < t.NumField(); i++ {
		if !vo.Field(i).CanInterface() {
			continue
		}
		if !reflect.DeepEqual(vo.Field(i).Interface(), vn.Field(i).Interface()) {
			changed = append(changed, wireName(t.Field(i)))
		}
	}
	return changed
}

func wireName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" || tag == "-" {
		return f.Name
	}
	if i := strings.Index(tag, ","); i >= 0 {
		tag = tag[:i]
	}
	return tag
}
