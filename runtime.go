package regular

import (
	"fmt"
	"reflect"
	"runtime"
)

// TypeName returns the Go type name of T as it appears in failure
// messages, e.g. "[]int" or "corpus.SharedList".
func TypeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

// Location is the position in a test file where a check was requested.
type Location struct {
	File string
	Line int
}

// String renders the location as "file:line", or "" when unknown.
func (l Location) String() string {
	if l.File == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// callerLocation reports the location skip frames above its caller.
func callerLocation(skip int) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{}
	}
	return Location{File: file, Line: line}
}

// isNilPointer reports whether v is nil or holds a nil pointer. Value
// receiver methods cannot be called through such a value.
func isNilPointer(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
