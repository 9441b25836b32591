package table

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// Direction of a column sort.
type Direction int

const (
	Unsorted Direction = iota
	Ascending
	Descending
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "none"
	}
}

// MarshalText lets the direction appear by name in JSON views.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// SortState tracks which column is sorted and how. Only one column is active at a time.
type SortState struct {
	Key       string    `json:"key"`
	Direction Direction `json:"direction"`
}

// Click returns the state after a header click: the active column cycles
// ascending -> descending -> unsorted, any other column starts at ascending.
func (s SortState) Click(key string) SortState {
	if s.Key == key {
		switch s.Direction {
		case Ascending:
			return SortState{Key: key, Direction: Descending}
		case Descending:
			return SortState{Key: key, Direction: Unsorted}
		}
	}
	return SortState{Key: key, Direction: Ascending}
}

// Active reports whether rows are currently reordered.
func (s SortState) Active() bool {
	return s.Key != "" && s.Direction != Unsorted
}

// Replay applies n clicks on key starting from the unsorted state.
func Replay(key string, n int) SortState {
	var s SortState
	for i := 0; i < n; i++ {
		s = s.Click(key)
	}
	return s
}

// Compare orders two accessed field values. Absent values sort first; numbers compare
// numerically, strings lexically, false before true, times chronologically. Mixed types
// fall back to comparing their text.
func Compare(a, b any) int {
	a, b = deref(a), deref(b)
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	if x, ok := toFloat(a); ok {
		if y, ok := toFloat(b); ok {
			return cmpOrdered(x, y)
		}
	}
	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return strings.Compare(x, y)
		}
	case bool:
		if y, ok := b.(bool); ok {
			switch {
			case x == y:
				return 0
			case !x:
				return -1
			default:
				return 1
			}
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func cmpOrdered(x, y float64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

func deref(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	return rv.Interface()
}

func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
