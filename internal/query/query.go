// Package query serializes request parameters into the URL query format
// expected by the fincode API.
package query

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	gquery "github.com/google/go-querystring/query"
)

var (
	// ErrKeyNotDefined is returned when a scalar value is reached without a
	// parameter name, e.g. Encode("abc").
	ErrKeyNotDefined = errors.New("key is not defined")

	// ErrUnsupportedType is returned for values that have no query form
	// (channels, functions, maps with non-string keys).
	ErrUnsupportedType = errors.New("unsupported query value")
)

// Param is a single named entry of Params.
type Param struct {
	Key   string
	Value any
}

// Params is an ordered parameter object. Entries are encoded in insertion
// order, which map[string]any cannot guarantee.
type Params []Param

// Add appends a parameter and returns the extended Params.
func (p Params) Add(key string, value any) Params {
	return append(p, Param{Key: key, Value: value})
}

// Sort is a sort specification, serialized as a single "field order" value.
type Sort struct {
	Field string `json:"field"`
	Order string `json:"order"`
}

// Sort orders accepted by the API.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

func (s Sort) String() string {
	return s.Field + " " + s.Order
}

// EncodeValues lets Sort appear inside go-querystring tagged structs.
func (s Sort) EncodeValues(key string, v *url.Values) error {
	v.Add(key, s.String())
	return nil
}

type pair struct {
	key   string
	value string
}

// Encode converts v into a URL-encoded query string without the leading "?".
//
// nil values are omitted, slices repeat their key once per element, and Sort
// values or maps holding both "field" and "order" become "field order". Other
// objects are flattened using their own keys: Params in insertion order,
// structs in field declaration order, maps in key order. A scalar reached
// without a key yields ErrKeyNotDefined.
func Encode(v any) (string, error) {
	e := &encoder{}
	if err := e.walk("", false, v); err != nil {
		return "", err
	}

	var b strings.Builder
	for i, p := range e.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(escape(p.key))
		b.WriteByte('=')
		b.WriteString(escape(p.value))
	}
	return b.String(), nil
}

// escape percent-encodes s, using %20 rather than "+" for spaces.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

type encoder struct {
	pairs []pair
}

func (e *encoder) emit(key string, hasKey bool, value string) error {
	if !hasKey {
		return fmt.Errorf("%w: value %q", ErrKeyNotDefined, value)
	}
	e.pairs = append(e.pairs, pair{key: key, value: value})
	return nil
}

func (e *encoder) walk(key string, hasKey bool, v any) error {
	if v == nil {
		return nil
	}

	switch t := v.(type) {
	case Sort:
		return e.emit(key, hasKey, t.String())
	case *Sort:
		if t == nil {
			return nil
		}
		return e.emit(key, hasKey, t.String())
	case Params:
		for _, p := range t {
			if err := e.walk(p.Key, true, p.Value); err != nil {
				return err
			}
		}
		return nil
	case map[string]any:
		if s, ok := sortFromMap(t); ok {
			return e.emit(key, hasKey, s.String())
		}
		for _, k := range sortedKeys(t) {
			if err := e.walk(k, true, t[k]); err != nil {
				return err
			}
		}
		return nil
	case map[string]string:
		if s, ok := sortFromMap(t); ok {
			return e.emit(key, hasKey, s.String())
		}
		return e.walkValue(key, hasKey, reflect.ValueOf(t))
	case url.Values:
		e.appendValues(t, nil)
		return nil
	case time.Time:
		return e.emit(key, hasKey, t.Format(time.RFC3339))
	case fmt.Stringer:
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return nil
		}
		return e.emit(key, hasKey, t.String())
	}

	return e.walkValue(key, hasKey, reflect.ValueOf(v))
}

func (e *encoder) walkValue(key string, hasKey bool, rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return e.walk(key, hasKey, rv.Elem().Interface())
	case reflect.String:
		return e.emit(key, hasKey, rv.String())
	case reflect.Bool:
		return e.emit(key, hasKey, strconv.FormatBool(rv.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return e.emit(key, hasKey, strconv.FormatInt(rv.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return e.emit(key, hasKey, strconv.FormatUint(rv.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		return e.emit(key, hasKey, strconv.FormatFloat(rv.Float(), 'f', -1, rv.Type().Bits()))
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if err := e.walk(key, hasKey, rv.Index(i).Interface()); err != nil {
				return err
			}
		}
		return nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return fmt.Errorf("%w: %s", ErrUnsupportedType, rv.Type())
		}
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		for _, k := range keys {
			if err := e.walk(k.String(), true, rv.MapIndex(k).Interface()); err != nil {
				return err
			}
		}
		return nil
	case reflect.Struct:
		values, err := gquery.Values(rv.Interface())
		if err != nil {
			return fmt.Errorf("encode %s: %w", rv.Type(), err)
		}
		e.appendValues(values, fieldKeys(rv.Type()))
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, rv.Type())
	}
}

// appendValues adds the keys listed in order first, then the rest of values
// in key order. Values of one key keep their order.
func (e *encoder) appendValues(values url.Values, order []string) {
	seen := make(map[string]bool, len(values))
	add := func(k string) {
		if seen[k] {
			return
		}
		seen[k] = true
		for _, v := range values[k] {
			e.pairs = append(e.pairs, pair{key: k, value: v})
		}
	}

	for _, k := range order {
		if _, ok := values[k]; ok {
			add(k)
		}
	}
	rest := make([]string, 0, len(values))
	for k := range values {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	for _, k := range rest {
		add(k)
	}
}

// fieldKeys lists the url tag names of t's fields in declaration order.
// Untagged embedded structs are inlined, as go-querystring does.
func fieldKeys(t reflect.Type) []string {
	var keys []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() && !f.Anonymous {
			continue
		}
		tag := f.Tag.Get("url")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")

		ft := f.Type
		if ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		if f.Anonymous && name == "" && ft.Kind() == reflect.Struct {
			keys = append(keys, fieldKeys(ft)...)
			continue
		}
		if name == "" {
			name = f.Name
		}
		keys = append(keys, name)
	}
	return keys
}

// sortFromMap reads a sort specification written as a plain object with
// string "field" and "order" entries.
func sortFromMap[V any](m map[string]V) (Sort, bool) {
	f, hasField := m["field"]
	o, hasOrder := m["order"]
	if !hasField || !hasOrder {
		return Sort{}, false
	}
	field, ok := any(f).(string)
	if !ok {
		return Sort{}, false
	}
	order, ok := any(o).(string)
	if !ok {
		return Sort{}, false
	}
	return Sort{Field: field, Order: order}, true
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
