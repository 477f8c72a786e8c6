// Package rsmapper maps the rows of a query result into tagged Go structs.
//
// Each exported field is matched, ignoring case, against the column labels of a row,
// using the name from its `db` tag when one is given and its Go name otherwise.
// Values arrive as strings and are converted according to the field's Kind.
package rsmapper

import (
	"reflect"
)

// Mapper converts the rows of one cursor into values of T.
// T must be a struct or a pointer to a struct. A Mapper makes a single pass.
type Mapper[T any] struct {
	cursor      Cursor
	closeCursor bool
	used        bool
}

// New returns a Mapper reading from c. When closeCursor is set the
// Mapper closes c once its pass is over, whether or not it failed.
// There is no default: callers that hand the cursor over pass true.
func New[T any](c Cursor, closeCursor bool) *Mapper[T] {
	return &Mapper[T]{
		cursor:      c,
		closeCursor: closeCursor,
	}
}

// ParseList maps every remaining row of the cursor. The first failing row
// aborts the pass and is reported as a *RecordError.
func ParseList[T any](c Cursor, closeCursor bool) ([]T, error) {
	return New[T](c, closeCursor).ParseList()
}

// ParseSingle maps the next row of the cursor. ok is false when the cursor had no row.
func ParseSingle[T any](c Cursor, closeCursor bool) (T, bool, error) {
	return New[T](c, closeCursor).ParseSingle()
}

// ParseList maps every remaining row of the cursor into a slice of T.
func (m *Mapper[T]) ParseList() (out []T, err error) {
	if m.used {
		return nil, ErrMapperUsed
	}
	m.used = true
	defer func() {
		m.release(&err)
		if err != nil {
			out = nil
		}
	}()

	rt, fieldMap, err := m.prepare()
	if err != nil {
		return nil, err
	}

	out = make([]T, 0)
	for m.cursor.Next() {
		rec, err := m.parseRow(rt, fieldMap)
		if err != nil {
			return nil, &RecordError{Row: len(out) + 1, Err: err}
		}
		out = append(out, rec)
	}
	if err := m.cursor.Err(); err != nil {
		return nil, &RowReadError{Err: err}
	}

	return out, nil
}

// ParseSingle maps the next row of the cursor. ok is false when there was none.
func (m *Mapper[T]) ParseSingle() (out T, ok bool, err error) {
	var zero T
	if m.used {
		return zero, false, ErrMapperUsed
	}
	m.used = true
	defer func() {
		m.release(&err)
		if err != nil {
			out, ok = zero, false
		}
	}()

	rt, fieldMap, err := m.prepare()
	if err != nil {
		return zero, false, err
	}

	if !m.cursor.Next() {
		if err := m.cursor.Err(); err != nil {
			return zero, false, &RowReadError{Err: err}
		}
		return zero, false, nil
	}

	rec, err := m.parseRow(rt, fieldMap)
	if err != nil {
		return zero, false, &RecordError{Row: 1, Err: err}
	}
	return rec, true, nil
}

func (m *Mapper[T]) prepare() (reflect.Type, fieldMapType, error) {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	sType, err := structType(rt)
	if err != nil {
		return nil, nil, err
	}
	fieldMap, err := getFieldMap(sType)
	if err != nil {
		return nil, nil, err
	}
	return rt, fieldMap, nil
}

func (m *Mapper[T]) parseRow(rt reflect.Type, fieldMap fieldMapType) (T, error) {
	var zero T
	row, err := readRow(m.cursor)
	if err != nil {
		return zero, err
	}
	rec, err := buildRecord(rt, fieldMap, row)
	if err != nil {
		return zero, err
	}
	return rec.Interface().(T), nil
}

// release closes the cursor if the Mapper owns it. A close error is only
// reported when nothing failed before it.
func (m *Mapper[T]) release(err *error) {
	if !m.closeCursor {
		return
	}
	if cerr := m.cursor.Close(); cerr != nil && *err == nil {
		*err = cerr
	}
}

// buildRecord allocates a fresh rt and fills it from row. Fields without a
// matching column, or whose column is NULL, keep their zero value.
func buildRecord(rt reflect.Type, fieldMap fieldMapType, row Row) (reflect.Value, error) {
	target := reflect.New(rt).Elem()
	structVal := target
	if rt.Kind() == reflect.Pointer {
		target.Set(reflect.New(rt.Elem()))
		structVal = target.Elem()
	}

	for _, field := range fieldMap {
		raw, ok := row.Lookup(field.lookupName())
		if !ok {
			continue
		}
		if field.Kind == KindUnsupported {
			return reflect.Value{}, &UnsupportedTypeError{Field: field.Name, Type: field.Type}
		}

		v, err := convert(raw, field.Kind)
		if err != nil {
			return reflect.Value{}, &ConversionError{Field: field.Name, Value: raw, Kind: field.Kind, Err: err}
		}
		setField(structVal.Field(field.Index), field, v)
	}

	return target, nil
}

// setField assigns v directly to the field, allocating it first when the field is a pointer.
func setField(dst reflect.Value, field FieldDescriptor, v any) {
	src := reflect.ValueOf(v)
	if !field.Nullable {
		dst.Set(src.Convert(dst.Type()))
		return
	}
	ptr := reflect.New(dst.Type().Elem())
	ptr.Elem().Set(src.Convert(ptr.Elem().Type()))
	dst.Set(ptr)
}
