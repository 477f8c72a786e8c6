package rsmapper

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"
)

const dbTag = "db"

var timeType = reflect.TypeOf(time.Time{})

// FieldDescriptor is the mapping metadata of one struct field.
type FieldDescriptor struct {
	// Name is the Go field name.
	Name string
	// Column is the explicit column name from the tag, empty when none was declared.
	Column   string
	Kind     Kind
	Index    int
	Type     reflect.Type
	Nullable bool
}

// lookupName is the name matched, case-insensitively, against column labels.
func (f FieldDescriptor) lookupName() string {
	if f.Column != "" {
		return f.Column
	}
	return f.Name
}

type fieldMapType []FieldDescriptor

var fieldMapCache sync.Map // reflect.Type -> fieldMapType

// Describe returns the field descriptors used to map rows into T.
func Describe[T any]() ([]FieldDescriptor, error) {
	sType, err := structType(reflect.TypeOf((*T)(nil)).Elem())
	if err != nil {
		return nil, err
	}
	fieldMap, err := getFieldMap(sType)
	if err != nil {
		return nil, err
	}
	return append([]FieldDescriptor(nil), fieldMap...), nil
}

// structType returns the struct type behind t, which may be a struct or a pointer to one.
func structType(t reflect.Type) (reflect.Type, error) {
	sType := t
	if sType.Kind() == reflect.Pointer {
		sType = sType.Elem()
	}
	if sType.Kind() != reflect.Struct {
		return nil, &InstantiationError{Type: t}
	}
	return sType, nil
}

func getFieldMap(sType reflect.Type) (fieldMapType, error) {
	if v, ok := fieldMapCache.Load(sType); ok {
		return v.(fieldMapType), nil
	}

	fieldMap := make(fieldMapType, 0, sType.NumField())
	for i := 0; i < sType.NumField(); i++ {
		structField := sType.Field(i)
		if !structField.IsExported() {
			continue
		}
		tag, ok := structField.Tag.Lookup(dbTag)
		if ok && tag == "-" {
			continue
		}

		name, opts := parseTag(tag)
		entry := FieldDescriptor{
			Name:   structField.Name,
			Column: name,
			Index:  i,
			Type:   structField.Type,
		}

		fieldType := structField.Type
		if fieldType.Kind() == reflect.Pointer {
			fieldType = fieldType.Elem()
			entry.Nullable = true
		}

		kind, err := kindOf(fieldType, opts)
		if err != nil {
			return nil, &UnsupportedTypeError{Field: structField.Name, Type: structField.Type, Reason: err.Error()}
		}
		entry.Kind = kind

		fieldMap = append(fieldMap, entry)
	}

	v, _ := fieldMapCache.LoadOrStore(sType, fieldMap)
	return v.(fieldMapType), nil
}

// parseTag splits "name,opt1,opt2". Options are lower-cased.
func parseTag(tag string) (string, []string) {
	if tag == "" {
		return "", nil
	}
	parts := strings.Split(tag, ",")
	opts := make([]string, 0, len(parts)-1)
	for _, opt := range parts[1:] {
		opt = strings.ToLower(strings.TrimSpace(opt))
		if opt != "" {
			opts = append(opts, opt)
		}
	}
	return strings.TrimSpace(parts[0]), opts
}

var timeKinds = map[string]Kind{
	"date":      KindDate,
	"time":      KindTime,
	"datetime":  KindDateTime,
	"timestamp": KindTimestamp,
}

// kindOf picks the semantic kind of t. Options only narrow ambiguous Go types;
// an option that contradicts t is an error.
func kindOf(t reflect.Type, opts []string) (Kind, error) {
	kind := defaultKind(t)
	for _, opt := range opts {
		switch {
		case opt == "char":
			if t.Kind() != reflect.Int32 {
				return KindUnsupported, fmt.Errorf("option %q needs a rune field", opt)
			}
			kind = KindCharacter
		case timeKinds[opt] != KindUnsupported:
			if t != timeType {
				return KindUnsupported, fmt.Errorf("option %q needs a time.Time field", opt)
			}
			kind = timeKinds[opt]
		default:
			return KindUnsupported, fmt.Errorf("unknown option %q", opt)
		}
	}
	return kind, nil
}

func defaultKind(t reflect.Type) Kind {
	if t == timeType {
		return KindTimestamp
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int32:
		return KindInteger
	case reflect.Int64:
		return KindLong
	case reflect.Int16:
		return KindShort
	case reflect.Int8:
		return KindByte
	case reflect.Bool:
		return KindBoolean
	case reflect.Float32:
		return KindFloat
	case reflect.Float64:
		return KindDouble
	case reflect.String:
		return KindString
	}
	return KindUnsupported
}
