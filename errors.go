package rsmapper

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrMapperUsed is returned when a Mapper is asked for a second pass.
var ErrMapperUsed = errors.New("mapper already used")

// RowReadError reports a failure to read column metadata or values from the cursor.
// Column is the 1-based column index, or 0 when the failure is not tied to a column.
type RowReadError struct {
	Column int
	Err    error
}

func (e *RowReadError) Error() string {
	if e.Column == 0 {
		return fmt.Sprintf("read row: %v", e.Err)
	}
	return fmt.Sprintf("read row: column %d: %v", e.Column, e.Err)
}

func (e *RowReadError) Unwrap() error {
	return e.Err
}

// UnsupportedTypeError reports a field whose type has no conversion rule.
type UnsupportedTypeError struct {
	Field string
	Type  reflect.Type
	// Reason is set when the tag options conflict with the field type.
	Reason string
}

func (e *UnsupportedTypeError) Error() string {
	msg := fmt.Sprintf("field %s: type %s is not available for mapping", e.Field, e.Type)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// ConversionError reports a raw value that could not be parsed into its field's kind.
type ConversionError struct {
	Field string
	Value string
	Kind  Kind
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("field %s: value %q cannot be converted to %s: %v", e.Field, e.Value, e.Kind, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// InstantiationError reports a target type that cannot be constructed as a struct.
type InstantiationError struct {
	Type reflect.Type
}

func (e *InstantiationError) Error() string {
	return fmt.Sprintf("cannot instantiate %s: target must be a struct or a pointer to a struct", e.Type)
}

// RecordError wraps any failure that aborted the conversion of a row.
// Row is 1-based.
type RecordError struct {
	Row int
	Err error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Row, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
