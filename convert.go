package rsmapper

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Kind is the semantic type a field is converted to.
type Kind uint8

const (
	KindUnsupported Kind = iota
	KindInteger
	KindBoolean
	KindByte
	KindShort
	KindLong
	KindCharacter
	KindFloat
	KindDouble
	KindString
	KindDate
	KindTime
	KindDateTime
	KindTimestamp
)

var kindNames = [...]string{
	KindUnsupported: "unsupported",
	KindInteger:     "integer",
	KindBoolean:     "boolean",
	KindByte:        "byte",
	KindShort:       "short",
	KindLong:        "long",
	KindCharacter:   "character",
	KindFloat:       "float",
	KindDouble:      "double",
	KindString:      "string",
	KindDate:        "date",
	KindTime:        "time",
	KindDateTime:    "datetime",
	KindTimestamp:   "timestamp",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Layouts accepted for date and time columns.
const (
	DateTimeLayout  = "2006-01-02 15:04:05"
	TimestampLayout = "2006-01-02 15:04:05.999999999"
	DateLayout      = "2006-01-02"
	TimeLayout      = "15:04:05"
)

var (
	errEmptyCharacter   = errors.New("empty string has no first character")
	errInvalidCharacter = errors.New("first character is not valid UTF-8")
)

// convert parses raw into the Go value backing kind:
// int32, bool, int8, int16, int64, rune, float32, float64, string or time.Time.
func convert(raw string, kind Kind) (any, error) {
	switch kind {
	case KindInteger:
		n, err := strconv.ParseInt(raw, 10, 32)
		return int32(n), err
	case KindLong:
		return strconv.ParseInt(raw, 10, 64)
	case KindShort:
		n, err := strconv.ParseInt(raw, 10, 16)
		return int16(n), err
	case KindByte:
		n, err := strconv.ParseInt(raw, 10, 8)
		return int8(n), err
	case KindBoolean:
		// Anything but "true" is false, never an error.
		return strings.EqualFold(strings.TrimSpace(raw), "true"), nil
	case KindCharacter:
		if raw == "" {
			return rune(0), errEmptyCharacter
		}
		r, size := utf8.DecodeRuneInString(raw)
		if r == utf8.RuneError && size == 1 {
			return rune(0), errInvalidCharacter
		}
		return r, nil
	case KindFloat:
		f, err := strconv.ParseFloat(raw, 32)
		return float32(f), err
	case KindDouble:
		return strconv.ParseFloat(raw, 64)
	case KindString:
		return raw, nil
	case KindDate, KindDateTime:
		t, err := parseDateTime(raw)
		return t.Truncate(time.Second), err
	case KindTimestamp:
		return parseDateTime(raw)
	case KindTime:
		return time.Parse(TimeLayout, raw)
	case KindUnsupported:
		return nil, fmt.Errorf("no conversion for %s", kind)
	}
	return nil, fmt.Errorf("unknown kind %s", kind)
}

// parseDateTime tries the date-and-time layout first and falls back to date only.
// Fractional seconds are accepted after the seconds field.
func parseDateTime(raw string) (time.Time, error) {
	t, err := time.Parse(DateTimeLayout, raw)
	if err == nil {
		return t, nil
	}
	if t, dateErr := time.Parse(DateLayout, raw); dateErr == nil {
		return t, nil
	}
	return time.Time{}, err
}
