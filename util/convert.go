// Package util provides string-to-type conversion helpers shared by the
// resolution engine and by callers binding options to variables.
package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/napalu/optscan/errs"
)

// DelimiterFunc reports whether a rune separates elements of a list value.
type DelimiterFunc func(r rune) bool

// DefaultDelimiters splits list values on ',', '|' and ' '.
func DefaultDelimiters(r rune) bool {
	return r == ',' || r == '|' || r == ' '
}

type signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type float interface {
	~float32 | ~float64
}

func parseSigned[T signed](value string, bits int) (T, error) {
	v, err := strconv.ParseInt(value, 10, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errs.ErrParseInt, value)
	}
	return T(v), nil
}

func parseUnsigned[T unsigned](value string, bits int) (T, error) {
	v, err := strconv.ParseUint(value, 10, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errs.ErrParseUint, value)
	}
	return T(v), nil
}

func parseFloat[T float](value string, bits int) (T, error) {
	v, err := strconv.ParseFloat(value, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errs.ErrParseFloat, value)
	}
	return T(v), nil
}

func parseBool(value string) (bool, error) {
	v, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%w: %q", errs.ErrParseBool, value)
	}
	return v, nil
}

func parseTime(value string) (time.Time, error) {
	v, err := dateparse.ParseLocal(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", errs.ErrParseTime, value)
	}
	return v, nil
}

func parseDuration(value string) (time.Duration, error) {
	v, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errs.ErrParseDuration, value)
	}
	return v, nil
}

func parseSlice[T any](value string, delim DelimiterFunc, parse func(string) (T, error)) ([]T, error) {
	fields := strings.FieldsFunc(value, delim)
	out := make([]T, len(fields))
	for i, f := range fields {
		v, err := parse(f)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ConvertString parses value into the type pointed to by data. Slice targets
// treat value as a delimited list split with delim. The name argument only
// decorates the error for unsupported target types.
func ConvertString(value string, data any, name string, delim DelimiterFunc) error {
	if delim == nil {
		delim = DefaultDelimiters
	}

	var err error
	switch t := data.(type) {
	case *string:
		*t = value
	case *[]string:
		*t = strings.FieldsFunc(value, delim)
	case *int:
		*t, err = parseSigned[int](value, strconv.IntSize)
	case *[]int:
		*t, err = parseSlice(value, delim, func(s string) (int, error) { return parseSigned[int](s, strconv.IntSize) })
	case *int64:
		*t, err = parseSigned[int64](value, 64)
	case *[]int64:
		*t, err = parseSlice(value, delim, func(s string) (int64, error) { return parseSigned[int64](s, 64) })
	case *int32:
		*t, err = parseSigned[int32](value, 32)
	case *[]int32:
		*t, err = parseSlice(value, delim, func(s string) (int32, error) { return parseSigned[int32](s, 32) })
	case *int16:
		*t, err = parseSigned[int16](value, 16)
	case *[]int16:
		*t, err = parseSlice(value, delim, func(s string) (int16, error) { return parseSigned[int16](s, 16) })
	case *int8:
		*t, err = parseSigned[int8](value, 8)
	case *[]int8:
		*t, err = parseSlice(value, delim, func(s string) (int8, error) { return parseSigned[int8](s, 8) })
	case *uint:
		*t, err = parseUnsigned[uint](value, strconv.IntSize)
	case *[]uint:
		*t, err = parseSlice(value, delim, func(s string) (uint, error) { return parseUnsigned[uint](s, strconv.IntSize) })
	case *uint64:
		*t, err = parseUnsigned[uint64](value, 64)
	case *[]uint64:
		*t, err = parseSlice(value, delim, func(s string) (uint64, error) { return parseUnsigned[uint64](s, 64) })
	case *uint32:
		*t, err = parseUnsigned[uint32](value, 32)
	case *[]uint32:
		*t, err = parseSlice(value, delim, func(s string) (uint32, error) { return parseUnsigned[uint32](s, 32) })
	case *uint16:
		*t, err = parseUnsigned[uint16](value, 16)
	case *[]uint16:
		*t, err = parseSlice(value, delim, func(s string) (uint16, error) { return parseUnsigned[uint16](s, 16) })
	case *uint8:
		*t, err = parseUnsigned[uint8](value, 8)
	case *[]uint8:
		*t, err = parseSlice(value, delim, func(s string) (uint8, error) { return parseUnsigned[uint8](s, 8) })
	case *float64:
		*t, err = parseFloat[float64](value, 64)
	case *[]float64:
		*t, err = parseSlice(value, delim, func(s string) (float64, error) { return parseFloat[float64](s, 64) })
	case *float32:
		*t, err = parseFloat[float32](value, 32)
	case *[]float32:
		*t, err = parseSlice(value, delim, func(s string) (float32, error) { return parseFloat[float32](s, 32) })
	case *bool:
		*t, err = parseBool(value)
	case *[]bool:
		*t, err = parseSlice(value, delim, parseBool)
	case *time.Time:
		*t, err = parseTime(value)
	case *[]time.Time:
		*t, err = parseSlice(value, delim, parseTime)
	case *time.Duration:
		*t, err = parseDuration(value)
	case *[]time.Duration:
		*t, err = parseSlice(value, delim, parseDuration)
	default:
		err = fmt.Errorf("%w: %T for '%s'", errs.ErrUnsupportedConversion, data, name)
	}

	return err
}

// CanConvert reports whether data is a pointer to a type ConvertString
// supports.
func CanConvert(data any) bool {
	switch data.(type) {
	case *string, *[]string,
		*int, *[]int, *int64, *[]int64, *int32, *[]int32, *int16, *[]int16, *int8, *[]int8,
		*uint, *[]uint, *uint64, *[]uint64, *uint32, *[]uint32, *uint16, *[]uint16, *uint8, *[]uint8,
		*float64, *[]float64, *float32, *[]float32,
		*bool, *[]bool,
		*time.Time, *[]time.Time, *time.Duration, *[]time.Duration:
		return true
	}
	return false
}
