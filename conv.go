package optscan

import (
	"fmt"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
	"github.com/napalu/optscan/errs"
)

// Ready-made converters for WithConverter. Each returns a ConvertFunc whose
// failures unwrap to the matching errs.ErrParse* sentinel.

// AsString binds the raw token unchanged.
func AsString() ConvertFunc {
	return func(raw string) (any, error) {
		return raw, nil
	}
}

// AsInt parses the raw token as an int.
func AsInt() ConvertFunc {
	return func(raw string) (any, error) {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errs.ErrParseInt, raw)
		}
		return v, nil
	}
}

// AsInt64 parses the raw token as an int64.
func AsInt64() ConvertFunc {
	return func(raw string) (any, error) {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errs.ErrParseInt, raw)
		}
		return v, nil
	}
}

// AsUint64 parses the raw token as a uint64.
func AsUint64() ConvertFunc {
	return func(raw string) (any, error) {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errs.ErrParseUint, raw)
		}
		return v, nil
	}
}

// AsFloat64 parses the raw token as a float64.
func AsFloat64() ConvertFunc {
	return func(raw string) (any, error) {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errs.ErrParseFloat, raw)
		}
		return v, nil
	}
}

// AsBool parses the raw token as a bool. Standalone options record "true",
// so this is the natural converter for boolean flags.
func AsBool() ConvertFunc {
	return func(raw string) (any, error) {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errs.ErrParseBool, raw)
		}
		return v, nil
	}
}

// AsDuration parses the raw token with time.ParseDuration.
func AsDuration() ConvertFunc {
	return func(raw string) (any, error) {
		v, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errs.ErrParseDuration, raw)
		}
		return v, nil
	}
}

// AsTime parses the raw token as a timestamp in the local timezone,
// accepting the formats dateparse recognizes.
func AsTime() ConvertFunc {
	return func(raw string) (any, error) {
		v, err := dateparse.ParseLocal(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errs.ErrParseTime, raw)
		}
		return v, nil
	}
}
