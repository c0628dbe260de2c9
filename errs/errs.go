// Package errs defines the structured errors produced by option resolution.
//
// Resolution never stops at the first problem - errors are accumulated in a
// List so a user sees everything wrong with their command line at once. The
// concrete error types wrap sentinel errors, so callers can branch with
// errors.Is and inspect details with errors.As.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Resolution error taxonomy.
var (
	ErrMissingValue         = errors.New("option expects a value but none could be found")
	ErrUnrecognizedOption   = errors.New("unrecognized option")
	ErrInvalidValue         = errors.New("invalid value")
	ErrAmbiguousConsumption = errors.New("ambiguous token consumption")
)

// Registration and access errors.
var (
	ErrEmptyKey         = errors.New("definition key must not be empty")
	ErrDuplicateKey     = errors.New("duplicate definition key")
	ErrDuplicateName    = errors.New("name already registered for another option")
	ErrNoNames          = errors.New("definition has no usable name")
	ErrStrategyMismatch = errors.New("parsing strategy does not apply to the declared arity")
	ErrCatchAllArity    = errors.New("catch-all definitions require array arity")
	ErrCatchAllConflict = errors.New("a catch-all definition is already registered")
	ErrArrayDefault     = errors.New("array options default to the empty sequence")
	ErrBindNil          = errors.New("can't bind option to nil")
	ErrNoPrefixes       = errors.New("at least one prefix rune is required")
	ErrKeyNotSet        = errors.New("no value bound for key")
	ErrWrongArity       = errors.New("accessor arity does not match the declared arity")
	ErrTypeMismatch     = errors.New("bound value has a different type")
)

// Conversion errors - wrapped by InvalidValueError when a recorded raw token
// fails its declared conversion.
var (
	ErrParseInt              = errors.New("value is not a valid integer")
	ErrParseUint             = errors.New("value is not a valid unsigned integer")
	ErrParseFloat            = errors.New("value is not a valid float")
	ErrParseBool             = errors.New("value is not a valid boolean")
	ErrParseTime             = errors.New("value is not a valid timestamp")
	ErrParseDuration         = errors.New("value is not a valid duration")
	ErrUnsupportedConversion = errors.New("unsupported type conversion")
)

// MissingValueError reports a matched option name for which no eligible value
// token could be found under the option's parsing strategy.
type MissingValueError struct {
	Names      []string // declared spellings of the option
	ExpectedAt int      // token index where a value was expected
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("option %s expects a value at position %d but none was found",
		joinNames(e.Names), e.ExpectedAt)
}

func (e *MissingValueError) Unwrap() error { return ErrMissingValue }

// UnrecognizedOptionError reports an option-like token which matches no
// declared name and was not absorbed by a catch-all option.
type UnrecognizedOptionError struct {
	Token    string
	Position int
}

func (e *UnrecognizedOptionError) Error() string {
	return fmt.Sprintf("unrecognized option '%s' at position %d", e.Token, e.Position)
}

func (e *UnrecognizedOptionError) Unwrap() error { return ErrUnrecognizedOption }

// InvalidValueError reports a raw token which was matched and extracted but
// failed the option's conversion function.
type InvalidValueError struct {
	Key      string // key of the option the value was bound to
	Raw      string // the offending raw token
	Position int    // original token index, -1 for defaulted values
	Err      error  // underlying conversion failure
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value '%s' for '%s': %s", e.Raw, e.Key, e.Err)
}

func (e *InvalidValueError) Unwrap() []error { return []error{ErrInvalidValue, e.Err} }

// AmbiguousConsumptionError is reserved for strategies where several options
// could plausibly claim the same token. The engine resolves such races
// deterministically by occurrence order and never emits this error itself; it
// is exported for strategy extensions which cannot.
type AmbiguousConsumptionError struct {
	Token     string
	Position  int
	Claimants []string // keys of the competing options
}

func (e *AmbiguousConsumptionError) Error() string {
	return fmt.Sprintf("token '%s' at position %d is claimed by %s",
		e.Token, e.Position, strings.Join(e.Claimants, " and "))
}

func (e *AmbiguousConsumptionError) Unwrap() error { return ErrAmbiguousConsumption }

// List is an ordered collection of resolution errors. It implements error and
// unwraps to its elements, so errors.Is/As reach the individual entries.
type List struct {
	errors []error
}

// Append adds err to the list. Nil errors are ignored.
func (l *List) Append(err error) {
	if err != nil {
		l.errors = append(l.errors, err)
	}
}

// Len returns the number of collected errors.
func (l *List) Len() int {
	return len(l.errors)
}

// All returns the collected errors in the order they were detected.
func (l *List) All() []error {
	out := make([]error, len(l.errors))
	copy(out, l.errors)
	return out
}

func (l *List) Error() string {
	var sb strings.Builder
	for i, err := range l.errors {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

func (l *List) Unwrap() []error { return l.errors }

func joinNames(names []string) string {
	if len(names) == 0 {
		return "(unnamed)"
	}
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}
	return strings.Join(quoted, "/")
}
