package optscan

import (
	"github.com/napalu/optscan/util"
)

// Arity describes whether an option binds a single value or an ordered
// sequence of values.
type Arity int

const (
	// Single binds at most one value; a repeated occurrence overwrites.
	Single Arity = iota
	// Array accumulates values in first-seen order.
	Array
)

// String returns the string representation of an Arity
func (a Arity) String() string {
	if a == Array {
		return "array"
	}
	return "single"
}

// Strategy is the rule governing which subsequent token(s) are claimed as an
// option's value(s).
type Strategy int

const (
	// Standalone takes no value token; the option's presence records "true".
	// Pair with AsBool for a boolean flag.
	Standalone Strategy = iota
	// Next consumes the immediately following token unconditionally as the
	// value, without checking whether it looks like an option.
	Next
	// Unconditional consumes exactly like Next but signals, to readers and to
	// the help layer, that option-like values (e.g. negative numbers) are
	// expected.
	Unconditional
	// ScanningForValue scans forward for the first token which is a plain
	// value, skipping option-like tokens, and claims it from its original
	// position.
	ScanningForValue
	// SingleValue appends the next plain value per occurrence, with the same
	// look-ahead rule as ScanningForValue. Array arity.
	SingleValue
	// UnconditionalSingleValue appends the immediately following token per
	// occurrence, whatever its shape. Array arity.
	UnconditionalSingleValue
	// UpToNextOption appends every immediately-following token until one is
	// option-like or input ends. Array arity.
	UpToNextOption
	// Remaining appends every remaining unconsumed token verbatim, including
	// option-like ones, and terminates all further option matching. Array
	// arity.
	Remaining
)

// String returns the string representation of a Strategy
func (s Strategy) String() string {
	switch s {
	case Standalone:
		return "standalone"
	case Next:
		return "next"
	case Unconditional:
		return "unconditional"
	case ScanningForValue:
		return "scanningForValue"
	case SingleValue:
		return "singleValue"
	case UnconditionalSingleValue:
		return "unconditionalSingleValue"
	case UpToNextOption:
		return "upToNextOption"
	case Remaining:
		return "remaining"
	}
	return "unknown"
}

// appliesTo reports whether a strategy is valid for the given arity.
func (s Strategy) appliesTo(a Arity) bool {
	switch s {
	case Standalone, Next, Unconditional, ScanningForValue:
		return a == Single
	case SingleValue, UnconditionalSingleValue, UpToNextOption, Remaining:
		return a == Array
	}
	return false
}

// DefaultFunc produces a raw value for an option absent from the token
// stream. Array options never have a non-empty default - they fall back to
// the empty sequence.
type DefaultFunc func() string

// ConvertFunc converts a raw token into a typed value. A nil ConvertFunc
// leaves the raw string as the bound value.
type ConvertFunc func(raw string) (any, error)

// UpdateFunc stores a raw token into caller-owned state, e.g. a variable
// bound with WithBind. Called once per recorded occurrence, in stream order.
type UpdateFunc func(raw string) error

// ConfigureDefinitionFunc is used when building Definition instances
type ConfigureDefinitionFunc func(def *Definition, err *error)

// ConfigureRegistryFunc is used when configuring a Registry
type ConfigureRegistryFunc func(reg *Registry, err *error)

// DelimiterFunc signature to match when supplying a user-defined function to
// check for the runes which form list delimiters in bound slice values.
type DelimiterFunc = util.DelimiterFunc

// Origin records which token indices produced a bound value. It carries no
// behavior and is used only for diagnostics.
type Origin struct {
	// Name is the index of the name token, -1 for defaulted values.
	Name int
	// Value is the index of the value token, -1 when no token was consumed
	// (standalone occurrences and defaults).
	Value int
}

// IsDefault reports whether the value came from a DefaultFunc rather than
// from the token stream.
func (o Origin) IsDefault() bool {
	return o.Name < 0 && o.Value < 0
}

func defaultOrigin() Origin {
	return Origin{Name: -1, Value: -1}
}
