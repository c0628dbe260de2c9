package optscan

import (
	"fmt"
	"reflect"

	"github.com/napalu/optscan/errs"
	"github.com/napalu/optscan/util"
)

// WithName adds an accepted long spelling for the option. Leading prefix
// runes are tolerated and stripped when matching, so "verbose" and
// "--verbose" declare the same spelling.
func WithName(name string) ConfigureDefinitionFunc {
	return func(def *Definition, err *error) {
		if name == "" {
			*err = errs.ErrNoNames
			return
		}
		def.Names = append(def.Names, name)
	}
}

// WithShortName sets a short spelling accepted in addition to the long
// name(s). Short names are plain alternative spellings - no POSIX-style
// chaining is performed on them. Unlike WithName, a short name does not
// suppress deriving the long name from the key.
func WithShortName(short string) ConfigureDefinitionFunc {
	return func(def *Definition, err *error) {
		if short == "" {
			*err = errs.ErrNoNames
			return
		}
		def.Short = short
	}
}

// WithArity selects single or array arity. Array definitions must also carry
// an array strategy (SingleValue, UnconditionalSingleValue, UpToNextOption or
// Remaining).
func WithArity(arity Arity) ConfigureDefinitionFunc {
	return func(def *Definition, err *error) {
		def.Arity = arity
	}
}

// WithStrategy selects the parsing strategy governing value consumption.
func WithStrategy(strategy Strategy) ConfigureDefinitionFunc {
	return func(def *Definition, err *error) {
		def.Strategy = strategy
	}
}

// WithDefault sets a default-value provider invoked when the option is
// absent from the token stream.
func WithDefault(provider DefaultFunc) ConfigureDefinitionFunc {
	return func(def *Definition, err *error) {
		def.Default = provider
	}
}

// WithDefaultValue sets a constant default value for the option
func WithDefaultValue(value string) ConfigureDefinitionFunc {
	return WithDefault(func() string { return value })
}

// WithConverter sets the conversion function applied to each claimed raw
// token. See AsString, AsInt, AsBool and friends for ready-made converters.
func WithConverter(convert ConvertFunc) ConfigureDefinitionFunc {
	return func(def *Definition, err *error) {
		def.Convert = convert
	}
}

// WithUpdate sets a raw update function called once per recorded occurrence
func WithUpdate(update UpdateFunc) ConfigureDefinitionFunc {
	return func(def *Definition, err *error) {
		def.Update = update
	}
}

// WithBind stores each resolved raw value into the variable pointed to by
// ptr, converting it to the pointed-to type. For array options a slice
// target accumulates one element per occurrence; for single options a slice
// target is overwritten with the delimited split of the value (pass a nil
// delim for the default ',', '|', ' ' delimiters).
func WithBind(ptr any, delim DelimiterFunc) ConfigureDefinitionFunc {
	return func(def *Definition, err *error) {
		if ptr == nil {
			*err = errs.ErrBindNil
			return
		}
		if !util.CanConvert(ptr) {
			*err = fmt.Errorf("%w: %T", errs.ErrUnsupportedConversion, ptr)
			return
		}
		key := def.Key
		def.Update = func(raw string) error {
			// a failed conversion must leave the target untouched
			target := reflect.ValueOf(ptr).Elem()
			scratch := reflect.New(target.Type())
			if e := util.ConvertString(raw, scratch.Interface(), key, delim); e != nil {
				return e
			}
			if def.Arity == Array && target.Kind() == reflect.Slice {
				target.Set(reflect.AppendSlice(target, scratch.Elem()))
			} else {
				target.Set(scratch.Elem())
			}
			return nil
		}
	}
}

// AsCatchAll marks the definition as the passthrough sink for option-like
// tokens which match no declared name. Requires array arity.
func AsCatchAll() ConfigureDefinitionFunc {
	return func(def *Definition, err *error) {
		def.CatchAll = true
	}
}

// WithDescription the description will be used in usage output presented to
// the user
func WithDescription(description string) ConfigureDefinitionFunc {
	return func(def *Definition, err *error) {
		def.Description = description
	}
}
