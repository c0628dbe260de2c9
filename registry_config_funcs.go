package optscan

import (
	"github.com/napalu/optscan/errs"
)

// WithPrefixes sets the runes which mark a token as option-like. Defaults to
// '-' when not configured.
func WithPrefixes(prefixes ...rune) ConfigureRegistryFunc {
	return func(reg *Registry, err *error) {
		if len(prefixes) == 0 {
			*err = errs.ErrNoPrefixes
			return
		}
		reg.prefixes = prefixes
	}
}

// WithDefinitions registers the given definitions during NewRegistry
func WithDefinitions(defs ...*Definition) ConfigureRegistryFunc {
	return func(reg *Registry, err *error) {
		for _, def := range defs {
			if e := reg.Add(def); e != nil {
				*err = e
				return
			}
		}
	}
}
