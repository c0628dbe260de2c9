package optscan

import (
	"fmt"
	"time"

	"github.com/napalu/optscan/errs"
	"github.com/napalu/optscan/scan"
	orderedmap "github.com/wk8/go-ordered-map"
)

// binding is the resolved state of one key inside a Result.
type binding struct {
	def     *Definition
	single  any
	hasOne  bool
	values  []any
	origins []Origin
}

// Result is the successful outcome of one Resolve call: a mapping from
// option key to converted value (single arity) or ordered converted sequence
// (array arity). It is only constructible by a successful resolution, so a
// Result can never expose partial or unconverted state.
type Result struct {
	values    *orderedmap.OrderedMap // Key -> *binding, first-seen order
	unclaimed []scan.Positional
}

func newResult(unclaimed []scan.Positional) *Result {
	return &Result{
		values:    orderedmap.New(),
		unclaimed: unclaimed,
	}
}

func (r *Result) add(e *entry) {
	b := &binding{
		def:     e.def,
		values:  e.converted,
		origins: e.origins(),
	}
	if e.def.Arity == Single && len(e.converted) > 0 {
		b.single = e.converted[len(e.converted)-1]
		b.hasOne = true
	}
	r.values.Set(e.def.Key, b)
}

// Has reports whether a value (or, for array arity, a possibly empty
// sequence) is bound for key.
func (r *Result) Has(key string) bool {
	_, found := r.values.Get(key)
	return found
}

// Get returns the converted value bound to a single-arity key.
func (r *Result) Get(key string) (any, bool) {
	b, found := r.binding(key)
	if !found || !b.hasOne {
		return nil, false
	}
	return b.single, true
}

// Values returns the ordered converted sequence bound to an array-arity key.
// The order is the order values were seen in the token stream.
func (r *Result) Values(key string) ([]any, bool) {
	b, found := r.binding(key)
	if !found || b.def.Arity != Array {
		return nil, false
	}
	out := make([]any, len(b.values))
	copy(out, b.values)
	return out, true
}

// Keys returns the bound keys in first-seen order.
func (r *Result) Keys() []string {
	out := make([]string, 0, r.values.Len())
	for pair := r.values.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key.(string))
	}
	return out
}

// Origins returns which token indices produced the value(s) bound to key.
// Diagnostics only.
func (r *Result) Origins(key string) []Origin {
	if b, found := r.binding(key); found {
		out := make([]Origin, len(b.origins))
		copy(out, b.origins)
		return out
	}
	return nil
}

// Unclaimed returns the tokens no option claimed, in original order - the
// positional leftovers of the parse.
func (r *Result) Unclaimed() []scan.Positional {
	out := make([]scan.Positional, len(r.unclaimed))
	copy(out, r.unclaimed)
	return out
}

// String returns the value bound to a single-arity key as a string.
func (r *Result) String(key string) (string, error) {
	return singleAs[string](r, key)
}

// Strings returns the sequence bound to an array-arity key as strings.
func (r *Result) Strings(key string) ([]string, error) {
	return sliceAs[string](r, key)
}

// Int returns the value bound to a single-arity key as an int.
func (r *Result) Int(key string) (int, error) {
	return singleAs[int](r, key)
}

// Ints returns the sequence bound to an array-arity key as ints.
func (r *Result) Ints(key string) ([]int, error) {
	return sliceAs[int](r, key)
}

// Int64 returns the value bound to a single-arity key as an int64.
func (r *Result) Int64(key string) (int64, error) {
	return singleAs[int64](r, key)
}

// Bool returns the value bound to a single-arity key as a bool.
func (r *Result) Bool(key string) (bool, error) {
	return singleAs[bool](r, key)
}

// Float64 returns the value bound to a single-arity key as a float64.
func (r *Result) Float64(key string) (float64, error) {
	return singleAs[float64](r, key)
}

// Duration returns the value bound to a single-arity key as a time.Duration.
func (r *Result) Duration(key string) (time.Duration, error) {
	return singleAs[time.Duration](r, key)
}

// Time returns the value bound to a single-arity key as a time.Time.
func (r *Result) Time(key string) (time.Time, error) {
	return singleAs[time.Time](r, key)
}

func (r *Result) binding(key string) (*binding, bool) {
	if v, found := r.values.Get(key); found {
		return v.(*binding), true
	}
	return nil, false
}

func singleAs[T any](r *Result, key string) (T, error) {
	var zero T
	b, found := r.binding(key)
	if !found {
		return zero, fmt.Errorf("%w: '%s'", errs.ErrKeyNotSet, key)
	}
	if b.def.Arity != Single {
		return zero, fmt.Errorf("%w: '%s' is %s arity", errs.ErrWrongArity, key, b.def.Arity)
	}
	if !b.hasOne {
		return zero, fmt.Errorf("%w: '%s'", errs.ErrKeyNotSet, key)
	}
	value, ok := b.single.(T)
	if !ok {
		return zero, fmt.Errorf("%w: '%s' holds %T", errs.ErrTypeMismatch, key, b.single)
	}
	return value, nil
}

func sliceAs[T any](r *Result, key string) ([]T, error) {
	b, found := r.binding(key)
	if !found {
		return nil, fmt.Errorf("%w: '%s'", errs.ErrKeyNotSet, key)
	}
	if b.def.Arity != Array {
		return nil, fmt.Errorf("%w: '%s' is %s arity", errs.ErrWrongArity, key, b.def.Arity)
	}
	out := make([]T, len(b.values))
	for i, v := range b.values {
		value, ok := v.(T)
		if !ok {
			return nil, fmt.Errorf("%w: '%s' holds %T", errs.ErrTypeMismatch, key, v)
		}
		out[i] = value
	}
	return out, nil
}
