package optscan

import (
	"github.com/ef-ds/deque"
	"github.com/napalu/optscan/errs"
	"github.com/napalu/optscan/scan"
)

// resolution is the per-call state of one Resolve invocation. Nothing in it
// survives the call, which keeps Resolve idempotent and a Registry safely
// shareable across goroutines.
type resolution struct {
	reg        *Registry
	state      *scan.State
	store      *store
	work       *deque.Deque // conversion jobs, drained FIFO by the applier
	updates    *deque.Deque // update jobs, run only when the parse is error-free
	errs       *errs.List
	terminated bool // set once a Remaining strategy claims the rest of the stream
}

// conversionJob defers the conversion of one recorded raw value so all
// conversion failures across all options are reported together.
type conversionJob struct {
	def    *Definition
	raw    string
	origin Origin
}

func (r *Registry) newResolution(args []string) *resolution {
	return &resolution{
		reg:     r,
		state:   scan.NewState(args),
		store:   newStore(),
		work:    deque.New(),
		updates: deque.New(),
		errs:    &errs.List{},
	}
}

// scanTokens is the single forward scan: each unclaimed token under the
// cursor is classified and, for name matches, the declared strategy consumes
// value tokens. Plain tokens no option claims are left in place and surface
// as unclaimed positionals on the Result.
func (c *resolution) scanTokens() {
	for !c.terminated && c.state.Advance() {
		current := c.state.CurrentArg()
		pos := c.state.Pos()

		m := c.reg.matchName(current)
		switch m.kind {
		case matchedValue:
			// leave unclaimed
		case matchedUnknownOption:
			_, _ = c.state.ClaimAt(pos)
			if c.reg.catchAll != "" {
				def, _ := c.reg.Definition(c.reg.catchAll)
				c.store.update(def, current, Origin{Name: pos, Value: pos})
			} else {
				c.errs.Append(&errs.UnrecognizedOptionError{Token: current, Position: pos})
			}
		case matchedDefinition:
			_, _ = c.state.ClaimAt(pos)
			if m.hasInline {
				// inline form bypasses the strategy scan entirely
				c.record(m.def, m.inline, Origin{Name: pos, Value: pos})
				continue
			}
			c.applyStrategy(m.def, pos)
		}
	}
}

// applyStrategy consumes value tokens for one occurrence of def whose name
// matched at namePos.
func (c *resolution) applyStrategy(def *Definition, namePos int) {
	switch def.Strategy {
	case Standalone:
		c.record(def, "true", Origin{Name: namePos, Value: -1})

	case Next, Unconditional, UnconditionalSingleValue:
		value, pos, ok := c.state.Consume()
		if !ok {
			c.errs.Append(&errs.MissingValueError{Names: def.Names, ExpectedAt: namePos + 1})
			return
		}
		c.record(def, value, Origin{Name: namePos, Value: pos})

	case ScanningForValue, SingleValue:
		pos, ok := c.scanPlainValue(namePos)
		if !ok {
			c.errs.Append(&errs.MissingValueError{Names: def.Names, ExpectedAt: namePos + 1})
			return
		}
		value, _ := c.state.ClaimAt(pos)
		c.record(def, value, Origin{Name: namePos, Value: pos})

	case UpToNextOption:
		for {
			value, pos, ok := c.state.ConsumeIf(c.isPlainValue)
			if !ok {
				break
			}
			c.record(def, value, Origin{Name: namePos, Value: pos})
		}

	case Remaining:
		for {
			value, pos, ok := c.state.Consume()
			if !ok {
				break
			}
			c.record(def, value, Origin{Name: namePos, Value: pos})
		}
		c.terminated = true
	}
}

func (c *resolution) isPlainValue(token string) bool {
	return !c.reg.isOptionLike(token)
}

// scanPlainValue returns the position of the first unconsumed plain value
// after namePos, leaving any option-like token it skips in place for that
// option's own resolution.
func (c *resolution) scanPlainValue(namePos int) (int, bool) {
	for pos, ok := c.state.NextUnclaimed(namePos); ok; pos, ok = c.state.NextUnclaimed(pos) {
		token, err := c.state.TokenAt(pos)
		if err != nil {
			break
		}
		if c.isPlainValue(token) {
			return pos, true
		}
	}
	return -1, false
}

func (c *resolution) record(def *Definition, raw string, origin Origin) {
	if def.Arity == Array {
		c.store.update(def, raw, origin)
	} else {
		c.store.set(def, raw, origin)
	}
}

// applyDefaults fills unset keys from declared defaults after stream
// exhaustion; array options without entries resolve to the empty sequence.
func (c *resolution) applyDefaults() {
	for _, def := range c.reg.Definitions() {
		if c.store.has(def.Key) {
			continue
		}
		switch {
		case def.Default != nil:
			c.record(def, def.Default(), defaultOrigin())
		case def.Arity == Array:
			c.store.touch(def)
		}
	}
}

// convertAll queues every recorded raw value and drains the queue FIFO,
// applying the declared conversion and update functions. Failures append to
// the error list instead of aborting, so every invalid value is reported.
func (c *resolution) convertAll() {
	c.store.each(func(e *entry) {
		for _, occ := range e.forConversion() {
			c.work.PushBack(conversionJob{def: e.def, raw: occ.raw, origin: occ.origin})
		}
	})

	for c.work.Len() > 0 {
		item, _ := c.work.PopFront()
		job := item.(conversionJob)

		value, err := convertRaw(job.def, job.raw)
		if err != nil {
			c.errs.Append(&errs.InvalidValueError{
				Key:      job.def.Key,
				Raw:      job.raw,
				Position: job.origin.Value,
				Err:      err,
			})
			continue
		}
		c.store.bind(job.def.Key, value)

		if job.def.Update != nil {
			c.updates.PushBack(job)
		}
	}
}

// applyUpdates runs the caller-supplied update functions, one call per
// recorded occurrence in stream order. Updates are deferred until the parse
// is known to be error-free: a failed resolution must not write to bound
// variables or any other caller-owned state.
func (c *resolution) applyUpdates() {
	for c.updates.Len() > 0 {
		item, _ := c.updates.PopFront()
		job := item.(conversionJob)

		if err := job.def.Update(job.raw); err != nil {
			c.errs.Append(&errs.InvalidValueError{
				Key:      job.def.Key,
				Raw:      job.raw,
				Position: job.origin.Value,
				Err:      err,
			})
		}
	}
}

func convertRaw(def *Definition, raw string) (any, error) {
	if def.Convert == nil {
		return raw, nil
	}
	return def.Convert(raw)
}

// result assembles the immutable outcome. Only reachable when no error was
// collected.
func (c *resolution) result() *Result {
	res := newResult(c.state.Unclaimed())
	c.store.each(func(e *entry) {
		res.add(e)
	})
	return res
}
