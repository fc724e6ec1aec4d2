package visibility

// Evaluator decides whether a field should be visible given a rule string and
// the current form context.
type Evaluator interface {
	Eval(fieldName, rule string, ctx Context) (bool, error)
}

// Context carries the inputs rules evaluate against. Values holds the current
// form value map; Extras lets callers inject out-of-band context such as user
// roles or feature flags, addressable through the "extras." prefix.
type Context struct {
	Values map[string]any
	Extras map[string]any
}

// EvaluatorFunc adapts a function into an Evaluator.
type EvaluatorFunc func(fieldName, rule string, ctx Context) (bool, error)

// Eval delegates to the underlying function.
func (fn EvaluatorFunc) Eval(fieldName, rule string, ctx Context) (bool, error) {
	return fn(fieldName, rule, ctx)
}

// Predicate is the compiled form of a visibility rule: a pure function of the
// current value map. Rule evaluation errors resolve to hidden so a broken rule
// never leaks a gated field.
type Predicate func(values map[string]any) bool

// FromRule compiles a rule string into a Predicate using the supplied
// evaluator. An empty rule yields a nil predicate (always visible).
func FromRule(fieldName, rule string, evaluator Evaluator) Predicate {
	if rule == "" || evaluator == nil {
		return nil
	}
	return func(values map[string]any) bool {
		ok, err := evaluator.Eval(fieldName, rule, Context{Values: values})
		if err != nil {
			return false
		}
		return ok
	}
}
