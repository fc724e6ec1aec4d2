package visibility

import (
	"errors"
	"testing"
)

func TestFromRule(t *testing.T) {
	evaluator := EvaluatorFunc(func(fieldName, rule string, ctx Context) (bool, error) {
		subscribed, _ := ctx.Values["subscribe"].(bool)
		return subscribed, nil
	})

	if got := FromRule("plan", "", evaluator); got != nil {
		t.Fatal("empty rule must compile to a nil predicate")
	}
	if got := FromRule("plan", "subscribe", nil); got != nil {
		t.Fatal("nil evaluator must compile to a nil predicate")
	}

	predicate := FromRule("plan", "subscribe", evaluator)
	if predicate == nil {
		t.Fatal("expected a predicate")
	}
	if predicate(map[string]any{"subscribe": false}) {
		t.Fatal("predicate must follow the evaluator verdict")
	}
	if !predicate(map[string]any{"subscribe": true}) {
		t.Fatal("predicate must follow the evaluator verdict")
	}
}

func TestFromRuleErrorsResolveHidden(t *testing.T) {
	evaluator := EvaluatorFunc(func(fieldName, rule string, ctx Context) (bool, error) {
		return true, errors.New("broken rule")
	})

	predicate := FromRule("plan", "broken", evaluator)
	if predicate(map[string]any{}) {
		t.Fatal("a failing rule must hide the field")
	}
}
