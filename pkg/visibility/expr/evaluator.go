// Package expr provides a small, dependency-free rule evaluator for field
// visibility. Rules read values from the form context by name:
//
//	subscribe
//	subscribe == true
//	plan != "free" && seats == 10
//	extras.role == "admin" || !archived
//
// Identifiers resolve against Context.Values (dotted paths traverse nested
// maps) and Context.Extras through the "extras." prefix. A bare identifier is
// a truthiness check.
package expr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-formflow/pkg/visibility"
)

// Evaluator implements visibility.Evaluator over the rule grammar above.
type Evaluator struct{}

func New() *Evaluator { return &Evaluator{} }

func (e *Evaluator) Eval(fieldName, rule string, ctx visibility.Context) (bool, error) {
	_ = fieldName
	trimmed := strings.TrimSpace(rule)
	if trimmed == "" {
		return true, nil
	}

	p := &parser{input: trimmed}
	node, err := p.parseOr()
	if err != nil {
		return false, err
	}
	p.skipSpace()
	if p.pos < len(p.input) {
		return false, fmt.Errorf("expr: unexpected input at %q", p.input[p.pos:])
	}
	return node.eval(ctx)
}

type node interface {
	eval(ctx visibility.Context) (bool, error)
}

type orNode struct{ left, right node }

func (n orNode) eval(ctx visibility.Context) (bool, error) {
	ok, err := n.left.eval(ctx)
	if err != nil || ok {
		return ok, err
	}
	return n.right.eval(ctx)
}

type andNode struct{ left, right node }

func (n andNode) eval(ctx visibility.Context) (bool, error) {
	ok, err := n.left.eval(ctx)
	if err != nil || !ok {
		return false, err
	}
	return n.right.eval(ctx)
}

type notNode struct{ inner node }

func (n notNode) eval(ctx visibility.Context) (bool, error) {
	ok, err := n.inner.eval(ctx)
	return !ok, err
}

type truthyNode struct{ ident string }

func (n truthyNode) eval(ctx visibility.Context) (bool, error) {
	value, ok := lookup(ctx, n.ident)
	if !ok {
		return false, nil
	}
	return truthy(value), nil
}

type literal struct {
	str     string
	num     float64
	boolean bool
	kind    byte // 's', 'n', 'b', '0' (null)
}

type compareNode struct {
	ident  string
	negate bool
	lit    literal
}

func (n compareNode) eval(ctx visibility.Context) (bool, error) {
	value, _ := lookup(ctx, n.ident)

	var equal bool
	switch n.lit.kind {
	case '0':
		equal = value == nil
	case 'b':
		got, _ := coerceBool(value)
		equal = got == n.lit.boolean
	case 'n':
		got, ok := coerceNumber(value)
		equal = ok && got == n.lit.num
	default:
		equal = coerceString(value) == n.lit.str
	}
	if n.negate {
		return !equal, nil
	}
	return equal, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t' || p.input[p.pos] == '\n' || p.input[p.pos] == '\r') {
		p.pos++
	}
}

func (p *parser) accept(tok string) bool {
	p.skipSpace()
	if strings.HasPrefix(p.input[p.pos:], tok) {
		p.pos += len(tok)
		return true
	}
	return false
}

func (p *parser) parseOr() (node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.accept("||") {
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = orNode{left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.accept("&&") {
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = andNode{left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (node, error) {
	p.skipSpace()
	// Guard against consuming the first '!' of '!='.
	if p.pos < len(p.input) && p.input[p.pos] == '!' && !strings.HasPrefix(p.input[p.pos:], "!=") {
		p.pos++
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return notNode{inner: inner}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (node, error) {
	if p.accept("(") {
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if !p.accept(")") {
			return nil, errors.New("expr: missing closing ')'")
		}
		return inner, nil
	}

	ident, err := p.parseIdent()
	if err != nil {
		return nil, err
	}

	negate := false
	switch {
	case p.accept("=="):
	case p.accept("!="):
		negate = true
	default:
		return truthyNode{ident: ident}, nil
	}

	lit, err := p.parseLiteral()
	if err != nil {
		return nil, err
	}
	return compareNode{ident: ident, negate: negate, lit: lit}, nil
}

func (p *parser) parseIdent() (string, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.input) && !strings.ContainsRune(" \t\n\r()!=&|", rune(p.input[p.pos])) {
		p.pos++
	}
	if start == p.pos {
		if p.pos >= len(p.input) {
			return "", errors.New("expr: unexpected end of rule")
		}
		return "", fmt.Errorf("expr: expected identifier at %q", p.input[p.pos:])
	}
	return p.input[start:p.pos], nil
}

func (p *parser) parseLiteral() (literal, error) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return literal{}, errors.New("expr: missing literal after comparison")
	}

	if quote := p.input[p.pos]; quote == '"' || quote == '\'' {
		p.pos++
		start := p.pos
		for p.pos < len(p.input) && p.input[p.pos] != quote {
			p.pos++
		}
		if p.pos >= len(p.input) {
			return literal{}, errors.New("expr: unterminated string literal")
		}
		value := p.input[start:p.pos]
		p.pos++
		return literal{kind: 's', str: value}, nil
	}

	raw, err := p.parseIdent()
	if err != nil {
		return literal{}, err
	}
	switch strings.ToLower(raw) {
	case "true":
		return literal{kind: 'b', boolean: true}, nil
	case "false":
		return literal{kind: 'b', boolean: false}, nil
	case "null", "nil":
		return literal{kind: '0'}, nil
	}
	if num, err := strconv.ParseFloat(raw, 64); err == nil {
		return literal{kind: 'n', num: num}, nil
	}
	// Bare words compare as strings to keep rules forgiving.
	return literal{kind: 's', str: raw}, nil
}

func lookup(ctx visibility.Context, key string) (any, bool) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, false
	}
	if rest, ok := strings.CutPrefix(key, "extras."); ok {
		return lookupMap(ctx.Extras, rest)
	}
	return lookupMap(ctx.Values, key)
}

func lookupMap(values map[string]any, path string) (any, bool) {
	if len(values) == 0 || path == "" {
		return nil, false
	}
	// Exact match wins so dotted field names keep working.
	if v, ok := values[path]; ok {
		return v, true
	}
	var current any = values
	for _, part := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return strings.TrimSpace(v) != ""
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	case []string:
		return len(v) > 0
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		return true
	}
}

func coerceBool(value any) (bool, bool) {
	switch v := value.(type) {
	case nil:
		return false, false
	case bool:
		return v, true
	case string:
		if parsed, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return parsed, true
		}
		return strings.TrimSpace(v) != "", true
	default:
		return truthy(value), true
	}
}

func coerceNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func coerceString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(value)
	}
}
