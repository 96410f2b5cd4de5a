package csel

// CombinedSelector binds two selectors together with a combinator token.
// It is immutable after construction; left and right are exclusively owned
// and never mutated. A combined selector is itself a Selectable, so
// combined selectors nest into a binary tree whose leaves are compound
// selectors.
type CombinedSelector struct {
	left       Selectable
	combinator Combinator
	right      Selectable
}

// Combine builds a combined selector from two existing selectors. The
// combinator token is validated against the four CSS combinators; unknown
// tokens fail with an InvalidCombinatorError.
func Combine(left Selectable, op Combinator, right Selectable) (*CombinedSelector, error) {
	if !op.isValid() {
		tracer().Errorf("selector construction: '%s' is not a combinator", string(op))
		return nil, &InvalidCombinatorError{Token: op}
	}
	return &CombinedSelector{left: left, combinator: op, right: right}, nil
}

// MustCombine is like Combine, but panics instead of returning an error.
// It simplifies nesting combined selectors with known-good combinators:
//
//	csel.MustCombine(csel.MustCombine(a, csel.Adjacent, b), csel.Sibling, c)
func MustCombine(left Selectable, op Combinator, right Selectable) *CombinedSelector {
	sel, err := Combine(left, op, right)
	if err != nil {
		panic(err)
	}
	return sel
}

// Left returns the left operand.
func (sel *CombinedSelector) Left() Selectable {
	return sel.left
}

// Right returns the right operand.
func (sel *CombinedSelector) Right() Selectable {
	return sel.right
}

// Combinator returns the combinator token joining left and right.
func (sel *CombinedSelector) Combinator() Combinator {
	return sel.combinator
}
