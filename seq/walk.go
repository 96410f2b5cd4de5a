package seq

import (
	"github.com/npillmayer/csel"
)

// Walk returns the pre-order sequence of all sub-selectors of sel,
// starting with sel itself. Combined selectors are visited before their
// operands, left operands before right ones.
func Walk(sel csel.Selectable) Seq[csel.Selectable] {
	if sel == nil {
		return nil
	}
	tracer().Debugf("walking selector tree of %q", sel.Stringify())
	return walk([]csel.Selectable{sel})
}

// Leaves returns the sequence of the compound selectors at the leaves of
// sel's tree, left to right. For a compound selector this is the one-element
// sequence of the selector itself.
func Leaves(sel csel.Selectable) Seq[*csel.CompoundSelector] {
	leaf := func(s csel.Selectable) bool {
		_, ok := s.(*csel.CompoundSelector)
		return ok
	}
	return Map(func(s csel.Selectable) *csel.CompoundSelector {
		return s.(*csel.CompoundSelector)
	}, Filter(leaf, Walk(sel)))
}

// walk captures the traversal state in an explicit stack. The stack is
// copied per step, as a sequence may be forced more than once.
func walk(stack []csel.Selectable) Seq[csel.Selectable] {
	if len(stack) == 0 {
		return nil
	}
	return func() (csel.Selectable, Seq[csel.Selectable]) {
		top := stack[len(stack)-1]
		rest := make([]csel.Selectable, len(stack)-1, len(stack)+1)
		copy(rest, stack[:len(stack)-1])
		if c, ok := top.(*csel.CombinedSelector); ok {
			rest = append(rest, c.Right(), c.Left())
		}
		return top, walk(rest)
	}
}
