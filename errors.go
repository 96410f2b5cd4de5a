package csel

import "fmt"

// OrderViolationError flags an append of a part whose rank precedes the
// rank reached so far.
type OrderViolationError struct {
	Part  PartKind // the part that was rejected
	After PartKind // the most recently appended part kind
}

func (e *OrderViolationError) Error() string {
	return fmt.Sprintf("selector part '%s' may not follow '%s'", e.Part, e.After)
}

// DuplicatePartError flags a second append of a single-shot part
// (element, id or pseudo-element).
type DuplicatePartError struct {
	Part PartKind
}

func (e *DuplicatePartError) Error() string {
	return fmt.Sprintf("selector may contain at most one '%s' part", e.Part)
}

// InvalidCombinatorError flags a combinator token outside the four CSS
// combinators.
type InvalidCombinatorError struct {
	Token Combinator
}

func (e *InvalidCombinatorError) Error() string {
	return fmt.Sprintf("'%s' is not a CSS combinator", string(e.Token))
}
