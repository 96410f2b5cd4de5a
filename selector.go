package csel

// Selectable is the interface for all selectors. It is implemented by
// exactly two types: *CompoundSelector and *CombinedSelector. Clients
// depend solely on the string produced by Stringify; no other observable
// state is part of the public boundary.
type Selectable interface {
	Stringify() string
}

var _ Selectable = (*CompoundSelector)(nil)
var _ Selectable = (*CombinedSelector)(nil)

// PartKind is an enum type for the kinds of parts a compound selector is
// made of. The declaration order is the canonical rank order in which parts
// have to be appended.
type PartKind uint8

// Enum values for type PartKind, in canonical rank order.
const (
	ElementPart PartKind = iota
	IDPart
	ClassPart
	AttributePart
	PseudoClassPart
	PseudoElementPart
)

var partNames = [...]string{
	"element",
	"id",
	"class",
	"attribute",
	"pseudo-class",
	"pseudo-element",
}

func (k PartKind) String() string {
	if int(k) >= len(partNames) {
		return "invalid"
	}
	return partNames[k]
}

// singleShot is true for the part kinds permitted at most once per
// compound selector.
func (k PartKind) singleShot() bool {
	switch k {
	case ElementPart, IDPart, PseudoElementPart:
		return true
	}
	return false
}

// Combinator is a relational operator joining two selectors.
type Combinator string

// The four CSS combinators.
const (
	Descendant Combinator = " "
	Child      Combinator = ">"
	Adjacent   Combinator = "+"
	Sibling    Combinator = "~"
)

func (c Combinator) isValid() bool {
	switch c {
	case Descendant, Child, Adjacent, Sibling:
		return true
	}
	return false
}
