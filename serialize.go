package csel

import "strings"

// implements the rendering operation Selectable -> string

// Stringify renders the compound selector to its canonical textual form:
// element, #id, .class…, [attribute]…, :pseudo-class…, ::pseudo-element,
// concatenated with no separators, repeatable parts in append order.
// Stringify is a pure function of the current state and may be called in
// any state, including on a frozen builder.
func (sel *CompoundSelector) Stringify() string {
	var b strings.Builder
	b.WriteString(sel.element)
	if sel.id != "" {
		b.WriteString("#")
		b.WriteString(sel.id)
	}
	for _, c := range sel.classes {
		b.WriteString(".")
		b.WriteString(c)
	}
	for _, a := range sel.attributes {
		b.WriteString("[")
		b.WriteString(a)
		b.WriteString("]")
	}
	for _, p := range sel.pseudoClasses {
		b.WriteString(":")
		b.WriteString(p)
	}
	if sel.pseudoElement != "" {
		b.WriteString("::")
		b.WriteString(sel.pseudoElement)
	}
	return b.String()
}

// Stringify renders the combined selector as
//
//	left.Stringify() + " " + combinator + " " + right.Stringify()
//
// recursing into nested combined selectors. The combinator token renders
// verbatim, so the descendant combinator produces three spaces between its
// operands.
func (sel *CombinedSelector) Stringify() string {
	return sel.left.Stringify() + " " + string(sel.combinator) + " " + sel.right.Stringify()
}
