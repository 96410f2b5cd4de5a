package csel

// CompoundSelector is a single selector node specifying an element type,
// an id, classes, attributes, pseudo-classes and a pseudo-element, with no
// relational operator. It behaves as a small state machine: parts have to
// be appended in canonical rank order, and single-shot parts at most once.
//
// CompoundSelector is a mutable builder. The With… methods return the
// receiver for chaining; after the first violation the builder is frozen
// at its last valid state and Err() reports the violation.
type CompoundSelector struct {
	element       string
	id            string
	classes       []string
	attributes    []string
	pseudoClasses []string
	pseudoElement string
	history       []PartKind // append history, never cleared
	err           error      // sticky; first violation wins
}

// --- Factory ---------------------------------------------------------------

// Element starts a new compound selector with an element type part,
// e.g. Element("div").
func Element(v string) *CompoundSelector {
	return (&CompoundSelector{}).WithElement(v)
}

// ID starts a new compound selector with an id part. The leading '#' is
// added at rendering time and must not be part of v.
func ID(v string) *CompoundSelector {
	return (&CompoundSelector{}).WithID(v)
}

// Class starts a new compound selector with a class part ('.' is added at
// rendering time).
func Class(v string) *CompoundSelector {
	return (&CompoundSelector{}).WithClass(v)
}

// Attr starts a new compound selector with an attribute part. v is the
// complete text between the brackets, e.g. Attr(`href$=".png"`).
func Attr(v string) *CompoundSelector {
	return (&CompoundSelector{}).WithAttribute(v)
}

// PseudoClass starts a new compound selector with a pseudo-class part
// (':' is added at rendering time).
func PseudoClass(v string) *CompoundSelector {
	return (&CompoundSelector{}).WithPseudoClass(v)
}

// PseudoElement starts a new compound selector with a pseudo-element part
// ('::' is added at rendering time).
func PseudoElement(v string) *CompoundSelector {
	return (&CompoundSelector{}).WithPseudoElement(v)
}

// --- Chaining --------------------------------------------------------------

// WithElement appends an element type part.
func (sel *CompoundSelector) WithElement(v string) *CompoundSelector {
	return sel.appendPart(ElementPart, v)
}

// WithID appends an id part.
func (sel *CompoundSelector) WithID(v string) *CompoundSelector {
	return sel.appendPart(IDPart, v)
}

// WithClass appends a class part. Classes may repeat; they render in
// append order.
func (sel *CompoundSelector) WithClass(v string) *CompoundSelector {
	return sel.appendPart(ClassPart, v)
}

// WithAttribute appends an attribute part. Attributes may repeat; they
// render in append order.
func (sel *CompoundSelector) WithAttribute(v string) *CompoundSelector {
	return sel.appendPart(AttributePart, v)
}

// WithPseudoClass appends a pseudo-class part. Pseudo-classes may repeat;
// they render in append order.
func (sel *CompoundSelector) WithPseudoClass(v string) *CompoundSelector {
	return sel.appendPart(PseudoClassPart, v)
}

// WithPseudoElement appends a pseudo-element part.
func (sel *CompoundSelector) WithPseudoElement(v string) *CompoundSelector {
	return sel.appendPart(PseudoElementPart, v)
}

// Err returns the first violation recorded during construction, if any.
// Callers should treat the whole construction as failed if Err is non-nil;
// the selector itself remains in its last valid state.
func (sel *CompoundSelector) Err() error {
	return sel.err
}

// --- State machine ---------------------------------------------------------

// appendPart performs the cardinality and ordering checks and, on success,
// stores the part and records its kind in the append history.
func (sel *CompoundSelector) appendPart(kind PartKind, v string) *CompoundSelector {
	if sel.err != nil { // frozen
		return sel
	}
	if err := sel.checkAppend(kind); err != nil {
		tracer().P("part", kind.String()).Errorf("selector construction: %v", err)
		sel.err = err
		return sel
	}
	switch kind {
	case ElementPart:
		sel.element = v
	case IDPart:
		sel.id = v
	case ClassPart:
		sel.classes = append(sel.classes, v)
	case AttributePart:
		sel.attributes = append(sel.attributes, v)
	case PseudoClassPart:
		sel.pseudoClasses = append(sel.pseudoClasses, v)
	case PseudoElementPart:
		sel.pseudoElement = v
	}
	sel.history = append(sel.history, kind)
	tracer().P("part", kind.String()).Debugf("selector construction: appended %q", v)
	return sel
}

// checkAppend checks cardinality before ordering: re-appending a spent
// single-shot part is a duplicate-part violation even when its rank would
// have flagged an ordering violation, too.
func (sel *CompoundSelector) checkAppend(kind PartKind) error {
	if kind.singleShot() {
		for _, h := range sel.history {
			if h == kind {
				return &DuplicatePartError{Part: kind}
			}
		}
	}
	if n := len(sel.history); n > 0 && kind < sel.history[n-1] {
		return &OrderViolationError{Part: kind, After: sel.history[n-1]}
	}
	return nil
}
