package csel

import (
	"encoding/json"
	"fmt"
)

// Selectors round-trip through a structured JSON representation. A compound
// selector marshals to a plain object of its parts, a combined selector to
// an object {left, combinator, right} with recursive operands:
//
//	{"element":"div","id":"main"}
//	{"left":{…},"combinator":"+","right":{…}}
//
// This is not a CSS parser: FromJSON rebuilds the selector by replaying the
// parts through the checked construction path, so ordering and cardinality
// violations surface as the usual construction errors.

type compoundJSON struct {
	Element       string   `json:"element,omitempty"`
	ID            string   `json:"id,omitempty"`
	Classes       []string `json:"classes,omitempty"`
	Attributes    []string `json:"attributes,omitempty"`
	PseudoClasses []string `json:"pseudoClasses,omitempty"`
	PseudoElement string   `json:"pseudoElement,omitempty"`
}

type combinedJSON struct {
	Left       json.RawMessage `json:"left"`
	Combinator string          `json:"combinator"`
	Right      json.RawMessage `json:"right"`
}

// MarshalJSON is part of interface json.Marshaler.
func (sel *CompoundSelector) MarshalJSON() ([]byte, error) {
	return json.Marshal(compoundJSON{
		Element:       sel.element,
		ID:            sel.id,
		Classes:       sel.classes,
		Attributes:    sel.attributes,
		PseudoClasses: sel.pseudoClasses,
		PseudoElement: sel.pseudoElement,
	})
}

// MarshalJSON is part of interface json.Marshaler.
func (sel *CombinedSelector) MarshalJSON() ([]byte, error) {
	left, err := json.Marshal(sel.left)
	if err != nil {
		return nil, err
	}
	right, err := json.Marshal(sel.right)
	if err != nil {
		return nil, err
	}
	return json.Marshal(combinedJSON{
		Left:       left,
		Combinator: string(sel.combinator),
		Right:      right,
	})
}

// FromJSON rebuilds a selector from its structured JSON representation.
// An object carrying a "combinator" key decodes as a combined selector,
// any other object as a compound selector.
func FromJSON(data []byte) (Selectable, error) {
	var probe struct {
		Combinator *string `json:"combinator"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("cannot decode selector: %w", err)
	}
	if probe.Combinator != nil {
		return combinedFromJSON(data)
	}
	return compoundFromJSON(data)
}

func compoundFromJSON(data []byte) (*CompoundSelector, error) {
	var c compoundJSON
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("cannot decode compound selector: %w", err)
	}
	sel := &CompoundSelector{}
	if c.Element != "" {
		sel.WithElement(c.Element)
	}
	if c.ID != "" {
		sel.WithID(c.ID)
	}
	for _, class := range c.Classes {
		sel.WithClass(class)
	}
	for _, attr := range c.Attributes {
		sel.WithAttribute(attr)
	}
	for _, pseudo := range c.PseudoClasses {
		sel.WithPseudoClass(pseudo)
	}
	if c.PseudoElement != "" {
		sel.WithPseudoElement(c.PseudoElement)
	}
	if sel.Err() != nil {
		return nil, sel.Err()
	}
	return sel, nil
}

func combinedFromJSON(data []byte) (*CombinedSelector, error) {
	var c combinedJSON
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("cannot decode combined selector: %w", err)
	}
	left, err := FromJSON(c.Left)
	if err != nil {
		return nil, err
	}
	right, err := FromJSON(c.Right)
	if err != nil {
		return nil, err
	}
	sel, err := Combine(left, Combinator(c.Combinator), right)
	if err != nil {
		return nil, err
	}
	return sel, nil
}
