/*
Package csel constructs compound and combined CSS style selectors and
renders them to their canonical textual form.

Selectors are built fluently, one part at a time, starting from a factory
call for the first part:

   sel := csel.ID("main").WithClass("container").WithClass("editable")
   sel.Stringify()                       // ⇒  "#main.container.editable"

Parts have to be appended in canonical rank order (element, id, class,
attribute, pseudo-class, pseudo-element), and element, id and pseudo-element
may occur at most once. Violations freeze the builder at its last valid
state and are reported by Err().

Two selectors join into a combined selector with a combinator token:

   s, err := csel.Combine(left, csel.Child, right)

Combined selectors are selectors themselves and nest arbitrarily, forming a
binary tree with compound selectors at the leaves.

This package does not parse CSS, compute specificity or match selectors
against a DOM. It is a pure in-process value-construction library; the only
public rendering contract is Selectable.Stringify.

Status

Stable API for construction and rendering. Matching may some day live in a
separate package.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package csel

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'csel.selector'.
func tracer() tracing.Trace {
	return tracing.Select("csel.selector")
}
