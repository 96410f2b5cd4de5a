/*
Package seq provides lazily evaluated sequences.

A Seq produces its elements on demand: forcing a sequence yields the head
element and the remainder of the sequence. Sequences may be infinite
(Naturals) and are trimmed to finite prefixes with Take. Besides numeric
generators, the package walks selector trees of package csel, yielding
sub-selectors lazily.

Sequences are immutable once created; forcing a sequence twice yields the
same elements. Clients typically feed sequence elements into a selector
builder, or consume the sequences produced from a selector tree
independently.

Status

Stable. Awaiting range-over-func iterators in a future Go release.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package seq

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'csel.seq'.
func tracer() tracing.Trace {
	return tracing.Select("csel.seq")
}
