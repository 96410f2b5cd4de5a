/*
Package geom provides a small geometric value type on top of typesetting
device units.

Status

Trivial but stable.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package geom

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tyse/core/dimen"
)

// tracer traces with key 'csel.geom'.
func tracer() tracing.Trace {
	return tracing.Select("csel.geom")
}

// Point is a position value, measured in device units.
// The zero Point is the origin.
type Point struct {
	X dimen.DU
	Y dimen.DU
}

// P creates a point from x/y device units.
func P(x, y dimen.DU) Point {
	return Point{X: x, Y: y}
}

// Shifted returns the point translated by (dx, dy). Point values are
// immutable; the receiver is unchanged.
func (p Point) Shifted(dx, dy dimen.DU) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Scaled returns the point with both coordinates scaled by a percentage.
func (p Point) Scaled(s int) Point {
	q := Point{
		X: dimen.DU(int64(p.X) * int64(s) / 100),
		Y: dimen.DU(int64(p.Y) * int64(s) / 100),
	}
	tracer().Debugf("scaling %v by %d%% = %v", p, s, q)
	return q
}

func (p Point) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}
