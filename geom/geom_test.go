package geom_test

import (
	"testing"

	"github.com/npillmayer/csel/geom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse/core/dimen"
)

func TestPointShifted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csel.geom")
	defer teardown()
	//
	p := geom.P(1*dimen.PT, 2*dimen.PT)
	q := p.Shifted(3*dimen.PT, -2*dimen.PT)
	if q.X != 4*dimen.PT || q.Y != 0 {
		t.Errorf("expected shifted point to be (4pt,0), is %v", q)
	}
	if p.X != 1*dimen.PT {
		t.Errorf("expected original point to be unchanged, is %v", p)
	}
}

func TestPointScaled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csel.geom")
	defer teardown()
	//
	p := geom.P(10*dimen.PT, 4*dimen.PT)
	q := p.Scaled(50)
	if q.X != 5*dimen.PT || q.Y != 2*dimen.PT {
		t.Errorf("expected point scaled by 50%% to be (5pt,2pt), is %v", q)
	}
}
