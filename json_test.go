package csel_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/npillmayer/csel"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONCompoundRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csel.selector")
	defer teardown()
	//
	sel := csel.Element("a").WithClass("nav").WithAttribute(`href$=".png"`).WithPseudoClass("focus")
	data, err := json.Marshal(sel)
	require.NoError(t, err)
	t.Logf("selector as JSON = %s", data)
	back, err := csel.FromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, sel.Stringify(), back.Stringify())
}

func TestJSONCombinedRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csel.selector")
	defer teardown()
	//
	sel := csel.MustCombine(
		csel.MustCombine(csel.Element("div").WithID("main"), csel.Adjacent, csel.Class("x")),
		csel.Sibling,
		csel.Element("li"),
	)
	data, err := json.Marshal(sel)
	require.NoError(t, err)
	back, err := csel.FromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, "div#main + .x ~ li", back.Stringify())
}

func TestJSONCompoundShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csel.selector")
	defer teardown()
	//
	data, err := json.Marshal(csel.ID("main").WithClass("container"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"main","classes":["container"]}`, string(data))
}

func TestJSONRejectsInvalidCombinator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csel.selector")
	defer teardown()
	//
	payload := `{"left":{"element":"a"},"combinator":"|","right":{"element":"b"}}`
	_, err := csel.FromJSON([]byte(payload))
	var invalid *csel.InvalidCombinatorError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected combinator '|' to be rejected, wasn't: %v", err)
	}
}

func TestJSONRejectsMalformedPayload(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csel.selector")
	defer teardown()
	//
	_, err := csel.FromJSON([]byte(`{"element":`))
	assert.Error(t, err)
}
