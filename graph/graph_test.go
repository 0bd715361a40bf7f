/*
 * tristore
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package graph

import (
	"testing"

	"github.com/krotik/tristore/graph/data"
)

var (
	a = data.NewIRI("a")
	b = data.NewIRI("b")
	c = data.NewIRI("c")

	knows = data.Predicate("knows")
	likes = data.Predicate("likes")
)

func TestAddIdempotentSingle(t *testing.T) {
	g := NewGraph(Single)

	g1 := g.Add(a, knows, b, 1)
	g2 := g1.Add(a, knows, b, 2)

	if g1 != g2 {
		t.Error("re-adding an existing triple to a single-valued graph should be a no-op")
	}

	if g1.Count(mustPattern(t, a, knows, b)) != 1 {
		t.Error("expected a count of 1 after idempotent re-add")
	}
}

func TestAddIncrementsMulti(t *testing.T) {
	g := NewGraph(Multi)

	g1 := g.Add(a, knows, b, 1)
	g2 := g1.Add(a, knows, b, 2)

	if g1 == g2 {
		t.Error("re-adding a triple to a multigraph should never be a no-op")
	}

	// A fully-bound pattern only reports presence (0 or 1); the multiplicity
	// shows up when the object is left unbound.
	objs := data.Pattern{S: data.Bound(a), P: data.BoundPred(knows), O: data.Unbound()}
	if g2.Count(objs) != 2 {
		t.Error("expected a count of 2 after two adds")
	}
}

func TestDeleteNoOpWhenAbsent(t *testing.T) {
	g := NewGraph(Single)

	g1 := g.Delete(a, knows, b)

	if g != g1 {
		t.Error("deleting an absent triple should be a no-op")
	}
}

func TestDeleteInverseOfAdd(t *testing.T) {
	g := NewGraph(Single)

	g1 := g.Add(a, knows, b, 1)
	g2 := g1.Delete(a, knows, b)

	if g2.Count(mustPattern(t, a, knows, b)) != 0 {
		t.Error("expected the triple to be gone after delete")
	}

	if g2 == g1 {
		t.Error("delete of a present triple must not return the same value")
	}
}

func TestDeleteDecrementsMulti(t *testing.T) {
	g := NewGraph(Multi)

	g1 := g.Add(a, knows, b, 1).Add(a, knows, b, 2)
	g2 := g1.Delete(a, knows, b)

	if g2.Count(mustPattern(t, a, knows, b)) != 1 {
		t.Error("expected a count of 1 after deleting one of two")
	}
}

func TestResolveAllEightShapes(t *testing.T) {
	g := NewGraph(Multi)
	g = g.Add(a, knows, b, 1)
	g = g.Add(a, knows, c, 1)
	g = g.Add(a, likes, b, 1)
	g = g.Add(b, knows, c, 1)

	cases := []struct {
		name    string
		s, p, o interface{}
		want    int
	}{
		{"vvv-present", a, knows, b, 1},
		{"vvv-absent", a, knows, data.NewIRI("z"), 0},
		{"vvq", a, knows, nil, 2},
		{"vqv", a, nil, b, 2},
		{"vqq", a, nil, nil, 3},
		{"qvv", nil, knows, b, 1},
		{"qvq", nil, knows, nil, 3},
		{"qqv", nil, nil, b, 2},
		{"qqq", nil, nil, nil, 4},
	}

	for _, tc := range cases {
		pat, err := PatternFromRaw(tc.s, tc.p, tc.o)
		if err != nil {
			t.Fatal(err)
		}

		bindings := g.Resolve(pat)
		if len(bindings) != tc.want {
			t.Errorf("%s: Resolve returned %d bindings, want %d", tc.name, len(bindings), tc.want)
		}

		if cnt := g.Count(pat); cnt != uint64(tc.want) {
			t.Errorf("%s: Count returned %d, want %d", tc.name, cnt, tc.want)
		}
	}
}

func TestDiff(t *testing.T) {
	g1 := NewGraph(Single).Add(a, knows, b, 1)
	g2 := g1.Add(a, knows, c, 2)

	diff := g1.Diff(g2)

	if !diff[a] {
		t.Error("subject a changed between g1 and g2 and should appear in the diff")
	}

	if len(diff) != 1 {
		t.Errorf("expected exactly one changed subject, got %d", len(diff))
	}

	if len(g1.Diff(g1)) != 0 {
		t.Error("a graph diffed against itself should be empty")
	}
}

func mustPattern(t *testing.T, s data.Node, p data.Predicate, o data.Node) data.Pattern {
	t.Helper()
	return data.Pattern{S: data.Bound(s), P: data.BoundPred(p), O: data.Bound(o)}
}
