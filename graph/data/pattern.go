/*
 * tristore
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package data

/*
Term is a single position of a Pattern: either a ground Node or an
unbound variable marker.
*/
type Term struct {
	bound bool
	node  Node
}

/*
Bound creates a ground Term holding n.
*/
func Bound(n Node) Term {
	return Term{bound: true, node: n}
}

/*
Unbound creates an unbound (variable) Term.
*/
func Unbound() Term {
	return Term{}
}

/*
IsVar returns true if this term is unbound.
*/
func (t Term) IsVar() bool {
	return !t.bound
}

/*
Node returns the ground value of this term. Only meaningful if IsVar()
is false.
*/
func (t Term) Node() Node {
	return t.node
}

/*
PredTerm is a pattern position for the predicate slot: either a ground
Predicate or an unbound variable marker.
*/
type PredTerm struct {
	bound bool
	pred  Predicate
}

/*
BoundPred creates a ground PredTerm holding p.
*/
func BoundPred(p Predicate) PredTerm {
	return PredTerm{bound: true, pred: p}
}

/*
UnboundPred creates an unbound (variable) PredTerm.
*/
func UnboundPred() PredTerm {
	return PredTerm{}
}

/*
IsVar returns true if this term is unbound.
*/
func (t PredTerm) IsVar() bool {
	return !t.bound
}

/*
Pred returns the ground value of this term. Only meaningful if IsVar()
is false.
*/
func (t PredTerm) Pred() Predicate {
	return t.pred
}

/*
Pattern is a query over triples: each position is either a ground value
or an unbound variable.
*/
type Pattern struct {
	S Term
	P PredTerm
	O Term
}

/*
NewPattern builds a Pattern from raw, possibly-unbound positions. Passing
nil for a position leaves it unbound. It is an error (InvalidPattern, see
graph/util) for a non-nil s/o to hold anything other than a Node, or for
a non-nil p to hold anything other than a Predicate - this constructor
never fails itself, it is the entry point callers building patterns from
untyped data (e.g. a query-language front end) are expected to validate
against before calling it.
*/
func NewPattern(s *Node, p *Predicate, o *Node) Pattern {
	pat := Pattern{}

	if s != nil {
		pat.S = Bound(*s)
	} else {
		pat.S = Unbound()
	}

	if p != nil {
		pat.P = BoundPred(*p)
	} else {
		pat.P = UnboundPred()
	}

	if o != nil {
		pat.O = Bound(*o)
	} else {
		pat.O = Unbound()
	}

	return pat
}

/*
Binding is a single result row: the projection of a Pattern over its
unbound positions, in S, P, O order (omitting any ground positions). Each
element is a Node or a Predicate, except for the transitive path-between
query which binds a single element of type []Predicate (the path taken).
*/
type Binding []interface{}
