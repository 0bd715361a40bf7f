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
	"github.com/krotik/common/errorutil"

	"github.com/krotik/tristore/graph/data"
)

/*
Transact applies retractions, then assertions (each in input order), to g
and returns the resulting graph together with the datoms that were
actually applied. A retraction or assertion which is a no-op (per the
Graph identity contract) emits no datom.
*/
func Transact(g Graph, assertions, retractions []data.Triple, tx uint64) (Graph, []data.Datom, []data.Datom) {
	var asserted, retracted []data.Datom

	cur := g

	for _, t := range retractions {
		next := cur.Delete(t.Subject, t.Predicate, t.Object)
		if !sameGraph(next, cur) {
			retracted = append(retracted, data.NewDatom(t.Subject, t.Predicate, t.Object, tx, false))
		}
		cur = next
	}

	for _, t := range assertions {
		next := cur.Add(t.Subject, t.Predicate, t.Object, tx)
		if !sameGraph(next, cur) {
			asserted = append(asserted, data.NewDatom(t.Subject, t.Predicate, t.Object, tx, true))
		}
		cur = next
	}

	return cur, asserted, retracted
}

/*
sameGraph tests the Graph identity contract: a Graph is the SAME value as
another iff Add/Delete decided the operation was a no-op and returned
their receiver unchanged.
*/
func sameGraph(a, b Graph) bool {
	ag, aok := a.(*indexedGraph)
	bg, bok := b.(*indexedGraph)
	if aok && bok {
		return ag == bg
	}
	return a == b
}

/*
TransactionStep is a single (assertions, retractions) batch to fold into a
graph lineage with a shared transaction id.
*/
type TransactionStep struct {
	Assertions  []data.Triple
	Retractions []data.Triple
}

/*
TransactBatch runs a sequence of transaction steps against successive
generations of g, one per step, starting the transaction id at txStart
and incrementing it for each step. It mirrors the batching convenience of
a rolling transaction: errors encountered while validating a step's
triples are collected rather than aborting the whole batch, so a caller
can report everything wrong with a large import in one pass.
*/
func TransactBatch(g Graph, steps []TransactionStep, txStart uint64, validate func(data.Triple) error) (Graph, []data.Datom, []data.Datom, error) {
	cur := g
	var asserted, retracted []data.Datom

	errs := errorutil.NewCompositeError()

	for i, step := range steps {
		if validate != nil {
			for _, t := range step.Assertions {
				if err := validate(t); err != nil {
					errs.Add(err)
				}
			}
			for _, t := range step.Retractions {
				if err := validate(t); err != nil {
					errs.Add(err)
				}
			}
		}

		var a, r []data.Datom
		cur, a, r = Transact(cur, step.Assertions, step.Retractions, txStart+uint64(i))
		asserted = append(asserted, a...)
		retracted = append(retracted, r...)
	}

	if errs.HasErrors() {
		return cur, asserted, retracted, errs
	}

	return cur, asserted, retracted, nil
}
