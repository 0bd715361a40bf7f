/*
 * tristore
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package transitive

import (
	"github.com/krotik/tristore/graph"
	"github.com/krotik/tristore/graph/data"
	"github.com/krotik/tristore/graph/util"
)

/*
Resolve answers a pattern whose predicate carries a `*` (tag ==
data.TransStar) or `+` (tag == data.TransPlus) transitive-closure tag.

Four shapes - (v,v,v), (v,?,v), (v,?,?) and (?,?,v) - ignore the bound
predicate, if any, and answer path-existence/path-between/reachability
questions over the graph's edges as a whole (see reach.go and
DESIGN.md's Open Question decision). The remaining three bound-predicate
shapes - (?,v,?), (?,v,v) and (v,v,?) - compute the closure of that one
predicate's object->subjects map. The fully unbound shape (?,?,?) has no
well-defined transitive answer and returns ErrUnboundClosure.
*/
func (r *Resolver) Resolve(g graph.Graph, tag data.TransKind, pat data.Pattern) ([]data.Binding, error) {
	star := tag == data.TransStar
	sh := shapeOf(pat)

	switch sh {

	case shapeVVV:
		s, o := pat.S.Node(), pat.O.Node()
		if pathExists(g, s, o, star) {
			return []data.Binding{{}}, nil
		}
		return nil, nil

	case shapeVQV:
		s, o := pat.S.Node(), pat.O.Node()
		path, ok := pathBetween(g, s, o, star)
		if !ok {
			return nil, nil
		}
		return []data.Binding{{path}}, nil

	case shapeVQQ:
		return reachFromS(g, pat.S.Node(), star), nil

	case shapeQQV:
		return reachIntoO(g, pat.O.Node(), star), nil

	case shapeQQQ:
		return nil, &util.GraphError{
			Type:   util.ErrUnboundClosure,
			Detail: "transitive pattern has no bound subject, predicate or object",
		}

	case shapeQVQ, shapeQVV, shapeVVQ:
		p := pat.P.Pred()
		M := buildM(g, p)
		Mstar := r.closureOf(M)

		if star {
			Mstar = starAugment(Mstar, observedNodes(M))
		}

		return projectClosure(sh, pat, Mstar), nil
	}

	return nil, &util.GraphError{
		Type:   util.ErrInternalInvariant,
		Detail: "unreachable pattern shape in transitive resolver",
	}
}
