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
	"fmt"

	"github.com/krotik/tristore/graph/data"
	"github.com/krotik/tristore/graph/util"
)

/*
PatternFromRaw builds a Pattern from three untyped positions, as a query
layer working off parsed, dynamically-typed terms would. Passing nil
leaves a position unbound; anything else must be a data.Node (for s/o)
or a data.Predicate (for p), otherwise an InvalidPattern error is
returned. A data.Term or data.PredTerm value (including the
Unbound/UnboundPred markers) is not accepted and also yields
InvalidPattern.
*/
func PatternFromRaw(s, p, o interface{}) (data.Pattern, error) {
	pat := data.Pattern{}

	sTerm, err := termFromRaw(s)
	if err != nil {
		return pat, err
	}
	pat.S = sTerm

	pTerm, err := predTermFromRaw(p)
	if err != nil {
		return pat, err
	}
	pat.P = pTerm

	oTerm, err := termFromRaw(o)
	if err != nil {
		return pat, err
	}
	pat.O = oTerm

	return pat, nil
}

func termFromRaw(v interface{}) (data.Term, error) {
	switch t := v.(type) {
	case nil:
		return data.Unbound(), nil
	case data.Node:
		return data.Bound(t), nil
	default:
		return data.Term{}, &util.GraphError{
			Type:   util.ErrInvalidPattern,
			Detail: fmt.Sprintf("expected a Node or nil, got %T", v),
		}
	}
}

func predTermFromRaw(v interface{}) (data.PredTerm, error) {
	switch t := v.(type) {
	case nil:
		return data.UnboundPred(), nil
	case data.Predicate:
		plain, _ := data.SplitPredicateTag(string(t))
		if !data.IsValidName(plain) {
			return data.PredTerm{}, &util.GraphError{
				Type:   util.ErrInvalidPattern,
				Detail: fmt.Sprintf("malformed predicate name %q", t),
			}
		}
		return data.BoundPred(t), nil
	default:
		return data.PredTerm{}, &util.GraphError{
			Type:   util.ErrInvalidPattern,
			Detail: fmt.Sprintf("expected a Predicate or nil, got %T", v),
		}
	}
}
