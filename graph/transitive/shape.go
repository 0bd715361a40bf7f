/*
 * tristore
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

/*
Package transitive computes transitive-closure answers (the `*` and `+`
tagged predicate queries) over an already-built graph.Graph. It is a set
of pure functions dispatched on the same eight pattern shapes the index
itself dispatches on - kept as its own small enum here rather than shared
with package graph, since the eight shapes are a closed, tiny set and
each dispatching component indexes its own table of strategies.
*/
package transitive

import (
	"github.com/krotik/tristore/graph/data"
)

type shape uint8

const (
	shapeVVV shape = iota // (v,v,v)
	shapeVVQ               // (v,v,?)
	shapeVQV               // (v,?,v)
	shapeVQQ               // (v,?,?)
	shapeQVV               // (?,v,v)
	shapeQVQ               // (?,v,?)
	shapeQQV               // (?,?,v)
	shapeQQQ               // (?,?,?)
)

func shapeOf(pat data.Pattern) shape {
	sb := !pat.S.IsVar()
	pb := !pat.P.IsVar()
	ob := !pat.O.IsVar()

	switch {
	case sb && pb && ob:
		return shapeVVV
	case sb && pb && !ob:
		return shapeVVQ
	case sb && !pb && ob:
		return shapeVQV
	case sb && !pb && !ob:
		return shapeVQQ
	case !sb && pb && ob:
		return shapeQVV
	case !sb && pb && !ob:
		return shapeQVQ
	case !sb && !pb && ob:
		return shapeQQV
	default:
		return shapeQQQ
	}
}
