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

import "fmt"

/*
Triple is a directed edge (s, p, o) of the graph.
*/
type Triple struct {
	Subject   Node
	Predicate Predicate
	Object    Node
}

/*
NewTriple creates a new Triple.
*/
func NewTriple(s Node, p Predicate, o Node) Triple {
	return Triple{Subject: s, Predicate: p, Object: o}
}

/*
String returns a human-readable representation of t.
*/
func (t Triple) String() string {
	return fmt.Sprintf("[%v %v %v]", t.Subject, t.Predicate, t.Object)
}
