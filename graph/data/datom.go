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
Datom is the observation of a single triple being asserted or retracted
at a given transaction.
*/
type Datom struct {
	Subject   Node
	Predicate Predicate
	Object    Node
	TxID      uint64
	Added     bool
}

/*
NewDatom creates a new Datom.
*/
func NewDatom(s Node, p Predicate, o Node, tx uint64, added bool) Datom {
	return Datom{Subject: s, Predicate: p, Object: o, TxID: tx, Added: added}
}

/*
String returns a human-readable representation of d.
*/
func (d Datom) String() string {
	return fmt.Sprintf("(%v %v %v %v %v)", d.Subject, d.Predicate, d.Object, d.TxID, d.Added)
}
